package approach

// InjectMove queues a synthetic pointer move at the given coordinates. The
// event is consumed on the next Update, ahead of the real cursor.
func (s *Stage) InjectMove(x, y float64) {
	s.injectQueue = append(s.injectQueue, Vec2{X: x, Y: y})
}

// InjectPath queues moves from (fromX, fromY) to (toX, toY), linearly
// interpolated over the given number of frames including both endpoints.
// Minimum frames is 2.
func (s *Stage) InjectPath(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	for i := 0; i < frames; i++ {
		t := float64(i) / float64(frames-1)
		s.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
}

// Pending returns the number of queued synthetic moves.
func (s *Stage) Pending() int {
	return len(s.injectQueue)
}

// processInjectedInput pops one queued move and reports it. Returns true if
// an event was consumed (the real cursor should be skipped).
func (s *Stage) processInjectedInput() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	s.PointerMove(evt.X, evt.Y)
	return true
}
