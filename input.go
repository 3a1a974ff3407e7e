package approach

// --- Handler registry ---

type pointerHandler struct {
	id uint32
	fn func(x, y float64)
}

type handlerRegistry struct {
	pointerMove []pointerHandler
	nextID      uint32
}

// CallbackHandle allows removing a registered stage-level callback.
type CallbackHandle struct {
	id  uint32
	reg *handlerRegistry
}

// Remove unregisters this callback so it no longer fires.
// The entry is removed from the slice to avoid nil iteration waste.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	h.reg.pointerMove = removePointerHandler(h.reg.pointerMove, h.id)
}

func removePointerHandler(s []pointerHandler, id uint32) []pointerHandler {
	for i, h := range s {
		if h.id == id {
			return append(s[:i], s[i+1:]...)
		}
	}
	return s
}

// OnPointerMove registers fn to run whenever the pointer position changes.
// It implements PointerSource.
func (s *Stage) OnPointerMove(fn func(x, y float64)) Subscription {
	s.handlers.nextID++
	id := s.handlers.nextID
	s.handlers.pointerMove = append(s.handlers.pointerMove, pointerHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers}
}

// PointerMove reports the pointer position. Handlers fire only when the
// position differs from the last reported one.
func (s *Stage) PointerMove(x, y float64) {
	if s.hasPointer && s.pointer.X == x && s.pointer.Y == y {
		return
	}
	s.pointer = Vec2{X: x, Y: y}
	s.hasPointer = true

	// Handlers may remove themselves while firing.
	s.fireBuf = append(s.fireBuf[:0], s.handlers.pointerMove...)
	for _, h := range s.fireBuf {
		h.fn(x, y)
	}
}

// Pointer returns the last reported pointer position and whether one has
// been reported.
func (s *Stage) Pointer() (Vec2, bool) {
	return s.pointer, s.hasPointer
}

// processInput consumes one injected move if any, otherwise polls the cursor
// source.
func (s *Stage) processInput() {
	if s.processInjectedInput() {
		return
	}
	if s.cursor != nil {
		s.PointerMove(s.cursor())
	}
}
