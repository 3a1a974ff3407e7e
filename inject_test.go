package approach

import "testing"

func TestInjectPathEndpoints(t *testing.T) {
	s := NewStage()
	s.InjectPath(0, 0, 100, 50, 3)
	if s.Pending() != 3 {
		t.Fatalf("Pending = %d, want 3", s.Pending())
	}
	want := []Vec2{{0, 0}, {50, 25}, {100, 50}}
	for i, w := range want {
		if s.injectQueue[i] != w {
			t.Errorf("queue[%d] = %v, want %v", i, s.injectQueue[i], w)
		}
	}
}

func TestInjectPathMinimumFrames(t *testing.T) {
	s := NewStage()
	s.InjectPath(1, 2, 3, 4, 0)
	if s.Pending() != 2 {
		t.Errorf("Pending = %d, want 2", s.Pending())
	}
}

func TestInjectedMoveBeatsCursor(t *testing.T) {
	s := NewStage()
	s.SetCursorSource(func() (float64, float64) { return 9, 9 })
	s.InjectMove(1, 1)

	s.Update(0)
	if p, _ := s.Pointer(); p != (Vec2{X: 1, Y: 1}) {
		t.Errorf("Pointer = %v, want injected {1 1}", p)
	}
	s.Update(0)
	if p, _ := s.Pointer(); p != (Vec2{X: 9, Y: 9}) {
		t.Errorf("Pointer = %v, want cursor {9 9}", p)
	}
}

func TestCallbackHandleRemove(t *testing.T) {
	s := NewStage()
	var calls int
	h := s.OnPointerMove(func(x, y float64) { calls++ })
	s.PointerMove(1, 1)
	s.PointerMove(1, 1) // unchanged
	h.Remove()
	s.PointerMove(2, 2)
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}
