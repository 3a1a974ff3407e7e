package approach

import (
	"errors"
	"testing"
	"time"
)

func TestNewBoxDefaults(t *testing.T) {
	a := NewBox("a", 1, 2, 3, 4)
	b := NewBox("b", 0, 0, 0, 0)
	if a.ID == 0 || b.ID == a.ID {
		t.Errorf("IDs = %d, %d; want distinct non-zero", a.ID, b.ID)
	}
	if !a.Visible {
		t.Error("Visible should default to true")
	}
	if got := a.Bounds(); got != (Rect{1, 2, 3, 4}) {
		t.Errorf("Bounds = %v, want {1 2 3 4}", got)
	}
}

func TestBoxSizeFromStyle(t *testing.T) {
	b := NewBox("b", 10, 10, 20, 20)
	b.SetStyle("width", "60px")
	b.SetStyle("height", "2em")
	w, h := b.Size()
	if w != 60 || h != 20 {
		t.Errorf("Size = (%v, %v), want (60, 20)", w, h)
	}
	if c := b.Bounds().Center(); c != (Vec2{40, 20}) {
		t.Errorf("Center = %v, want {40 20}", c)
	}
}

func TestBoxDisposeIgnoresStyleWrites(t *testing.T) {
	b := NewBox("b", 0, 0, 1, 1)
	b.Dispose()
	b.SetStyle("left", "1px")
	if _, ok := b.Style("left"); ok {
		t.Error("disposed box should not store styles")
	}
}

func TestStageComputedStyle(t *testing.T) {
	s := NewStage()
	b := NewBox("b", 0, 0, 30, 40)
	b.SetStyle("left", "5px")

	tests := []struct {
		prop, want string
	}{
		{"left", "5px"},
		{"width", "30px"},
		{"height", "40px"},
		{"opacity", "1"},
		{"background-color", "rgba(0, 0, 0, 0)"},
		{"display", ""},
	}
	for _, tt := range tests {
		if got := s.ComputedStyle(b, tt.prop); got != tt.want {
			t.Errorf("ComputedStyle(%q) = %q, want %q", tt.prop, got, tt.want)
		}
	}
}

func TestStageAnimateUnknownElement(t *testing.T) {
	s := NewStage()
	err := s.Animate(&fakeElement{id: 1}, Frame{"left": "1px"}, time.Second)
	if !errors.Is(err, ErrUnknownElement) {
		t.Errorf("err = %v, want ErrUnknownElement", err)
	}
}

func TestStagePointerMoveFiresOnChange(t *testing.T) {
	s := NewStage()
	var got []Vec2
	h := s.OnPointerMove(func(x, y float64) { got = append(got, Vec2{x, y}) })

	s.PointerMove(1, 2)
	s.PointerMove(1, 2)
	s.PointerMove(3, 4)
	if len(got) != 2 {
		t.Fatalf("fired %d times, want 2", len(got))
	}

	h.Remove()
	s.PointerMove(5, 6)
	if len(got) != 2 {
		t.Errorf("fired after Remove")
	}
	if p, ok := s.Pointer(); !ok || p != (Vec2{5, 6}) {
		t.Errorf("Pointer = %v, %v; want {5 6}, true", p, ok)
	}
}

func TestStageInjectedMovesConsumedPerUpdate(t *testing.T) {
	s := NewStage()
	var n int
	s.OnPointerMove(func(x, y float64) { n++ })
	polled := 0
	s.SetCursorSource(func() (float64, float64) {
		polled++
		return 0, 0
	})

	s.InjectPath(0, 0, 30, 0, 4)
	if s.Pending() != 4 {
		t.Fatalf("Pending = %d, want 4", s.Pending())
	}
	for i := 0; i < 4; i++ {
		s.Update(0)
	}
	if n != 4 {
		t.Errorf("moves = %d, want 4", n)
	}
	if polled != 0 {
		t.Errorf("cursor polled %d times while injections were pending", polled)
	}
	if p, _ := s.Pointer(); p != (Vec2{30, 0}) {
		t.Errorf("Pointer = %v, want {30 0}", p)
	}

	s.Update(0)
	if polled != 1 {
		t.Errorf("polled = %d, want 1 once the queue drained", polled)
	}
}

func TestStageDropsDisposedBoxes(t *testing.T) {
	s := NewStage()
	a := NewBox("a", 0, 0, 1, 1)
	b := NewBox("b", 0, 0, 1, 1)
	s.Add(a, b)
	if err := s.Animate(a, Frame{"left": "10px"}, time.Second); err != nil {
		t.Fatal(err)
	}
	a.Dispose()
	s.Update(0.1)
	if len(s.Boxes()) != 1 || s.Boxes()[0] != b {
		t.Errorf("Boxes = %v, want only b", s.Boxes())
	}
	if s.Animating(a) {
		t.Error("tween for disposed box should be dropped")
	}
	if _, ok := s.Box("a"); ok {
		t.Error("Box(a) should not be found")
	}
}

// TestStageApproachEndToEnd drives a session through the stage: injected
// pointer moves trigger frames that the stage tweens onto its boxes.
func TestStageApproachEndToEnd(t *testing.T) {
	s := NewStage()
	box := NewBox("card", 190, -10, 20, 20) // center (200, 0)
	box.SetStyle("left", "0px")
	box.SetStyle("background-color", "black")
	s.Add(box)

	decls, err := ParseDeclarations("left: 100px; background-color: rgb(200,100,50); top: auto")
	if err != nil {
		t.Fatal(err)
	}
	clock := time.Unix(0, 0)
	sess, err := Approach(s, s.Elements(), decls, Config{
		Interval: 100 * time.Millisecond,
		Clock:    func() time.Time { return clock },
	})
	if err != nil {
		t.Fatal(err)
	}
	defer sess.Close()

	if got := len(sess.Descriptors(box)); got != 2 {
		t.Fatalf("descriptors = %d, want 2", got)
	}

	s.InjectMove(0, 0)
	s.Update(0) // consumes the move, starts a 99ms tween
	if !s.Animating(box) {
		t.Fatal("expected a running tween")
	}
	for i := 0; i < 10 && s.Animating(box); i++ {
		s.Update(0.05)
	}
	if s.Animating(box) {
		t.Fatal("tween did not finish")
	}
	if v, _ := box.Style("left"); v != "50px" {
		t.Errorf("left = %q, want 50px", v)
	}
	if v, _ := box.Style("background-color"); v != "rgb(100,50,25)" {
		t.Errorf("background-color = %q, want rgb(100,50,25)", v)
	}

	// Throttled: a move within the interval does not start a tween.
	s.InjectMove(1000, 0)
	s.Update(0)
	if s.Animating(box) {
		t.Error("sample inside the interval should be discarded")
	}

	clock = clock.Add(time.Second)
	s.InjectMove(1001, 0)
	s.Update(0)
	for i := 0; i < 10 && s.Animating(box); i++ {
		s.Update(0.05)
	}
	if v, _ := box.Style("left"); v != "0px" {
		t.Errorf("left at rest = %q, want 0px", v)
	}
}
