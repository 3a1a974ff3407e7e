package approach

import (
	"errors"
	"strconv"
	"time"

	"go.uber.org/zap"
)

// ErrUnknownElement is returned when a Stage is asked to animate an element
// it did not create.
var ErrUnknownElement = errors.New("approach: element is not a *Box")

// Stage is a retained host for Box elements. It implements Host: it reports
// geometry and computed styles, runs one StyleTween per animated box, and
// delivers pointer moves to subscribers. Call Update once per tick.
//
// Stages are single-threaded; all methods must be called from the loop that
// calls Update.
type Stage struct {
	// ClearColor fills the screen before boxes are drawn.
	ClearColor RGB

	// ScreenshotDir is where Screenshot writes PNG files. Empty means the
	// working directory.
	ScreenshotDir string

	boxes  []*Box
	tweens map[uint32]*StyleTween

	colorAnimation bool
	debug          bool
	log            *zap.Logger

	script          *Script
	screenshotQueue []string

	// Input state
	handlers    handlerRegistry
	fireBuf     []pointerHandler
	pointer     Vec2
	hasPointer  bool
	cursor      func() (x, y float64)
	injectQueue []Vec2
}

// NewStage creates an empty stage with color animation enabled.
func NewStage() *Stage {
	return &Stage{
		tweens:         make(map[uint32]*StyleTween),
		colorAnimation: true,
		log:            zap.NewNop(),
	}
}

// SetLogger sets the logger used for debug output. nil restores the no-op logger.
func (s *Stage) SetLogger(log *zap.Logger) {
	if log == nil {
		log = zap.NewNop()
	}
	s.log = log.Named("stage")
}

// SetColorAnimation enables or disables color tweening. When disabled,
// sessions created afterwards treat color properties as scalars.
func (s *Stage) SetColorAnimation(enabled bool) {
	s.colorAnimation = enabled
}

// SetCursorSource sets the function polled for the pointer position on each
// Update when no synthetic moves are queued. nil disables polling.
func (s *Stage) SetCursorSource(fn func() (x, y float64)) {
	s.cursor = fn
}

// Add appends boxes to the stage in draw order.
func (s *Stage) Add(boxes ...*Box) {
	for _, b := range boxes {
		if b != nil && !b.IsDisposed() {
			s.boxes = append(s.boxes, b)
		}
	}
}

// Boxes returns the live boxes in draw order. The returned slice MUST NOT be mutated.
func (s *Stage) Boxes() []*Box {
	return s.boxes
}

// Box returns the first box with the given name.
func (s *Stage) Box(name string) (*Box, bool) {
	for _, b := range s.boxes {
		if b.Name == name {
			return b, true
		}
	}
	return nil, false
}

// Elements returns the live boxes as Elements, for passing to Approach.
func (s *Stage) Elements() []Element {
	els := make([]Element, len(s.boxes))
	for i, b := range s.boxes {
		els[i] = b
	}
	return els
}

// Update steps the attached script, processes input, then advances running
// tweens by dt seconds and drops disposed boxes and finished tweens.
func (s *Stage) Update(dt float32) {
	if s.script != nil {
		s.script.step(s)
	}
	s.processInput()

	for id, tw := range s.tweens {
		tw.Update(dt)
		if tw.Done {
			delete(s.tweens, id)
		}
	}

	live := s.boxes[:0]
	for _, b := range s.boxes {
		if !b.IsDisposed() {
			live = append(live, b)
			continue
		}
		delete(s.tweens, b.ID)
		s.log.Debug("Dropped disposed box", zap.Uint32("id", b.ID), zap.String("name", b.Name))
	}
	for i := len(live); i < len(s.boxes); i++ {
		s.boxes[i] = nil
	}
	s.boxes = live
}

// Animating reports whether a tween is running on box.
func (s *Stage) Animating(box *Box) bool {
	_, ok := s.tweens[box.ID]
	return ok
}

// --- Host ---

// Bounds implements Geometry.
func (s *Stage) Bounds(el Element) Rect {
	if b, ok := el.(*Box); ok {
		return b.Bounds()
	}
	return Rect{}
}

// ComputedStyle implements StyleSource. Unset properties report what a
// browser would compute for an unstyled element: the geometric size for
// width and height, 1 for opacity and fully transparent for colors.
func (s *Stage) ComputedStyle(el Element, property string) string {
	b, ok := el.(*Box)
	if !ok {
		return ""
	}
	if v, ok := b.Style(property); ok {
		return v
	}
	switch {
	case property == "width":
		return strconv.FormatFloat(b.Width, 'f', -1, 64) + "px"
	case property == "height":
		return strconv.FormatFloat(b.Height, 'f', -1, 64) + "px"
	case property == "opacity":
		return "1"
	case IsColorProperty(property):
		return "rgba(0, 0, 0, 0)"
	}
	return ""
}

// Animate implements Animator. A new tween replaces the box's running one
// and starts from the box's current values.
func (s *Stage) Animate(el Element, frame Frame, duration time.Duration) error {
	b, ok := el.(*Box)
	if !ok {
		return ErrUnknownElement
	}
	if b.IsDisposed() {
		return nil
	}
	tw := NewStyleTween(b, frame, float32(duration.Seconds()), func(property string) string {
		return s.ComputedStyle(b, property)
	}, s.colorAnimation)
	if tw.Done {
		delete(s.tweens, b.ID)
		return nil
	}
	s.tweens[b.ID] = tw
	return nil
}

// ColorAnimation implements Animator.
func (s *Stage) ColorAnimation() bool {
	return s.colorAnimation
}
