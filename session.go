package approach

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// --- Host services ---

// Element is an opaque handle to a host-owned visual element. The ID must be
// stable for the element's lifetime; sessions key their state by it.
type Element interface {
	ElementID() uint32
}

// Geometry reports element bounds in pointer coordinates.
type Geometry interface {
	Bounds(el Element) Rect
}

// StyleSource reports the current computed value of a property.
type StyleSource interface {
	ComputedStyle(el Element, property string) string
}

// Animator transitions an element toward a frame over duration.
// ColorAnimation reports whether color-valued properties can be animated.
type Animator interface {
	Animate(el Element, frame Frame, duration time.Duration) error
	ColorAnimation() bool
}

// Subscription is a registered listener that can be removed.
type Subscription interface {
	Remove()
}

// PointerSource delivers raw pointer movement in document coordinates.
type PointerSource interface {
	OnPointerMove(fn func(x, y float64)) Subscription
}

// Host bundles every service a Session calls.
type Host interface {
	Geometry
	StyleSource
	Animator
	PointerSource
}

// disposable is implemented by elements with their own lifecycle. Disposed
// elements are forgotten on the next processed sample.
type disposable interface {
	IsDisposed() bool
}

// --- Config ---

// Config controls a Session. Zero values select the defaults.
type Config struct {
	// Distance is the proximity threshold in pixels. Default DefaultDistance.
	Distance float64
	// Interval is the minimum time between processed samples. Zero selects
	// DefaultInterval unless Unthrottled is set.
	Interval time.Duration
	// Unthrottled processes every sample: Interval is forced to zero and
	// frames are dispatched with a zero duration.
	Unthrottled bool
	// OnReady is called once registration completes.
	OnReady func()
	// Logger receives debug output. Default zap.NewNop().
	Logger *zap.Logger
	// Clock returns the current time. Default time.Now.
	Clock func() time.Time
}

func (c Config) validate() (err error) {
	if c.Distance < 0 {
		err = multierr.Append(err, fmt.Errorf("distance must not be negative, got %v", c.Distance))
	}
	if c.Interval < 0 {
		err = multierr.Append(err, fmt.Errorf("interval must not be negative, got %v", c.Interval))
	}
	return err
}

func (c Config) withDefaults() Config {
	if c.Distance == 0 {
		c.Distance = DefaultDistance
	}
	switch {
	case c.Unthrottled:
		c.Interval = 0
	case c.Interval == 0:
		c.Interval = DefaultInterval
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
	if c.Clock == nil {
		c.Clock = time.Now
	}
	return c
}

// --- Session ---

type tracked struct {
	el    Element
	descs []StyleDescriptor
}

// Session is one registration: a batch of elements sharing a target style,
// threshold and sample interval. It is driven from the host's event loop and
// is not safe for concurrent use.
type Session struct {
	host     Host
	decls    []Declaration
	distance float64
	interval time.Duration
	clock    func() time.Time
	log      *zap.Logger

	order    []uint32
	elements map[uint32]*tracked

	lastSample time.Time
	sampled    bool
	sub        Subscription
}

// Approach registers elements for the proximity effect. Each element's
// descriptors are parsed once from its current computed style and the target
// declarations; unparseable properties are dropped. The session subscribes to
// the host's pointer moves and calls cfg.OnReady before returning.
func Approach(host Host, elements []Element, decls []Declaration, cfg Config) (*Session, error) {
	if host == nil {
		return nil, errors.New("approach: nil host")
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("approach: invalid config: %w", err)
	}
	cfg = cfg.withDefaults()

	s := &Session{
		host:     host,
		decls:    append([]Declaration(nil), decls...),
		distance: cfg.Distance,
		interval: cfg.Interval,
		clock:    cfg.Clock,
		log:      cfg.Logger.Named("approach"),
		elements: make(map[uint32]*tracked, len(elements)),
	}
	s.Register(elements...)
	s.sub = host.OnPointerMove(func(x, y float64) {
		if err := s.PointerMove(x, y); err != nil {
			s.log.Error("Pointer sample failed", zap.Error(err))
		}
	})

	s.log.Debug("Registered elements",
		zap.Int("elements", len(s.order)),
		zap.Int("properties", len(s.decls)),
		zap.Float64("distance", s.distance),
		zap.Duration("interval", s.interval))

	if cfg.OnReady != nil {
		cfg.OnReady()
	}
	return s, nil
}

// Register parses descriptors for the given elements. Elements already in
// the session have their descriptors replaced and keep their position.
func (s *Session) Register(elements ...Element) {
	colors := s.host.ColorAnimation()
	for _, el := range elements {
		if el == nil {
			continue
		}
		descs := ParseStyles(s.decls, func(property string) string {
			return s.host.ComputedStyle(el, property)
		}, colors, s.log)

		id := el.ElementID()
		if t, ok := s.elements[id]; ok {
			t.el = el
			t.descs = descs
			continue
		}
		s.elements[id] = &tracked{el: el, descs: descs}
		s.order = append(s.order, id)
	}
}

// Forget removes an element from the session.
func (s *Session) Forget(el Element) {
	s.forget(el.ElementID())
}

func (s *Session) forget(id uint32) {
	if _, ok := s.elements[id]; !ok {
		return
	}
	delete(s.elements, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Len returns the number of registered elements.
func (s *Session) Len() int {
	return len(s.order)
}

// Descriptors returns the descriptors parsed for el, or nil if el is not
// registered. The returned slice MUST NOT be mutated.
func (s *Session) Descriptors(el Element) []StyleDescriptor {
	if t, ok := s.elements[el.ElementID()]; ok {
		return t.descs
	}
	return nil
}

// Distance returns the proximity threshold in pixels.
func (s *Session) Distance() float64 {
	return s.distance
}

// Interval returns the minimum time between processed samples.
func (s *Session) Interval() time.Duration {
	return s.interval
}

// Frame computes el's frame for a pointer position without dispatching it.
func (s *Session) Frame(el Element, x, y float64) (Frame, bool) {
	t, ok := s.elements[el.ElementID()]
	if !ok {
		return nil, false
	}
	center := s.host.Bounds(t.el).Center()
	return ComputeFrame(Vec2{X: x, Y: y}, center, t.descs, s.distance), true
}

// PointerMove processes one raw pointer sample. Samples arriving sooner than
// the interval after the last processed one are discarded. Each registered
// element receives its frame with a duration of one millisecond less than the
// interval. The first animator error stops dispatch and is returned.
func (s *Session) PointerMove(x, y float64) error {
	now := s.clock()
	if s.sampled && now.Sub(s.lastSample) < s.interval {
		return nil
	}
	s.lastSample = now
	s.sampled = true

	duration := s.interval - time.Millisecond
	if duration < 0 {
		duration = 0
	}
	pointer := Vec2{X: x, Y: y}

	var gone []uint32
	defer func() {
		for _, id := range gone {
			s.forget(id)
		}
	}()

	for _, id := range s.order {
		t := s.elements[id]
		if d, ok := t.el.(disposable); ok && d.IsDisposed() {
			gone = append(gone, id)
			continue
		}
		center := s.host.Bounds(t.el).Center()
		frame := ComputeFrame(pointer, center, t.descs, s.distance)
		if err := s.host.Animate(t.el, frame, duration); err != nil {
			return fmt.Errorf("animate element %d: %w", id, err)
		}
	}
	return nil
}

// Close removes the pointer subscription. The session keeps its state and
// can still be driven through PointerMove directly.
func (s *Session) Close() {
	if s.sub != nil {
		s.sub.Remove()
		s.sub = nil
	}
}
