package approach

import "time"

// DefaultDistance is the threshold, in pixels, used when Config.Distance is zero.
// Beyond it an element shows its starting style values.
const DefaultDistance = 400.0

// DefaultInterval is the minimum time between processed pointer samples when
// Config.Interval is zero.
const DefaultInterval = 50 * time.Millisecond

// Vec2 is a 2D vector used for pointer positions and element centers.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Kind tags a StyleDescriptor as numeric or color valued.
type Kind uint8

const (
	KindScalar Kind = iota // number with an optional unit suffix
	KindColor              // RGB triple
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindColor:
		return "color"
	default:
		return "unknown"
	}
}

// Declaration is one property of a target style map. Value is usually a
// string ("50px", "+=5px", "#f00") but may also be an RGB or a three element
// numeric slice for color properties.
type Declaration struct {
	Property string
	Value    any
}

// Frame maps property names to rendered values for one pointer sample.
type Frame map[string]string
