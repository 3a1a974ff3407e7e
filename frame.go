package approach

import (
	"math"
	"strconv"
)

// Distance returns the Euclidean distance between the pointer and an element
// center, truncated toward zero to whole pixels.
func Distance(pointer, center Vec2) int {
	dx := pointer.X - center.X
	dy := pointer.Y - center.Y
	return int(math.Sqrt(dx*dx + dy*dy))
}

// Ratio is the proximity ratio for a distance: 1 at the center, 0 at the
// threshold. It is not clamped; callers treat distance > threshold as at rest.
func Ratio(distance int, threshold float64) float64 {
	return (threshold - float64(distance)) / threshold
}

// Rest returns the starting value, used while the pointer is out of range.
func (d StyleDescriptor) Rest() string {
	if d.Kind == KindColor {
		return d.FromRGB.String()
	}
	return formatScalar(d.From, d.Unit)
}

// Interpolate returns the value at the given proximity ratio. Color channels
// are truncated to integers.
func (d StyleDescriptor) Interpolate(ratio float64) string {
	if d.Kind == KindColor {
		var c RGB
		for i := range c {
			c[i] = math.Trunc(d.FromRGB[i] + ratio*(d.ToRGB[i]-d.FromRGB[i]))
		}
		return c.String()
	}
	return formatScalar(d.From+ratio*(d.To-d.From), d.Unit)
}

func formatScalar(v float64, unit string) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + unit
}

// ComputeFrame maps every descriptor to its value for one pointer sample.
// A distance strictly greater than threshold yields the resting values; a
// distance equal to it interpolates with ratio 0.
func ComputeFrame(pointer, center Vec2, descs []StyleDescriptor, threshold float64) Frame {
	distance := Distance(pointer, center)
	ratio := Ratio(distance, threshold)
	atRest := float64(distance) > threshold

	frame := make(Frame, len(descs))
	for _, d := range descs {
		if atRest {
			frame[d.Name] = d.Rest()
		} else {
			frame[d.Name] = d.Interpolate(ratio)
		}
	}
	return frame
}
