package approach

import (
	"math"
	"sort"
	"strconv"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// tweenProp drives one property: one tween for a scalar, three for a color.
type tweenProp struct {
	name   string
	kind   Kind
	unit   string
	tweens [3]*gween.Tween
}

// StyleTween animates a set of style properties on a Box toward a Frame.
// Values are linear in time and written back to the box's inline style on
// every Update. If the box is disposed, the tween stops immediately.
//
// There is no global animation manager; the Stage owns one tween per box.
type StyleTween struct {
	target *Box
	props  []tweenProp
	Done   bool
}

// NewStyleTween starts a tween from the box's current values (as reported by
// current) toward frame over duration seconds. Properties whose endpoints do
// not parse as numbers or colors jump to the target value. A non-positive
// duration applies the whole frame at once.
func NewStyleTween(box *Box, frame Frame, duration float32, current func(property string) string, colorAnimation bool) *StyleTween {
	g := &StyleTween{target: box}

	names := make([]string, 0, len(frame))
	for name := range frame {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		to := frame[name]
		if duration <= 0 {
			box.SetStyle(name, to)
			continue
		}
		from := current(name)

		if colorAnimation && IsColorProperty(name) {
			fc, okFrom := ParseRGB(from)
			tc, okTo := ParseRGB(to)
			if okFrom && okTo {
				p := tweenProp{name: name, kind: KindColor}
				for i := range p.tweens {
					p.tweens[i] = gween.New(float32(fc[i]), float32(tc[i]), duration, ease.Linear)
				}
				g.props = append(g.props, p)
				continue
			}
		}

		fs, okFrom := parseScalar(from)
		ts, okTo := parseScalar(to)
		if !okFrom || !okTo || ts.relative != "" {
			box.SetStyle(name, to)
			continue
		}
		unit := ts.unit
		if unit == "" {
			unit = fs.unit
		}
		p := tweenProp{name: name, kind: KindScalar, unit: unit}
		p.tweens[0] = gween.New(float32(fs.number), float32(ts.number), duration, ease.Linear)
		g.props = append(g.props, p)
	}

	g.Done = len(g.props) == 0
	return g
}

// Update advances all tweens by dt seconds and writes the values to the
// target box. If the box has been disposed, Done is set and nothing is
// written.
func (g *StyleTween) Update(dt float32) {
	if g.Done {
		return
	}
	if g.target.IsDisposed() {
		g.Done = true
		return
	}

	allDone := true
	for i := range g.props {
		p := &g.props[i]
		if p.kind == KindColor {
			var c RGB
			for k, tw := range p.tweens {
				v, finished := tw.Update(dt)
				c[k] = math.Trunc(float64(v))
				if !finished {
					allDone = false
				}
			}
			g.target.SetStyle(p.name, c.String())
			continue
		}
		v, finished := p.tweens[0].Update(dt)
		if !finished {
			allDone = false
		}
		g.target.SetStyle(p.name, strconv.FormatFloat(float64(v), 'f', -1, 32)+p.unit)
	}
	g.Done = allDone
}
