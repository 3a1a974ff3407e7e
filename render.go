package approach

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// whitePixel is a 1x1 white image scaled and tinted to fill box rectangles.
var whitePixel *ebiten.Image

func pixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(RGB{255, 255, 255}.Color())
	}
	return whitePixel
}

// Draw renders the stage: the clear color, then every visible box in order.
// A box is filled with its background-color and, when outline-color is set,
// framed by a one pixel outline. opacity scales both.
func (s *Stage) Draw(screen *ebiten.Image) {
	screen.Fill(s.ClearColor.Color())

	for _, b := range s.boxes {
		if !b.Visible || b.IsDisposed() {
			continue
		}
		r := b.Bounds()
		if r.Width <= 0 || r.Height <= 0 {
			continue
		}
		alpha := boxOpacity(b)
		if alpha <= 0 {
			continue
		}

		if v, ok := b.Style("background-color"); ok {
			if c, ok := ParseRGB(v); ok {
				fillRect(screen, r, c, alpha)
			}
		}
		if v, ok := b.Style("outline-color"); ok {
			if c, ok := ParseRGB(v); ok {
				fillRect(screen, Rect{X: r.X, Y: r.Y, Width: r.Width, Height: 1}, c, alpha)
				fillRect(screen, Rect{X: r.X, Y: r.Y + r.Height - 1, Width: r.Width, Height: 1}, c, alpha)
				fillRect(screen, Rect{X: r.X, Y: r.Y, Width: 1, Height: r.Height}, c, alpha)
				fillRect(screen, Rect{X: r.X + r.Width - 1, Y: r.Y, Width: 1, Height: r.Height}, c, alpha)
			}
		}
	}

	s.flushScreenshots(screen)
	s.drawDebug(screen)
}

func fillRect(dst *ebiten.Image, r Rect, c RGB, alpha float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(r.Width, r.Height)
	op.GeoM.Translate(r.X, r.Y)
	op.ColorScale.ScaleWithColor(c.Color())
	op.ColorScale.ScaleAlpha(float32(alpha))
	dst.DrawImage(pixel(), op)
}

// boxOpacity returns the box's opacity style clamped to [0, 1], or 1.
func boxOpacity(b *Box) float64 {
	v, ok := b.Style("opacity")
	if !ok {
		return 1
	}
	p, ok := parseScalar(v)
	if !ok {
		return 1
	}
	return min(max(p.number, 0), 1)
}
