package approach

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// SetDebug toggles the overlay drawn in the top-left corner: frame rates,
// the pointer position and how many boxes are tweening.
func (s *Stage) SetDebug(enabled bool) {
	s.debug = enabled
}

// debugText formats the overlay contents.
func (s *Stage) debugText(fps, tps float64) string {
	pointer := "-"
	if s.hasPointer {
		pointer = fmt.Sprintf("%.0f,%.0f", s.pointer.X, s.pointer.Y)
	}
	return fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nPointer: %s\nBoxes: %d (%d tweening)",
		fps, tps, pointer, len(s.boxes), len(s.tweens))
}

func (s *Stage) drawDebug(screen *ebiten.Image) {
	if !s.debug {
		return
	}
	ebitenutil.DebugPrint(screen, s.debugText(ebiten.ActualFPS(), ebiten.ActualTPS()))
}
