package approach

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title         string
	Width, Height int
	// OnUpdate, if set, runs once per tick after the stage updates. A
	// non-nil error ends the game loop and is returned by Run.
	OnUpdate func() error
}

// ErrQuit can be returned from RunConfig.OnUpdate to close the window
// without Run reporting an error.
var ErrQuit = errors.New("approach: quit")

// game adapts a Stage to ebiten.Game.
type game struct {
	stage *Stage
	cfg   RunConfig
}

func (g *game) Update() error {
	g.stage.Update(float32(1.0 / float64(ebiten.TPS())))
	if g.cfg.OnUpdate != nil {
		return g.cfg.OnUpdate()
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.stage.Draw(screen)
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// Run opens a window and drives the stage from the Ebitengine loop, polling
// the mouse cursor into Stage.PointerMove every tick. It blocks until the
// window closes.
func Run(stage *Stage, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return errors.New("approach: window size must be positive")
	}
	stage.SetCursorSource(func() (float64, float64) {
		x, y := ebiten.CursorPosition()
		return float64(x), float64(y)
	})

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	err := ebiten.RunGame(&game{stage: stage, cfg: cfg})
	if errors.Is(err, ErrQuit) {
		return nil
	}
	return err
}
