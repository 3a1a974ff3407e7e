// Package term hosts a Stage in a terminal. Every cell stands for a fixed
// block of pixels, so scenes and distances configured for the window host
// keep their proportions.
package term

import (
	"context"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/phanxgames/approach"
)

const tickInterval = 16 * time.Millisecond // ~60 FPS

// Host drives a Stage from tcell events.
type Host struct {
	screen     tcell.Screen
	stage      *approach.Stage
	cellW      float64
	cellH      float64
	log        *zap.Logger
	background tcell.Color
}

// New wraps an initialized screen. cellW and cellH are the pixel size of one
// cell and must be positive.
func New(screen tcell.Screen, stage *approach.Stage, cellW, cellH float64, log *zap.Logger) *Host {
	if log == nil {
		log = zap.NewNop()
	}
	return &Host{
		screen:     screen,
		stage:      stage,
		cellW:      cellW,
		cellH:      cellH,
		log:        log.Named("term"),
		background: rgbColor(stage.ClearColor),
	}
}

// Open creates and initializes a terminal screen with mouse motion reporting.
func Open() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()
	return screen, nil
}

// CellCenter converts a cell position to the pixel at the cell's center.
func (h *Host) CellCenter(cx, cy int) (x, y float64) {
	return (float64(cx) + 0.5) * h.cellW, (float64(cy) + 0.5) * h.cellH
}

// cellRect converts a pixel rectangle to the cells it covers.
func (h *Host) cellRect(r approach.Rect) (x0, y0, x1, y1 int) {
	x0 = int(math.Floor(r.X / h.cellW))
	y0 = int(math.Floor(r.Y / h.cellH))
	x1 = int(math.Ceil((r.X + r.Width) / h.cellW))
	y1 = int(math.Ceil((r.Y + r.Height) / h.cellH))
	return x0, y0, x1, y1
}

// Run processes events until ctx is done or the user quits with Esc, q or
// Ctrl-C. The screen is finalized on return.
func (h *Host) Run(ctx context.Context) error {
	defer h.screen.Fini()

	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)
	events := pollEvents(h.screen, done)

	h.log.Debug("Terminal host started", zap.Float64("cell_width", h.cellW), zap.Float64("cell_height", h.cellH))

	dt := float32(tickInterval.Seconds())
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !h.handleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			h.stage.Update(dt)
			h.draw()
		}
	}
}

// pollEvents forwards screen events until the screen is finalized or done
// is closed. The returned channel is closed when forwarding stops.
func pollEvents(screen tcell.Screen, done <-chan struct{}) <-chan tcell.Event {
	events := make(chan tcell.Event, 100)
	go func() {
		defer close(events)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				// screen finalized
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()
	return events
}

// handleEvent returns false when the host should stop.
func (h *Host) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}
	case *tcell.EventMouse:
		cx, cy := ev.Position()
		h.stage.PointerMove(h.CellCenter(cx, cy))
	case *tcell.EventResize:
		h.screen.Sync()
	}
	return true
}

func (h *Host) draw() {
	h.screen.Fill(' ', tcell.StyleDefault.Background(h.background))
	for _, b := range h.stage.Boxes() {
		if !b.Visible {
			continue
		}
		bg, ok := boxColor(b, "background-color")
		if !ok {
			continue
		}
		style := tcell.StyleDefault.Background(bg)
		x0, y0, x1, y1 := h.cellRect(b.Bounds())
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				h.screen.SetContent(x, y, ' ', nil, style)
			}
		}
	}
	h.screen.Show()
}

func boxColor(b *approach.Box, property string) (tcell.Color, bool) {
	v, ok := b.Style(property)
	if !ok {
		return tcell.ColorDefault, false
	}
	c, ok := approach.ParseRGB(v)
	if !ok {
		return tcell.ColorDefault, false
	}
	return rgbColor(c), true
}

func rgbColor(c approach.RGB) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
