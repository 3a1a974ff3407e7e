package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/phanxgames/approach"
	"github.com/phanxgames/approach/internal/config"
	"github.com/phanxgames/approach/internal/term"
)

// prepare builds the stage and registers its boxes for the configured effect.
func prepare(e *env) (*approach.Stage, *approach.Session, error) {
	stage, err := e.cfg.Stage()
	if err != nil {
		return nil, nil, fmt.Errorf("unable to build stage: %w", err)
	}
	stage.SetLogger(e.log)

	sess, err := e.cfg.Session(stage, approach.Config{
		Logger: e.log,
		OnReady: func() {
			e.log.Info("Boxes registered", zap.Int("boxes", len(stage.Boxes())), zap.Float64("distance", e.cfg.Distance))
		},
	})
	if err != nil {
		return nil, nil, fmt.Errorf("unable to register boxes: %w", err)
	}
	return stage, sess, nil
}

func runWindow(ctx context.Context, cmd *cli.Command) error {
	e := envFromContext(ctx)
	stage, sess, err := prepare(e)
	if err != nil {
		return err
	}
	defer sess.Close()

	stage.SetDebug(cmd.Bool("overlay"))
	stage.ScreenshotDir = cmd.String("screenshots")

	var (
		script   *approach.Script
		finished bool
	)
	if fname := cmd.String("script"); len(fname) > 0 {
		data, err := os.ReadFile(fname)
		if err != nil {
			return fmt.Errorf("unable to read script: %w", err)
		}
		if script, err = approach.LoadScript(data); err != nil {
			return err
		}
		stage.SetScript(script)
		e.log.Debug("Script loaded", zap.String("file", fname))
	}

	return approach.Run(stage, approach.RunConfig{
		Title:  e.cfg.Window.Title,
		Width:  e.cfg.Window.Width,
		Height: e.cfg.Window.Height,
		OnUpdate: func() error {
			if ctx.Err() != nil {
				return approach.ErrQuit
			}
			if script == nil || !script.Done() || !cmd.Bool("exit") {
				return nil
			}
			// one more frame is drawn so a final screenshot is flushed
			if finished {
				return approach.ErrQuit
			}
			finished = true
			return nil
		},
	})
}

func runTerm(ctx context.Context, _ *cli.Command) error {
	e := envFromContext(ctx)
	stage, sess, err := prepare(e)
	if err != nil {
		return err
	}
	defer sess.Close()

	screen, err := term.Open()
	if err != nil {
		return fmt.Errorf("unable to open terminal: %w", err)
	}
	return term.New(screen, stage, e.cfg.Terminal.CellWidth, e.cfg.Terminal.CellHeight, e.log).Run(ctx)
}

func printFrame(ctx context.Context, cmd *cli.Command) error {
	e := envFromContext(ctx)
	stage, sess, err := prepare(e)
	if err != nil {
		return err
	}
	defer sess.Close()

	return writeFrames(os.Stdout, stage, sess, cmd.Float("x"), cmd.Float("y"))
}

// writeFrames prints one line per box: its name, distance from the pointer
// and the frame with properties sorted by name.
func writeFrames(w io.Writer, stage *approach.Stage, sess *approach.Session, x, y float64) error {
	for _, b := range stage.Boxes() {
		frame, ok := sess.Frame(b, x, y)
		if !ok {
			continue
		}
		names := make([]string, 0, len(frame))
		for name := range frame {
			names = append(names, name)
		}
		sort.Strings(names)

		parts := make([]string, len(names))
		for i, name := range names {
			parts[i] = name + ": " + frame[name]
		}
		d := approach.Distance(approach.Vec2{X: x, Y: y}, b.Bounds().Center())
		if _, err := fmt.Fprintf(w, "%s (%dpx): %s\n", b.Name, d, strings.Join(parts, "; ")); err != nil {
			return err
		}
	}
	return nil
}

func outputConfiguration(ctx context.Context, cmd *cli.Command) error {
	e := envFromContext(ctx)

	var (
		data []byte
		err  error
	)
	if cmd.Bool("default") {
		data = config.Default()
	} else if data, err = config.Dump(e.cfg); err != nil {
		return err
	}

	fname := cmd.Args().Get(0)
	if len(fname) == 0 {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(fname, data, 0644); err != nil {
		return fmt.Errorf("unable to write configuration to %s: %w", fname, err)
	}
	e.log.Info("Configuration written", zap.String("file", fname))
	return nil
}
