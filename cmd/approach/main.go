package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/phanxgames/approach/internal/config"
)

const appName = "approach"

// version is set by the linker.
var version = "dev"

type envKey struct{}

// env carries state prepared before any command runs.
type env struct {
	cfg *config.Config
	log *zap.Logger
}

func envFromContext(ctx context.Context) *env {
	if e, ok := ctx.Value(envKey{}).(*env); ok {
		return e
	}
	return &env{log: zap.NewNop()}
}

// initializeAppContext loads configuration and prepares logging after the
// command line has been parsed.
func initializeAppContext(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	e := envFromContext(ctx)

	configFile := cmd.String("config")
	cfg, err := config.LoadConfiguration(configFile)
	if err != nil {
		return ctx, fmt.Errorf("unable to prepare configuration: %w", err)
	}
	if cmd.Bool("debug") {
		cfg.Logging.Level = "debug"
	}
	e.cfg = cfg

	// the terminal host owns the screen, console logging would corrupt it
	console := cmd.Args().First() != "term"
	if e.log, err = cfg.Logging.Prepare(console); err != nil {
		return ctx, fmt.Errorf("unable to prepare logs: %w", err)
	}

	e.log.Debug("Program started", zap.Strings("args", os.Args), zap.String("ver", version), zap.String("runtime", runtime.Version()))
	if len(configFile) == 0 {
		e.log.Debug("Using defaults (no configuration file)")
	}
	return ctx, nil
}

func destroyAppContext(ctx context.Context, _ *cli.Command) error {
	e := envFromContext(ctx)
	if e.log != nil {
		e.log.Debug("Program ended")
		_ = e.log.Sync()
	}
	return nil
}

func exitErrHandler(ctx context.Context, _ *cli.Command, err error) {
	if e := envFromContext(ctx); e.log != nil {
		e.log.Error("Program ended with error", zap.Error(err))
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.WithValue(context.Background(), envKey{}, &env{log: zap.NewNop()}), os.Interrupt, syscall.SIGTERM)

	app := &cli.Command{
		Name:            appName,
		Usage:           "animates boxes by pointer proximity",
		Version:         version + " (" + runtime.Version() + ")",
		HideHelpCommand: true,
		Before:          initializeAppContext,
		After:           destroyAppContext,
		ExitErrHandler:  exitErrHandler,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "load configuration from `FILE` (YAML)"},
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "log at debug level"},
		},
		Commands: []*cli.Command{
			{
				Name:  "window",
				Usage: "Opens a window and animates the configured boxes",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "script", Usage: "replay pointer moves from `FILE` (JSON)"},
					&cli.StringFlag{Name: "screenshots", Value: "screenshots", Usage: "write script screenshots to `DIR`"},
					&cli.BoolFlag{Name: "exit", Usage: "close the window when the script is done"},
					&cli.BoolFlag{Name: "overlay", Usage: "show frame rate and pointer overlay"},
				},
				Action: runWindow,
			},
			{
				Name:   "term",
				Usage:  "Animates the configured boxes in the terminal (Esc or q to quit)",
				Action: runTerm,
			},
			{
				Name:  "frame",
				Usage: "Prints the frame every box would receive for one pointer position",
				Flags: []cli.Flag{
					&cli.FloatFlag{Name: "x", Usage: "pointer `X` in pixels"},
					&cli.FloatFlag{Name: "y", Usage: "pointer `Y` in pixels"},
				},
				Action: printFrame,
			},
			{
				Name:  "dumpconfig",
				Usage: "Dumps either default or actual configuration (YAML)",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "default", Usage: "output default embedded configuration"},
				},
				ArgsUsage: "DESTINATION",
				Action:    outputConfiguration,
			},
		},
	}

	err := app.Run(ctx, os.Args)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		os.Exit(1)
	}
}
