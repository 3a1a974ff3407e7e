package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"time"

	"go.uber.org/multierr"
	yaml "gopkg.in/yaml.v3"

	"github.com/phanxgames/approach"
)

//go:embed default.yaml
var defaultConfig []byte

type (
	BoxConfig struct {
		Name   string  `yaml:"name"`
		X      float64 `yaml:"x"`
		Y      float64 `yaml:"y"`
		Width  float64 `yaml:"width"`
		Height float64 `yaml:"height"`
		Style  string  `yaml:"style,omitempty"`
	}

	WindowConfig struct {
		Title  string `yaml:"title"`
		Width  int    `yaml:"width"`
		Height int    `yaml:"height"`
	}

	// TerminalConfig sets how many pixels one terminal cell stands for, so
	// the same scene and distance work in both hosts.
	TerminalConfig struct {
		CellWidth  float64 `yaml:"cell_width"`
		CellHeight float64 `yaml:"cell_height"`
	}

	Config struct {
		Version        int            `yaml:"version"`
		Distance       float64        `yaml:"distance"`
		Interval       time.Duration  `yaml:"interval"`
		ColorAnimation bool           `yaml:"color_animation"`
		Target         string         `yaml:"target"`
		Background     string         `yaml:"background"`
		Boxes          []BoxConfig    `yaml:"boxes"`
		Window         WindowConfig   `yaml:"window"`
		Terminal       TerminalConfig `yaml:"terminal"`
		Logging        LoggingConfig  `yaml:"logging"`
	}
)

func unmarshalConfig(data []byte, cfg *Config) (*Config, error) {
	// only fields we defined are accepted
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	return cfg, nil
}

// LoadConfiguration reads the configuration file at path, superimposing its
// values on the embedded defaults, and validates the result. An empty path
// returns the defaults.
func LoadConfiguration(path string) (*Config, error) {
	cfg, err := unmarshalConfig(defaultConfig, &Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to process default configuration: %w", err)
	}
	if len(path) > 0 {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if cfg, err = unmarshalConfig(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to process configuration file: %w", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Default returns the embedded default configuration as is.
func Default() []byte {
	return defaultConfig
}

// Dump returns the configuration as YAML.
func Dump(cfg *Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("failed to encode configuration: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode configuration: %w", err)
	}
	return buf.Bytes(), nil
}

// Validate reports every problem found, not just the first.
func (c *Config) Validate() (err error) {
	if c.Version != 1 {
		err = multierr.Append(err, fmt.Errorf("unsupported version %d", c.Version))
	}
	if c.Distance <= 0 {
		err = multierr.Append(err, fmt.Errorf("distance must be positive, got %v", c.Distance))
	}
	if c.Interval < 0 {
		err = multierr.Append(err, fmt.Errorf("interval must not be negative, got %v", c.Interval))
	}
	if _, er := approach.ParseDeclarations(c.Target); er != nil {
		err = multierr.Append(err, fmt.Errorf("target: %w", er))
	}
	if len(c.Background) > 0 {
		if _, ok := approach.ParseRGB(c.Background); !ok {
			err = multierr.Append(err, fmt.Errorf("background: unknown color %q", c.Background))
		}
	}
	for i, b := range c.Boxes {
		if b.Width < 0 || b.Height < 0 {
			err = multierr.Append(err, fmt.Errorf("boxes[%d] (%s): negative size", i, b.Name))
		}
		if _, er := approach.ParseDeclarations(b.Style); er != nil {
			err = multierr.Append(err, fmt.Errorf("boxes[%d] (%s) style: %w", i, b.Name, er))
		}
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		err = multierr.Append(err, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Terminal.CellWidth <= 0 || c.Terminal.CellHeight <= 0 {
		err = multierr.Append(err, fmt.Errorf("terminal cell size must be positive, got %vx%v", c.Terminal.CellWidth, c.Terminal.CellHeight))
	}
	switch c.Logging.Level {
	case "none", "normal", "debug":
	default:
		err = multierr.Append(err, fmt.Errorf("logging level must be one of none, normal, debug, got %q", c.Logging.Level))
	}
	return err
}

// Declarations parses the target declaration block.
func (c *Config) Declarations() ([]approach.Declaration, error) {
	return approach.ParseDeclarations(c.Target)
}

// Stage builds a stage holding the configured boxes with their initial styles.
func (c *Config) Stage() (*approach.Stage, error) {
	stage := approach.NewStage()
	stage.SetColorAnimation(c.ColorAnimation)
	if len(c.Background) > 0 {
		if bg, ok := approach.ParseRGB(c.Background); ok {
			stage.ClearColor = bg
		}
	}
	for _, bc := range c.Boxes {
		box := approach.NewBox(bc.Name, bc.X, bc.Y, bc.Width, bc.Height)
		decls, err := approach.ParseDeclarations(bc.Style)
		if err != nil {
			return nil, fmt.Errorf("box %s: %w", bc.Name, err)
		}
		box.SetStyles(decls)
		stage.Add(box)
	}
	return stage, nil
}

// Session registers every box on the stage for the configured effect.
func (c *Config) Session(stage *approach.Stage, cfg approach.Config) (*approach.Session, error) {
	decls, err := c.Declarations()
	if err != nil {
		return nil, err
	}
	cfg.Distance = c.Distance
	cfg.Interval = c.Interval
	// interval: 0 in the file turns throttling off
	cfg.Unthrottled = c.Interval == 0
	return approach.Approach(stage, stage.Elements(), decls, cfg)
}
