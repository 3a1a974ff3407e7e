package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/phanxgames/approach"
)

func TestLoadConfigurationNoFile(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() with empty path error = %v", err)
	}
	if cfg.Distance != approach.DefaultDistance {
		t.Errorf("Distance = %v, want %v", cfg.Distance, approach.DefaultDistance)
	}
	if cfg.Interval != 50*time.Millisecond {
		t.Errorf("Interval = %v, want 50ms", cfg.Interval)
	}
	if len(cfg.Boxes) != 3 {
		t.Errorf("Boxes = %d, want 3", len(cfg.Boxes))
	}
}

func TestLoadConfigurationWithFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "approach.yaml")
	content := `distance: 250
interval: 20ms
target: "left: +=10px"
boxes:
  - name: solo
    x: 10
    y: 20
    width: 30
    height: 40
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	if cfg.Distance != 250 || cfg.Interval != 20*time.Millisecond {
		t.Errorf("got distance=%v interval=%v", cfg.Distance, cfg.Interval)
	}
	if len(cfg.Boxes) != 1 || cfg.Boxes[0].Name != "solo" {
		t.Errorf("Boxes = %+v, want only solo", cfg.Boxes)
	}
	// untouched sections keep their defaults
	if cfg.Window.Width != 640 {
		t.Errorf("Window.Width = %d, want default 640", cfg.Window.Width)
	}
}

func TestLoadConfigurationUnknownField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "approach.yaml")
	if err := os.WriteFile(path, []byte("speed: 3\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfiguration(path); err == nil {
		t.Error("expected error for unknown field")
	}
}

func TestLoadConfigurationMissingFile(t *testing.T) {
	if _, err := LoadConfiguration(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatal(err)
	}
	cfg.Distance = 0
	cfg.Interval = -time.Second
	cfg.Background = "notacolor"
	cfg.Logging.Level = "loud"

	err = cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	msg := err.Error()
	for _, want := range []string{"distance", "interval", "background", "logging level"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error %q does not mention %q", msg, want)
		}
	}
}

func TestConfigStageAndSession(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatal(err)
	}
	stage, err := cfg.Stage()
	if err != nil {
		t.Fatal(err)
	}
	if len(stage.Boxes()) != len(cfg.Boxes) {
		t.Fatalf("stage boxes = %d, want %d", len(stage.Boxes()), len(cfg.Boxes))
	}
	one, ok := stage.Box("one")
	if !ok {
		t.Fatal("box one missing")
	}
	if v, _ := one.Style("background-color"); v != "navy" {
		t.Errorf("background-color = %q, want navy", v)
	}

	sess, err := cfg.Session(stage, approach.Config{})
	if err != nil {
		t.Fatal(err)
	}
	defer sess.Close()
	if sess.Len() != len(cfg.Boxes) {
		t.Errorf("session elements = %d, want %d", sess.Len(), len(cfg.Boxes))
	}
	if got := len(sess.Descriptors(one)); got != 5 {
		t.Errorf("descriptors = %d, want 5", got)
	}
}

func TestConfigSessionZeroIntervalUnthrottled(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatal(err)
	}
	cfg.Interval = 0
	stage, err := cfg.Stage()
	if err != nil {
		t.Fatal(err)
	}
	sess, err := cfg.Session(stage, approach.Config{})
	if err != nil {
		t.Fatal(err)
	}
	defer sess.Close()
	if sess.Interval() != 0 {
		t.Errorf("Interval = %v, want 0 (throttling off)", sess.Interval())
	}
}

func TestDumpRoundTrips(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatal(err)
	}
	data, err := Dump(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "interval: 50ms") {
		t.Errorf("dump does not contain interval as duration:\n%s", data)
	}
}

func TestLoggerPrepare(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "approach.log")
	conf := LoggingConfig{Level: "debug", Destination: dest}
	log, err := conf.Prepare(false)
	if err != nil {
		t.Fatal(err)
	}
	log.Debug("hello")
	_ = log.Sync()

	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Errorf("log file = %q, want it to contain hello", data)
	}

	conf = LoggingConfig{Level: "none"}
	if log, err = conf.Prepare(true); err != nil || log == nil {
		t.Errorf("Prepare(none) = %v, %v", log, err)
	}
}
