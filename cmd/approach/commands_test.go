package main

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/phanxgames/approach/internal/config"
)

func TestWriteFrames(t *testing.T) {
	cfg, err := config.LoadConfiguration("")
	if err != nil {
		t.Fatal(err)
	}
	e := &env{cfg: cfg, log: zap.NewNop()}
	stage, sess, err := prepare(e)
	if err != nil {
		t.Fatal(err)
	}
	defer sess.Close()

	// Pointer on the center of box "one" (80+30, 180+30).
	var buf bytes.Buffer
	if err := writeFrames(&buf, stage, sess, 110, 210); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("lines = %d, want 3:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "one (0px): ") {
		t.Errorf("line 0 = %q", lines[0])
	}
	if !strings.Contains(lines[0], "width: 120px") || !strings.Contains(lines[0], "background-color: rgb(255,215,0)") {
		t.Errorf("box at the pointer should reach the target: %q", lines[0])
	}
	// "three" is 420px away: at rest.
	if !strings.Contains(lines[2], "width: 60px") {
		t.Errorf("distant box should rest: %q", lines[2])
	}
}
