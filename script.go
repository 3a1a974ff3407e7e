package approach

import (
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
)

// scriptStep is one action of a pointer script.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

type scriptFile struct {
	Steps []scriptStep `json:"steps"`
}

// Script replays pointer moves, waits and screenshots across frames. Attach
// it to a Stage with SetScript.
//
// Actions:
//
//	{"action": "move", "x": 100, "y": 200}
//	{"action": "path", "fromX": 0, "fromY": 0, "toX": 300, "toY": 0, "frames": 30}
//	{"action": "wait", "frames": 10}
//	{"action": "screenshot", "label": "near"}
type Script struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON pointer script.
func LoadScript(data []byte) (*Script, error) {
	var f scriptFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(f.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range f.Steps {
		switch st.Action {
		case "move", "path", "wait", "screenshot":
		default:
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Script{steps: f.Steps}, nil
}

// SetScript attaches a script to the stage. It advances from Update, ahead
// of input processing. nil detaches the current one.
func (s *Stage) SetScript(script *Script) {
	s.script = script
}

// Done reports whether every step has run and its moves were consumed.
func (r *Script) Done() bool {
	return r.done
}

// step advances the script by one frame.
func (r *Script) step(s *Stage) {
	if r.done {
		return
	}
	// Queued moves drain first.
	if len(s.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++
	s.log.Debug("Script step", zap.Int("step", r.cursor), zap.String("action", st.Action))

	switch st.Action {
	case "move":
		s.InjectMove(st.X, st.Y)
	case "path":
		s.InjectPath(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "screenshot":
		s.Screenshot(st.Label)
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(s.injectQueue) == 0 {
		r.done = true
	}
}
