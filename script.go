package spindle

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// scriptStep is a single action in an input script.
type scriptStep struct {
	Action string `yaml:"action"`
	Key    string `yaml:"key,omitempty"`
	Frames int    `yaml:"frames,omitempty"`
}

// script is the top-level structure of an input script. Scripts are YAML;
// JSON scripts parse as well.
type script struct {
	Steps []scriptStep `yaml:"steps"`
}

// ScriptRunner sequences injected key events across ticks for automated
// testing. Attach it to a Kernel with SetScript.
//
// Actions: press, release and tap take a key; wait takes frames; exit calls
// Kernel.Exit.
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses an input script and returns a runner ready to attach.
func LoadScript(data []byte) (*ScriptRunner, error) {
	var s script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range s.Steps {
		switch st.Action {
		case "press", "release", "tap":
			if st.Key == "" {
				return nil, fmt.Errorf("parse script: step %d: %s needs a key", i, st.Action)
			}
		case "wait", "exit":
		default:
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: s.Steps}, nil
}

// SetScript attaches a runner. Its step method runs at the start of every
// tick, before injected input is applied. Pass nil to detach.
func (k *Kernel) SetScript(r *ScriptRunner) {
	k.script = r
}

// Done reports whether every step has been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step advances the runner by one tick.
func (r *ScriptRunner) step(k *Kernel) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(k.injectQueue) > 0 {
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

	switch st.Action {
	case "press":
		k.InjectKeyDown(st.Key)
	case "release":
		k.InjectKeyUp(st.Key)
	case "tap":
		k.InjectTap(st.Key)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this tick counts as one
		}
	case "exit":
		k.Exit()
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(k.injectQueue) == 0 {
		r.done = true
	}
}
