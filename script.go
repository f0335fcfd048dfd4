package strata

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in a scroll script.
type scriptStep struct {
	Action string  `json:"action"`
	Offset float64 `json:"offset,omitempty"`
	Delta  float64 `json:"delta,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// scrollScriptFile is the top-level JSON structure for a scroll script.
type scrollScriptFile struct {
	Steps []scriptStep `json:"steps"`
}

// ScrollScript replays a scripted sequence of scroll movements through a
// ManualSource, one step per frame, for deterministic timeline testing and
// demo capture. Actions:
//
//	{"action": "set", "offset": 1200}  jump to an absolute offset
//	{"action": "by", "delta": -40}     move by a relative delta
//	{"action": "notify"}               fire subscribers without moving
//	{"action": "wait", "frames": 3}    idle for a number of frames
type ScrollScript struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScrollScript parses a JSON scroll script.
func LoadScrollScript(jsonData []byte) (*ScrollScript, error) {
	var file scrollScriptFile
	if err := json.Unmarshal(jsonData, &file); err != nil {
		return nil, fmt.Errorf("parse scroll script: %w", err)
	}
	if len(file.Steps) == 0 {
		return nil, fmt.Errorf("parse scroll script: no steps")
	}
	return &ScrollScript{steps: file.Steps}, nil
}

// Done reports whether all steps have been executed.
func (s *ScrollScript) Done() bool {
	return s.done
}

// Step advances the script by one frame, driving src. Returns false once the
// script is done.
func (s *ScrollScript) Step(src *ManualSource) bool {
	if s.done {
		return false
	}
	if s.waitCount > 0 {
		s.waitCount--
		return true
	}
	if s.cursor >= len(s.steps) {
		s.done = true
		return false
	}

	st := s.steps[s.cursor]
	s.cursor++

	switch st.Action {
	case "set":
		src.SetOffset(st.Offset)
	case "by":
		src.ScrollBy(st.Delta)
	case "notify":
		src.Notify()
	case "wait":
		if st.Frames > 0 {
			s.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if s.cursor >= len(s.steps) && s.waitCount == 0 {
		s.done = true
	}
	return true
}

// Play runs the whole script against src in a single call, one Step per
// scripted frame. Convenience for tests that don't need frame interleaving.
func (s *ScrollScript) Play(src *ManualSource) {
	for s.Step(src) {
	}
}
