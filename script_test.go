package strata

import "testing"

func TestLoadScrollScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "set", "offset": 100},
			{"action": "wait", "frames": 3},
			{"action": "by", "delta": -40},
			{"action": "notify"}
		]
	}`)

	script, err := LoadScrollScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(script.steps) != 4 {
		t.Fatalf("expected 4 steps, got %d", len(script.steps))
	}
	if script.steps[0].Action != "set" || script.steps[0].Offset != 100 {
		t.Error("step 0 mismatch")
	}
	if script.steps[1].Action != "wait" || script.steps[1].Frames != 3 {
		t.Error("step 1 mismatch")
	}
	if script.steps[2].Action != "by" || script.steps[2].Delta != -40 {
		t.Error("step 2 mismatch")
	}
}

func TestLoadScrollScript_Invalid(t *testing.T) {
	_, err := LoadScrollScript([]byte(`not json`))
	if err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestLoadScrollScript_Empty(t *testing.T) {
	_, err := LoadScrollScript([]byte(`{"steps": []}`))
	if err == nil {
		t.Error("expected error for empty steps")
	}
}

func TestScrollScriptStep(t *testing.T) {
	data := []byte(`{"steps": [
		{"action": "set", "offset": 100},
		{"action": "wait", "frames": 2},
		{"action": "by", "delta": 50}
	]}`)
	script, err := LoadScrollScript(data)
	if err != nil {
		t.Fatal(err)
	}
	src := NewManualSource()

	// Frame 1: set.
	script.Step(src)
	if src.Offset() != 100 {
		t.Errorf("after frame 1: Offset() = %v, want 100", src.Offset())
	}
	// Frames 2–3: wait (2 frames, the wait step itself counts as one).
	script.Step(src)
	script.Step(src)
	if src.Offset() != 100 {
		t.Errorf("offset moved during wait: %v", src.Offset())
	}
	if script.Done() {
		t.Error("script done before final step")
	}
	// Frame 4: by.
	script.Step(src)
	if src.Offset() != 150 {
		t.Errorf("after frame 4: Offset() = %v, want 150", src.Offset())
	}
	if !script.Done() {
		t.Error("script should be done after the last step")
	}
	if script.Step(src) {
		t.Error("Step on a done script returned true")
	}
}

func TestScrollScriptPlayDrivesTimeline(t *testing.T) {
	data := []byte(`{"steps": [
		{"action": "set", "offset": 10},
		{"action": "by", "delta": 490},
		{"action": "notify"}
	]}`)
	script, err := LoadScrollScript(data)
	if err != nil {
		t.Fatal(err)
	}

	var calls []call
	src := NewManualSource()
	NewTimeline(src, []Section{
		{MountPoint: 0, Duration: 500, Controller: recorder(&calls)},
	})

	script.Play(src)

	want := []call{{10, 500}, {500, 500}, {500, 500}}
	if len(calls) != len(want) {
		t.Fatalf("got %d dispatches, want %d", len(calls), len(want))
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Errorf("dispatch %d = %v, want %v", i, calls[i], want[i])
		}
	}
}
