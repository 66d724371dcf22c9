package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gonewx/actionkit/pkg/actions"
	"github.com/gonewx/actionkit/pkg/components"
	"github.com/gonewx/actionkit/pkg/types"
)

const sampleLibrary = `
scripts:
  - name: bounce
    description: 上移后弹回
    action:
      type: sequence
      children:
        - type: move_by
          y: -40
          duration: 0.5
        - type: ease
          ease: out_bounce
          child:
            type: move_by
            y: 40
            duration: 0.5
        - type: call
          callback: landed
  - name: pulse
    action:
      type: repeat
      times: 2
      child:
        type: spawn
        children:
          - type: scale_by
            factor: 2
            duration: 0.5
          - type: fade_to
            opacity: 0.5
            duration: 0.5
  - name: spin_back
    action:
      type: reverse
      child:
        type: speed
        factor: 2
        child:
          type: rotate_by
          angle: 90
          duration: 1
`

func runSpec(t *testing.T, a actions.Action, node *components.NodeComponent, dt float64) {
	t.Helper()
	run := a.Clone()
	if err := run.Start(node); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	for i := 0; i < 1000 && !run.Done(); i++ {
		run.Step(dt)
	}
	if !run.Done() {
		t.Fatal("action did not finish")
	}
	run.Stop()
}

func TestParseActionLibrary(t *testing.T) {
	lib, err := ParseActionLibrary([]byte(sampleLibrary))
	if err != nil {
		t.Fatalf("ParseActionLibrary failed: %v", err)
	}

	if diff := cmp.Diff([]string{"bounce", "pulse", "spin_back"}, lib.Names()); diff != "" {
		t.Errorf("script names mismatch (-want +got):\n%s", diff)
	}

	script, ok := lib.Script("bounce")
	if !ok {
		t.Fatal("bounce not found")
	}
	if script.Description != "上移后弹回" {
		t.Errorf("Expected description, got %q", script.Description)
	}
	if len(script.Action.Children) != 3 || script.Action.Children[1].Child == nil {
		t.Fatalf("Unexpected bounce tree: %+v", script.Action)
	}
}

func TestBuildRunsScript(t *testing.T) {
	lib, err := ParseActionLibrary([]byte(sampleLibrary))
	if err != nil {
		t.Fatalf("ParseActionLibrary failed: %v", err)
	}

	landed := 0
	a, err := lib.Build("bounce", map[string]func(){"landed": func() { landed++ }})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	node := components.NewNodeComponent("n", types.V(10, 100))
	runSpec(t, a, node, 0.1)

	if !node.Pos.ApproxEqual(types.V(10, 100), 1e-6) {
		t.Errorf("Expected to land at (10, 100), got %v", node.Pos)
	}
	if landed != 1 {
		t.Errorf("Expected callback once, got %d", landed)
	}
}

func TestBuildRepeatSpawn(t *testing.T) {
	lib, _ := ParseActionLibrary([]byte(sampleLibrary))
	a, err := lib.Build("pulse", nil)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	node := components.NewNodeComponent("n", types.V(0, 0))
	runSpec(t, a, node, 0.25)

	// 两轮 ×2 缩放
	if !node.Scaling.ApproxEqual(types.V(4, 4), 1e-6) {
		t.Errorf("Expected scale (4, 4), got %v", node.Scaling)
	}
	if math.Abs(node.Alpha-0.5) > 1e-6 {
		t.Errorf("Expected alpha 0.5, got %f", node.Alpha)
	}
}

func TestBuildReverse(t *testing.T) {
	lib, _ := ParseActionLibrary([]byte(sampleLibrary))
	a, err := lib.Build("spin_back", nil)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	speed, ok := a.(*actions.Speed)
	if !ok {
		t.Fatalf("Expected *actions.Speed, got %T", a)
	}
	if speed.Duration() != 0.5 {
		t.Errorf("Expected duration 0.5, got %f", speed.Duration())
	}

	node := components.NewNodeComponent("n", types.V(0, 0))
	runSpec(t, a, node, 0.1)
	if math.Abs(node.Angle+90) > 1e-6 {
		t.Errorf("Expected rotation -90, got %f", node.Angle)
	}
}

func TestBuildUnknownCallback(t *testing.T) {
	lib, _ := ParseActionLibrary([]byte(sampleLibrary))

	_, err := lib.Build("bounce", nil)
	if err == nil {
		t.Fatal("Expected error for unregistered callback")
	}
	var se *ScriptError
	if !errors.As(err, &se) {
		t.Fatalf("Expected *ScriptError, got %T", err)
	}
	if se.Path != "bounce.children[2]" {
		t.Errorf("Expected path bounce.children[2], got %q", se.Path)
	}

	if _, err := lib.Build("missing", nil); err == nil {
		t.Error("Expected error for unknown script")
	}
}

func TestParseActionLibraryErrors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "empty",
			yaml:    "scripts: []",
			wantErr: "no scripts",
		},
		{
			name: "unknown type",
			yaml: `
scripts:
  - name: bad
    action:
      type: sequence
      children:
        - type: delay
          duration: 1
        - type: teleport`,
			wantErr: `bad.children[1] (teleport): unknown type "teleport"`,
		},
		{
			name: "missing child",
			yaml: `
scripts:
  - name: bad
    action:
      type: repeat
      times: 2`,
			wantErr: "bad (repeat): missing child",
		},
		{
			name: "unknown ease",
			yaml: `
scripts:
  - name: bad
    action:
      type: ease
      ease: wobble
      child:
        type: delay
        duration: 1`,
			wantErr: `unknown ease "wobble"`,
		},
		{
			name: "instant child of speed",
			yaml: `
scripts:
  - name: bad
    action:
      type: speed
      factor: 2
      child:
        type: hide`,
			wantErr: "not a timed action",
		},
		{
			name: "duplicate name",
			yaml: `
scripts:
  - name: a
    action: {type: hide}
  - name: a
    action: {type: show}`,
			wantErr: "duplicate name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseActionLibrary([]byte(tt.yaml))
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error containing %q, got %q", tt.wantErr, err.Error())
			}
		})
	}
}

func TestParseActionLibraryKeepsSentinel(t *testing.T) {
	yml := `
scripts:
  - name: bad
    action:
      type: speed
      factor: 0
      child:
        type: delay
        duration: 1`
	_, err := ParseActionLibrary([]byte(yml))
	if !errors.Is(err, actions.ErrInvalidArgument) {
		t.Errorf("Expected ErrInvalidArgument, got %v", err)
	}

	yml = `
scripts:
  - name: bad
    action:
      type: reverse
      child:
        type: move_to
        x: 1
        duration: 1`
	_, err = ParseActionLibrary([]byte(yml))
	if !errors.Is(err, actions.ErrUnsupported) {
		t.Errorf("Expected ErrUnsupported, got %v", err)
	}
}

func TestLoadActionLibrary(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "actions.yaml")
	if err := os.WriteFile(path, []byte(sampleLibrary), 0o644); err != nil {
		t.Fatal(err)
	}

	lib, err := LoadActionLibrary(path)
	if err != nil {
		t.Fatalf("LoadActionLibrary failed: %v", err)
	}
	if len(lib.Scripts) != 3 {
		t.Errorf("Expected 3 scripts, got %d", len(lib.Scripts))
	}

	if _, err := LoadActionLibrary(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestEaseNames(t *testing.T) {
	names := EaseNames()
	if len(names) != len(easeFuncs) {
		t.Fatalf("Expected %d names, got %d", len(easeFuncs), len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("names not sorted: %q >= %q", names[i-1], names[i])
		}
	}
}

func TestActionSpecCallbacks(t *testing.T) {
	spec := ActionSpec{
		Type: "sequence",
		Children: []ActionSpec{
			{Type: "call", Callback: "start"},
			{Type: "repeat", Times: 2, Child: &ActionSpec{Type: "call", Callback: "tick"}},
			{Type: "call", Callback: "start"},
			{Type: "call", Callback: "end"},
		},
	}
	if diff := cmp.Diff([]string{"start", "tick", "end"}, spec.Callbacks()); diff != "" {
		t.Errorf("Callbacks mismatch (-want +got):\n%s", diff)
	}
}
