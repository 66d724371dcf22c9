package game

import (
	"math"
	"testing"

	"github.com/gonewx/actionkit/pkg/actions"
	"github.com/gonewx/actionkit/pkg/types"
)

func TestNewSimulationValidatesOptions(t *testing.T) {
	tests := []struct {
		name string
		opts SimulationOptions
	}{
		{"zero dt", SimulationOptions{DeltaTime: 0, MaxFrames: 10}},
		{"negative dt", SimulationOptions{DeltaTime: -0.1, MaxFrames: 10}},
		{"zero frames", SimulationOptions{DeltaTime: 0.1, MaxFrames: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewSimulation(tt.opts); err == nil {
				t.Error("Expected error, got nil")
			}
		})
	}
}

func TestSimulationRunTrace(t *testing.T) {
	opts := DefaultSimulationOptions()
	opts.DeltaTime = 0.25
	opts.Start = types.V(5, 5)
	sim, err := NewSimulation(opts)
	if err != nil {
		t.Fatalf("NewSimulation failed: %v", err)
	}

	var frames []Frame
	last, err := sim.Run(actions.NewMoveBy(types.V(4, 0), 1), func(f Frame) {
		frames = append(frames, f)
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	// 第 0 帧 + 4 帧
	if len(frames) != 5 {
		t.Fatalf("Expected 5 frames, got %d", len(frames))
	}
	if !last.Done || last.Index != 4 {
		t.Errorf("Expected done at frame 4, got index=%d done=%v", last.Index, last.Done)
	}
	if !frames[2].State.Position.ApproxEqual(types.V(7, 5), 1e-9) {
		t.Errorf("Expected (7, 5) at frame 2, got %v", frames[2].State.Position)
	}
	if math.Abs(frames[2].Time-0.5) > 1e-9 {
		t.Errorf("Expected time 0.5 at frame 2, got %f", frames[2].Time)
	}
	if !last.State.Position.ApproxEqual(types.V(9, 5), 1e-9) {
		t.Errorf("Expected final (9, 5), got %v", last.State.Position)
	}
}

func TestSimulationInstantIsFrameZero(t *testing.T) {
	sim, _ := NewSimulation(DefaultSimulationOptions())

	last, err := sim.Run(actions.NewHide(), nil)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !last.Done || last.Index != 0 {
		t.Errorf("Expected instant action done at frame 0, got index=%d done=%v", last.Index, last.Done)
	}
	if last.State.Visible {
		t.Error("Expected node hidden")
	}
}

func TestSimulationStopsLoopAtMaxFrames(t *testing.T) {
	sim, _ := NewSimulation(SimulationOptions{DeltaTime: 0.1, MaxFrames: 25})

	loop := actions.Must(actions.NewLoop(actions.NewRotateBy(90, 1)))
	last, err := sim.Run(loop, nil)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if last.Done || last.Index != 25 {
		t.Errorf("Expected unfinished run at frame 25, got index=%d done=%v", last.Index, last.Done)
	}
	if math.Abs(last.State.Rotation-225) > 1e-6 {
		t.Errorf("Expected rotation 225 after 2.5s, got %f", last.State.Rotation)
	}
}
