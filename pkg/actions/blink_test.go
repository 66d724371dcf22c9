package actions

import (
	"errors"
	"testing"
)

// TestBlinkTogglesExactly Blink(4, 1) 恰好切换 4 次，Stop 后恢复原始可见性
func TestBlinkTogglesExactly(t *testing.T) {
	node := newTestNode()
	a := Must(NewBlink(4, 1))
	if err := a.Start(node); err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 4; i++ {
		a.Step(0.25)
	}

	if !a.Done() {
		t.Error("Expected Blink done after full duration")
	}
	if a.Toggles() != 4 || node.visibilityChanges != 4 {
		t.Errorf("Expected 4 toggles, got toggles=%d changes=%d", a.Toggles(), node.visibilityChanges)
	}

	a.Stop()
	if !node.visible {
		t.Error("Expected original visibility after Stop")
	}
}

func TestBlinkLargeStepTogglesAll(t *testing.T) {
	node := newTestNode()
	a := Must(NewBlink(5, 2))
	if err := a.Start(node); err != nil {
		t.Fatal(err)
	}

	a.Step(10)

	if a.Toggles() != 5 {
		t.Errorf("Expected 5 toggles, got %d", a.Toggles())
	}
	if node.visible {
		t.Error("Expected hidden after odd number of toggles before Stop")
	}
	a.Stop()
	if !node.visible {
		t.Error("Expected original visibility restored")
	}
}

// TestBlinkCancelRestores 中途取消也恢复原始可见性
func TestBlinkCancelRestores(t *testing.T) {
	tests := []struct {
		name     string
		original bool
		steps    []float64
	}{
		{"visible after one toggle", true, []float64{0.3}},
		{"hidden after one toggle", false, []float64{0.3}},
		{"visible after three toggles", true, []float64{0.3, 0.3, 0.2}},
		{"before any toggle", true, []float64{0.1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := newTestNode()
			node.visible = tt.original
			a := Must(NewBlink(4, 1))
			if err := a.Start(node); err != nil {
				t.Fatal(err)
			}
			for _, dt := range tt.steps {
				a.Step(dt)
			}
			a.Stop()
			if node.visible != tt.original {
				t.Errorf("Expected visibility %v after cancel, got %v", tt.original, node.visible)
			}
		})
	}
}

func TestBlinkReverseIsBlink(t *testing.T) {
	rev, err := Must(NewBlink(3, 1.5)).Reverse()
	if err != nil {
		t.Fatal(err)
	}
	b, ok := rev.(*Blink)
	if !ok {
		t.Fatalf("Expected *Blink, got %T", rev)
	}
	if b.Times() != 3 || b.Duration() != 1.5 {
		t.Errorf("Expected Blink(3, 1.5), got Blink(%d, %f)", b.Times(), b.Duration())
	}
}

func TestBlinkInvalidTimes(t *testing.T) {
	for _, times := range []int{0, -2} {
		if _, err := NewBlink(times, 1); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("NewBlink(%d): expected ErrInvalidArgument, got %v", times, err)
		}
	}
}
