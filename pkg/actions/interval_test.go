package actions

import (
	"testing"

	"github.com/gonewx/actionkit/pkg/types"
)

// TestIntervalExactDuration 恰好推进 duration 后完成且 elapsed == duration
func TestIntervalExactDuration(t *testing.T) {
	node := newTestNode()
	a := NewMoveBy(types.V(10, 0), 2)
	if err := a.Start(node); err != nil {
		t.Fatal(err)
	}

	a.Step(2)

	if !a.Done() {
		t.Error("Expected done after stepping full duration")
	}
	if a.Elapsed() != 2 {
		t.Errorf("Expected elapsed=2, got %f", a.Elapsed())
	}
	assertVec(t, "position", types.V(10, 0), node.pos)
}

// TestIntervalClampsOvershoot 超出 duration 时 elapsed 被截断
func TestIntervalClampsOvershoot(t *testing.T) {
	node := newTestNode()
	a := NewMoveBy(types.V(10, 0), 2)
	if err := a.Start(node); err != nil {
		t.Fatal(err)
	}

	a.Step(5)

	if a.Elapsed() != 2 {
		t.Errorf("Expected elapsed clamped to 2, got %f", a.Elapsed())
	}
	assertVec(t, "position", types.V(10, 0), node.pos)
}

func TestIntervalNegativeDtIgnored(t *testing.T) {
	node := newTestNode()
	a := NewMoveBy(types.V(10, 0), 2)
	if err := a.Start(node); err != nil {
		t.Fatal(err)
	}

	a.Step(-1)

	if a.Elapsed() != 0 {
		t.Errorf("Expected elapsed=0, got %f", a.Elapsed())
	}
}

// TestIntervalAccumulatedSteps 多次小步累积的浮点误差不会阻止完成
func TestIntervalAccumulatedSteps(t *testing.T) {
	node := newTestNode()
	a := NewDelay(1)
	if err := a.Start(node); err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 10; i++ {
		a.Step(0.1)
	}

	if !a.Done() {
		t.Errorf("Expected done after 10 x 0.1, elapsed=%.17f", a.Elapsed())
	}
}

// TestIntervalZeroDuration 零时长动作立即完成，不做除法
func TestIntervalZeroDuration(t *testing.T) {
	tests := []struct {
		name   string
		action IntervalAction
		check  func(t *testing.T, n *testNode)
	}{
		{
			name:   "MoveBy",
			action: NewMoveBy(types.V(3, 4), 0),
			check:  func(t *testing.T, n *testNode) { assertVec(t, "position", types.V(3, 4), n.pos) },
		},
		{
			name:   "MoveTo",
			action: NewMoveTo(types.V(7, 7), 0),
			check:  func(t *testing.T, n *testNode) { assertVec(t, "position", types.V(7, 7), n.pos) },
		},
		{
			name:   "FadeOut",
			action: NewFadeOut(0),
			check:  func(t *testing.T, n *testNode) { assertFloat(t, "opacity", 0, n.opacity) },
		},
		{
			name:   "Delay",
			action: NewDelay(0),
			check:  func(t *testing.T, n *testNode) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := newTestNode()
			run := tt.action.Clone()
			if err := run.Start(node); err != nil {
				t.Fatal(err)
			}
			if !run.Done() {
				t.Error("Expected zero-duration action to be done right after Start")
			}
			run.Step(0.1)
			run.Stop()
			tt.check(t, node)
		})
	}
}

func TestNegativeDurationTreatedAsZero(t *testing.T) {
	a := NewDelay(-3)
	if a.Duration() != 0 {
		t.Errorf("Expected duration 0, got %f", a.Duration())
	}
}
