package actions

import (
	"errors"
	"testing"

	"github.com/gonewx/actionkit/pkg/types"
)

func TestMoveByMidway(t *testing.T) {
	node := newTestNode()
	node.pos = types.V(1, 1)
	a := NewMoveBy(types.V(10, -4), 2)
	if err := a.Start(node); err != nil {
		t.Fatal(err)
	}

	a.Step(1)

	assertVec(t, "position", types.V(6, -1), node.pos)
}

// TestMoveToAdaptsToStart delta 在 Start 时根据当前位置计算
func TestMoveToAdaptsToStart(t *testing.T) {
	node := newTestNode()
	node.pos = types.V(4, 0)
	a := NewMoveTo(types.V(10, 0), 1)
	if err := a.Start(node); err != nil {
		t.Fatal(err)
	}

	a.Step(0.5)
	assertVec(t, "position", types.V(7, 0), node.pos)

	a.Step(0.5)
	a.Stop()
	assertVec(t, "position", types.V(10, 0), node.pos)
}

// TestChangeByStopSnapsToEnd Stop 写入 start+delta
func TestChangeByStopSnapsToEnd(t *testing.T) {
	node := newTestNode()
	a := NewRotateBy(30, 3)
	if err := a.Start(node); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		a.Step(1)
	}
	node.rot = 29.9999 // 模拟漂移
	a.Stop()

	if node.rot != 30 {
		t.Errorf("Expected rotation snapped to 30, got %f", node.rot)
	}
	if a.Target() != nil {
		t.Error("Expected target released after Stop")
	}
}

// TestReverseRoundTrip 正向 + 反向后属性回到初始值
func TestReverseRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		action Action
		setup  func(n *testNode)
		check  func(t *testing.T, n *testNode)
	}{
		{
			name:   "MoveBy",
			action: NewMoveBy(types.V(10, 0), 1),
			check:  func(t *testing.T, n *testNode) { assertVec(t, "position", types.V(0, 0), n.pos) },
		},
		{
			name:   "RotateBy",
			action: NewRotateBy(135, 1),
			setup:  func(n *testNode) { n.rot = 15 },
			check:  func(t *testing.T, n *testNode) { assertFloat(t, "rotation", 15, n.rot) },
		},
		{
			name:   "ScaleBy",
			action: NewScaleBy(types.V(2, 2), 1),
			setup:  func(n *testNode) { n.scale = types.V(3, 3) },
			check:  func(t *testing.T, n *testNode) { assertVec(t, "scale", types.V(3, 3), n.scale) },
		},
		{
			name:   "FadeOut",
			action: NewFadeOut(1),
			check:  func(t *testing.T, n *testNode) { assertFloat(t, "opacity", 1, n.opacity) },
		},
		{
			name:   "Hide",
			action: NewHide(),
			check: func(t *testing.T, n *testNode) {
				if !n.visible {
					t.Error("Expected visible after Hide + reverse")
				}
			},
		},
		{
			name:   "ToggleVisibility",
			action: NewToggleVisibility(),
			check: func(t *testing.T, n *testNode) {
				if !n.visible || n.visibilityChanges != 2 {
					t.Errorf("Expected two toggles ending visible, got visible=%v changes=%d", n.visible, n.visibilityChanges)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := newTestNode()
			if tt.setup != nil {
				tt.setup(node)
			}
			runToEnd(t, tt.action, node, 0.25, 10)

			rev, err := tt.action.Reverse()
			if err != nil {
				t.Fatalf("Reverse failed: %v", err)
			}
			runToEnd(t, rev, node, 0.25, 10)
			tt.check(t, node)
		})
	}
}

// TestScaleByIsMultiplicative ScaleBy((2,2)) 把 (3,3) 变为 (6,6)
func TestScaleByIsMultiplicative(t *testing.T) {
	node := newTestNode()
	node.scale = types.V(3, 3)

	runToEnd(t, NewScaleBy(types.V(2, 2), 2), node, 0.5, 10)

	assertVec(t, "scale", types.V(6, 6), node.scale)
}

func TestScaleByReverseReciprocal(t *testing.T) {
	rev, err := NewScaleBy(types.V(4, 0), 1).Reverse()
	if err != nil {
		t.Fatal(err)
	}
	s, ok := rev.(*ScaleBy)
	if !ok {
		t.Fatalf("Expected *ScaleBy, got %T", rev)
	}
	assertVec(t, "factor", types.V(0.25, 0), s.Factor())
}

// TestRotateToNormalizes 450° 归一化为 90°，反转目标为 -270°
func TestRotateToNormalizes(t *testing.T) {
	a := NewRotateTo(450, 1)
	if a.End() != 90 {
		t.Errorf("Expected end 90, got %f", a.End())
	}

	rev, err := a.Reverse()
	if err != nil {
		t.Fatal(err)
	}
	r, ok := rev.(*RotateTo)
	if !ok {
		t.Fatalf("Expected *RotateTo, got %T", rev)
	}
	if r.End() != -270 {
		t.Errorf("Expected reverse end -270, got %f", r.End())
	}

	node := newTestNode()
	runToEnd(t, a, node, 0.5, 4)
	assertFloat(t, "rotation", 90, node.rot)
	runToEnd(t, rev, node, 0.5, 4)
	assertFloat(t, "rotation", -270, node.rot)
}

func TestRotateToWithinRangeUnchanged(t *testing.T) {
	for _, end := range []float64{-360, -90, 0, 270, 360} {
		if got := NewRotateTo(end, 1).End(); got != end {
			t.Errorf("RotateTo(%f): expected end unchanged, got %f", end, got)
		}
	}
}

func TestFadeReverses(t *testing.T) {
	rev, err := NewFadeIn(0.5).Reverse()
	if err != nil {
		t.Fatal(err)
	}
	if out, ok := rev.(*FadeOut); !ok || out.Duration() != 0.5 {
		t.Errorf("Expected FadeOut(0.5), got %T", rev)
	}

	rev, err = NewFadeOut(0.7).Reverse()
	if err != nil {
		t.Fatal(err)
	}
	if in, ok := rev.(*FadeIn); !ok || in.Duration() != 0.7 {
		t.Errorf("Expected FadeIn(0.7), got %T", rev)
	}
}

func TestFadeToHalfway(t *testing.T) {
	node := newTestNode()
	a := NewFadeTo(0.2, 1)
	if err := a.Start(node); err != nil {
		t.Fatal(err)
	}
	a.Step(0.5)
	assertFloat(t, "opacity", 0.6, node.opacity)
}

// TestAbsoluteActionsHaveNoReverse "To" 类动作和回调不可反转
func TestAbsoluteActionsHaveNoReverse(t *testing.T) {
	tests := []struct {
		name   string
		action Action
	}{
		{"MoveTo", NewMoveTo(types.V(1, 1), 1)},
		{"ScaleTo", NewScaleTo(types.V(2, 2), 1)},
		{"FadeTo", NewFadeTo(0.5, 1)},
		{"Place", NewPlace(types.V(1, 1))},
		{"CallFunction", NewCallFunction(func() {})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.action.Reverse()
			if !errors.Is(err, ErrUnsupported) {
				t.Errorf("Expected ErrUnsupported, got %v", err)
			}
		})
	}
}

// TestCustomAttribute 通用 ChangeBy 可用于自定义属性
func TestCustomAttribute(t *testing.T) {
	var level float64
	attr := Attribute[float64]{
		Name: "Level",
		Get:  func(Target) float64 { return level },
		Set:  func(_ Target, v float64) { level = v },
		Diff: scalarDiff,
		Lerp: scalarLerp,
	}

	node := newTestNode()
	a := NewChangeBy(attr, 8.0, 2)
	runToEnd(t, a, node, 0.5, 10)
	assertFloat(t, "level", 8, level)

	rev, err := a.Reverse()
	if err != nil {
		t.Fatal(err)
	}
	runToEnd(t, rev, node, 0.5, 10)
	assertFloat(t, "level", 0, level)
}
