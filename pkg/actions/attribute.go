package actions

import (
	"github.com/gonewx/actionkit/pkg/types"
)

// Attribute 描述目标上一个可插值的属性
//
// Get/Set 负责读写，Diff/Lerp 提供插值所需的算术，
// 使 ChangeTo/ChangeBy 只保留一份插值实现。
type Attribute[V any] struct {
	Name string
	Get  func(Target) V
	Set  func(Target, V)
	// Diff 返回 to - from
	Diff func(to, from V) V
	// Lerp 返回 from + delta*t
	Lerp func(from, delta V, t float64) V
}

func scalarDiff(to, from float64) float64 {
	return to - from
}

func scalarLerp(from, delta float64, t float64) float64 {
	return from + delta*t
}

func vecDiff(to, from types.Vec2) types.Vec2 {
	return to.Sub(from)
}

func vecLerp(from, delta types.Vec2, t float64) types.Vec2 {
	return from.Add(delta.Scale(t))
}

// 预定义属性
var (
	PositionAttr = Attribute[types.Vec2]{
		Name: "Position",
		Get:  func(t Target) types.Vec2 { return t.Position() },
		Set:  func(t Target, v types.Vec2) { t.SetPosition(v) },
		Diff: vecDiff,
		Lerp: vecLerp,
	}
	RotationAttr = Attribute[float64]{
		Name: "Rotation",
		Get:  func(t Target) float64 { return t.Rotation() },
		Set:  func(t Target, v float64) { t.SetRotation(v) },
		Diff: scalarDiff,
		Lerp: scalarLerp,
	}
	ScaleAttr = Attribute[types.Vec2]{
		Name: "Scale",
		Get:  func(t Target) types.Vec2 { return t.Scale() },
		Set:  func(t Target, v types.Vec2) { t.SetScale(v) },
		Diff: vecDiff,
		Lerp: vecLerp,
	}
	OpacityAttr = Attribute[float64]{
		Name: "Opacity",
		Get:  func(t Target) float64 { return t.Opacity() },
		Set:  func(t Target, v float64) { t.SetOpacity(v) },
		Diff: scalarDiff,
		Lerp: scalarLerp,
	}
)

// ChangeTo 在时长内把属性插值到绝对值 end
//
// delta 在 Start 时根据目标当前值计算，因此同一模板可用于任意起点。
type ChangeTo[V any] struct {
	base
	intervalTimer
	attr Attribute[V]
	end  V

	start V
	delta V
}

// NewChangeTo 创建通用的 "变化到" 动作
func NewChangeTo[V any](attr Attribute[V], end V, duration float64) *ChangeTo[V] {
	return &ChangeTo[V]{
		intervalTimer: newIntervalTimer(duration),
		attr:          attr,
		end:           end,
	}
}

// End 目标值
func (a *ChangeTo[V]) End() V {
	return a.end
}

func (a *ChangeTo[V]) Start(target Target) error {
	if err := a.bind(target, a.attr.Name+"To"); err != nil {
		return err
	}
	a.reset()
	a.start = a.attr.Get(target)
	a.delta = a.attr.Diff(a.end, a.start)
	return nil
}

func (a *ChangeTo[V]) Step(dt float64) {
	if !a.running || a.Done() {
		return
	}
	a.Update(a.advance(dt))
}

func (a *ChangeTo[V]) Update(t float64) {
	if !a.running {
		return
	}
	a.attr.Set(a.target, a.attr.Lerp(a.start, a.delta, t))
}

// Stop 直接写入终值，消除浮点漂移
func (a *ChangeTo[V]) Stop() {
	if !a.running {
		return
	}
	a.attr.Set(a.target, a.end)
	a.release()
}

func (a *ChangeTo[V]) Clone() Action {
	return NewChangeTo(a.attr, a.end, a.duration)
}

// Reverse 绝对目标的动作无法在没有外部状态的情况下反转
func (a *ChangeTo[V]) Reverse() (Action, error) {
	return nil, unsupportedf("%sTo has no reverse", a.attr.Name)
}

// ChangeBy 在时长内把属性改变 delta
//
// prepare 非 nil 时在 Start 用 (起始值, 声明的 delta) 重新计算实际增量，
// ScaleBy 借此把 delta 解释为倍率。
type ChangeBy[V any] struct {
	base
	intervalTimer
	attr    Attribute[V]
	delta   V
	prepare func(start, delta V) V

	start     V
	effective V
}

// NewChangeBy 创建通用的 "变化量" 动作
func NewChangeBy[V any](attr Attribute[V], delta V, duration float64) *ChangeBy[V] {
	return &ChangeBy[V]{
		intervalTimer: newIntervalTimer(duration),
		attr:          attr,
		delta:         delta,
	}
}

// Delta 声明的变化量
func (a *ChangeBy[V]) Delta() V {
	return a.delta
}

func (a *ChangeBy[V]) Start(target Target) error {
	if err := a.bind(target, a.attr.Name+"By"); err != nil {
		return err
	}
	a.reset()
	a.start = a.attr.Get(target)
	a.effective = a.delta
	if a.prepare != nil {
		a.effective = a.prepare(a.start, a.delta)
	}
	return nil
}

func (a *ChangeBy[V]) Step(dt float64) {
	if !a.running || a.Done() {
		return
	}
	a.Update(a.advance(dt))
}

func (a *ChangeBy[V]) Update(t float64) {
	if !a.running {
		return
	}
	a.attr.Set(a.target, a.attr.Lerp(a.start, a.effective, t))
}

// Stop 显式写入 start + delta，而不依赖最后一次 Update(1)
func (a *ChangeBy[V]) Stop() {
	if !a.running {
		return
	}
	a.attr.Set(a.target, a.attr.Lerp(a.start, a.effective, 1))
	a.release()
}

func (a *ChangeBy[V]) Clone() Action {
	c := NewChangeBy(a.attr, a.delta, a.duration)
	c.prepare = a.prepare
	return c
}

// Reverse 返回增量取反的动作；带 prepare 的变体需自行实现
func (a *ChangeBy[V]) Reverse() (Action, error) {
	if a.prepare != nil {
		return nil, unsupportedf("%sBy with custom delta has no generic reverse", a.attr.Name)
	}
	var zero V
	return NewChangeBy(a.attr, a.attr.Diff(zero, a.delta), a.duration), nil
}
