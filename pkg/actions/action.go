// Package actions 实现基于帧驱动的动作执行引擎
//
// 动作(Action)按时间修改目标节点的属性（位置、旋转、缩放、透明度、可见性），
// 组合动作负责顺序、并行、重复、循环、变速和反转。
//
// 生命周期：
//  1. 构造得到模板（未绑定目标）
//  2. Clone() 得到可运行的实例
//  3. Start(target) 绑定目标并初始化运行状态
//  4. 每帧调用 Step(dt)，直到 Done() 为 true
//  5. 调用一次 Stop() 完成收尾
//
// 引擎是单线程、协作式的，所有调用都在同一调用栈内返回。
// 同一个 Spawn 中的两个子动作修改同一属性时，结果取决于子动作顺序，
// 由调用方负责避免。
package actions

import (
	"github.com/gonewx/actionkit/pkg/types"
)

// Target 动作可修改的目标节点
//
// 由外部场景图实现（见 components.NodeComponent）。
type Target interface {
	Position() types.Vec2
	SetPosition(types.Vec2)
	Rotation() float64
	SetRotation(float64)
	Scale() types.Vec2
	SetScale(types.Vec2)
	Opacity() float64
	SetOpacity(float64)
	Visible() bool
	SetVisible(bool)
}

// Action 所有动作的公共契约
//
// Start 之前、以及 Stop 之后调用 Step/Stop 都是静默的空操作。
// Start(nil) 返回 ErrPrecondition。
type Action interface {
	// Start 绑定目标并初始化运行状态。运行中再次调用会先 Stop 上一轮，再从头开始
	Start(target Target) error
	// Step 推进 dt 时间（秒），dt < 0 视为 0
	Step(dt float64)
	// Stop 收尾；可在任意时刻调用，作为中止信号
	Stop()
	// Done 是否已完成
	Done() bool
	// Target 当前绑定的目标，未运行时为 nil
	Target() Target
	// Clone 返回配置相同、运行状态独立的未绑定副本
	Clone() Action
	// Reverse 返回效果相反的新模板；无意义的反转返回 ErrUnsupported
	Reverse() (Action, error)
}

// IntervalAction 具有固定时长的动作
//
// Update(t) 接收归一化进度 t ∈ [0,1]，变速组合动作通过它复用被包装动作的插值。
type IntervalAction interface {
	Action
	Duration() float64
	Elapsed() float64
	Update(t float64)
}

// base 动作的公共运行状态：目标引用和运行标记
type base struct {
	target  Target
	running bool
}

// bind 绑定目标，target 为 nil 时返回 ErrPrecondition
func (b *base) bind(target Target, name string) error {
	if target == nil {
		return preconditionf("%s.Start: no target", name)
	}
	b.target = target
	b.running = true
	return nil
}

// release 结束运行并释放目标引用
func (b *base) release() {
	b.running = false
	b.target = nil
}

// Target 返回当前绑定的目标
func (b *base) Target() Target {
	return b.target
}

// cloneInterval 克隆一个时长动作并保留 IntervalAction 接口
func cloneInterval(a IntervalAction) IntervalAction {
	return a.Clone().(IntervalAction)
}

// reverseInterval 反转时长动作，结果不是时长动作时返回 ErrUnsupported
func reverseInterval(a IntervalAction) (IntervalAction, error) {
	r, err := a.Reverse()
	if err != nil {
		return nil, err
	}
	ri, ok := r.(IntervalAction)
	if !ok {
		return nil, unsupportedf("reverse of %T is not an interval action", a)
	}
	return ri, nil
}

// Then 顺序组合：等价于 NewSequence(a, b)，不修改 a、b
func Then(a, b Action) (*Sequence, error) {
	return NewSequence(a, b)
}

// Parallel 并行组合：等价于 NewSpawn(a, b)，不修改 a、b
func Parallel(a, b Action) (*Spawn, error) {
	return NewSpawn(a, b)
}

// Must 用于静态构造的动作树，err 非 nil 时 panic
//
// 示例:
//
//	bounce := actions.Must(actions.NewRepeat(actions.NewMoveBy(types.V(0, 10), 0.5), 3))
func Must[T Action](a T, err error) T {
	if err != nil {
		panic(err)
	}
	return a
}
