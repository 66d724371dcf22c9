package actions

import "github.com/gonewx/actionkit/pkg/types"

// instant 瞬时动作：在 Start 内同步完成，Step/Stop 为空操作
type instant struct {
	base
}

func (i *instant) Step(float64) {}

func (i *instant) Stop() {
	i.release()
}

// Done 瞬时动作恒为完成
func (i *instant) Done() bool {
	return true
}

// Place 立即设置位置
//
// 没有反转：没有外部提供的原始位置就无法还原。
type Place struct {
	instant
	position types.Vec2
}

// NewPlace 创建 Place 动作
func NewPlace(position types.Vec2) *Place {
	return &Place{position: position}
}

// Position 目标位置
func (a *Place) Position() types.Vec2 {
	return a.position
}

func (a *Place) Start(target Target) error {
	if err := a.bind(target, "Place"); err != nil {
		return err
	}
	target.SetPosition(a.position)
	return nil
}

func (a *Place) Clone() Action {
	return NewPlace(a.position)
}

func (a *Place) Reverse() (Action, error) {
	return nil, unsupportedf("Place has no reverse")
}

// CallFunction 在 Start 内同步调用回调
type CallFunction struct {
	instant
	fn func()
}

// NewCallFunction 创建回调动作，fn 为 nil 时什么也不做
func NewCallFunction(fn func()) *CallFunction {
	return &CallFunction{fn: fn}
}

func (a *CallFunction) Start(target Target) error {
	if err := a.bind(target, "CallFunction"); err != nil {
		return err
	}
	if a.fn != nil {
		a.fn()
	}
	return nil
}

func (a *CallFunction) Clone() Action {
	return NewCallFunction(a.fn)
}

func (a *CallFunction) Reverse() (Action, error) {
	return nil, unsupportedf("CallFunction has no reverse")
}

// Hide 隐藏目标
type Hide struct {
	instant
}

// NewHide 创建 Hide 动作
func NewHide() *Hide {
	return &Hide{}
}

func (a *Hide) Start(target Target) error {
	if err := a.bind(target, "Hide"); err != nil {
		return err
	}
	target.SetVisible(false)
	return nil
}

func (a *Hide) Clone() Action {
	return NewHide()
}

func (a *Hide) Reverse() (Action, error) {
	return NewShow(), nil
}

// Show 显示目标
type Show struct {
	instant
}

// NewShow 创建 Show 动作
func NewShow() *Show {
	return &Show{}
}

func (a *Show) Start(target Target) error {
	if err := a.bind(target, "Show"); err != nil {
		return err
	}
	target.SetVisible(true)
	return nil
}

func (a *Show) Clone() Action {
	return NewShow()
}

func (a *Show) Reverse() (Action, error) {
	return NewHide(), nil
}

// ToggleVisibility 翻转可见性，反转为自身
type ToggleVisibility struct {
	instant
}

// NewToggleVisibility 创建 ToggleVisibility 动作
func NewToggleVisibility() *ToggleVisibility {
	return &ToggleVisibility{}
}

func (a *ToggleVisibility) Start(target Target) error {
	if err := a.bind(target, "ToggleVisibility"); err != nil {
		return err
	}
	target.SetVisible(!target.Visible())
	return nil
}

func (a *ToggleVisibility) Clone() Action {
	return NewToggleVisibility()
}

func (a *ToggleVisibility) Reverse() (Action, error) {
	return NewToggleVisibility(), nil
}

var (
	_ Action = (*Place)(nil)
	_ Action = (*CallFunction)(nil)
	_ Action = (*Hide)(nil)
	_ Action = (*Show)(nil)
	_ Action = (*ToggleVisibility)(nil)
)
