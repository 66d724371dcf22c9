package actions

import "github.com/gonewx/actionkit/pkg/types"

// ScaleBy 按倍率缩放
//
// factor 是乘法倍率：ScaleBy((2,2)) 使缩放翻倍，而不是加 2。
// Start 时把实际增量换算为 start*factor - start，之后沿用加法插值。
type ScaleBy struct {
	ChangeBy[types.Vec2]
}

// NewScaleBy 在 duration 秒内把缩放乘以 factor
func NewScaleBy(factor types.Vec2, duration float64) *ScaleBy {
	a := &ScaleBy{ChangeBy: *NewChangeBy(ScaleAttr, factor, duration)}
	a.prepare = scaleFactorDelta
	return a
}

func scaleFactorDelta(start, factor types.Vec2) types.Vec2 {
	return start.Mul(factor).Sub(start)
}

// Factor 缩放倍率
func (a *ScaleBy) Factor() types.Vec2 {
	return a.delta
}

func (a *ScaleBy) Clone() Action {
	return NewScaleBy(a.delta, a.duration)
}

// Reverse 逐分量取倒数；倍率为 0 的分量倒数记为 0
func (a *ScaleBy) Reverse() (Action, error) {
	return NewScaleBy(a.delta.Reciprocal(), a.duration), nil
}

// ScaleTo 缩放到绝对值，没有通用反转
type ScaleTo struct {
	ChangeTo[types.Vec2]
}

// NewScaleTo 在 duration 秒内缩放到 end
func NewScaleTo(end types.Vec2, duration float64) *ScaleTo {
	return &ScaleTo{ChangeTo: *NewChangeTo(ScaleAttr, end, duration)}
}

func (a *ScaleTo) Clone() Action {
	return NewScaleTo(a.end, a.duration)
}

var (
	_ IntervalAction = (*ScaleBy)(nil)
	_ IntervalAction = (*ScaleTo)(nil)
)
