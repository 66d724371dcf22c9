package actions

import "math"

// RotateBy 相对旋转（角度）
type RotateBy struct {
	ChangeBy[float64]
}

// NewRotateBy 在 duration 秒内旋转 angle 度
func NewRotateBy(angle, duration float64) *RotateBy {
	return &RotateBy{ChangeBy: *NewChangeBy(RotationAttr, angle, duration)}
}

func (a *RotateBy) Clone() Action {
	return NewRotateBy(a.delta, a.duration)
}

func (a *RotateBy) Reverse() (Action, error) {
	return NewRotateBy(-a.delta, a.duration), nil
}

// RotateTo 旋转到绝对角度
//
// |end| > 360 时按 360 取模，避免多圈插值。
type RotateTo struct {
	ChangeTo[float64]
}

// NewRotateTo 在 duration 秒内旋转到 end 度
func NewRotateTo(end, duration float64) *RotateTo {
	if math.Abs(end) > 360 {
		end = math.Mod(end, 360)
	}
	return &RotateTo{ChangeTo: *NewChangeTo(RotationAttr, end, duration)}
}

func (a *RotateTo) Clone() Action {
	return NewRotateTo(a.end, a.duration)
}

// Reverse 目标为 end-360：少转一整圈，方向与正向一致
func (a *RotateTo) Reverse() (Action, error) {
	return NewRotateTo(a.end-360, a.duration), nil
}

var (
	_ IntervalAction = (*RotateBy)(nil)
	_ IntervalAction = (*RotateTo)(nil)
)
