package actions

import "github.com/gonewx/actionkit/pkg/types"

// MoveBy 相对移动
type MoveBy struct {
	ChangeBy[types.Vec2]
}

// NewMoveBy 在 duration 秒内移动 delta
func NewMoveBy(delta types.Vec2, duration float64) *MoveBy {
	return &MoveBy{ChangeBy: *NewChangeBy(PositionAttr, delta, duration)}
}

func (a *MoveBy) Clone() Action {
	return NewMoveBy(a.delta, a.duration)
}

// Reverse 反向移动相同距离
func (a *MoveBy) Reverse() (Action, error) {
	return NewMoveBy(a.delta.Neg(), a.duration), nil
}

// MoveTo 移动到绝对位置，没有通用反转
type MoveTo struct {
	ChangeTo[types.Vec2]
}

// NewMoveTo 在 duration 秒内移动到 end
func NewMoveTo(end types.Vec2, duration float64) *MoveTo {
	return &MoveTo{ChangeTo: *NewChangeTo(PositionAttr, end, duration)}
}

func (a *MoveTo) Clone() Action {
	return NewMoveTo(a.end, a.duration)
}

var (
	_ IntervalAction = (*MoveBy)(nil)
	_ IntervalAction = (*MoveTo)(nil)
)
