package components

import (
	"github.com/gonewx/actionkit/pkg/actions"
	"github.com/gonewx/actionkit/pkg/types"
)

// NodeComponent 场景节点：动作修改的目标
//
// 只保存变换和显示状态，实现 actions.Target。
// 节点由场景图（EntityManager）持有，动作只持有非拥有的引用。
type NodeComponent struct {
	Name      string
	Pos       types.Vec2 // 位置（像素）
	Angle     float64    // 旋转（度，顺时针）
	Scaling   types.Vec2 // 缩放
	Alpha     float64    // 透明度 0.0 ~ 1.0
	IsVisible bool
}

// NewNodeComponent 创建默认状态的节点：缩放 1、不透明、可见
func NewNodeComponent(name string, pos types.Vec2) *NodeComponent {
	return &NodeComponent{
		Name:      name,
		Pos:       pos,
		Scaling:   types.V(1, 1),
		Alpha:     1,
		IsVisible: true,
	}
}

func (n *NodeComponent) Position() types.Vec2 {
	return n.Pos
}

func (n *NodeComponent) SetPosition(v types.Vec2) {
	n.Pos = v
}

func (n *NodeComponent) Rotation() float64 {
	return n.Angle
}

func (n *NodeComponent) SetRotation(v float64) {
	n.Angle = v
}

func (n *NodeComponent) Scale() types.Vec2 {
	return n.Scaling
}

func (n *NodeComponent) SetScale(v types.Vec2) {
	n.Scaling = v
}

func (n *NodeComponent) Opacity() float64 {
	return n.Alpha
}

// SetOpacity 超出 [0,1] 的值会被截断
func (n *NodeComponent) SetOpacity(v float64) {
	switch {
	case v < 0:
		v = 0
	case v > 1:
		v = 1
	}
	n.Alpha = v
}

func (n *NodeComponent) Visible() bool {
	return n.IsVisible
}

func (n *NodeComponent) SetVisible(v bool) {
	n.IsVisible = v
}

var _ actions.Target = (*NodeComponent)(nil)
