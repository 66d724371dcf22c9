// Package render 把节点状态绘制到 ebiten 屏幕上
package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/actionkit/pkg/types"
)

// SpriteComponent 存储实体的视觉表现(当前绘制的图像)
type SpriteComponent struct {
	Image *ebiten.Image
	// Anchor 归一化锚点：(0,0) 左上角，(0.5,0.5) 中心；旋转和缩放围绕锚点进行
	Anchor types.Vec2
}

// NewSpriteComponent 创建以中心为锚点的精灵
func NewSpriteComponent(img *ebiten.Image) *SpriteComponent {
	return &SpriteComponent{Image: img, Anchor: types.V(0.5, 0.5)}
}
