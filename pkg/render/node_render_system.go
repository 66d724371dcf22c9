package render

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/actionkit/pkg/components"
	"github.com/gonewx/actionkit/pkg/ecs"
)

// NodeRenderSystem 按节点的变换绘制精灵
type NodeRenderSystem struct {
	entityManager *ecs.EntityManager

	// 重用的绘制选项（避免每帧分配）
	drawOpts ebiten.DrawImageOptions
}

// NewNodeRenderSystem 创建节点渲染系统
func NewNodeRenderSystem(em *ecs.EntityManager) *NodeRenderSystem {
	return &NodeRenderSystem{
		entityManager: em,
	}
}

// Draw 绘制所有可见的节点（按实体ID顺序，后创建的在上层）
func (s *NodeRenderSystem) Draw(screen *ebiten.Image) {
	entities := ecs.GetEntitiesWith2[*components.NodeComponent, *SpriteComponent](s.entityManager)

	for _, id := range entities {
		node, _ := ecs.GetComponent[*components.NodeComponent](s.entityManager, id)
		sprite, _ := ecs.GetComponent[*SpriteComponent](s.entityManager, id)
		if sprite.Image == nil || !shouldDraw(node) {
			continue
		}

		w, h := sprite.Image.Bounds().Dx(), sprite.Image.Bounds().Dy()
		buildDrawOptions(&s.drawOpts, node, sprite, float64(w), float64(h))
		screen.DrawImage(sprite.Image, &s.drawOpts)
	}
}

// shouldDraw 不可见或完全透明的节点跳过绘制
func shouldDraw(node *components.NodeComponent) bool {
	return node.IsVisible && node.Alpha > 0
}

// buildDrawOptions 根据节点状态填充绘制选项
//
// 变换顺序：平移到锚点 → 缩放 → 旋转（角度转弧度）→ 平移到节点位置。
func buildDrawOptions(opts *ebiten.DrawImageOptions, node *components.NodeComponent, sprite *SpriteComponent, w, h float64) {
	opts.GeoM.Reset()
	opts.ColorScale.Reset()

	opts.GeoM.Translate(-sprite.Anchor.X*w, -sprite.Anchor.Y*h)
	opts.GeoM.Scale(node.Scaling.X, node.Scaling.Y)
	opts.GeoM.Rotate(node.Angle * math.Pi / 180)
	opts.GeoM.Translate(node.Pos.X, node.Pos.Y)

	opts.ColorScale.ScaleAlpha(float32(node.Alpha))
}
