package app

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/actionkit/pkg/actions"
	"github.com/gonewx/actionkit/pkg/components"
	"github.com/gonewx/actionkit/pkg/config"
	"github.com/gonewx/actionkit/pkg/ecs"
	"github.com/gonewx/actionkit/pkg/render"
	"github.com/gonewx/actionkit/pkg/systems"
	"github.com/gonewx/actionkit/pkg/types"
)

// ImageFactory 为节点生成纯色方块图像；为 nil 时节点没有精灵（无头运行）
type ImageFactory func(size int, c color.Color) *ebiten.Image

// SolidImage 默认的 ImageFactory
func SolidImage(size int, c color.Color) *ebiten.Image {
	img := ebiten.NewImage(size, size)
	img.Fill(c)
	return img
}

// showcaseNode 一个展示节点及其动作模板
type showcaseNode struct {
	cfg      config.NodeConfig
	entity   ecs.EntityID
	template actions.Action
}

// Showcase 按配置把动作脚本跑在一组节点上
type Showcase struct {
	config *config.ShowcaseConfig

	entityManager *ecs.EntityManager
	actionSystem  *systems.ActionSystem
	renderSystem  *render.NodeRenderSystem

	nodes  []*showcaseNode
	paused bool
	clock  float64

	// 脚本中 call 动作触发的次数（按回调名）
	callbackCounts map[string]int
}

// NewShowcase 创建展示场景并启动所有节点的脚本
func NewShowcase(cfg *config.ShowcaseConfig, images ImageFactory) (*Showcase, error) {
	em := ecs.NewEntityManager()
	s := &Showcase{
		config:         cfg,
		entityManager:  em,
		actionSystem:   systems.NewActionSystem(em),
		renderSystem:   render.NewNodeRenderSystem(em),
		callbackCounts: make(map[string]int),
	}
	s.actionSystem.SetVerbose(cfg.Playback.Verbose)

	for i := range cfg.Nodes {
		nc := cfg.Nodes[i]
		template, err := cfg.Build(nc.Script, s.callbacksFor(nc.Script))
		if err != nil {
			return nil, fmt.Errorf("node %q: %w", nc.ID, err)
		}

		id := em.CreateEntity()
		ecs.AddComponent(em, id, components.NewNodeComponent(nc.ID, types.V(nc.X, nc.Y)))
		if images != nil {
			c, err := config.ParseColor(nc.Color)
			if err != nil {
				return nil, fmt.Errorf("node %q: %w", nc.ID, err)
			}
			ecs.AddComponent(em, id, render.NewSpriteComponent(images(nc.Size, c)))
		}

		s.nodes = append(s.nodes, &showcaseNode{cfg: nc, entity: id, template: template})
	}

	if err := s.Restart(); err != nil {
		return nil, err
	}
	log.Printf("[Showcase] 加载 %d 个节点", len(s.nodes))
	return s, nil
}

// callbacksFor 为脚本中的每个 call 动作注册计数回调
func (s *Showcase) callbacksFor(script string) map[string]func() {
	sc, ok := s.config.Script(script)
	if !ok {
		return nil
	}
	callbacks := make(map[string]func())
	for _, name := range sc.Action.Callbacks() {
		callbacks[name] = func() {
			s.callbackCounts[name]++
			if s.config.Playback.Verbose {
				log.Printf("[Showcase] 回调 %q (t=%.2fs)", name, s.clock)
			}
		}
	}
	return callbacks
}

// Restart 把所有节点复位到初始状态并重新运行脚本
func (s *Showcase) Restart() error {
	s.clock = 0
	for _, n := range s.nodes {
		s.actionSystem.StopAllActions(n.entity)

		node, ok := ecs.GetComponent[*components.NodeComponent](s.entityManager, n.entity)
		if !ok {
			return fmt.Errorf("node %q has no NodeComponent", n.cfg.ID)
		}
		*node = *components.NewNodeComponent(n.cfg.ID, types.V(n.cfg.X, n.cfg.Y))

		if err := s.actionSystem.RunAction(n.entity, n.cfg.Script, n.template); err != nil {
			return fmt.Errorf("node %q: %w", n.cfg.ID, err)
		}
	}
	return nil
}

// TogglePause 暂停或恢复所有节点
func (s *Showcase) TogglePause() {
	s.paused = !s.paused
	for _, n := range s.nodes {
		s.actionSystem.SetPaused(n.entity, s.paused)
	}
	log.Printf("[Showcase] paused=%v", s.paused)
}

// Paused 是否暂停
func (s *Showcase) Paused() bool {
	return s.paused
}

// Tick 推进 dt 秒（乘以配置的全局倍率）
func (s *Showcase) Tick(dt float64) {
	dt *= s.config.Playback.Speed
	if !s.paused {
		s.clock += dt
	}
	s.actionSystem.Update(dt)
	s.entityManager.RemoveMarkedEntities()
}

// Clock 自上次 Restart 以来的展示时间
func (s *Showcase) Clock() float64 {
	return s.clock
}

// Node 按配置 id 查找节点
func (s *Showcase) Node(id string) (*components.NodeComponent, bool) {
	for _, n := range s.nodes {
		if n.cfg.ID == id {
			return ecs.GetComponent[*components.NodeComponent](s.entityManager, n.entity)
		}
	}
	return nil, false
}

// RunningCount 所有节点上运行中的动作总数
func (s *Showcase) RunningCount() int {
	total := 0
	for _, n := range s.nodes {
		total += s.actionSystem.RunningCount(n.entity)
	}
	return total
}

// CallbackCount 回调 name 被触发的次数
func (s *Showcase) CallbackCount(name string) int {
	return s.callbackCounts[name]
}

// Draw 绘制背景和所有节点
func (s *Showcase) Draw(screen *ebiten.Image) {
	bg, err := config.ParseColor(s.config.Window.Background)
	if err != nil {
		bg = color.RGBA{A: 255}
	}
	screen.Fill(bg)
	s.renderSystem.Draw(screen)
}
