package systems

import (
	"fmt"
	"log"

	"github.com/gonewx/actionkit/pkg/actions"
	"github.com/gonewx/actionkit/pkg/components"
	"github.com/gonewx/actionkit/pkg/ecs"
)

// ActionSystem 每帧推进实体上的动作（调度器）
//
// 调度契约：
//  1. RunAction 克隆模板，绑定实体的 NodeComponent 并 Start
//  2. Update 每帧对每个运行中的动作调用一次 Step(dt)
//  3. 动作 Done 后调用一次 Stop 并移除
//
// 实体按 ID 升序处理，同一实体上的动作按添加顺序处理。
type ActionSystem struct {
	entityManager *ecs.EntityManager
	verbose       bool
}

// NewActionSystem 创建动作系统
func NewActionSystem(em *ecs.EntityManager) *ActionSystem {
	return &ActionSystem{
		entityManager: em,
	}
}

// SetVerbose 打开后记录每个动作的启动和结束
func (s *ActionSystem) SetVerbose(v bool) {
	s.verbose = v
}

// RunAction 在实体上运行 template 的一个副本
//
// 参数：
//   - id: 目标实体，必须拥有 NodeComponent
//   - tag: 可选标签，供 StopAction 使用
//   - template: 动作模板，不会被修改
//
// 返回：
//   - error: 实体没有节点或动作启动失败
func (s *ActionSystem) RunAction(id ecs.EntityID, tag string, template actions.Action) error {
	if template == nil {
		return fmt.Errorf("run action on entity %d: nil action", id)
	}
	node, ok := ecs.GetComponent[*components.NodeComponent](s.entityManager, id)
	if !ok {
		return fmt.Errorf("run action on entity %d: entity has no NodeComponent", id)
	}

	run := template.Clone()
	if err := run.Start(node); err != nil {
		return fmt.Errorf("run action on entity %d: %w", id, err)
	}

	// 瞬时动作在 Start 内已经完成，不进入运行列表
	if run.Done() {
		run.Stop()
		if s.verbose {
			log.Printf("[ActionSystem] 动作瞬时完成 (实体ID: %d, tag: %q)", id, tag)
		}
		return nil
	}

	comp, ok := ecs.GetComponent[*components.ActionComponent](s.entityManager, id)
	if !ok {
		comp = &components.ActionComponent{}
		ecs.AddComponent(s.entityManager, id, comp)
	}
	comp.Running = append(comp.Running, &components.RunningAction{Tag: tag, Action: run})

	if s.verbose {
		log.Printf("[ActionSystem] 开始动作 (实体ID: %d, tag: %q, 运行中: %d)", id, tag, len(comp.Running))
	}
	return nil
}

// Update 推进所有实体上的动作
func (s *ActionSystem) Update(deltaTime float64) {
	if deltaTime < 0 {
		deltaTime = 0
	}

	entities := ecs.GetEntitiesWith2[*components.ActionComponent, *components.NodeComponent](s.entityManager)
	for _, id := range entities {
		comp, ok := ecs.GetComponent[*components.ActionComponent](s.entityManager, id)
		if !ok || comp.Paused {
			continue
		}

		// 回调中可能对同一实体调用 RunAction / StopAction，先摘下本帧要推进的列表
		running := comp.Running
		comp.Running = nil
		comp.Stepping = running

		alive := make([]*components.RunningAction, 0, len(running))
		for _, ra := range running {
			if ra.Cancelled {
				ra.Action.Stop()
				continue
			}
			ra.Action.Step(deltaTime)
			ra.Elapsed += deltaTime
			if ra.Cancelled {
				ra.Action.Stop()
				continue
			}
			if ra.Action.Done() {
				ra.Action.Stop()
				if s.verbose {
					log.Printf("[ActionSystem] 动作完成 (实体ID: %d, tag: %q, 用时: %.3fs)", id, ra.Tag, ra.Elapsed)
				}
				continue
			}
			alive = append(alive, ra)
		}
		comp.Stepping = nil
		// 本帧新加入的动作排在后面，下一帧开始推进
		comp.Running = append(alive, comp.Running...)
	}
}

// cancelStepping 标记正在推进的列表中匹配的动作，由 Update 负责 Stop
func cancelStepping(comp *components.ActionComponent, match func(*components.RunningAction) bool) int {
	n := 0
	for _, ra := range comp.Stepping {
		if !ra.Cancelled && match(ra) {
			ra.Cancelled = true
			n++
		}
	}
	return n
}

// StopAction 中止实体上所有带 tag 的动作，返回中止的数量
func (s *ActionSystem) StopAction(id ecs.EntityID, tag string) int {
	comp, ok := ecs.GetComponent[*components.ActionComponent](s.entityManager, id)
	if !ok {
		return 0
	}

	stopped := cancelStepping(comp, func(ra *components.RunningAction) bool { return ra.Tag == tag })
	alive := comp.Running[:0]
	for _, ra := range comp.Running {
		if ra.Tag == tag {
			ra.Action.Stop()
			stopped++
			continue
		}
		alive = append(alive, ra)
	}
	for i := len(alive); i < len(comp.Running); i++ {
		comp.Running[i] = nil
	}
	comp.Running = alive

	if stopped > 0 && s.verbose {
		log.Printf("[ActionSystem] 取消动作 (实体ID: %d, tag: %q, 数量: %d)", id, tag, stopped)
	}
	return stopped
}

// StopAllActions 中止实体上的全部动作
func (s *ActionSystem) StopAllActions(id ecs.EntityID) {
	comp, ok := ecs.GetComponent[*components.ActionComponent](s.entityManager, id)
	if !ok {
		return
	}
	stopped := cancelStepping(comp, func(*components.RunningAction) bool { return true })
	for _, ra := range comp.Running {
		ra.Action.Stop()
	}
	stopped += len(comp.Running)
	comp.Running = nil

	if stopped > 0 && s.verbose {
		log.Printf("[ActionSystem] 取消全部动作 (实体ID: %d, 数量: %d)", id, stopped)
	}
}

// SetPaused 暂停或恢复实体上的动作
func (s *ActionSystem) SetPaused(id ecs.EntityID, paused bool) {
	comp, ok := ecs.GetComponent[*components.ActionComponent](s.entityManager, id)
	if !ok {
		comp = &components.ActionComponent{}
		ecs.AddComponent(s.entityManager, id, comp)
	}
	comp.Paused = paused
}

// IsRunning 实体上是否还有运行中的动作
func (s *ActionSystem) IsRunning(id ecs.EntityID) bool {
	return s.RunningCount(id) > 0
}

// RunningCount 实体上运行中的动作数量
func (s *ActionSystem) RunningCount(id ecs.EntityID) int {
	comp, ok := ecs.GetComponent[*components.ActionComponent](s.entityManager, id)
	if !ok {
		return 0
	}
	n := len(comp.Running)
	for _, ra := range comp.Stepping {
		if !ra.Cancelled {
			n++
		}
	}
	return n
}

// DestroyEntity 中止实体上的动作后标记删除
func (s *ActionSystem) DestroyEntity(id ecs.EntityID) {
	s.StopAllActions(id)
	s.entityManager.DestroyEntity(id)
}
