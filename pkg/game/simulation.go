package game

import (
	"fmt"

	"github.com/gonewx/actionkit/pkg/actions"
	"github.com/gonewx/actionkit/pkg/components"
	"github.com/gonewx/actionkit/pkg/ecs"
	"github.com/gonewx/actionkit/pkg/systems"
	"github.com/gonewx/actionkit/pkg/types"
)

// NodeState 节点在某一帧的快照
type NodeState struct {
	Position types.Vec2
	Rotation float64
	Scale    types.Vec2
	Opacity  float64
	Visible  bool
}

func snapshot(n *components.NodeComponent) NodeState {
	return NodeState{
		Position: n.Pos,
		Rotation: n.Angle,
		Scale:    n.Scaling,
		Opacity:  n.Alpha,
		Visible:  n.IsVisible,
	}
}

// Frame 一帧模拟结果
type Frame struct {
	Index int
	Time  float64
	State NodeState
	Done  bool
}

// SimulationOptions 模拟参数
type SimulationOptions struct {
	DeltaTime float64    // 每帧时长（秒）
	MaxFrames int        // 最多推进的帧数（Loop 等永不完成的动作靠它结束）
	Start     types.Vec2 // 节点初始位置
}

// DefaultSimulationOptions 每帧 0.1s，最多 600 帧
func DefaultSimulationOptions() SimulationOptions {
	return SimulationOptions{DeltaTime: 0.1, MaxFrames: 600}
}

// Simulation 无头运行单个节点上的动作（不需要窗口）
type Simulation struct {
	opts          SimulationOptions
	entityManager *ecs.EntityManager
	actionSystem  *systems.ActionSystem
	entity        ecs.EntityID
	node          *components.NodeComponent
}

// NewSimulation 创建只有一个节点的模拟场景
func NewSimulation(opts SimulationOptions) (*Simulation, error) {
	if opts.DeltaTime <= 0 {
		return nil, fmt.Errorf("simulation dt must be positive, got %v", opts.DeltaTime)
	}
	if opts.MaxFrames <= 0 {
		return nil, fmt.Errorf("simulation max frames must be positive, got %d", opts.MaxFrames)
	}

	em := ecs.NewEntityManager()
	id := em.CreateEntity()
	node := components.NewNodeComponent("sim", opts.Start)
	ecs.AddComponent(em, id, node)

	return &Simulation{
		opts:          opts,
		entityManager: em,
		actionSystem:  systems.NewActionSystem(em),
		entity:        id,
		node:          node,
	}, nil
}

// Node 被模拟的节点
func (s *Simulation) Node() *components.NodeComponent {
	return s.node
}

// State 节点当前状态
func (s *Simulation) State() NodeState {
	return snapshot(s.node)
}

// Run 在节点当前状态上运行 template，每帧回调 onFrame（第 0 帧为启动后的状态）
//
// 返回最后一帧；动作在 MaxFrames 内没有完成时 Done 为 false。
func (s *Simulation) Run(template actions.Action, onFrame func(Frame)) (Frame, error) {
	if err := s.actionSystem.RunAction(s.entity, "sim", template); err != nil {
		return Frame{}, err
	}

	frame := Frame{State: s.State(), Done: !s.actionSystem.IsRunning(s.entity)}
	if onFrame != nil {
		onFrame(frame)
	}

	for i := 1; i <= s.opts.MaxFrames && !frame.Done; i++ {
		s.actionSystem.Update(s.opts.DeltaTime)
		frame = Frame{
			Index: i,
			Time:  float64(i) * s.opts.DeltaTime,
			State: s.State(),
			Done:  !s.actionSystem.IsRunning(s.entity),
		}
		if onFrame != nil {
			onFrame(frame)
		}
	}

	// 未完成的动作（如 Loop）在这里中止
	s.actionSystem.StopAllActions(s.entity)
	return frame, nil
}
