package components

import "github.com/gonewx/actionkit/pkg/actions"

// RunningAction 一个已绑定到实体节点、正在运行的动作实例
type RunningAction struct {
	// Tag 可选标签，用于 StopAction 定向取消；为空表示无标签
	Tag string

	// Action 由模板 Clone 得到的运行实例（不是模板本身）
	Action actions.Action

	// Elapsed 已运行的累计时间（秒），用于调试输出
	Elapsed float64

	// Cancelled 在推进过程中被取消，由 ActionSystem 在本帧结束前 Stop 并移除
	Cancelled bool
}

// ActionComponent 实体上正在运行的动作列表
//
// 生命周期:
//  1. ActionSystem.RunAction 克隆模板、Start 后追加到 Running
//  2. ActionSystem.Update 每帧按追加顺序推进，完成的动作 Stop 后移除
//  3. StopAction / StopAllActions 可随时中止
//
// 注意事项:
//   - 组件只包含数据，推进逻辑全部在 ActionSystem
//   - Paused 为 true 时本帧不分配时间
//   - Update 推进期间，本帧的列表暂存在 Stepping，Running 只保存新加入的动作
type ActionComponent struct {
	Running  []*RunningAction
	Stepping []*RunningAction
	Paused   bool
}
