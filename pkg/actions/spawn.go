package actions

import (
	"fmt"
)

// Spawn 同时运行所有子动作，全部完成后结束
//
// "并行" 指同一次 Step 内按固定顺序依次推进每个子动作，不涉及多线程。
type Spawn struct {
	base
	actions []Action

	active []Action
	done   bool
}

// NewSpawn 创建并行组合；子动作在此处被克隆
func NewSpawn(actions ...Action) (*Spawn, error) {
	if len(actions) == 0 {
		return nil, invalidf("Spawn: no actions")
	}
	children := make([]Action, len(actions))
	for i, a := range actions {
		if a == nil {
			return nil, invalidf("Spawn: action %d is nil", i)
		}
		children[i] = a.Clone()
	}
	return &Spawn{actions: children}, nil
}

// Len 子动作数量
func (s *Spawn) Len() int {
	return len(s.actions)
}

// Remaining 仍在运行的子动作数量
func (s *Spawn) Remaining() int {
	return len(s.active)
}

func (s *Spawn) Start(target Target) error {
	// 重新启动前先结束上一轮
	if s.running {
		s.Stop()
	}
	if err := s.bind(target, "Spawn"); err != nil {
		return err
	}
	s.active = make([]Action, 0, len(s.actions))
	s.done = false
	for i, tmpl := range s.actions {
		a := tmpl.Clone()
		if err := a.Start(target); err != nil {
			s.Stop()
			return fmt.Errorf("spawn child %d: %w", i, err)
		}
		if a.Done() {
			a.Stop()
			continue
		}
		s.active = append(s.active, a)
	}
	s.done = len(s.active) == 0
	return nil
}

func (s *Spawn) Step(dt float64) {
	if !s.running || s.done {
		return
	}
	alive := s.active[:0]
	for _, a := range s.active {
		a.Step(dt)
		if a.Done() {
			a.Stop()
			continue
		}
		alive = append(alive, a)
	}
	for i := len(alive); i < len(s.active); i++ {
		s.active[i] = nil
	}
	s.active = alive
	s.done = len(s.active) == 0
}

// Stop 中止所有仍在运行的子动作
func (s *Spawn) Stop() {
	if !s.running {
		return
	}
	for _, a := range s.active {
		a.Stop()
	}
	s.active = nil
	s.release()
}

func (s *Spawn) Done() bool {
	return s.done
}

func (s *Spawn) Clone() Action {
	return &Spawn{actions: s.actions}
}

// Reverse 逐个反转子动作，顺序保持不变
func (s *Spawn) Reverse() (Action, error) {
	reversed := make([]Action, len(s.actions))
	for i, a := range s.actions {
		r, err := a.Reverse()
		if err != nil {
			return nil, fmt.Errorf("spawn child %d: %w", i, err)
		}
		reversed[i] = r
	}
	return NewSpawn(reversed...)
}

var _ Action = (*Spawn)(nil)
