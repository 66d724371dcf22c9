package actions

import (
	"fmt"
	"log"
)

// Sequence 依次运行子动作
//
// 状态：未开始 → 运行第 i 个子动作 → 完成。
// 每帧只有当前子动作获得时间，时间不会在子动作之间拆分或结转；
// 启动后立即完成的子动作（瞬时动作）会被跳过，全部为瞬时动作时在 Start 内即完成。
type Sequence struct {
	base
	actions []Action

	index   int
	current Action
	done    bool
}

// NewSequence 创建序列；子动作在此处被克隆，之后修改参数不影响序列
func NewSequence(actions ...Action) (*Sequence, error) {
	if len(actions) == 0 {
		return nil, invalidf("Sequence: no actions")
	}
	children := make([]Action, len(actions))
	for i, a := range actions {
		if a == nil {
			return nil, invalidf("Sequence: action %d is nil", i)
		}
		children[i] = a.Clone()
	}
	return &Sequence{actions: children, index: -1}, nil
}

// Len 子动作数量
func (s *Sequence) Len() int {
	return len(s.actions)
}

// Index 当前运行的子动作下标，未开始时为 -1
func (s *Sequence) Index() int {
	return s.index
}

func (s *Sequence) Start(target Target) error {
	// 重新启动前先结束上一轮
	if s.running {
		s.Stop()
	}
	if err := s.bind(target, "Sequence"); err != nil {
		return err
	}
	s.index = -1
	s.current = nil
	s.done = false
	if err := s.advance(); err != nil {
		s.release()
		return err
	}
	return nil
}

// advance 启动下一个未立即完成的子动作，迭代跳过瞬时动作
func (s *Sequence) advance() error {
	for {
		s.index++
		if s.index >= len(s.actions) {
			s.current = nil
			s.done = true
			return nil
		}
		next := s.actions[s.index].Clone()
		if err := next.Start(s.target); err != nil {
			return fmt.Errorf("sequence child %d: %w", s.index, err)
		}
		if !next.Done() {
			s.current = next
			return nil
		}
		next.Stop()
	}
}

func (s *Sequence) Step(dt float64) {
	if !s.running || s.done || s.current == nil {
		return
	}
	s.current.Step(dt)
	if !s.current.Done() {
		return
	}
	s.current.Stop()
	s.current = nil
	if err := s.advance(); err != nil {
		log.Printf("[Sequence] %v, aborting", err)
		s.done = true
	}
}

// Stop 中止当前子动作
func (s *Sequence) Stop() {
	if !s.running {
		return
	}
	if s.current != nil {
		s.current.Stop()
		s.current = nil
	}
	s.release()
}

func (s *Sequence) Done() bool {
	return s.done
}

// Clone 子动作模板不可变，可在副本之间共享
func (s *Sequence) Clone() Action {
	return &Sequence{actions: s.actions, index: -1}
}

// Reverse 反转每个子动作并倒序排列
func (s *Sequence) Reverse() (Action, error) {
	reversed := make([]Action, 0, len(s.actions))
	for i := len(s.actions) - 1; i >= 0; i-- {
		r, err := s.actions[i].Reverse()
		if err != nil {
			return nil, fmt.Errorf("sequence child %d: %w", i, err)
		}
		reversed = append(reversed, r)
	}
	return NewSequence(reversed...)
}

var _ Action = (*Sequence)(nil)
