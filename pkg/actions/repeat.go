package actions

import (
	"fmt"
	"log"
)

// Repeat 连续运行 times 个相互独立的子动作副本
//
// 每一轮都重新克隆子动作，上一轮的运行状态不会带入下一轮。
type Repeat struct {
	base
	action Action
	times  int

	count   int
	current Action
	done    bool
}

// NewRepeat 创建 Repeat；times 为 0 时在 Start 内立即完成，负数非法
func NewRepeat(action Action, times int) (*Repeat, error) {
	if action == nil {
		return nil, invalidf("Repeat: nil action")
	}
	if times < 0 {
		return nil, invalidf("Repeat: times must not be negative, got %d", times)
	}
	return &Repeat{action: action.Clone(), times: times}, nil
}

// Times 重复次数
func (r *Repeat) Times() int {
	return r.times
}

// Cycle 当前轮次（从 1 开始），完成后大于 Times()
func (r *Repeat) Cycle() int {
	return r.count
}

func (r *Repeat) Start(target Target) error {
	// 重新启动前先结束上一轮
	if r.running {
		r.Stop()
	}
	if err := r.bind(target, "Repeat"); err != nil {
		return err
	}
	r.count = 0
	r.current = nil
	r.done = false
	if err := r.next(); err != nil {
		r.release()
		return err
	}
	return nil
}

// next 开始下一轮；轮次超过 times 时标记完成
func (r *Repeat) next() error {
	for {
		r.count++
		if r.count > r.times {
			r.current = nil
			r.done = true
			return nil
		}
		a := r.action.Clone()
		if err := a.Start(r.target); err != nil {
			return fmt.Errorf("repeat cycle %d: %w", r.count, err)
		}
		if !a.Done() {
			r.current = a
			return nil
		}
		a.Stop()
	}
}

func (r *Repeat) Step(dt float64) {
	if !r.running || r.done || r.current == nil {
		return
	}
	r.current.Step(dt)
	if !r.current.Done() {
		return
	}
	r.current.Stop()
	r.current = nil
	if err := r.next(); err != nil {
		log.Printf("[Repeat] %v, aborting", err)
		r.done = true
	}
}

func (r *Repeat) Stop() {
	if !r.running {
		return
	}
	if r.current != nil {
		r.current.Stop()
		r.current = nil
	}
	r.release()
}

func (r *Repeat) Done() bool {
	return r.done
}

func (r *Repeat) Clone() Action {
	return &Repeat{action: r.action, times: r.times}
}

func (r *Repeat) Reverse() (Action, error) {
	rev, err := r.action.Reverse()
	if err != nil {
		return nil, err
	}
	return NewRepeat(rev, r.times)
}

// Loop 无限重复子动作，Done 恒为 false，由调度器 Stop 后丢弃
//
// 子动作启动即完成时（全部是瞬时动作），每次 Step 只执行一轮，
// 避免在同一帧内无限循环。
type Loop struct {
	base
	action Action

	cycles  int
	current Action
}

// NewLoop 创建 Loop
func NewLoop(action Action) (*Loop, error) {
	if action == nil {
		return nil, invalidf("Loop: nil action")
	}
	return &Loop{action: action.Clone()}, nil
}

// Cycles 已开始的轮数
func (l *Loop) Cycles() int {
	return l.cycles
}

func (l *Loop) Start(target Target) error {
	// 重新启动前先结束上一轮
	if l.running {
		l.Stop()
	}
	if err := l.bind(target, "Loop"); err != nil {
		return err
	}
	l.cycles = 0
	l.current = nil
	if err := l.next(); err != nil {
		l.release()
		return err
	}
	return nil
}

func (l *Loop) next() error {
	a := l.action.Clone()
	l.cycles++
	if err := a.Start(l.target); err != nil {
		return fmt.Errorf("loop cycle %d: %w", l.cycles, err)
	}
	if a.Done() {
		a.Stop()
		l.current = nil
		return nil
	}
	l.current = a
	return nil
}

func (l *Loop) Step(dt float64) {
	if !l.running {
		return
	}
	if l.current != nil {
		l.current.Step(dt)
		if !l.current.Done() {
			return
		}
		l.current.Stop()
		l.current = nil
	}
	if err := l.next(); err != nil {
		log.Printf("[Loop] %v", err)
	}
}

func (l *Loop) Stop() {
	if !l.running {
		return
	}
	if l.current != nil {
		l.current.Stop()
		l.current = nil
	}
	l.release()
}

// Done Loop 永不完成
func (l *Loop) Done() bool {
	return false
}

func (l *Loop) Clone() Action {
	return &Loop{action: l.action}
}

func (l *Loop) Reverse() (Action, error) {
	rev, err := l.action.Reverse()
	if err != nil {
		return nil, err
	}
	return NewLoop(rev)
}

var (
	_ Action = (*Repeat)(nil)
	_ Action = (*Loop)(nil)
)
