package actions

import "math/rand"

// randFloat64 随机源，测试中可替换
var randFloat64 = rand.Float64

// Delay 什么也不做的时长动作，用于在序列中占位
type Delay struct {
	base
	intervalTimer
}

// NewDelay 创建 Delay 动作
func NewDelay(duration float64) *Delay {
	return &Delay{intervalTimer: newIntervalTimer(duration)}
}

func (a *Delay) Start(target Target) error {
	if err := a.bind(target, "Delay"); err != nil {
		return err
	}
	a.reset()
	return nil
}

func (a *Delay) Step(dt float64) {
	if !a.running || a.Done() {
		return
	}
	a.advance(dt)
}

func (a *Delay) Update(float64) {}

func (a *Delay) Stop() {
	a.release()
}

func (a *Delay) Clone() Action {
	return NewDelay(a.duration)
}

func (a *Delay) Reverse() (Action, error) {
	return NewDelay(a.duration), nil
}

// RandomDelay 时长在构造时从 [min, max] 均匀采样一次的 Delay
//
// Clone 会重新采样，模板每次复用都得到新的时长。
type RandomDelay struct {
	Delay
	min, max float64
}

// NewRandomDelay 创建 RandomDelay，要求 0 <= min <= max
func NewRandomDelay(min, max float64) (*RandomDelay, error) {
	if min < 0 || min > max {
		return nil, invalidf("RandomDelay: invalid range [%.3f, %.3f]", min, max)
	}
	return newRandomDelay(min, max), nil
}

func newRandomDelay(min, max float64) *RandomDelay {
	d := min + randFloat64()*(max-min)
	return &RandomDelay{Delay: *NewDelay(d), min: min, max: max}
}

// Range 采样区间
func (a *RandomDelay) Range() (min, max float64) {
	return a.min, a.max
}

func (a *RandomDelay) Clone() Action {
	return newRandomDelay(a.min, a.max)
}

func (a *RandomDelay) Reverse() (Action, error) {
	return newRandomDelay(a.min, a.max), nil
}

var (
	_ IntervalAction = (*Delay)(nil)
	_ IntervalAction = (*RandomDelay)(nil)
)
