package actions

// Blink 在时长内均匀地切换可见性 times 次
//
// Stop 时恢复 Start 记录的可见性，不论切换次数的奇偶，中途取消也一样。
type Blink struct {
	base
	intervalTimer
	times int

	toggles  int
	original bool
}

// NewBlink 创建 Blink 动作，times 必须大于 0
func NewBlink(times int, duration float64) (*Blink, error) {
	if times <= 0 {
		return nil, invalidf("Blink: times must be positive, got %d", times)
	}
	return &Blink{intervalTimer: newIntervalTimer(duration), times: times}, nil
}

// Times 切换次数
func (a *Blink) Times() int {
	return a.times
}

// Toggles 本轮已经切换的次数
func (a *Blink) Toggles() int {
	return a.toggles
}

func (a *Blink) Start(target Target) error {
	// 重新启动前先结束上一轮
	if a.running {
		a.Stop()
	}
	if err := a.bind(target, "Blink"); err != nil {
		return err
	}
	a.reset()
	a.toggles = 0
	a.original = target.Visible()
	return nil
}

func (a *Blink) Step(dt float64) {
	if !a.running || a.Done() {
		return
	}
	a.Update(a.advance(dt))
}

// Update 每越过一个 1/times 边界翻转一次
func (a *Blink) Update(t float64) {
	if !a.running {
		return
	}
	for a.toggles < a.times && t >= float64(a.toggles+1)/float64(a.times) {
		a.target.SetVisible(!a.target.Visible())
		a.toggles++
	}
}

func (a *Blink) Stop() {
	if !a.running {
		return
	}
	a.target.SetVisible(a.original)
	a.release()
}

func (a *Blink) Clone() Action {
	return &Blink{intervalTimer: newIntervalTimer(a.duration), times: a.times}
}

// Reverse Blink 的反转是它自己
func (a *Blink) Reverse() (Action, error) {
	return a.Clone(), nil
}

var _ IntervalAction = (*Blink)(nil)
