package actions

import (
	"math"

	"github.com/tanema/gween/ease"
)

// wrapper 包装单个时长动作的公共实现
//
// 外层持有自己的时间线，把（可能被重映射的）进度交给内层的 Update，
// 内层自身的时长在运行时不参与计算。
type wrapper struct {
	base
	intervalTimer
	template IntervalAction

	inner IntervalAction
}

func newWrapper(action IntervalAction, duration float64) wrapper {
	return wrapper{
		intervalTimer: newIntervalTimer(duration),
		template:      cloneInterval(action),
	}
}

// Inner 被包装动作的模板
func (w *wrapper) Inner() IntervalAction {
	return w.template
}

func (w *wrapper) startInner(target Target, name string) error {
	// 重新启动前先结束上一轮
	if w.running {
		w.Stop()
	}
	if err := w.bind(target, name); err != nil {
		return err
	}
	w.reset()
	w.inner = cloneInterval(w.template)
	if err := w.inner.Start(target); err != nil {
		w.release()
		return err
	}
	return nil
}

func (w *wrapper) Stop() {
	if !w.running {
		return
	}
	w.inner.Stop()
	w.release()
}

func validFactor(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

// Speed 以 factor 倍速运行被包装的动作：duration = action.Duration() / factor
type Speed struct {
	wrapper
	factor float64
}

// NewSpeed 创建 Speed；factor 必须为正的有限值
func NewSpeed(action IntervalAction, factor float64) (*Speed, error) {
	if action == nil {
		return nil, invalidf("Speed: nil action")
	}
	if !validFactor(factor) {
		return nil, invalidf("Speed: factor must be positive, got %v", factor)
	}
	return &Speed{wrapper: newWrapper(action, action.Duration()/factor), factor: factor}, nil
}

// Factor 变速倍率
func (a *Speed) Factor() float64 {
	return a.factor
}

func (a *Speed) Start(target Target) error {
	return a.startInner(target, "Speed")
}

func (a *Speed) Step(dt float64) {
	if !a.running || a.Done() {
		return
	}
	a.Update(a.advance(dt))
}

// Update 进度原样交给内层
func (a *Speed) Update(t float64) {
	if !a.running {
		return
	}
	a.inner.Update(t)
}

func (a *Speed) Clone() Action {
	return &Speed{wrapper: newWrapper(a.template, a.duration), factor: a.factor}
}

func (a *Speed) Reverse() (Action, error) {
	r, err := reverseInterval(a.template)
	if err != nil {
		return nil, err
	}
	return NewSpeed(r, a.factor)
}

// Accelerate 时长不变，进度按 t^rate 重映射
type Accelerate struct {
	wrapper
	rate float64
}

// NewAccelerate 创建 Accelerate；rate 必须为正的有限值
func NewAccelerate(action IntervalAction, rate float64) (*Accelerate, error) {
	if action == nil {
		return nil, invalidf("Accelerate: nil action")
	}
	if !validFactor(rate) {
		return nil, invalidf("Accelerate: rate must be positive, got %v", rate)
	}
	return &Accelerate{wrapper: newWrapper(action, action.Duration()), rate: rate}, nil
}

// Rate 加速指数
func (a *Accelerate) Rate() float64 {
	return a.rate
}

func (a *Accelerate) Start(target Target) error {
	return a.startInner(target, "Accelerate")
}

func (a *Accelerate) Step(dt float64) {
	if !a.running || a.Done() {
		return
	}
	a.Update(a.advance(dt))
}

func (a *Accelerate) Update(t float64) {
	if !a.running {
		return
	}
	a.inner.Update(math.Pow(t, a.rate))
}

func (a *Accelerate) Clone() Action {
	return &Accelerate{wrapper: newWrapper(a.template, a.duration), rate: a.rate}
}

// Reverse 反转内层并使用 1/rate
func (a *Accelerate) Reverse() (Action, error) {
	r, err := reverseInterval(a.template)
	if err != nil {
		return nil, err
	}
	return NewAccelerate(r, 1/a.rate)
}

// accelDeccelSteepness logistic 曲线陡峭度
const accelDeccelSteepness = 12.0

// AccelDeccel 先加速后减速：t ≠ 1 时按中心 0.5 的 logistic 曲线重映射
//
// 曲线形状固定，rate 只随反转保留。
type AccelDeccel struct {
	wrapper
	rate float64
}

// NewAccelDeccel 创建 AccelDeccel；rate 必须为正的有限值
func NewAccelDeccel(action IntervalAction, rate float64) (*AccelDeccel, error) {
	if action == nil {
		return nil, invalidf("AccelDeccel: nil action")
	}
	if !validFactor(rate) {
		return nil, invalidf("AccelDeccel: rate must be positive, got %v", rate)
	}
	return &AccelDeccel{wrapper: newWrapper(action, action.Duration()), rate: rate}, nil
}

// Rate 构造时给定的 rate
func (a *AccelDeccel) Rate() float64 {
	return a.rate
}

func (a *AccelDeccel) Start(target Target) error {
	return a.startInner(target, "AccelDeccel")
}

func (a *AccelDeccel) Step(dt float64) {
	if !a.running || a.Done() {
		return
	}
	a.Update(a.advance(dt))
}

func (a *AccelDeccel) Update(t float64) {
	if !a.running {
		return
	}
	a.inner.Update(accelDeccelCurve(t))
}

func accelDeccelCurve(t float64) float64 {
	if t == 1 {
		return 1
	}
	return 1 / (1 + math.Exp(-(t-0.5)*accelDeccelSteepness))
}

func (a *AccelDeccel) Clone() Action {
	return &AccelDeccel{wrapper: newWrapper(a.template, a.duration), rate: a.rate}
}

func (a *AccelDeccel) Reverse() (Action, error) {
	r, err := reverseInterval(a.template)
	if err != nil {
		return nil, err
	}
	return NewAccelDeccel(r, a.rate)
}

// Ease 时长不变，进度按 gween 缓动函数重映射
type Ease struct {
	wrapper
	fn ease.TweenFunc
}

// NewEase 创建 Ease，fn 如 ease.OutBounce
func NewEase(action IntervalAction, fn ease.TweenFunc) (*Ease, error) {
	if action == nil {
		return nil, invalidf("Ease: nil action")
	}
	if fn == nil {
		return nil, invalidf("Ease: nil easing function")
	}
	return &Ease{wrapper: newWrapper(action, action.Duration()), fn: fn}, nil
}

func (a *Ease) Start(target Target) error {
	return a.startInner(target, "Ease")
}

func (a *Ease) Step(dt float64) {
	if !a.running || a.Done() {
		return
	}
	a.Update(a.advance(dt))
}

// Update 终点固定为 1，避免缓动函数的 float32 误差
func (a *Ease) Update(t float64) {
	if !a.running {
		return
	}
	if t >= 1 {
		a.inner.Update(1)
		return
	}
	a.inner.Update(float64(a.fn(float32(t), 0, 1, 1)))
}

func (a *Ease) Clone() Action {
	return &Ease{wrapper: newWrapper(a.template, a.duration), fn: a.fn}
}

// Reverse 反转内层，沿用同一缓动函数
func (a *Ease) Reverse() (Action, error) {
	r, err := reverseInterval(a.template)
	if err != nil {
		return nil, err
	}
	return NewEase(r, a.fn)
}

var (
	_ IntervalAction = (*Speed)(nil)
	_ IntervalAction = (*Accelerate)(nil)
	_ IntervalAction = (*AccelDeccel)(nil)
	_ IntervalAction = (*Ease)(nil)
)
