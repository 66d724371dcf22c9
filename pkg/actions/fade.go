package actions

// FadeTo 透明度渐变到 end，没有通用反转
type FadeTo struct {
	ChangeTo[float64]
}

// NewFadeTo 在 duration 秒内把透明度变为 end
func NewFadeTo(end, duration float64) *FadeTo {
	return &FadeTo{ChangeTo: *NewChangeTo(OpacityAttr, end, duration)}
}

func (a *FadeTo) Clone() Action {
	return NewFadeTo(a.end, a.duration)
}

// FadeIn 淡入，等价于 FadeTo(1.0)
type FadeIn struct {
	ChangeTo[float64]
}

// NewFadeIn 在 duration 秒内淡入
func NewFadeIn(duration float64) *FadeIn {
	return &FadeIn{ChangeTo: *NewChangeTo(OpacityAttr, 1.0, duration)}
}

func (a *FadeIn) Clone() Action {
	return NewFadeIn(a.duration)
}

func (a *FadeIn) Reverse() (Action, error) {
	return NewFadeOut(a.duration), nil
}

// FadeOut 淡出，等价于 FadeTo(0.0)
type FadeOut struct {
	ChangeTo[float64]
}

// NewFadeOut 在 duration 秒内淡出
func NewFadeOut(duration float64) *FadeOut {
	return &FadeOut{ChangeTo: *NewChangeTo(OpacityAttr, 0.0, duration)}
}

func (a *FadeOut) Clone() Action {
	return NewFadeOut(a.duration)
}

func (a *FadeOut) Reverse() (Action, error) {
	return NewFadeIn(a.duration), nil
}

var (
	_ IntervalAction = (*FadeTo)(nil)
	_ IntervalAction = (*FadeIn)(nil)
	_ IntervalAction = (*FadeOut)(nil)
)
