package actions

// timeEpsilon 累积误差容差：剩余时间小于它时直接视为到达终点
const timeEpsilon = 1e-9

// intervalTimer 时长动作的计时状态
//
// elapsed 单调不减，且被限制在 [0, duration] 内。
type intervalTimer struct {
	duration float64
	elapsed  float64
}

func newIntervalTimer(duration float64) intervalTimer {
	// 负时长按 0 处理
	if duration < 0 || duration != duration {
		duration = 0
	}
	return intervalTimer{duration: duration}
}

// Duration 动作时长（秒）
func (it *intervalTimer) Duration() float64 {
	return it.duration
}

// Elapsed 已经过的时间（秒）
func (it *intervalTimer) Elapsed() float64 {
	return it.elapsed
}

// Done elapsed >= duration；时长为 0 时立即完成
func (it *intervalTimer) Done() bool {
	return it.elapsed >= it.duration
}

func (it *intervalTimer) reset() {
	it.elapsed = 0
}

// advance 推进 dt 并返回新的归一化进度
func (it *intervalTimer) advance(dt float64) float64 {
	if dt > 0 {
		it.elapsed += dt
	}
	if it.elapsed > it.duration || it.duration-it.elapsed < timeEpsilon {
		it.elapsed = it.duration
	}
	return it.progress()
}

// progress 归一化进度，时长为 0 时恒为 1，不做除法
func (it *intervalTimer) progress() float64 {
	if it.duration <= 0 {
		return 1
	}
	return it.elapsed / it.duration
}
