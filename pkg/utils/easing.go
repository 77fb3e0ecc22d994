package utils

import "math"

// Easing Functions (缓动函数)
//
// 所有函数接受一个进度值 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]。
// 参考：https://easings.net/

// EaseOutCubic 三次方缓出
// 开始快，结束慢（开场淡入、结算浮层缩放）
// 公式：f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// EaseInOutSine 正弦缓入缓出（爱心呼吸缩放）
func EaseInOutSine(t float64) float64 {
	return -(math.Cos(math.Pi*t) - 1) / 2
}

// Progress 计算动画进度并裁剪到 [0, 1]
// duration <= 0 视为已完成
func Progress(elapsed, duration float64) float64 {
	if duration <= 0 {
		return 1
	}
	return Clamp01(elapsed / duration)
}

// Clamp01 裁剪到 [0, 1]
func Clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// PingPong 在 [0, 1] 之间往返，周期为 period 秒
func PingPong(elapsed, period float64) float64 {
	if period <= 0 {
		return 0
	}
	phase := math.Mod(elapsed, period) / period
	if phase < 0.5 {
		return phase * 2
	}
	return 2 - phase*2
}

// Lerp 线性插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
