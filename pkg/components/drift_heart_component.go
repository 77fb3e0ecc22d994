package components

// DriftHeartComponent 装饰用的漂浮爱心（留言页的爱心雨、点击冒出的爱心）
// 不参与小游戏判定；坐标同样存放在 PositionComponent 中（百分比）
type DriftHeartComponent struct {
	VelocityX float64 // 每秒移动的百分比
	VelocityY float64

	Delay    float64 // 开始移动前的等待时间（秒）
	Age      float64 // 已移动时间（秒）
	Lifetime float64 // 生命周期（秒）

	// Repeat 为 true 时到期后回到起点重新开始，否则销毁
	Repeat         bool
	StartX, StartY float64
}

// Alpha 随生命周期淡出的透明度
func (c *DriftHeartComponent) Alpha() float64 {
	if c.Lifetime <= 0 || c.Repeat {
		return 1
	}
	remaining := 1 - c.Age/c.Lifetime
	if remaining < 0 {
		return 0
	}
	return remaining
}
