package components

// CatcherComponent 玩家控制的桶
//
// Position 是桶在 x 方向上的位置，始终被限制在 [Min, Max] 内。
// 只有 CatcherInputSystem 会写入 Position，其它系统只读。
type CatcherComponent struct {
	Position float64
	Min      float64
	Max      float64
	Step     float64 // 方向键每次移动的距离
}
