package components

// HeartComponent 标记实体为下落中的爱心
// 位置保存在同一实体的 PositionComponent 中
type HeartComponent struct {
	// Sequence 本局内的生成序号，从 1 开始
	Sequence int
}

// PositionComponent 游戏区域内的百分比坐标
type PositionComponent struct {
	X float64
	Y float64
}
