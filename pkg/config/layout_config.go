package config

// 布局配置常量
// 游戏逻辑使用百分比坐标（0~100），这里定义逻辑屏幕尺寸以及百分比到像素的映射

const (
	// GameWindowWidth 逻辑屏幕宽度（像素），Ebitengine 负责缩放到实际窗口
	GameWindowWidth = 800

	// GameWindowHeight 逻辑屏幕高度（像素）
	GameWindowHeight = 600

	// FieldPercent 游戏区域在两个方向上的百分比跨度
	FieldPercent = 100.0

	// HeartSizePx 爱心绘制尺寸
	HeartSizePx = 28.0

	// BucketWidthPx / BucketHeightPx 桶的绘制尺寸
	BucketWidthPx  = 72.0
	BucketHeightPx = 56.0

	// BucketBottomMarginPx 桶底部距屏幕下沿的距离
	BucketBottomMarginPx = 40.0

	// HUDMarginPx HUD 距右上角的边距
	HUDMarginPx = 16.0
)

// FieldToScreen 将百分比坐标转换为屏幕像素坐标
func FieldToScreen(fieldX, fieldY float64) (float64, float64) {
	return fieldX / FieldPercent * GameWindowWidth, fieldY / FieldPercent * GameWindowHeight
}

// ScreenToFieldX 将屏幕像素 X 转换为百分比 X，不做裁剪
func ScreenToFieldX(screenX float64) float64 {
	return screenX / GameWindowWidth * FieldPercent
}
