package components

// TypewriterComponent 逐字显示的文本
type TypewriterComponent struct {
	// Runes 完整文本
	Runes []rune

	// Revealed 已显示的字符数
	Revealed int

	// Interval 每个字符的间隔（秒）
	Interval float64

	// Elapsed 距上一个字符显示已过去的时间（秒）
	Elapsed float64

	// Started 是否已开始显示（留言场景中点击玫瑰后才开始）
	Started bool

	// IsComplete 是否已全部显示
	IsComplete bool

	// OnComplete 全部显示完毕时调用一次，可为 nil
	OnComplete func()
}

// NewTypewriterComponent 创建未开始的打字机组件
func NewTypewriterComponent(text string, intervalSeconds float64) *TypewriterComponent {
	return &TypewriterComponent{
		Runes:    []rune(text),
		Interval: intervalSeconds,
	}
}

// VisibleText 当前已显示的文本
func (c *TypewriterComponent) VisibleText() string {
	return string(c.Runes[:c.Revealed])
}
