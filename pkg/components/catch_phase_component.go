package components

// CatchPhase 小游戏阶段
type CatchPhase int

const (
	// PhaseRunning 进行中（初始阶段）
	PhaseRunning CatchPhase = iota
	// PhaseWon 接满目标数量，终态
	PhaseWon
	// PhaseLost 倒计时归零且未达标，终态
	PhaseLost
)

// String 返回阶段名称，用于日志
func (p CatchPhase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	default:
		return "unknown"
	}
}

// CatchPhaseComponent 一局小游戏的状态记录
//
// 状态转换是单向的：
//
//	Running --(Score 达到 Target)--> Won
//	Running --(TimeRemaining 归零且 Score < Target)--> Lost
//
// 进入终态后 RecordCatch 和 CountDown 都不再修改任何字段，
// 只有 Reset 能回到 Running。
type CatchPhaseComponent struct {
	Phase         CatchPhase
	Score         int
	Target        int
	TimeRemaining int // 剩余秒数
}

// NewCatchPhaseComponent 创建处于 Running 的状态记录
func NewCatchPhaseComponent(target, seconds int) *CatchPhaseComponent {
	c := &CatchPhaseComponent{}
	c.Reset(target, seconds)
	return c
}

// Reset 回到初始状态
func (c *CatchPhaseComponent) Reset(target, seconds int) {
	c.Phase = PhaseRunning
	c.Score = 0
	c.Target = target
	c.TimeRemaining = seconds
}

// IsRunning 是否仍在进行
func (c *CatchPhaseComponent) IsRunning() bool {
	return c.Phase == PhaseRunning
}

// IsTerminal 是否已进入 Won 或 Lost
func (c *CatchPhaseComponent) IsTerminal() bool {
	return c.Phase == PhaseWon || c.Phase == PhaseLost
}

// RecordCatch 记录一次接住
// 返回 true 表示本次接住触发了 Won；终态下调用无效果
func (c *CatchPhaseComponent) RecordCatch() bool {
	if !c.IsRunning() {
		return false
	}
	c.Score++
	if c.Score >= c.Target {
		c.Phase = PhaseWon
		return true
	}
	return false
}

// CountDown 倒计时减一秒
// 返回 true 表示本次触发了 Lost；终态下调用无效果
func (c *CatchPhaseComponent) CountDown() bool {
	if !c.IsRunning() {
		return false
	}
	if c.TimeRemaining > 0 {
		c.TimeRemaining--
	}
	if c.TimeRemaining == 0 && c.Score < c.Target {
		c.Phase = PhaseLost
		return true
	}
	return false
}
