// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// IsJustTouchedOrClicked 检查是否刚刚发生点击或触摸
// 返回是否点击以及点击位置
func IsJustTouchedOrClicked() (bool, int, int) {
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return true, x, y
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}

	return false, 0, 0
}

// GetPointerState 获取指针的完整状态
// 返回：是否按下、X坐标、Y坐标（触摸优先）
func GetPointerState() (pressed bool, x, y int) {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y = ebiten.TouchPosition(touchIDs[0])
		return true, x, y
	}

	x, y = ebiten.CursorPosition()
	pressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	return pressed, x, y
}

// IsAnyKeyJustPressed 本帧是否有任意按键按下（用于"按任意键跳过"）
func IsAnyKeyJustPressed() bool {
	return len(inpututil.AppendJustPressedKeys(nil)) > 0
}

// IsConfirmJustPressed Enter / Space
func IsConfirmJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace)
}

// ============================================================================
// 按键重复：按住方向键时桶连续移动
// ============================================================================

const (
	// KeyRepeatDelayTicks 首次重复前等待的帧数
	KeyRepeatDelayTicks = 15
	// KeyRepeatIntervalTicks 之后每隔多少帧重复一次
	KeyRepeatIntervalTicks = 3
)

// ShouldRepeat 根据按住的帧数判断本帧是否触发
// duration 为 inpututil.KeyPressDuration 的返回值：
// 第 1 帧触发，然后等待 KeyRepeatDelayTicks，再每 KeyRepeatIntervalTicks 触发
func ShouldRepeat(duration int) bool {
	if duration <= 0 {
		return false
	}
	if duration == 1 {
		return true
	}
	if duration <= KeyRepeatDelayTicks {
		return false
	}
	return (duration-KeyRepeatDelayTicks)%KeyRepeatIntervalTicks == 0
}

// IsKeyRepeating 按键本帧是否按下或处于重复触发点
func IsKeyRepeating(key ebiten.Key) bool {
	return ShouldRepeat(inpututil.KeyPressDuration(key))
}

// ============================================================================
// 拖拽状态管理器 - 用于拖动桶
// ============================================================================

// DragState 拖拽状态
type DragState int

const (
	// DragStateNone 无拖拽
	DragStateNone DragState = iota
	// DragStateStarted 拖拽开始（刚按下）
	DragStateStarted
	// DragStateDragging 拖拽中（按住移动）
	DragStateDragging
	// DragStateEnded 拖拽结束（释放）
	DragStateEnded
)

// DragInfo 拖拽信息
type DragInfo struct {
	State              DragState
	StartX, StartY     int
	CurrentX, CurrentY int
	// TouchID 当前跟踪的触摸ID（-1表示鼠标）
	TouchID      ebiten.TouchID
	IsTouchInput bool
}

// DragManager 跟踪触摸/鼠标的拖拽状态
// 每个场景持有自己的实例
type DragManager struct {
	info DragInfo
}

// NewDragManager 创建空闲状态的拖拽管理器
func NewDragManager() *DragManager {
	dm := &DragManager{}
	dm.Reset()
	return dm
}

// Update 更新拖拽状态（每帧调用一次）
func (dm *DragManager) Update() {
	switch dm.info.State {
	case DragStateNone:
		dm.checkDragStart()

	case DragStateStarted, DragStateDragging:
		if dm.checkDragEnd() {
			dm.info.State = DragStateEnded
		} else {
			dm.info.State = DragStateDragging
			dm.updateCurrentPosition()
		}

	case DragStateEnded:
		// 结束状态只持续一帧
		dm.Reset()
	}
}

func (dm *DragManager) checkDragStart() {
	justPressed := inpututil.AppendJustPressedTouchIDs(nil)
	if len(justPressed) > 0 {
		touchID := justPressed[0]
		x, y := ebiten.TouchPosition(touchID)
		dm.begin(x, y, touchID, true)
		return
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		dm.begin(x, y, -1, false)
	}
}

func (dm *DragManager) begin(x, y int, touchID ebiten.TouchID, touch bool) {
	dm.info = DragInfo{
		State:        DragStateStarted,
		StartX:       x,
		StartY:       y,
		CurrentX:     x,
		CurrentY:     y,
		TouchID:      touchID,
		IsTouchInput: touch,
	}
}

func (dm *DragManager) checkDragEnd() bool {
	if dm.info.IsTouchInput {
		for _, id := range ebiten.AppendTouchIDs(nil) {
			if id == dm.info.TouchID {
				return false
			}
		}
		return true
	}
	return !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

func (dm *DragManager) updateCurrentPosition() {
	if dm.info.IsTouchInput {
		for _, id := range ebiten.AppendTouchIDs(nil) {
			if id == dm.info.TouchID {
				dm.info.CurrentX, dm.info.CurrentY = ebiten.TouchPosition(id)
				return
			}
		}
		return
	}
	dm.info.CurrentX, dm.info.CurrentY = ebiten.CursorPosition()
}

// Reset 重置拖拽状态
func (dm *DragManager) Reset() {
	dm.info = DragInfo{
		State:   DragStateNone,
		TouchID: -1,
	}
}

// GetState 当前拖拽状态
func (dm *DragManager) GetState() DragState {
	return dm.info.State
}

// GetInfo 完整拖拽信息
func (dm *DragManager) GetInfo() DragInfo {
	return dm.info
}

// IsActive 拖拽刚开始或进行中
func (dm *DragManager) IsActive() bool {
	return dm.info.State == DragStateStarted || dm.info.State == DragStateDragging
}

// Position 当前拖拽位置
func (dm *DragManager) Position() (int, int) {
	return dm.info.CurrentX, dm.info.CurrentY
}
