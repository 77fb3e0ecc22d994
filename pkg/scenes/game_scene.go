package scenes

import (
	"fmt"
	"log"

	"github.com/decker502/heartcatch/pkg/components"
	"github.com/decker502/heartcatch/pkg/config"
	"github.com/decker502/heartcatch/pkg/game"
	"github.com/decker502/heartcatch/pkg/systems"
	"github.com/decker502/heartcatch/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	// overlayScaleSeconds 结算浮层缩放动画时长
	overlayScaleSeconds = 0.35
	// catchFlashSeconds 接住爱心时桶的闪光时长
	catchFlashSeconds = 0.2
)

// GameScene 接爱心小游戏场景
// 进入时启动会话，离开（OnExit）时停止全部驱动
type GameScene struct {
	session  *game.CatchSession
	greeting *config.GreetingConfig
	sounds   SoundPlayer // 可为 nil

	drag      *utils.DragManager
	lastDragX int // 上一帧拖拽的指针 x

	catchFlash     float64
	overlayElapsed float64
	resultButton   button

	hudFace     *text.GoTextFace
	overlayFace *text.GoTextFace
	buttonFace  *text.GoTextFace
}

// NewGameScene 创建并启动一局小游戏
// sounds 为 nil 时静音；onRestart 在玩家关闭结算浮层时调用，导航由调用方决定
func NewGameScene(catchCfg *config.CatchConfig, greeting *config.GreetingConfig, sounds SoundPlayer, onRestart func()) *GameScene {
	s := &GameScene{
		greeting: greeting,
		sounds:   sounds,
		drag:     utils.NewDragManager(),
		resultButton: button{
			x:      float64(config.GameWindowWidth) / 2,
			y:      float64(config.GameWindowHeight)/2 + 60,
			width:  280,
			height: 52,
		},
		hudFace:     newFace(HUDFontSize),
		overlayFace: newFace(OverlayFontSize),
		buttonFace:  newFace(ButtonFontSize),
	}

	s.session = game.NewCatchSession(catchCfg,
		game.WithStepListener(s.onStep),
		game.WithFinishListener(s.onFinish),
		game.WithRestartCallback(onRestart),
	)
	s.session.Start()
	return s
}

func (s *GameScene) onStep(result systems.StepResult) {
	if len(result.Caught) > 0 {
		s.catchFlash = catchFlashSeconds
		if s.sounds != nil && !result.Won {
			s.sounds.PlayCatch()
		}
	}
}

func (s *GameScene) onFinish(phase components.CatchPhase) {
	s.overlayElapsed = 0
	if phase == components.PhaseWon {
		s.resultButton.label = s.greeting.Result.WonButton
	} else {
		s.resultButton.label = s.greeting.Result.LostButton
	}
	if s.sounds != nil {
		if phase == components.PhaseWon {
			s.sounds.PlayWon()
		} else {
			s.sounds.PlayLost()
		}
	}
	log.Printf("[GameScene] Showing result overlay: %v", phase)
}

// Update 读取输入、推进会话和动画
func (s *GameScene) Update(deltaTime float64) {
	if s.catchFlash > 0 {
		s.catchFlash -= deltaTime
	}

	if s.session.IsFinished() {
		s.overlayElapsed += deltaTime
		clicked, x, y := utils.IsJustTouchedOrClicked()
		if (clicked && s.resultButton.contains(x, y)) || utils.IsConfirmJustPressed() {
			s.session.Dismiss()
		}
		return
	}

	s.handleInput()
	s.session.Update(deltaTime)
}

func (s *GameScene) handleInput() {
	if utils.IsKeyRepeating(ebiten.KeyArrowLeft) || utils.IsKeyRepeating(ebiten.KeyA) {
		s.session.MoveLeft()
	}
	if utils.IsKeyRepeating(ebiten.KeyArrowRight) || utils.IsKeyRepeating(ebiten.KeyD) {
		s.session.MoveRight()
	}

	s.drag.Update()
	s.applyPointer(s.drag.GetInfo())
}

// applyPointer 按住拖动且指针移动后才把桶移到指针位置，返回是否移动
// 按下瞬间只记录起点；静止按住时不覆盖同一帧的键盘移动
func (s *GameScene) applyPointer(info utils.DragInfo) bool {
	switch info.State {
	case utils.DragStateStarted:
		s.lastDragX = info.CurrentX
	case utils.DragStateDragging:
		if info.CurrentX == s.lastDragX {
			return false
		}
		s.lastDragX = info.CurrentX
		s.session.PointTo(float64(info.CurrentX), config.GameWindowWidth)
		return true
	}
	return false
}

// OnExit 离开场景时停止会话
func (s *GameScene) OnExit() {
	s.session.Stop()
}

// Session 当前会话
func (s *GameScene) Session() *game.CatchSession {
	return s.session
}

// Draw 绘制爱心、桶、HUD 和结算浮层
func (s *GameScene) Draw(screen *ebiten.Image) {
	drawGradient(screen, colorBackgroundTop, colorBackgroundBottom)

	snap := s.session.Snapshot()
	for _, h := range snap.Hearts {
		x, y := config.FieldToScreen(h.X, h.Y)
		drawHeart(screen, x, y, config.HeartSizePx, colorHeart, 1)
	}

	s.drawBucket(screen, snap.Catcher)
	s.drawHUD(screen, snap)

	if snap.Phase != components.PhaseRunning {
		s.drawOverlay(screen, snap.Phase)
	}
}

func (s *GameScene) drawBucket(screen *ebiten.Image, catcher float64) {
	cx, _ := config.FieldToScreen(catcher, 0)
	left := float32(cx - config.BucketWidthPx/2)
	top := float32(config.GameWindowHeight - config.BucketBottomMarginPx - config.BucketHeightPx)

	body := colorBucket
	if s.catchFlash > 0 {
		body = colorHeartLight
	}
	vector.DrawFilledRect(screen, left, top, config.BucketWidthPx, config.BucketHeightPx, body, true)
	vector.StrokeRect(screen, left, top, config.BucketWidthPx, config.BucketHeightPx, 3, colorBucketRim, true)
}

func (s *GameScene) drawHUD(screen *ebiten.Image, snap game.Snapshot) {
	x := float64(config.GameWindowWidth) - config.HUDMarginPx - 160
	drawText(screen, fmt.Sprintf("Time: %ds", snap.TimeRemaining), s.hudFace, x, config.HUDMarginPx, colorText)
	drawText(screen, fmt.Sprintf("Hearts: %d/%d", snap.Score, snap.Target), s.hudFace, x, config.HUDMarginPx+32, colorText)
}

func (s *GameScene) drawOverlay(screen *ebiten.Image, phase components.CatchPhase) {
	vector.DrawFilledRect(screen, 0, 0, config.GameWindowWidth, config.GameWindowHeight, colorShade, false)

	scale := utils.EaseOutCubic(utils.Progress(s.overlayElapsed, overlayScaleSeconds))
	cx := float64(config.GameWindowWidth) / 2
	cy := float64(config.GameWindowHeight) / 2
	w, h := 520*scale, 240*scale
	vector.DrawFilledRect(screen, float32(cx-w/2), float32(cy-h/2), float32(w), float32(h), colorCard, true)

	title := s.greeting.Result.LostTitle
	if phase == components.PhaseWon {
		title = s.greeting.Result.WonTitle
	}
	drawCenteredText(screen, title, s.overlayFace, cx, cy-70*scale, colorHeart, scale)
	s.resultButton.draw(screen, s.buttonFace, scale, scale)
}
