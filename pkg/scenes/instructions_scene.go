package scenes

import (
	"log"

	"github.com/decker502/heartcatch/pkg/config"
	"github.com/decker502/heartcatch/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// InstructionsScene 游戏说明卡片，显示固定时长后开始小游戏
type InstructionsScene struct {
	title      string
	lines      []string
	duration   float64
	elapsed    float64
	done       bool
	onComplete func()

	titleFace *text.GoTextFace
	bodyFace  *text.GoTextFace
}

// NewInstructionsScene 创建说明场景
func NewInstructionsScene(cfg *config.GreetingConfig, onComplete func()) *InstructionsScene {
	return &InstructionsScene{
		title:      cfg.Instructions.Title,
		lines:      cfg.Instructions.Lines,
		duration:   cfg.InstructionsDuration().Seconds(),
		onComplete: onComplete,
		titleFace:  newFace(OverlayFontSize),
		bodyFace:   newFace(BodyFontSize),
	}
}

// Update 计时，到时调用 onComplete
func (s *InstructionsScene) Update(deltaTime float64) {
	if s.done {
		return
	}
	s.elapsed += deltaTime
	if s.elapsed >= s.duration {
		s.done = true
		log.Printf("[InstructionsScene] Shown for %.2fs, starting game", s.elapsed)
		if s.onComplete != nil {
			s.onComplete()
		}
	}
}

// Draw 绘制说明卡片（淡入）
func (s *InstructionsScene) Draw(screen *ebiten.Image) {
	drawGradient(screen, colorBackgroundTop, colorBackgroundBottom)

	alpha := utils.EaseOutCubic(utils.Progress(s.elapsed, 0.4))
	cx := float64(config.GameWindowWidth) / 2
	top := 170.0
	height := 110 + float64(len(s.lines))*lineHeightPx

	vector.DrawFilledRect(screen, float32(cx-cardWidthPx/2), float32(top), cardWidthPx, float32(height), colorCard, true)
	drawCenteredText(screen, s.title, s.titleFace, cx, top+24, colorHeart, alpha)
	for i, line := range s.lines {
		drawCenteredText(screen, line, s.bodyFace, cx, top+84+float64(i)*lineHeightPx, colorText, alpha)
	}
}
