package scenes

import (
	"log"

	"github.com/decker502/heartcatch/pkg/config"
	"github.com/decker502/heartcatch/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// LandingScene 开场过渡：粉色渐变上淡入标题，结束后进入留言页
// 点击、触摸或任意按键可跳过
type LandingScene struct {
	title      string
	duration   float64
	elapsed    float64
	done       bool
	onComplete func()

	titleFace *text.GoTextFace
}

// NewLandingScene 创建开场场景
// onComplete 在过渡结束（或被跳过）时调用一次
func NewLandingScene(cfg *config.GreetingConfig, onComplete func()) *LandingScene {
	return &LandingScene{
		title:      cfg.Title,
		duration:   cfg.LandingDuration().Seconds(),
		onComplete: onComplete,
		titleFace:  newFace(TitleFontSize),
	}
}

// Update 推进淡入动画
func (s *LandingScene) Update(deltaTime float64) {
	clicked, _, _ := utils.IsJustTouchedOrClicked()
	s.advance(deltaTime, clicked || utils.IsAnyKeyJustPressed())
}

func (s *LandingScene) advance(deltaTime float64, skip bool) {
	if s.done {
		return
	}
	s.elapsed += deltaTime
	if skip || s.elapsed >= s.duration {
		s.done = true
		log.Printf("[LandingScene] Transition complete (skipped=%v, %.2fs)", skip, s.elapsed)
		if s.onComplete != nil {
			s.onComplete()
		}
	}
}

// alpha 标题透明度
func (s *LandingScene) alpha() float64 {
	return utils.EaseOutCubic(utils.Progress(s.elapsed, s.duration))
}

// Draw 绘制渐变背景和标题
func (s *LandingScene) Draw(screen *ebiten.Image) {
	drawGradient(screen, colorBackgroundTop, colorBackgroundBottom)

	alpha := s.alpha()
	cx := float64(config.GameWindowWidth) / 2
	cy := float64(config.GameWindowHeight) / 2

	// 标题上方的心跳爱心
	pulse := 1 + 0.08*utils.EaseInOutSine(utils.PingPong(s.elapsed, 1.2))
	drawHeart(screen, cx, cy-90, 80*pulse, colorHeart, alpha)
	drawCenteredText(screen, s.title, s.titleFace, cx, cy-20, colorText, alpha)
}
