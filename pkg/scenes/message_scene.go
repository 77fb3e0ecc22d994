package scenes

import (
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/decker502/heartcatch/pkg/components"
	"github.com/decker502/heartcatch/pkg/config"
	"github.com/decker502/heartcatch/pkg/ecs"
	"github.com/decker502/heartcatch/pkg/systems"
	"github.com/decker502/heartcatch/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 留言页布局与动画参数
const (
	roseFlipSeconds   = 0.6
	roseRadiusPx      = 48.0
	roseCenterYPx     = 160.0
	cardWidthPx       = 600.0
	cardTopPx         = 230.0
	cardPaddingPx     = 24.0
	lineHeightPx      = 30.0
	cursorBlinkPeriod = 1.0

	rainHeartCount    = 20
	rainCycleSeconds  = 3.0
	rainSpeedPercent  = 110.0 / rainCycleSeconds
	floatHeartSeconds = 1.0
	floatSpeedPercent = -15.0

	clickMeCenterYPx = 540.0
)

// MessageScene 留言页
//
//  1. 玫瑰翻入，点击玫瑰开始逐字显示留言
//  2. 留言显示完毕后爱心雨持续落下，延迟后出现 "Click Me!" 按钮
//  3. 任意位置点击都会冒出一颗上浮的爱心
type MessageScene struct {
	entityManager    *ecs.EntityManager
	typewriterSystem *systems.TypewriterSystem
	driftSystem      *systems.DriftHeartSystem
	typewriterEntity ecs.EntityID

	rng *rand.Rand

	elapsed         float64
	sinceComplete   float64
	messageComplete bool
	clickMeDelay    float64
	clickMe         button
	done            bool
	onComplete      func()

	bodyFace   *text.GoTextFace
	buttonFace *text.GoTextFace
}

// NewMessageScene 创建留言场景
// rng 为 nil 时使用随机种子；onComplete 在点击 "Click Me!" 时调用一次
func NewMessageScene(cfg *config.GreetingConfig, rng *rand.Rand, onComplete func()) *MessageScene {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	em := ecs.NewEntityManager()

	s := &MessageScene{
		entityManager:    em,
		typewriterSystem: systems.NewTypewriterSystem(em),
		driftSystem:      systems.NewDriftHeartSystem(em),
		rng:              rng,
		clickMeDelay:     cfg.ClickMeDelay().Seconds(),
		clickMe: button{
			label:  "Click Me!",
			x:      float64(config.GameWindowWidth) / 2,
			y:      clickMeCenterYPx,
			width:  180,
			height: 48,
		},
		onComplete: onComplete,
		bodyFace:   newFace(BodyFontSize),
		buttonFace: newFace(ButtonFontSize),
	}

	tw := components.NewTypewriterComponent(cfg.Message, cfg.TypingInterval().Seconds())
	tw.OnComplete = s.startRain
	s.typewriterEntity = em.CreateEntity()
	ecs.AddComponent(em, s.typewriterEntity, tw)

	return s
}

// Update 处理点击并推进动画
func (s *MessageScene) Update(deltaTime float64) {
	if clicked, x, y := utils.IsJustTouchedOrClicked(); clicked {
		s.handleClick(x, y)
	}
	s.advance(deltaTime)
}

func (s *MessageScene) advance(deltaTime float64) {
	s.elapsed += deltaTime
	s.typewriterSystem.Update(deltaTime)
	s.driftSystem.Update(deltaTime)
	if s.messageComplete {
		s.sinceComplete += deltaTime
	}
}

// handleClick 屏幕坐标的点击
func (s *MessageScene) handleClick(x, y int) {
	fx := float64(x) / config.GameWindowWidth * config.FieldPercent
	fy := float64(y) / config.GameWindowHeight * config.FieldPercent
	systems.NewDriftHeart(s.entityManager, fx, fy, components.DriftHeartComponent{
		VelocityY: floatSpeedPercent,
		Lifetime:  floatHeartSeconds,
	})

	tw := s.typewriter()
	if !tw.Started && s.roseHit(x, y) {
		s.typewriterSystem.Start(s.typewriterEntity)
		log.Printf("[MessageScene] Rose clicked, revealing %d characters", len(tw.Runes))
		return
	}

	if s.clickMeVisible() && !s.done && s.clickMe.contains(x, y) {
		s.done = true
		log.Printf("[MessageScene] Click Me pressed")
		if s.onComplete != nil {
			s.onComplete()
		}
	}
}

func (s *MessageScene) roseHit(x, y int) bool {
	cx := float64(config.GameWindowWidth) / 2
	return math.Hypot(float64(x)-cx, float64(y)-roseCenterYPx) <= roseRadiusPx
}

func (s *MessageScene) clickMeVisible() bool {
	return s.messageComplete && s.sinceComplete >= s.clickMeDelay
}

// startRain 留言显示完毕：开始爱心雨
func (s *MessageScene) startRain() {
	s.messageComplete = true
	for i := 0; i < rainHeartCount; i++ {
		x := s.rng.Float64() * config.FieldPercent
		systems.NewDriftHeart(s.entityManager, x, -5, components.DriftHeartComponent{
			VelocityY: rainSpeedPercent,
			Delay:     s.rng.Float64() * rainCycleSeconds,
			Lifetime:  rainCycleSeconds,
			Repeat:    true,
		})
	}
	log.Printf("[MessageScene] Message complete, %d rain hearts started", rainHeartCount)
}

func (s *MessageScene) typewriter() *components.TypewriterComponent {
	tw, _ := ecs.GetComponent[*components.TypewriterComponent](s.entityManager, s.typewriterEntity)
	return tw
}

// Draw 绘制玫瑰、留言卡片、爱心和按钮
func (s *MessageScene) Draw(screen *ebiten.Image) {
	drawGradient(screen, colorBackgroundTop, colorBackgroundBottom)
	s.drawDriftHearts(screen)
	s.drawRose(screen)

	tw := s.typewriter()
	if tw.Started {
		s.drawCard(screen, tw)
	}

	if s.clickMeVisible() {
		s.clickMe.draw(screen, s.buttonFace, 1, 1)
	}
}

func (s *MessageScene) drawRose(screen *ebiten.Image) {
	// 翻入：水平缩放 0 -> 1
	flip := utils.EaseOutCubic(utils.Progress(s.elapsed, roseFlipSeconds))
	cx := float32(config.GameWindowWidth) / 2
	cy := float32(roseCenterYPx)
	r := float32(roseRadiusPx)

	petals := []struct{ dx, dy float32 }{{-0.45, -0.2}, {0.45, -0.2}, {0, -0.5}, {-0.3, 0.3}, {0.3, 0.3}}
	for _, p := range petals {
		vector.DrawFilledCircle(screen, cx+p.dx*r*float32(flip), cy+p.dy*r, r*0.55*float32(flip), colorHeartLight, true)
	}
	vector.DrawFilledCircle(screen, cx, cy, r*0.45*float32(flip), colorHeart, true)
	vector.StrokeLine(screen, cx, cy+r*0.6, cx, cy+r*1.4, 4, colorBucketRim, true)
}

func (s *MessageScene) drawCard(screen *ebiten.Image, tw *components.TypewriterComponent) {
	cx := float64(config.GameWindowWidth) / 2
	left := cx - cardWidthPx/2

	visible := tw.VisibleText()
	if !tw.IsComplete && math.Mod(s.elapsed, cursorBlinkPeriod) < cursorBlinkPeriod/2 {
		visible += "|"
	}
	lines := utils.WrapText(visible, s.bodyFace, cardWidthPx-2*cardPaddingPx)

	height := float64(len(lines))*lineHeightPx + 2*cardPaddingPx
	vector.DrawFilledRect(screen, float32(left), cardTopPx, cardWidthPx, float32(height), colorCard, true)

	for i, line := range lines {
		drawText(screen, line, s.bodyFace, left+cardPaddingPx, cardTopPx+cardPaddingPx+float64(i)*lineHeightPx, colorText)
	}
}

func (s *MessageScene) drawDriftHearts(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith2[*components.DriftHeartComponent, *components.PositionComponent](s.entityManager) {
		drift, _ := ecs.GetComponent[*components.DriftHeartComponent](s.entityManager, id)
		if drift.Delay > 0 {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		x, y := config.FieldToScreen(pos.X, pos.Y)
		drawHeart(screen, x, y, config.HeartSizePx, colorHeart, drift.Alpha())
	}
}
