package scenes

import (
	"math/rand"
	"testing"

	"github.com/decker502/heartcatch/pkg/components"
	"github.com/decker502/heartcatch/pkg/config"
	"github.com/decker502/heartcatch/pkg/ecs"
)

func newTestMessageScene(onComplete func()) *MessageScene {
	cfg := config.DefaultGreetingConfig()
	cfg.Message = "Hi you"
	cfg.TypingIntervalMs = 50
	cfg.ClickMeDelayMs = 1000
	return NewMessageScene(cfg, rand.New(rand.NewSource(7)), onComplete)
}

func driftHeartCount(s *MessageScene) int {
	return len(ecs.GetEntitiesWith1[*components.DriftHeartComponent](s.entityManager))
}

func TestMessageSceneRoseStartsTypewriter(t *testing.T) {
	s := newTestMessageScene(nil)
	roseX := config.GameWindowWidth / 2

	// 点击玫瑰以外的位置不会开始
	s.handleClick(10, 10)
	if s.typewriter().Started {
		t.Fatal("typewriter should not start from a click outside the rose")
	}

	s.handleClick(roseX, int(roseCenterYPx))
	if !s.typewriter().Started {
		t.Fatal("clicking the rose should start the typewriter")
	}
	if driftHeartCount(s) != 2 {
		t.Errorf("each click should spawn a floating heart, got %d", driftHeartCount(s))
	}
}

func TestMessageSceneRainAndClickMe(t *testing.T) {
	completed := 0
	s := newTestMessageScene(func() { completed++ })
	s.handleClick(config.GameWindowWidth/2, int(roseCenterYPx))

	// "Hi you" 6 个字符 * 50ms，0.5 秒足够显示完毕
	for i := 0; i < 30; i++ {
		s.advance(1.0 / 60.0)
	}
	if !s.messageComplete {
		t.Fatalf("message should be complete, revealed=%d", s.typewriter().Revealed)
	}
	// 点击冒出的爱心 1 秒寿命，0.5 秒时仍在
	if got := driftHeartCount(s); got != rainHeartCount+1 {
		t.Errorf("drift hearts = %d, want %d rain + 1 floating", got, rainHeartCount)
	}

	// 按钮延迟出现前点击无效
	s.handleClick(int(s.clickMe.x), int(s.clickMe.y))
	if completed != 0 {
		t.Fatal("Click Me should not be clickable before its delay")
	}

	for i := 0; i < 70; i++ {
		s.advance(1.0 / 60.0)
	}
	if !s.clickMeVisible() {
		t.Fatal("Click Me should be visible after the delay")
	}

	s.handleClick(int(s.clickMe.x), int(s.clickMe.y))
	s.handleClick(int(s.clickMe.x), int(s.clickMe.y))
	if completed != 1 {
		t.Errorf("onComplete calls = %d, want 1", completed)
	}
	t.Logf("✓ rain started with %d hearts and Click Me completed the scene once", rainHeartCount)
}
