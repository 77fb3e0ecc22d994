package app

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/decker502/heartcatch/pkg/embedded"
	"github.com/decker502/heartcatch/pkg/game"
	"github.com/decker502/heartcatch/pkg/scenes"
)

func TestLoadConfigsDefaultsWithoutEmbeddedData(t *testing.T) {
	embedded.Init(nil)

	catchCfg, greetingCfg, err := loadConfigs()
	if err != nil {
		t.Fatalf("loadConfigs() error: %v", err)
	}
	if catchCfg.TargetScore != 10 || greetingCfg.Title == "" {
		t.Errorf("expected defaults, got %+v / %+v", catchCfg, greetingCfg)
	}
}

func TestLoadConfigsFromEmbeddedData(t *testing.T) {
	embedded.Init(fstest.MapFS{
		CatchConfigPath:    {Data: []byte("targetScore: 7\n")},
		GreetingConfigPath: {Data: []byte("title: Hello\n")},
	})
	t.Cleanup(func() { embedded.Init(nil) })

	catchCfg, greetingCfg, err := loadConfigs()
	if err != nil {
		t.Fatalf("loadConfigs() error: %v", err)
	}
	if catchCfg.TargetScore != 7 {
		t.Errorf("TargetScore = %d, want 7", catchCfg.TargetScore)
	}
	if greetingCfg.Title != "Hello" {
		t.Errorf("Title = %q, want Hello", greetingCfg.Title)
	}
}

func TestLoadConfigsRejectsInvalidData(t *testing.T) {
	embedded.Init(fstest.MapFS{
		CatchConfigPath: {Data: []byte("targetScore: 0\n")},
	})
	t.Cleanup(func() { embedded.Init(nil) })

	_, _, err := loadConfigs()
	if err == nil || !strings.Contains(err.Error(), "targetScore") {
		t.Errorf("expected targetScore validation error, got %v", err)
	}
}

func newRoutingApp(skipIntro bool) *App {
	return &App{
		sceneManager: scenes.NewSceneManager(),
		gameState:    game.GetGameState(),
		skipIntro:    skipIntro,
	}
}

func TestAppRouting(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	a := newRoutingApp(false)

	a.showLanding()
	if _, ok := a.sceneManager.GetCurrentScene().(*scenes.LandingScene); !ok {
		t.Fatalf("expected landing scene, got %T", a.sceneManager.GetCurrentScene())
	}

	a.showGame()
	gameScene, ok := a.sceneManager.GetCurrentScene().(*scenes.GameScene)
	if !ok {
		t.Fatalf("expected game scene, got %T", a.sceneManager.GetCurrentScene())
	}

	a.onGameDismissed()
	if _, ok := a.sceneManager.GetCurrentScene().(*scenes.LandingScene); !ok {
		t.Errorf("dismissing the result should route to landing, got %T", a.sceneManager.GetCurrentScene())
	}
	if gameScene.Session().IsRunning() {
		t.Error("leaving the game scene should stop its session")
	}
	t.Logf("✓ landing -> game -> landing routing stops the old session")
}

func TestAppRoutingSkipIntroRestartsGame(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	a := newRoutingApp(true)

	a.showGame()
	first := a.sceneManager.GetCurrentScene()
	a.onGameDismissed()
	second, ok := a.sceneManager.GetCurrentScene().(*scenes.GameScene)
	if !ok || second == first {
		t.Fatalf("skip intro should start a fresh game scene, got %T", a.sceneManager.GetCurrentScene())
	}
	a.Shutdown()
	if second.Session().IsRunning() {
		t.Error("Shutdown should stop the active session")
	}
}

func TestLayout(t *testing.T) {
	a := &App{}
	w, h := a.Layout(1920, 1080)
	if w != 800 || h != 600 {
		t.Errorf("Layout() = %dx%d, want 800x600", w, h)
	}
}
