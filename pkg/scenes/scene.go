package scenes

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents one screen of the greeting (landing, message, instructions, game).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Exiter 是一个可选接口：场景被替换时调用 OnExit 释放资源
// 小游戏场景在这里停止全部驱动
type Exiter interface {
	OnExit()
}

// SceneManager controls which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene Scene
}

// NewSceneManager creates a manager with no active scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SwitchTo 切换到新场景，先通知旧场景退出
func (sm *SceneManager) SwitchTo(scene Scene) {
	if exiter, ok := sm.currentScene.(Exiter); ok {
		exiter.OnExit()
	}
	sm.currentScene = scene
	log.Printf("[SceneManager] Switched to %T", scene)
}

// GetCurrentScene 返回当前活动的场景，没有则返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Update updates the currently active scene.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
