package game

import (
	"log"

	"github.com/decker502/heartcatch/pkg/config"
	"github.com/quasilyte/gdata/v2"
)

// AppName gdata 存储目录使用的应用名
const AppName = "heartcatch"

// GameState 进程级共享状态
// 持有存储、设置与已加载的配置；每局小游戏的状态在 CatchSession 中，不在这里
type GameState struct {
	gdataManager    *gdata.Manager
	settingsManager *SettingsManager

	catchConfig    *config.CatchConfig
	greetingConfig *config.GreetingConfig
}

// 全局单例（唯一允许的全局变量）
var globalGameState *GameState

// GetGameState 返回全局 GameState，首次调用时初始化
func GetGameState() *GameState {
	if globalGameState == nil {
		globalGameState = newGameState()
	}
	return globalGameState
}

// resetGlobalGameState 丢弃全局单例（测试用）
func resetGlobalGameState() {
	globalGameState = nil
}

func newGameState() *GameState {
	gs := &GameState{
		catchConfig:    config.DefaultCatchConfig(),
		greetingConfig: config.DefaultGreetingConfig(),
	}

	manager, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		// 降级：设置只保存在内存中
		log.Printf("[GameState] gdata unavailable: %v (settings will not persist)", err)
		manager = nil
	}
	gs.gdataManager = manager

	sm, err := NewSettingsManager(manager)
	if err != nil {
		log.Printf("[GameState] Settings manager error: %v", err)
	}
	gs.settingsManager = sm

	return gs
}

// GetGdataManager 存储管理器，可能为 nil
func (gs *GameState) GetGdataManager() *gdata.Manager {
	return gs.gdataManager
}

// GetSettingsManager 设置管理器
// 降级模式下返回仅内存的设置管理器，不会返回 nil
func (gs *GameState) GetSettingsManager() *SettingsManager {
	if gs.settingsManager == nil {
		gs.settingsManager, _ = NewSettingsManager(nil)
	}
	return gs.settingsManager
}

// CatchConfig 小游戏参数
func (gs *GameState) CatchConfig() *config.CatchConfig {
	return gs.catchConfig
}

// GreetingConfig 贺卡文案
func (gs *GameState) GreetingConfig() *config.GreetingConfig {
	return gs.greetingConfig
}

// SetConfigs 替换已加载的配置，nil 参数保持原值
func (gs *GameState) SetConfigs(catch *config.CatchConfig, greeting *config.GreetingConfig) {
	if catch != nil {
		gs.catchConfig = catch
	}
	if greeting != nil {
		gs.greetingConfig = greeting
	}
}
