// Package app 提供游戏应用的核心包装器
//
// 该包将初始化与场景路由从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"io/fs"
	"log"

	"github.com/decker502/heartcatch/pkg/config"
	"github.com/decker502/heartcatch/pkg/embedded"
	"github.com/decker502/heartcatch/pkg/game"
	"github.com/decker502/heartcatch/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// 嵌入的配置文件路径
const (
	CatchConfigPath    = "data/catch_game.yaml"
	GreetingConfigPath = "data/greeting.yaml"
)

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
//
// 场景路由：Landing -> Message -> Instructions -> Game -> (关闭结算) -> Landing
// 跳过开场时：Game -> (关闭结算) -> Game
type App struct {
	sceneManager *scenes.SceneManager
	gameState    *game.GameState
	sounds       scenes.SoundPlayer
	skipIntro    bool
	verbose      bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，应先调用 embedded.Init() 初始化嵌入资源；
// 未初始化时使用内置默认配置。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	gameState := game.GetGameState()

	catchCfg, greetingCfg, err := loadConfigs()
	if err != nil {
		return nil, err
	}
	gameState.SetConfigs(catchCfg, greetingCfg)

	settings := gameState.GetSettingsManager().GetSettings()
	if settings.Fullscreen {
		ebiten.SetFullscreen(true)
	}

	a := &App{
		sceneManager: scenes.NewSceneManager(),
		gameState:    gameState,
		sounds:       scenes.NewToneSounds(),
		skipIntro:    cfg.SkipIntro || settings.SkipIntro,
		verbose:      cfg.Verbose,
	}

	if a.skipIntro {
		log.Printf("[App] Skip intro enabled, starting the catch game directly")
		a.showGame()
	} else {
		a.showLanding()
	}
	return a, nil
}

// loadConfigs 从嵌入文件加载配置
// 文件缺失时使用默认值；文件存在但无效时返回错误
func loadConfigs() (*config.CatchConfig, *config.GreetingConfig, error) {
	catchCfg := config.DefaultCatchConfig()
	if data, err := readEmbedded(CatchConfigPath); err != nil {
		log.Printf("[App] %s unavailable (%v), using defaults", CatchConfigPath, err)
	} else if catchCfg, err = config.ParseCatchConfig(data); err != nil {
		return nil, nil, fmt.Errorf("小游戏配置加载失败: %w", err)
	}

	greetingCfg := config.DefaultGreetingConfig()
	if data, err := readEmbedded(GreetingConfigPath); err != nil {
		log.Printf("[App] %s unavailable (%v), using defaults", GreetingConfigPath, err)
	} else if greetingCfg, err = config.ParseGreetingConfig(data); err != nil {
		return nil, nil, fmt.Errorf("贺卡配置加载失败: %w", err)
	}

	log.Printf("[Config] Catch game: target=%d, duration=%ds, spawn every %dms",
		catchCfg.TargetScore, catchCfg.SessionSeconds, catchCfg.SpawnIntervalMs)
	return catchCfg, greetingCfg, nil
}

func readEmbedded(path string) ([]byte, error) {
	if !embedded.IsInitialized() {
		return nil, fs.ErrNotExist
	}
	data, err := embedded.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("[App] Failed to read %s: %v", path, err)
	}
	return data, err
}

// ============================================================================
// 场景路由
// ============================================================================

func (a *App) showLanding() {
	a.sceneManager.SwitchTo(scenes.NewLandingScene(a.gameState.GreetingConfig(), a.showMessage))
}

func (a *App) showMessage() {
	a.sceneManager.SwitchTo(scenes.NewMessageScene(a.gameState.GreetingConfig(), nil, a.showInstructions))
}

func (a *App) showInstructions() {
	a.sceneManager.SwitchTo(scenes.NewInstructionsScene(a.gameState.GreetingConfig(), a.showGame))
}

func (a *App) showGame() {
	a.sceneManager.SwitchTo(scenes.NewGameScene(a.gameState.CatchConfig(), a.gameState.GreetingConfig(), a.sounds, a.onGameDismissed))
}

// onGameDismissed 玩家关闭结算浮层
func (a *App) onGameDismissed() {
	if a.skipIntro {
		a.showGame()
		return
	}
	a.showLanding()
}

// ============================================================================
// ebiten.Game
// ============================================================================

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏并保存
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

func (a *App) toggleFullscreen() {
	fullscreen := !ebiten.IsFullscreen()
	ebiten.SetFullscreen(fullscreen)
	if !fullscreen {
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
	}

	sm := a.gameState.GetSettingsManager()
	sm.SetFullscreen(fullscreen)
	if err := sm.Save(); err != nil {
		log.Printf("[App] Failed to save fullscreen setting: %v", err)
	}
	log.Printf("[App] Fullscreen: %v", fullscreen)
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 全屏时两侧填充黑色，线性滤波缩放
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *scenes.SceneManager {
	return a.sceneManager
}

// Shutdown 窗口关闭时停止当前场景
func (a *App) Shutdown() {
	if exiter, ok := a.sceneManager.GetCurrentScene().(scenes.Exiter); ok {
		exiter.OnExit()
	}
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
