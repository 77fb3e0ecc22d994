package main

import (
	"flag"
	"log"

	"github.com/decker502/heartcatch/pkg/app"
	"github.com/decker502/heartcatch/pkg/config"
	"github.com/decker502/heartcatch/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	// 环境变量提供默认值，命令行参数覆盖
	cfg, err := app.ConfigFromEnv()
	if err != nil {
		log.Fatalf("启动配置无效: %v", err)
	}

	verbose := flag.Bool("verbose", cfg.Verbose, "启用详细日志输出")
	skipIntro := flag.Bool("skip-intro", cfg.SkipIntro, "跳过开场和留言，直接进入接爱心小游戏")
	flag.Parse()

	cfg.Verbose = *verbose
	cfg.SkipIntro = *skipIntro

	// 初始化嵌入资源（dataFS 在 embed.go 中声明）
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(cfg)
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}
	defer gameApp.Shutdown()

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("Happy Birthday - Catch the Hearts")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
