package app

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config 定义应用启动配置
// 先从环境变量读取，main 再用命令行参数覆盖
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool `env:"HEARTCATCH_VERBOSE"`
	// SkipIntro 跳过开场和留言，直接进入小游戏
	SkipIntro bool `env:"HEARTCATCH_SKIP_INTRO"`
}

// ConfigFromEnv 从环境变量加载启动配置
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
