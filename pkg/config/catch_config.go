package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// CatchConfig 接爱心小游戏的全部可调参数
//
// 坐标系：游戏区域水平方向 x ∈ [0, 100)，垂直方向 y 以百分比表示，
// 0 为顶部，100 为底部。速度单位为"每帧"，与渲染帧率绑定。
//
// 配置文件位置: data/catch_game.yaml
type CatchConfig struct {
	// TargetScore 获胜所需接住的爱心数量
	TargetScore int `yaml:"targetScore"`

	// SessionSeconds 每局倒计时秒数
	SessionSeconds int `yaml:"sessionSeconds"`

	// SpawnIntervalMs 爱心生成间隔（毫秒）
	SpawnIntervalMs int `yaml:"spawnIntervalMs"`

	// FallSpeed 每帧下落距离
	FallSpeed float64 `yaml:"fallSpeed"`

	// SpawnY 新爱心的初始 Y
	SpawnY float64 `yaml:"spawnY"`

	// SpawnMaxX 新爱心 X 的上界（不含），下界为 0
	SpawnMaxX float64 `yaml:"spawnMaxX"`

	// CatchBand 可接住的垂直区间（开区间）
	CatchBand Band `yaml:"catchBand"`

	// CatcherHalfWidth 桶的半宽，与 x 同一坐标系
	CatcherHalfWidth float64 `yaml:"catcherHalfWidth"`

	// PruneY 爱心 y 达到此值即视为掉出场外
	PruneY float64 `yaml:"pruneY"`

	// Catcher 桶的位置范围与移动步长
	Catcher CatcherRange `yaml:"catcher"`

	// MaxActiveHearts 同时存在的爱心上限，0 表示不限制
	MaxActiveHearts int `yaml:"maxActiveHearts"`
}

// Band 开区间 (Top, Bottom)
type Band struct {
	Top    float64 `yaml:"top"`
	Bottom float64 `yaml:"bottom"`
}

// Contains 判断 y 是否严格位于区间内，边界值不算
func (b Band) Contains(y float64) bool {
	return y > b.Top && y < b.Bottom
}

// CatcherRange 桶位置约束
type CatcherRange struct {
	Min     float64 `yaml:"min"`
	Max     float64 `yaml:"max"`
	Step    float64 `yaml:"step"`
	Initial float64 `yaml:"initial"`
}

// DefaultCatchConfig 返回内置默认参数
func DefaultCatchConfig() *CatchConfig {
	return &CatchConfig{
		TargetScore:      10,
		SessionSeconds:   15,
		SpawnIntervalMs:  1000,
		FallSpeed:        2,
		SpawnY:           -10,
		SpawnMaxX:        90,
		CatchBand:        Band{Top: 80, Bottom: 90},
		CatcherHalfWidth: 50,
		PruneY:           100,
		Catcher: CatcherRange{
			Min:     0,
			Max:     90,
			Step:    5,
			Initial: 50,
		},
		MaxActiveHearts: 32,
	}
}

// SpawnInterval 生成间隔
func (c *CatchConfig) SpawnInterval() time.Duration {
	return time.Duration(c.SpawnIntervalMs) * time.Millisecond
}

// ParseCatchConfig 解析 YAML，未出现的字段保留默认值
func ParseCatchConfig(data []byte) (*CatchConfig, error) {
	config := DefaultCatchConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse catch game config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catch game config: %w", err)
	}

	return config, nil
}

// LoadCatchConfig 从磁盘加载小游戏配置
//
// 参数:
//   - path: 配置文件路径（如 "data/catch_game.yaml"）
func LoadCatchConfig(path string) (*CatchConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catch game config: %w", err)
	}
	return ParseCatchConfig(data)
}

// Validate 检查参数是否自洽
func (c *CatchConfig) Validate() error {
	if c.TargetScore <= 0 {
		return fmt.Errorf("targetScore must be positive, got %d", c.TargetScore)
	}
	if c.SessionSeconds <= 0 {
		return fmt.Errorf("sessionSeconds must be positive, got %d", c.SessionSeconds)
	}
	if c.SpawnIntervalMs <= 0 {
		return fmt.Errorf("spawnIntervalMs must be positive, got %d", c.SpawnIntervalMs)
	}
	if c.FallSpeed <= 0 {
		return fmt.Errorf("fallSpeed must be positive, got %.2f", c.FallSpeed)
	}
	if c.SpawnMaxX <= 0 {
		return fmt.Errorf("spawnMaxX must be positive, got %.2f", c.SpawnMaxX)
	}
	if c.CatchBand.Top >= c.CatchBand.Bottom {
		return fmt.Errorf("catch band invalid: top(%.1f) >= bottom(%.1f)",
			c.CatchBand.Top, c.CatchBand.Bottom)
	}
	if c.CatchBand.Bottom > c.PruneY {
		return fmt.Errorf("catch band bottom(%.1f) is below pruneY(%.1f)",
			c.CatchBand.Bottom, c.PruneY)
	}
	if c.SpawnY >= c.CatchBand.Top {
		return fmt.Errorf("spawnY(%.1f) must be above the catch band top(%.1f)",
			c.SpawnY, c.CatchBand.Top)
	}
	if c.CatcherHalfWidth <= 0 {
		return fmt.Errorf("catcherHalfWidth must be positive, got %.2f", c.CatcherHalfWidth)
	}
	if c.Catcher.Min > c.Catcher.Max {
		return fmt.Errorf("catcher range invalid: min(%.1f) > max(%.1f)",
			c.Catcher.Min, c.Catcher.Max)
	}
	if c.Catcher.Step <= 0 {
		return fmt.Errorf("catcher step must be positive, got %.2f", c.Catcher.Step)
	}
	if c.Catcher.Initial < c.Catcher.Min || c.Catcher.Initial > c.Catcher.Max {
		return fmt.Errorf("catcher initial(%.1f) outside [%.1f, %.1f]",
			c.Catcher.Initial, c.Catcher.Min, c.Catcher.Max)
	}
	if c.MaxActiveHearts < 0 {
		return fmt.Errorf("maxActiveHearts must not be negative, got %d", c.MaxActiveHearts)
	}
	return nil
}
