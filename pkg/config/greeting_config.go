package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// GreetingConfig 贺卡流程（开场、留言、说明、结算）的文案与节奏
//
// 配置文件位置: data/greeting.yaml
type GreetingConfig struct {
	// Title 开场画面标题
	Title string `yaml:"title"`

	// LandingMs 开场过渡时长（毫秒）
	LandingMs int `yaml:"landingMs"`

	// Message 打字机逐字显示的留言
	Message string `yaml:"message"`

	// TypingIntervalMs 每个字符的显示间隔（毫秒）
	TypingIntervalMs int `yaml:"typingIntervalMs"`

	// ClickMeDelayMs 留言显示完毕后到"Click Me!"按钮出现的延迟
	ClickMeDelayMs int `yaml:"clickMeDelayMs"`

	// Instructions 游戏说明浮层
	Instructions InstructionsText `yaml:"instructions"`

	// Result 结算浮层文案
	Result ResultText `yaml:"result"`
}

// InstructionsText 游戏说明浮层文案
type InstructionsText struct {
	Title      string   `yaml:"title"`
	Lines      []string `yaml:"lines"`
	DurationMs int      `yaml:"durationMs"`
}

// ResultText 胜负结算文案
type ResultText struct {
	WonTitle   string `yaml:"wonTitle"`
	WonButton  string `yaml:"wonButton"`
	LostTitle  string `yaml:"lostTitle"`
	LostButton string `yaml:"lostButton"`
}

// DefaultGreetingConfig 返回内置文案
func DefaultGreetingConfig() *GreetingConfig {
	return &GreetingConfig{
		Title:     "Happy Birthday",
		LandingMs: 3000,
		Message: "My dearest love, every moment with you feels like a beautiful dream come true. " +
			"Your smile lights up my world, and your love makes my heart dance with joy. " +
			"Thank you for being the most amazing person in my life. Happy Birthday!",
		TypingIntervalMs: 50,
		ClickMeDelayMs:   1000,
		Instructions: InstructionsText{
			Title: "Game Instructions!",
			Lines: []string{
				"Collect 10 falling hearts in 15 seconds!",
				"Use arrow keys or touch to move the bucket!",
			},
			DurationMs: 4000,
		},
		Result: ResultText{
			WonTitle:   "YAYY The website creator loves you",
			WonButton:  "Play Again!",
			LostTitle:  "You lost",
			LostButton: "It's okay, try again",
		},
	}
}

// LandingDuration 开场过渡时长
func (c *GreetingConfig) LandingDuration() time.Duration {
	return time.Duration(c.LandingMs) * time.Millisecond
}

// TypingInterval 打字机间隔
func (c *GreetingConfig) TypingInterval() time.Duration {
	return time.Duration(c.TypingIntervalMs) * time.Millisecond
}

// ClickMeDelay "Click Me!" 出现延迟
func (c *GreetingConfig) ClickMeDelay() time.Duration {
	return time.Duration(c.ClickMeDelayMs) * time.Millisecond
}

// InstructionsDuration 说明浮层显示时长
func (c *GreetingConfig) InstructionsDuration() time.Duration {
	return time.Duration(c.Instructions.DurationMs) * time.Millisecond
}

// ParseGreetingConfig 解析 YAML，缺省字段使用默认文案
func ParseGreetingConfig(data []byte) (*GreetingConfig, error) {
	config := DefaultGreetingConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse greeting config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid greeting config: %w", err)
	}

	return config, nil
}

// LoadGreetingConfig 从磁盘加载贺卡配置
func LoadGreetingConfig(path string) (*GreetingConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read greeting config: %w", err)
	}
	return ParseGreetingConfig(data)
}

// Validate 检查时长与文案
func (c *GreetingConfig) Validate() error {
	if c.Message == "" {
		return fmt.Errorf("message must not be empty")
	}
	if c.LandingMs <= 0 {
		return fmt.Errorf("landingMs must be positive, got %d", c.LandingMs)
	}
	if c.TypingIntervalMs <= 0 {
		return fmt.Errorf("typingIntervalMs must be positive, got %d", c.TypingIntervalMs)
	}
	if c.ClickMeDelayMs < 0 {
		return fmt.Errorf("clickMeDelayMs must not be negative, got %d", c.ClickMeDelayMs)
	}
	if c.Instructions.DurationMs <= 0 {
		return fmt.Errorf("instructions durationMs must be positive, got %d", c.Instructions.DurationMs)
	}
	return nil
}
