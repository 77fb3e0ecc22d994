// heartcatch-tui 在终端中运行接爱心小游戏
//
// 用法：
//
//	heartcatch-tui [-config data/catch_game.yaml] [-log heartcatch.log]
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/decker502/heartcatch/pkg/components"
	"github.com/decker502/heartcatch/pkg/config"
	"github.com/decker502/heartcatch/pkg/game"
	"github.com/decker502/heartcatch/pkg/systems"
	"github.com/gdamore/tcell/v2"
)

const frameInterval = time.Second / 60

func main() {
	configPath := flag.String("config", "", "小游戏配置文件（YAML），为空使用内置默认值")
	logPath := flag.String("log", "", "日志文件路径（终端被占用，日志不输出到屏幕）")
	flag.Parse()

	if err := setupLogging(*logPath); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
		os.Exit(1)
	}

	cfg := config.DefaultCatchConfig()
	if *configPath != "" {
		loaded, err := config.LoadCatchConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
}

func setupLogging(path string) error {
	if path == "" {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	log.SetOutput(f)
	return nil
}

func run(cfg *config.CatchConfig) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	screen.EnableMouse()
	screen.HideCursor()
	defer screen.Fini()

	sound := newChime()
	defer sound.close()

	greeting := config.DefaultGreetingConfig()
	results := resultText{
		won:  fmt.Sprintf("%s  [%s]", greeting.Result.WonTitle, greeting.Result.WonButton),
		lost: fmt.Sprintf("%s  [%s]", greeting.Result.LostTitle, greeting.Result.LostButton),
	}

	var session *game.CatchSession
	session = game.NewCatchSession(cfg,
		game.WithStepListener(func(result systems.StepResult) {
			if len(result.Caught) > 0 {
				sound.caught()
			}
		}),
		game.WithFinishListener(func(phase components.CatchPhase) {
			if phase == components.PhaseWon {
				sound.won()
			} else {
				sound.lost()
			}
		}),
		game.WithRestartCallback(func() { session.Restart() }),
	)
	session.Start()
	defer session.Stop()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return // screen finalized
			}
			select {
			case eventChan <- ev:
			case <-done:
				return
			}
		}
	}()

	var mouse pointerTracker
	for {
		select {
		case ev := <-eventChan:
			if !handleEvent(screen, session, &mouse, ev) {
				return nil
			}

		case <-ticker.C:
			session.Update(frameInterval.Seconds())
			render(screen, session.Snapshot(), cfg, results)
		}
	}
}

// pointerTracker 记录鼠标左键状态和上一次的列
type pointerTracker struct {
	held bool
	col  int
}

// moved 返回本次鼠标事件是否是按住左键后的移动
// 按下瞬间只记录起点，松开时清除状态
func (p *pointerTracker) moved(pressed bool, col int) bool {
	if !pressed {
		p.held = false
		return false
	}
	if !p.held {
		p.held = true
		p.col = col
		return false
	}
	if col == p.col {
		return false
	}
	p.col = col
	return true
}

// handleEvent 处理一个终端事件，返回 false 表示退出
func handleEvent(screen tcell.Screen, session *game.CatchSession, mouse *pointerTracker, ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyLeft:
			session.MoveLeft()
		case tcell.KeyRight:
			session.MoveRight()
		case tcell.KeyEnter:
			session.Dismiss()
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 'r':
				session.Dismiss()
			case 'a', 'h':
				session.MoveLeft()
			case 'd', 'l':
				session.MoveRight()
			}
		}

	case *tcell.EventMouse:
		col, _ := ev.Position()
		if mouse.moved(ev.Buttons()&tcell.Button1 != 0, col) {
			w, h := screen.Size()
			x, width := newField(w, h).pointerX(col)
			session.PointTo(x, width)
		}

	case *tcell.EventResize:
		screen.Sync()
	}
	return true
}
