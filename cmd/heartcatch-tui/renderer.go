package main

import (
	"fmt"

	"github.com/decker502/heartcatch/pkg/components"
	"github.com/decker502/heartcatch/pkg/config"
	"github.com/decker502/heartcatch/pkg/game"
	"github.com/gdamore/tcell/v2"
)

const (
	heartGlyph  = '♥'
	bucketGlyph = "\\___/"
	helpLine    = "←/→ or drag: move   r/Enter: play again   q/Esc: quit"
)

var (
	styleHeart  = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleBucket = tcell.StyleDefault.Foreground(tcell.ColorOrange)
	styleHUD    = tcell.StyleDefault.Foreground(tcell.ColorPink).Bold(true)
	styleHelp   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleWon    = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleLost   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
)

// field 终端中的游戏区域：第一行是 HUD，最后一行是帮助
type field struct {
	left, top     int
	width, height int
}

func newField(screenWidth, screenHeight int) field {
	f := field{left: 0, top: 1, width: screenWidth, height: screenHeight - 2}
	if f.width < 1 {
		f.width = 1
	}
	if f.height < 1 {
		f.height = 1
	}
	return f
}

// toCell 百分比坐标转换为单元格；区域外返回 ok=false
func (f field) toCell(fx, fy float64) (col, row int, ok bool) {
	if fx < 0 || fy < 0 || fx >= config.FieldPercent || fy >= config.FieldPercent {
		return 0, 0, false
	}
	col = f.left + int(fx/config.FieldPercent*float64(f.width))
	row = f.top + int(fy/config.FieldPercent*float64(f.height))
	return col, row, true
}

// pointerX 鼠标列相对于区域的位置，用于 CatchSession.PointTo
func (f field) pointerX(col int) (x, width float64) {
	return float64(col-f.left) + 0.5, float64(f.width)
}

// render 绘制一帧
func render(screen tcell.Screen, snap game.Snapshot, cfg *config.CatchConfig, results resultText) {
	screen.Clear()
	w, h := screen.Size()
	f := newField(w, h)

	drawString(screen, 0, 0, fmt.Sprintf("Time: %ds   Hearts: %d/%d", snap.TimeRemaining, snap.Score, snap.Target), styleHUD)

	for _, heart := range snap.Hearts {
		if col, row, ok := f.toCell(heart.X, heart.Y); ok {
			screen.SetContent(col, row, heartGlyph, nil, styleHeart)
		}
	}

	// 桶画在接住区间中部
	bandMid := (cfg.CatchBand.Top + cfg.CatchBand.Bottom) / 2
	if col, row, ok := f.toCell(snap.Catcher, bandMid); ok {
		drawString(screen, col-len(bucketGlyph)/2, row+1, bucketGlyph, styleBucket)
	}

	drawString(screen, 0, h-1, helpLine, styleHelp)

	switch snap.Phase {
	case components.PhaseWon:
		drawCentered(screen, w, h/2, results.won, styleWon)
	case components.PhaseLost:
		drawCentered(screen, w, h/2, results.lost, styleLost)
	}

	screen.Show()
}

// resultText 结算文字
type resultText struct {
	won  string
	lost string
}

func drawString(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for _, r := range s {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func drawCentered(screen tcell.Screen, width, y int, s string, style tcell.Style) {
	x := (width - len([]rune(s))) / 2
	if x < 0 {
		x = 0
	}
	drawString(screen, x, y, s, style)
}
