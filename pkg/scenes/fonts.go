package scenes

import (
	"bytes"
	"log"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// 字号
const (
	TitleFontSize   = 48.0
	BodyFontSize    = 22.0
	HUDFontSize     = 24.0
	ButtonFontSize  = 22.0
	OverlayFontSize = 32.0
)

var goRegularSource *text.GoTextFaceSource

// newFace 创建 Go Regular 字体；加载失败返回 nil，调用方跳过文字绘制
func newFace(size float64) *text.GoTextFace {
	if goRegularSource == nil {
		src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			log.Printf("[Fonts] Failed to load Go Regular: %v", err)
			return nil
		}
		goRegularSource = src
	}
	return &text.GoTextFace{Source: goRegularSource, Size: size}
}
