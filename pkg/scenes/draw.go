package scenes

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 配色
var (
	colorBackgroundTop    = color.RGBA{R: 255, G: 228, B: 236, A: 255}
	colorBackgroundBottom = color.RGBA{R: 255, G: 182, B: 203, A: 255}
	colorHeart            = color.RGBA{R: 230, G: 57, B: 90, A: 255}
	colorHeartLight       = color.RGBA{R: 255, G: 120, B: 150, A: 255}
	colorText             = color.RGBA{R: 120, G: 20, B: 50, A: 255}
	colorCard             = color.RGBA{R: 255, G: 250, B: 252, A: 235}
	colorButton           = color.RGBA{R: 219, G: 39, B: 119, A: 255}
	colorButtonText       = color.White
	colorBucket           = color.RGBA{R: 160, G: 98, B: 58, A: 255}
	colorBucketRim        = color.RGBA{R: 110, G: 62, B: 33, A: 255}
	colorShade            = color.RGBA{A: 140}
)

// whitePixel 绘制三角形时使用的纯白纹理（取 3x3 中心像素避免边缘采样）
var whitePixel = func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}()

// drawGradient 竖直渐变背景
func drawGradient(screen *ebiten.Image, top, bottom color.RGBA) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	const bands = 32
	bandHeight := float32(h) / bands
	for i := 0; i < bands; i++ {
		t := float64(i) / float64(bands-1)
		clr := color.RGBA{
			R: lerpByte(top.R, bottom.R, t),
			G: lerpByte(top.G, bottom.G, t),
			B: lerpByte(top.B, bottom.B, t),
			A: 255,
		}
		vector.DrawFilledRect(screen, 0, float32(i)*bandHeight, float32(w), bandHeight+1, clr, false)
	}
}

func lerpByte(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}

// drawHeart 以 (cx, cy) 为中心绘制爱心，size 为宽度
func drawHeart(screen *ebiten.Image, cx, cy, size float64, clr color.Color, alpha float64) {
	if alpha <= 0 || size <= 0 {
		return
	}

	var path vector.Path
	s := float32(size / 2)
	x, y := float32(cx), float32(cy)
	path.MoveTo(x, y+s)
	path.CubicTo(x-s*1.2, y+s*0.1, x-s*0.9, y-s*1.0, x, y-s*0.35)
	path.CubicTo(x+s*0.9, y-s*1.0, x+s*1.2, y+s*0.1, x, y+s)
	path.Close()

	vertices, indices := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, a := clr.RGBA()
	for i := range vertices {
		vertices[i].SrcX, vertices[i].SrcY = 1, 1
		vertices[i].ColorR = float32(r) / 0xffff * float32(alpha)
		vertices[i].ColorG = float32(g) / 0xffff * float32(alpha)
		vertices[i].ColorB = float32(b) / 0xffff * float32(alpha)
		vertices[i].ColorA = float32(a) / 0xffff * float32(alpha)
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true, FillRule: ebiten.FillRuleNonZero}
	screen.DrawTriangles(vertices, indices, whitePixel, op)
}

// drawCenteredText 水平居中绘制文本，y 为文本顶部
func drawCenteredText(screen *ebiten.Image, str string, face *text.GoTextFace, cx, y float64, clr color.Color, alpha float64) {
	if face == nil || str == "" || alpha <= 0 {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(cx, y)
	op.PrimaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(clr)
	op.ColorScale.ScaleAlpha(float32(alpha))
	text.Draw(screen, str, face, op)
}

// drawText 左对齐绘制文本
func drawText(screen *ebiten.Image, str string, face *text.GoTextFace, x, y float64, clr color.Color) {
	if face == nil || str == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, face, op)
}

// button 矩形按钮
type button struct {
	label         string
	x, y          float64 // 中心
	width, height float64
}

func (b button) contains(px, py int) bool {
	return math.Abs(float64(px)-b.x) <= b.width/2 && math.Abs(float64(py)-b.y) <= b.height/2
}

func (b button) draw(screen *ebiten.Image, face *text.GoTextFace, scale, alpha float64) {
	if alpha <= 0 || scale <= 0 {
		return
	}
	w, h := b.width*scale, b.height*scale
	clr := color.NRGBA{R: colorButton.R, G: colorButton.G, B: colorButton.B, A: uint8(255 * alpha)}
	vector.DrawFilledRect(screen, float32(b.x-w/2), float32(b.y-h/2), float32(w), float32(h), clr, true)
	if face != nil {
		_, textHeight := text.Measure(b.label, face, 0)
		drawCenteredText(screen, b.label, face, b.x, b.y-textHeight/2, colorButtonText, alpha)
	}
}
