package utils

import (
	"strings"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// MeasureFunc 返回一行文本的宽度（像素或终端列数）
type MeasureFunc func(string) float64

// WrapWords 按单词换行
//
// 换行规则:
//   - 优先在空格处断行
//   - 单词本身超过最大宽度时按字符强制断行
//   - 保留文本中已有的换行符
//
// maxWidth <= 0 或 measure 为 nil 时不换行
func WrapWords(textStr string, maxWidth float64, measure MeasureFunc) []string {
	if textStr == "" {
		return []string{""}
	}
	if maxWidth <= 0 || measure == nil {
		return strings.Split(textStr, "\n")
	}

	var lines []string
	for _, paragraph := range strings.Split(textStr, "\n") {
		lines = append(lines, wrapParagraph(paragraph, maxWidth, measure)...)
	}
	return lines
}

func wrapParagraph(paragraph string, maxWidth float64, measure MeasureFunc) []string {
	words := strings.Fields(paragraph)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	current := ""
	for _, word := range words {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if measure(candidate) <= maxWidth {
			current = candidate
			continue
		}

		if current != "" {
			lines = append(lines, current)
			current = ""
		}

		// 单词本身放不下：按字符拆
		for measure(word) > maxWidth {
			cut := fitPrefix(word, maxWidth, measure)
			lines = append(lines, word[:cut])
			word = word[cut:]
		}
		current = word
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

// fitPrefix 返回能放进 maxWidth 的最长前缀字节长度，至少一个字符
func fitPrefix(word string, maxWidth float64, measure MeasureFunc) int {
	_, first := utf8.DecodeRuneInString(word)
	end := first
	for end < len(word) {
		_, size := utf8.DecodeRuneInString(word[end:])
		if measure(word[:end+size]) > maxWidth {
			break
		}
		end += size
	}
	return end
}

// WrapText 按字体实际宽度换行
func WrapText(textStr string, font *text.GoTextFace, maxWidth float64) []string {
	if font == nil {
		return WrapWords(textStr, 0, nil)
	}
	return WrapWords(textStr, maxWidth, func(s string) float64 {
		return measureTextWidth(s, font)
	})
}

// RuneWidth 以字符数计宽（终端前端使用）
func RuneWidth(s string) float64 {
	return float64(utf8.RuneCountInString(s))
}

// measureTextWidth 测量文本宽度
func measureTextWidth(textStr string, font *text.GoTextFace) float64 {
	if textStr == "" || font == nil {
		return 0
	}
	width, _ := text.Measure(textStr, font, 0)
	return width
}
