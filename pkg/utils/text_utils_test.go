package utils

import (
	"reflect"
	"testing"
)

// TestWrapWords 使用字符数作为宽度测试换行
func TestWrapWords(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth float64
		want     []string
	}{
		{
			name:     "短文本不换行",
			input:    "Happy day",
			maxWidth: 20,
			want:     []string{"Happy day"},
		},
		{
			name:     "在空格处断行",
			input:    "You make every day brighter",
			maxWidth: 12,
			want:     []string{"You make", "every day", "brighter"},
		},
		{
			name:     "长单词强制断行",
			input:    "sweetheart",
			maxWidth: 4,
			want:     []string{"swee", "thea", "rt"},
		},
		{
			name:     "保留换行符",
			input:    "line one\nline two",
			maxWidth: 40,
			want:     []string{"line one", "line two"},
		},
		{
			name:     "空文本",
			input:    "",
			maxWidth: 10,
			want:     []string{""},
		},
		{
			name:     "多字节字符",
			input:    "你好世界",
			maxWidth: 3,
			want:     []string{"你好世", "界"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WrapWords(tt.input, tt.maxWidth, RuneWidth)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("WrapWords(%q, %v) = %q, want %q", tt.input, tt.maxWidth, got, tt.want)
			}
		})
	}
}

func TestWrapWordsWithoutLimit(t *testing.T) {
	got := WrapWords("a b c", 0, RuneWidth)
	if len(got) != 1 || got[0] != "a b c" {
		t.Errorf("expected no wrapping, got %q", got)
	}
	t.Logf("✓ zero width keeps the text on one line")
}

func TestWrapTextNilFont(t *testing.T) {
	got := WrapText("a b", nil, 10)
	if len(got) != 1 || got[0] != "a b" {
		t.Errorf("expected unwrapped text for nil font, got %q", got)
	}
}
