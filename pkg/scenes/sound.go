package scenes

import (
	"encoding/binary"
	"log"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioSampleRate 音频采样率
const AudioSampleRate = 48000

// SoundPlayer 小游戏音效
type SoundPlayer interface {
	PlayCatch()
	PlayWon()
	PlayLost()
}

// ToneSounds 用正弦波合成的提示音，不依赖音频资源文件
type ToneSounds struct {
	context *audio.Context
	catch   []byte
	won     []byte
	lost    []byte
}

// NewToneSounds 创建提示音播放器
// 音频上下文全局只能创建一次，已存在时复用
func NewToneSounds() *ToneSounds {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(AudioSampleRate)
	}
	return &ToneSounds{
		context: ctx,
		catch:   sineTone(AudioSampleRate, 880, 60*time.Millisecond, 0.3),
		won:     sineTone(AudioSampleRate, 1320, 300*time.Millisecond, 0.3),
		lost:    sineTone(AudioSampleRate, 220, 400*time.Millisecond, 0.3),
	}
}

func (s *ToneSounds) play(pcm []byte) {
	if err := s.context.Err(); err != nil {
		log.Printf("[Sound] Audio unavailable: %v", err)
		return
	}
	s.context.NewPlayerFromBytes(pcm).Play()
}

// PlayCatch 接住爱心
func (s *ToneSounds) PlayCatch() { s.play(s.catch) }

// PlayWon 胜利
func (s *ToneSounds) PlayWon() { s.play(s.won) }

// PlayLost 失败
func (s *ToneSounds) PlayLost() { s.play(s.lost) }

// sineTone 生成 16 位小端双声道 PCM，末尾线性淡出避免爆音
func sineTone(sampleRate int, freq float64, duration time.Duration, volume float64) []byte {
	frames := int(float64(sampleRate) * duration.Seconds())
	buf := make([]byte, frames*4)
	for i := 0; i < frames; i++ {
		fade := 1 - float64(i)/float64(frames)
		v := math.Sin(2*math.Pi*freq*float64(i)/float64(sampleRate)) * volume * fade
		sample := uint16(int16(v * math.MaxInt16))
		binary.LittleEndian.PutUint16(buf[i*4:], sample)
		binary.LittleEndian.PutUint16(buf[i*4+2:], sample)
	}
	return buf
}
