package main

import (
	"log"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

// 音调（Hz）与时长
const (
	catchToneHz = 880
	wonToneHz   = 1320
	lostToneHz  = 220

	catchToneDuration = 50 * time.Millisecond
	wonToneDuration   = 300 * time.Millisecond
	lostToneDuration  = 400 * time.Millisecond
)

// chime 接住、胜利、失败的提示音
// 音频初始化失败时静默运行
type chime struct {
	sampleRate beep.SampleRate
	enabled    bool
}

func newChime() *chime {
	c := &chime{sampleRate: beep.SampleRate(44100)}
	if err := speaker.Init(c.sampleRate, c.sampleRate.N(time.Second/10)); err != nil {
		log.Printf("[Chime] Audio initialization failed: %v (running silently)", err)
		return c
	}
	c.enabled = true
	return c
}

func (c *chime) play(freq int, duration time.Duration) {
	if !c.enabled {
		return
	}
	sine, err := generators.SineTone(c.sampleRate, float64(freq))
	if err != nil {
		log.Printf("[Chime] SineTone(%d): %v", freq, err)
		return
	}
	speaker.Play(beep.Take(c.sampleRate.N(duration), sine))
}

func (c *chime) caught() { c.play(catchToneHz, catchToneDuration) }
func (c *chime) won()    { c.play(wonToneHz, wonToneDuration) }
func (c *chime) lost()   { c.play(lostToneHz, lostToneDuration) }

func (c *chime) close() {
	if c.enabled {
		speaker.Close()
	}
}
