// Package audio plays short feedback cues for the interactive demo
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)

	bumpFreq     = 110
	bumpDuration = 120 * time.Millisecond

	toggleOnFreq   = 880
	toggleOffFreq  = 440
	toggleDuration = 60 * time.Millisecond
)

// Cues manages demo sounds. Every method is a no-op until Init succeeds,
// so the demo runs unchanged without an audio device
type Cues struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	muted       bool
	initialized bool
}

// NewCues creates a cue player at volume in [0, 1]
func NewCues(volume float64) *Cues {
	return &Cues{
		mixer:  &beep.Mixer{},
		volume: max(0, min(volume, 1)),
	}
}

// Init opens the speaker and starts the mixer
func (c *Cues) Init() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// Close drops pending sounds. The speaker stays open; beep has no way to close it
func (c *Cues) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()
	c.initialized = false
}

// SetMuted silences new cues without closing the speaker
func (c *Cues) SetMuted(muted bool) {
	c.mu.Lock()
	c.muted = muted
	c.mu.Unlock()
}

// Muted reports whether cues are silenced
func (c *Cues) Muted() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.muted
}

// Bump plays a short low buzz, used when movement hits a wall
func (c *Cues) Bump() {
	c.play(NewBuzz(sampleRate, bumpFreq, bumpDuration))
}

// Toggle plays a high blip when a setting turns on and a lower one when it turns off
func (c *Cues) Toggle(on bool) {
	freq := float64(toggleOffFreq)
	if on {
		freq = toggleOnFreq
	}
	c.play(NewBlip(sampleRate, freq, toggleDuration))
}

func (c *Cues) play(s beep.Streamer) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized || c.muted {
		return
	}
	speaker.Lock()
	c.mixer.Add(withVolume(s, c.volume))
	speaker.Unlock()
}

// withVolume scales s by a linear volume in [0, 1]
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
