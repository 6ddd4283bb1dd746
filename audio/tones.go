package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Buzz is a harsh tone made of a fundamental and two harmonics, with a 20ms fade-in
type Buzz struct {
	sr       beep.SampleRate
	freq     float64
	pos      int
	duration int
}

// NewBuzz creates a buzz that ends after d
func NewBuzz(sr beep.SampleRate, freq float64, d time.Duration) *Buzz {
	return &Buzz{sr: sr, freq: freq, duration: sr.N(d)}
}

func (g *Buzz) Stream(samples [][2]float64) (n int, ok bool) {
	fade := float64(g.sr.N(20 * time.Millisecond))
	for i := range samples {
		if g.pos >= g.duration {
			return i, i > 0
		}
		t := float64(g.pos) / float64(g.sr)

		sample := 0.3 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.15 * math.Sin(2*math.Pi*g.freq*2*t)
		sample += 0.075 * math.Sin(2*math.Pi*g.freq*3*t)
		sample *= math.Min(float64(g.pos)/fade, 1.0) * 0.2

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *Buzz) Err() error {
	return nil
}

// Blip is a sine tone with a linear decay to silence
type Blip struct {
	sr       beep.SampleRate
	freq     float64
	pos      int
	duration int
}

// NewBlip creates a blip that ends after d
func NewBlip(sr beep.SampleRate, freq float64, d time.Duration) *Blip {
	return &Blip{sr: sr, freq: freq, duration: sr.N(d)}
}

func (g *Blip) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.duration {
			return i, i > 0
		}
		t := float64(g.pos) / float64(g.sr)
		env := 1 - float64(g.pos)/float64(g.duration)
		sample := 0.25 * env * math.Sin(2*math.Pi*g.freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *Blip) Err() error {
	return nil
}
