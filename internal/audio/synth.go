// Package audio plays the game's sound effects through beep.
// WAV files are decoded when present; otherwise effects are synthesized.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/MattiBlue123/Bricker-Game/internal/core"
)

// SampleRate is the rate every clip is stored and mixed at.
const SampleRate = beep.SampleRate(44100)

// Wave selects an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveNoise
)

type oscillator struct {
	freq     float64
	sweep    float64 // frequency change per second
	phase    float64
	total    int
	position int
	wave     Wave
	noise    *core.SimpleRNG
}

// NewOscillator creates a finite tone. sweep bends the frequency over time.
func NewOscillator(freq, sweep float64, d time.Duration, wave Wave) beep.Streamer {
	return &oscillator{
		freq:  freq,
		sweep: sweep,
		total: SampleRate.N(d),
		wave:  wave,
		noise: core.NewSimpleRNG(int64(freq) + 7),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.total {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = 1
			if o.phase >= 0.5 {
				val = -1
			}
		case WaveNoise:
			val = o.noise.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		t := float64(o.position) / float64(SampleRate)
		freq := math.Max(1, o.freq+o.sweep*t)
		o.phase += freq / float64(SampleRate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// decay fades a stream linearly to silence over its length.
type decay struct {
	s        beep.Streamer
	position int
	total    int
}

func newDecay(s beep.Streamer, d time.Duration) beep.Streamer {
	return &decay{s: s, total: max(1, SampleRate.N(d))}
}

func (e *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.s.Stream(samples)
	for i := range n {
		vol := math.Max(0, 1-float64(e.position)/float64(e.total))
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *decay) Err() error { return e.s.Err() }

func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Blop is a short falling square chirp, used for ball hits.
func Blop() beep.Streamer {
	d := 70 * time.Millisecond
	return newVolume(newDecay(NewOscillator(660, -3000, d, WaveSquare), d), 0.25)
}

// Explosion is a burst of decaying noise over a low rumble.
func Explosion() beep.Streamer {
	d := 350 * time.Millisecond
	noise := newDecay(NewOscillator(1, 0, d, WaveNoise), d)
	rumble := newDecay(NewOscillator(90, -120, d, WaveSine), d)
	return newVolume(beep.Mix(newVolume(noise, 0.6), newVolume(rumble, 0.4)), 0.5)
}

// Synthesize returns the built-in effect for a sound name, or nil if there is none.
func Synthesize(name string) beep.Streamer {
	switch name {
	case "blop":
		return Blop()
	case "explosion":
		return Explosion()
	default:
		return nil
	}
}
