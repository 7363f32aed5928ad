package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/pyramid-smash/core"
	"github.com/lixenwraith/pyramid-smash/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveNoise
)

// oscillator generates a fixed number of samples of one wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a finite oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// decay fades a stream linearly to silence over total samples
type decay struct {
	streamer beep.Streamer
	position int
	total    int
}

// NewDecay shapes s with a linear release over duration and ends it there
func NewDecay(s beep.Streamer, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &decay{streamer: beep.Take(rate.N(duration), s), total: rate.N(duration)}
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1 - float64(d.position)/float64(d.total)
		if vol < 0 {
			vol = 0
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		d.position++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// newVolume scales s by a linear gain; zero or less is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// impactSound is a short low thud: noise burst over a sine body
func impactSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	body := NewDecay(NewOscillator(parameter.ImpactToneHz, parameter.ToneDuration, WaveSine, rate), parameter.ToneDuration, rate)
	click := NewDecay(NewOscillator(0, parameter.ToneDuration/3, WaveNoise, rate), parameter.ToneDuration/3, rate)
	return newVolume(beep.Mix(newVolume(body, 0.8), newVolume(click, 0.3)), cfg.volume(core.SoundImpact))
}

// launchSound is a bright sine blip
func launchSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	sine, err := generators.SineTone(rate, parameter.LaunchToneHz)
	if err != nil {
		sine = NewOscillator(parameter.LaunchToneHz, parameter.ToneDuration, WaveSine, rate)
	}
	return newVolume(NewDecay(sine, parameter.ToneDuration, rate), cfg.volume(core.SoundLaunch))
}

// resetSound is two square notes, low then high
func resetSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	low := NewDecay(NewOscillator(parameter.ResetToneHz, parameter.ToneDuration, WaveSquare, rate), parameter.ToneDuration, rate)
	high := NewDecay(NewOscillator(parameter.ResetToneHz*2, parameter.ToneDuration, WaveSquare, rate), parameter.ToneDuration, rate)
	return newVolume(beep.Seq(low, high), cfg.volume(core.SoundReset))
}

// SoundEffect builds a fresh streamer for st, nil for unknown types
func SoundEffect(st core.SoundType, cfg *Config) beep.Streamer {
	switch st {
	case core.SoundImpact:
		return impactSound(cfg)
	case core.SoundLaunch:
		return launchSound(cfg)
	case core.SoundReset:
		return resetSound(cfg)
	default:
		return nil
	}
}
