package audio

import (
	"github.com/lixenwraith/pyramid-smash/core"
	"github.com/lixenwraith/pyramid-smash/parameter"
)

// Config holds audio output settings
type Config struct {
	Enabled       bool
	SampleRate    int
	MasterVolume  float64 // 0..1
	EffectVolumes map[core.SoundType]float64
}

// DefaultConfig returns enabled audio at the default rate and gain
func DefaultConfig() *Config {
	return &Config{
		Enabled:      true,
		SampleRate:   parameter.AudioSampleRate,
		MasterVolume: parameter.DefaultAudioGain,
		EffectVolumes: map[core.SoundType]float64{
			core.SoundImpact: 1.0,
			core.SoundLaunch: 0.6,
			core.SoundReset:  0.5,
		},
	}
}

// volume returns the combined gain for st
func (c *Config) volume(st core.SoundType) float64 {
	v, ok := c.EffectVolumes[st]
	if !ok {
		v = 1.0
	}
	return v * c.MasterVolume
}
