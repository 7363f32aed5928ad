package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/pyramid-smash/core"
	"github.com/lixenwraith/pyramid-smash/parameter"
)

// drain streams s to completion and returns the samples produced
func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
	t.Fatal("stream never ended")
	return nil
}

func TestOscillator_Duration(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440, 100*time.Millisecond, WaveSine, rate)

	samples := drain(t, osc)
	assert.Len(t, samples, rate.N(100*time.Millisecond))
}

func TestOscillator_SquareLevels(t *testing.T) {
	rate := beep.SampleRate(8000)
	osc := NewOscillator(1000, 10*time.Millisecond, WaveSquare, rate)

	for _, s := range drain(t, osc) {
		assert.Contains(t, []float64{-1, 1}, s[0])
		assert.Equal(t, s[0], s[1])
	}
}

func TestOscillator_NoiseBounded(t *testing.T) {
	rate := beep.SampleRate(8000)
	for _, s := range drain(t, NewOscillator(0, 20*time.Millisecond, WaveNoise, rate)) {
		assert.GreaterOrEqual(t, s[0], -1.0)
		assert.Less(t, s[0], 1.0)
	}
}

func TestDecay_FadesOut(t *testing.T) {
	rate := beep.SampleRate(8000)
	osc := NewOscillator(100, time.Second, WaveSquare, rate)
	samples := drain(t, NewDecay(osc, 50*time.Millisecond, rate))

	require.Len(t, samples, rate.N(50*time.Millisecond))
	assert.InDelta(t, 1.0, samples[0][0], 1e-9)
	last := samples[len(samples)-1][0]
	assert.Less(t, last*last, 0.01)
}

func TestSoundEffect_AllTypes(t *testing.T) {
	cfg := DefaultConfig()
	rate := beep.SampleRate(cfg.SampleRate)

	impact := drain(t, SoundEffect(core.SoundImpact, cfg))
	assert.Len(t, impact, rate.N(parameter.ToneDuration))

	launch := drain(t, SoundEffect(core.SoundLaunch, cfg))
	assert.Len(t, launch, rate.N(parameter.ToneDuration))

	reset := drain(t, SoundEffect(core.SoundReset, cfg))
	assert.Len(t, reset, 2*rate.N(parameter.ToneDuration))

	assert.Nil(t, SoundEffect(core.SoundTypeCount, cfg))
}

func TestSoundEffect_ZeroVolumeIsSilent(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MasterVolume = 0

	for _, s := range drain(t, SoundEffect(core.SoundReset, cfg)) {
		assert.Zero(t, s[0])
	}
}

func TestEngine_DisabledIsSilent(t *testing.T) {
	log, _ := test.NewNullLogger()
	cfg := DefaultConfig()
	cfg.Enabled = false
	e := NewEngine(cfg, log)

	require.NoError(t, e.Start())
	assert.False(t, e.Play(core.SoundImpact))
	assert.True(t, e.IsMuted())
	e.Close()
}

func TestEngine_EnqueueMixes(t *testing.T) {
	log, _ := test.NewNullLogger()
	e := NewEngine(DefaultConfig(), log)

	// Not started: Play is refused, the mixer still accepts direct queueing
	assert.False(t, e.Play(core.SoundLaunch))
	assert.True(t, e.enqueue(core.SoundLaunch))
	assert.True(t, e.enqueue(core.SoundImpact))
	assert.Equal(t, 2, e.Active())

	rate := beep.SampleRate(e.config.SampleRate)
	buf := make([][2]float64, rate.N(2*parameter.ToneDuration))
	e.mixer.Stream(buf)
	assert.Zero(t, e.Active())
}

func TestEngine_ToggleMute(t *testing.T) {
	log, _ := test.NewNullLogger()
	e := NewEngine(DefaultConfig(), log)

	assert.False(t, e.ToggleMute())
	assert.True(t, e.IsMuted())
	assert.True(t, e.ToggleMute())
}
