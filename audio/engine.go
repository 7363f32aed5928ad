package audio

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/pyramid-smash/core"
	"github.com/lixenwraith/pyramid-smash/parameter"
)

// Engine mixes sound effects into a single speaker stream
// Without an output device it stays silent and Play reports false
type Engine struct {
	mu     sync.Mutex
	config *Config
	mixer  *beep.Mixer
	log    logrus.FieldLogger

	started bool
	muted   atomic.Bool

	// Guards mixer access against the speaker goroutine once started
	lock   func()
	unlock func()
}

// NewEngine creates a stopped engine
func NewEngine(cfg *Config, log logrus.FieldLogger) *Engine {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	e := &Engine{
		config: cfg,
		mixer:  &beep.Mixer{},
		log:    log.WithField("component", "audio"),
		lock:   func() {},
		unlock: func() {},
	}
	e.muted.Store(!cfg.Enabled)
	return e
}

// Start opens the speaker and begins playing the mixer
// A disabled engine starts nothing; a device failure is returned and leaves the engine silent
func (e *Engine) Start() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.started || !e.config.Enabled {
		return nil
	}
	rate := beep.SampleRate(e.config.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferTime)); err != nil {
		return fmt.Errorf("audio output: %w", err)
	}
	e.lock, e.unlock = speaker.Lock, speaker.Unlock
	speaker.Play(e.mixer)
	e.started = true
	e.log.WithField("sample_rate", e.config.SampleRate).Debug("speaker started")
	return nil
}

// Close stops playback and releases the device
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.started {
		return
	}
	speaker.Clear()
	speaker.Close()
	e.lock, e.unlock = func() {}, func() {}
	e.started = false
}

// Play queues st on the mixer
func (e *Engine) Play(st core.SoundType) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.started || e.muted.Load() {
		return false
	}
	return e.enqueue(st)
}

// enqueue adds a fresh streamer for st to the mixer
func (e *Engine) enqueue(st core.SoundType) bool {
	s := SoundEffect(st, e.config)
	if s == nil {
		return false
	}
	e.lock()
	e.mixer.Add(s)
	e.unlock()
	return true
}

// ToggleMute flips mute and reports whether sound is now audible
func (e *Engine) ToggleMute() bool {
	muted := !e.muted.Load()
	e.muted.Store(muted)
	return !muted
}

// IsMuted returns the mute state
func (e *Engine) IsMuted() bool {
	return e.muted.Load()
}

// Active returns the number of sounds still playing
func (e *Engine) Active() int {
	e.lock()
	defer e.unlock()
	return e.mixer.Len()
}
