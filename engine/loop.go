package engine

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/pyramid-smash/status"
)

// Ticker is anything the loop can step once per fixed timestep
type Ticker interface {
	Tick() error
}

// GameLoop turns variable frame deltas into whole fixed steps
type GameLoop struct {
	ticker    Ticker
	scheduler *TaskScheduler

	step          time.Duration
	MaxFrameDelta time.Duration // 0 disables clamping

	accumulator time.Duration
	last        time.Time
	started     bool

	statTicks  *atomic.Int64
	statFrames *atomic.Int64
	statFrame  *status.AtomicFloat
}

// NewGameLoop creates a loop stepping ticker every step
// scheduler may be nil; reg may be nil
func NewGameLoop(ticker Ticker, step time.Duration, scheduler *TaskScheduler, reg *status.Registry) *GameLoop {
	if step <= 0 {
		panic("engine: game loop step must be positive")
	}
	if reg == nil {
		reg = status.NewRegistry()
	}
	return &GameLoop{
		ticker:     ticker,
		scheduler:  scheduler,
		step:       step,
		statTicks:  reg.Ints.Get(status.EngineTicks),
		statFrames: reg.Ints.Get(status.EngineFrames),
		statFrame:  reg.Floats.Get(status.EngineFrameMillis),
	}
}

// Step returns the fixed timestep
func (l *GameLoop) Step() time.Duration {
	return l.step
}

// Accumulated returns simulated time waiting for the next step
func (l *GameLoop) Accumulated() time.Duration {
	return l.accumulator
}

// Frame adds dt to the accumulator and ticks while a whole step is available
// Scheduled tasks run after the ticks. Returns the number of ticks run;
// on a tick error the remaining accumulator is kept and the error returned
func (l *GameLoop) Frame(dt time.Duration) (int, error) {
	if dt < 0 {
		dt = 0
	}
	if l.MaxFrameDelta > 0 && dt > l.MaxFrameDelta {
		dt = l.MaxFrameDelta
	}
	l.statFrames.Add(1)
	l.statFrame.Set(float64(dt) / float64(time.Millisecond))

	l.accumulator += dt
	ticks := 0
	for l.accumulator >= l.step {
		if err := l.ticker.Tick(); err != nil {
			return ticks, err
		}
		l.accumulator -= l.step
		ticks++
		l.statTicks.Add(1)
	}

	if l.scheduler != nil {
		l.scheduler.Advance(dt)
	}
	return ticks, nil
}

// Advance runs a frame for the time elapsed since the previous call
// The first call only records now
func (l *GameLoop) Advance(now time.Time) (int, error) {
	if !l.started {
		l.started = true
		l.last = now
		return 0, nil
	}
	dt := now.Sub(l.last)
	l.last = now
	return l.Frame(dt)
}

// Reset drops accumulated time and forgets the last frame timestamp
func (l *GameLoop) Reset() {
	l.accumulator = 0
	l.started = false
}
