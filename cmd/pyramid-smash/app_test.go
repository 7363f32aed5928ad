package main

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/pyramid-smash/config"
	"github.com/lixenwraith/pyramid-smash/engine"
	"github.com/lixenwraith/pyramid-smash/logger"
	"github.com/lixenwraith/pyramid-smash/parameter"
	"github.com/lixenwraith/pyramid-smash/status"
	"github.com/lixenwraith/pyramid-smash/vmath"
)

func testConfig() *config.Config {
	return &config.Config{
		Log:     config.LogConfig{Level: "info", Format: "text"},
		World:   config.WorldConfig{Capacity: 256},
		Physics: config.PhysicsConfig{Gravity: parameter.GravityY},
		Game:    config.GameConfig{BallLifetime: parameter.BallLifetime, PyramidLevels: parameter.PyramidLevels},
		Render:  config.RenderConfig{FPS: 60},
		Audio:   config.AudioConfig{Enabled: false, Volume: 0.3, SampleRate: parameter.AudioSampleRate},
	}
}

func newTestApp(t *testing.T) (*app, *engine.MockTimeProvider, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)

	tp := engine.NewMockTimeProvider(time.Unix(0, 0))
	a, err := newApp(context.Background(), testConfig(), screen, tp, logger.Discard())
	require.NoError(t, err)
	require.NoError(t, a.Reset())
	return a, tp, screen
}

func TestApp_FramesFollowClock(t *testing.T) {
	a, tp, _ := newTestApp(t)

	require.NoError(t, a.frame()) // records start
	tp.Advance(parameter.FixedTimestep * 3)
	require.NoError(t, a.frame())

	assert.Equal(t, int64(3), a.reg.Ints.Get(status.EngineTicks).Load())
	assert.Equal(t, int64(3), a.reg.Ints.Get(status.RenderFrames).Load())
	assert.Equal(t, uint64(3), a.scene.Frames())
}

func TestApp_PauseFreezesSimulation(t *testing.T) {
	a, tp, _ := newTestApp(t)
	require.NoError(t, a.frame())

	require.True(t, a.TogglePause())
	assert.True(t, a.reg.Bools.Get(status.EnginePaused).Load())
	assert.Equal(t, "paused", a.reg.Strings.Get(status.GameState).Load())

	_, err := a.manager.ShootBall(vmath.V3(0, 0, -1))
	require.NoError(t, err)

	tp.Advance(parameter.BallLifetime * 2)
	require.NoError(t, a.frame())
	assert.Zero(t, a.reg.Ints.Get(status.EngineTicks).Load())
	assert.Equal(t, 1, a.manager.Bombs(), "despawn clock must be frozen")
	assert.Equal(t, uint64(1), a.scene.Frames(), "paused frame still draws")

	require.False(t, a.TogglePause())
	tp.Advance(parameter.FixedTimestep)
	require.NoError(t, a.frame())
	assert.Equal(t, int64(1), a.reg.Ints.Get(status.EngineTicks).Load())
}

func TestApp_ClickShootsAndResetClears(t *testing.T) {
	a, _, _ := newTestApp(t)

	quit, err := a.handler.Handle(tcell.NewEventMouse(40, 20, tcell.Button1, tcell.ModNone))
	require.NoError(t, err)
	assert.False(t, quit)
	_, err = a.handler.Handle(tcell.NewEventMouse(40, 20, tcell.ButtonNone, tcell.ModNone))
	require.NoError(t, err)
	assert.Equal(t, 1, a.manager.Bombs())

	require.NoError(t, a.Reset())
	assert.Zero(t, a.manager.Bombs())
	assert.Equal(t, parameter.PyramidBlocks, a.manager.Blocks())
	assert.Zero(t, a.scheduler.Len())
	require.NoError(t, a.physics.CheckRegistry())
}

func TestApp_RunStopsOnQuit(t *testing.T) {
	a, _, _ := newTestApp(t)

	events := make(chan tcell.Event, 2)
	events <- tcell.NewEventResize(100, 30)
	events <- tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)

	done := make(chan error, 1)
	go func() { done <- a.run(context.Background(), events, time.Millisecond) }()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("run did not stop on quit")
	}
}

func TestApp_RunStopsOnCancel(t *testing.T) {
	a, _, _ := newTestApp(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.NoError(t, a.run(ctx, make(chan tcell.Event), time.Hour))
}

func TestSetupLogging(t *testing.T) {
	log, closeLog, err := setupLogging(config.LogConfig{Level: "debug", Format: "text"})
	require.NoError(t, err)
	log.Info("discarded")
	closeLog()

	path := filepath.Join(t.TempDir(), "game.log")
	log, closeLog, err = setupLogging(config.LogConfig{Level: "debug", Format: "json", File: path})
	require.NoError(t, err)
	log.Info("kept")
	closeLog()
	assert.FileExists(t, path)

	_, _, err = setupLogging(config.LogConfig{File: filepath.Join(t.TempDir(), "no", "dir.log")})
	assert.Error(t, err)
}

func TestStartProfile_Disabled(t *testing.T) {
	assert.Nil(t, startProfile(config.ProfileConfig{}))
}
