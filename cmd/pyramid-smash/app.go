package main

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/pyramid-smash/audio"
	"github.com/lixenwraith/pyramid-smash/config"
	"github.com/lixenwraith/pyramid-smash/engine"
	"github.com/lixenwraith/pyramid-smash/game"
	"github.com/lixenwraith/pyramid-smash/input"
	"github.com/lixenwraith/pyramid-smash/parameter"
	"github.com/lixenwraith/pyramid-smash/render"
	"github.com/lixenwraith/pyramid-smash/status"
	"github.com/lixenwraith/pyramid-smash/system"
	"github.com/lixenwraith/pyramid-smash/vmath"
)

// app holds every long-lived object of one game session
// Everything except the audio engine belongs to the main goroutine
type app struct {
	log logrus.FieldLogger
	reg *status.Registry

	world     *engine.World
	physics   *system.PhysicsSystem
	scene     *render.Scene
	meshes    *render.MeshRegistry
	scheduler *engine.TaskScheduler
	pipeline  *engine.Pipeline
	loop      *engine.GameLoop
	clock     *engine.PausableClock
	sound     *audio.Engine
	manager   *game.Manager
	handler   *input.Handler

	statPaused *atomic.Bool
}

// newApp builds the session on screen; time comes from tp
func newApp(ctx context.Context, cfg *config.Config, screen tcell.Screen, tp engine.TimeProvider, log logrus.FieldLogger) (*app, error) {
	reg := status.NewRegistry()
	world := engine.NewWorld(cfg.World.Capacity)

	ps := system.NewPhysicsSystem(world, reg, log)
	if err := ps.InitPhysics(ctx, vmath.V3(0, cfg.Physics.Gravity, 0)); err != nil {
		return nil, err
	}

	camera := render.NewCamera(
		vmath.V3(parameter.CameraX, parameter.CameraY, parameter.CameraZ),
		vmath.V3(parameter.CameraTargetX, parameter.CameraTargetY, parameter.CameraTargetZ),
		parameter.CameraFovDeg, parameter.CameraNear, parameter.CameraFar,
	)
	scene := render.NewScene(screen, camera)
	scene.Ground = &render.Ground{
		Y:         parameter.GroundY + parameter.GroundHalfThick,
		HalfWidth: parameter.GroundHalfWidth,
		HalfDepth: parameter.GroundHalfDepth,
		Color:     render.Hex(parameter.ColorGround),
	}
	scene.HUD = render.StatusHUD(reg)
	meshes := render.NewMeshRegistry(scene, log)

	audioCfg := audio.DefaultConfig()
	audioCfg.Enabled = cfg.Audio.Enabled
	audioCfg.SampleRate = cfg.Audio.SampleRate
	audioCfg.MasterVolume = cfg.Audio.Volume
	sound := audio.NewEngine(audioCfg, log)

	scheduler := engine.NewTaskScheduler()
	factory := system.NewEntityFactory(world, ps, log)
	pipeline := engine.NewPipeline(
		ps,
		system.NewAudioSystem(world, ps, sound),
		system.NewRenderSystem(world, meshes, scene, reg),
	)
	loop := engine.NewGameLoop(pipeline, parameter.FixedTimestep, scheduler, reg)
	loop.MaxFrameDelta = parameter.MaxFrameDelta

	manager := game.NewManager(world, ps, factory, meshes, scheduler, sound, reg, log, game.Options{
		PyramidLevels: cfg.Game.PyramidLevels,
		BallLifetime:  cfg.Game.BallLifetime,
	})

	a := &app{
		log:        log,
		reg:        reg,
		world:      world,
		physics:    ps,
		scene:      scene,
		meshes:     meshes,
		scheduler:  scheduler,
		pipeline:   pipeline,
		loop:       loop,
		clock:      engine.NewPausableClock(tp),
		sound:      sound,
		manager:    manager,
		statPaused: reg.Bools.Get(status.EnginePaused),
	}

	w, h := screen.Size()
	drag := input.NewDragController(world, camera, log)
	a.handler = input.NewHandler(input.NewMachine(w, h), drag, a, log)
	return a, nil
}

// ShootBall fires a projectile; part of input.Actions
func (a *app) ShootBall(dir vmath.Vec3) error {
	_, err := a.manager.ShootBall(dir)
	return err
}

// Reset rebuilds the level and restarts frame timing
func (a *app) Reset() error {
	if err := a.manager.Reset(); err != nil {
		return err
	}
	a.loop.Reset()
	return nil
}

// TogglePause freezes game time, the loop and the despawn clock together
func (a *app) TogglePause() bool {
	paused := a.clock.Toggle()
	a.statPaused.Store(paused)
	state := "running"
	if paused {
		state = "paused"
	}
	a.reg.Strings.Get(status.GameState).Store(state)
	return paused
}

// ToggleMute flips audio output
func (a *app) ToggleMute() bool {
	return a.sound.ToggleMute()
}

// frame advances the simulation to the current game time
// While paused no tick runs, so the scene is redrawn directly to keep the HUD live
func (a *app) frame() error {
	ticks, err := a.loop.Advance(a.clock.Now())
	if err != nil {
		return fmt.Errorf("frame: %w", err)
	}
	if ticks == 0 && a.clock.IsPaused() {
		a.scene.Render()
	}
	return nil
}

// run drives the session until quit, a fatal frame error or ctx cancellation
func (a *app) run(ctx context.Context, events <-chan tcell.Event, frameInterval time.Duration) error {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			quit, err := a.handler.Handle(ev)
			if err != nil {
				// Input failures (world full, ...) are not fatal
				a.log.WithError(err).Warn("input action failed")
			}
			if quit {
				return nil
			}
			if _, resized := ev.(*tcell.EventResize); resized {
				a.scene.Sync()
			}

		case <-ticker.C:
			if err := a.frame(); err != nil {
				return err
			}
		}
	}
}
