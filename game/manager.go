package game

import (
	"fmt"
	"math/rand/v2"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/pyramid-smash/component"
	"github.com/lixenwraith/pyramid-smash/core"
	"github.com/lixenwraith/pyramid-smash/engine"
	"github.com/lixenwraith/pyramid-smash/parameter"
	"github.com/lixenwraith/pyramid-smash/render"
	"github.com/lixenwraith/pyramid-smash/status"
	"github.com/lixenwraith/pyramid-smash/system"
	"github.com/lixenwraith/pyramid-smash/vmath"
)

// Options tune the rules; zero fields take the parameter defaults
type Options struct {
	PyramidLevels int
	BallLifetime  time.Duration
	Seed          uint64 // block colour jitter, 0 picks a random seed
}

func (o Options) withDefaults() Options {
	if o.PyramidLevels <= 0 {
		o.PyramidLevels = parameter.PyramidLevels
	}
	if o.BallLifetime <= 0 {
		o.BallLifetime = parameter.BallLifetime
	}
	if o.Seed == 0 {
		o.Seed = rand.Uint64()
	}
	return o
}

// Manager owns the game rules: level setup, projectiles and entity teardown
// Must be driven from the goroutine owning the world
type Manager struct {
	world     *engine.World
	physics   *system.PhysicsSystem
	factory   *system.EntityFactory
	meshes    *render.MeshRegistry
	scheduler *engine.TaskScheduler
	sounds    system.SoundPlayer
	log       logrus.FieldLogger

	opts Options
	rng  *rand.Rand

	observer func(core.Entity, TeardownStage)

	statBlocks *atomic.Int64
	statBombs  *atomic.Int64
	statState  *status.AtomicString
}

// NewManager wires the rules to the simulation; sounds may be nil
func NewManager(
	world *engine.World,
	ps *system.PhysicsSystem,
	factory *system.EntityFactory,
	meshes *render.MeshRegistry,
	scheduler *engine.TaskScheduler,
	sounds system.SoundPlayer,
	reg *status.Registry,
	log logrus.FieldLogger,
	opts Options,
) *Manager {
	opts = opts.withDefaults()
	return &Manager{
		world:      world,
		physics:    ps,
		factory:    factory,
		meshes:     meshes,
		scheduler:  scheduler,
		sounds:     sounds,
		log:        log.WithField("component", "game"),
		opts:       opts,
		rng:        rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9E3779B97F4A7C15)),
		statBlocks: reg.Ints.Get(status.GameBlocks),
		statBombs:  reg.Ints.Get(status.GameBombs),
		statState:  reg.Strings.Get(status.GameState),
	}
}

// SetTeardownObserver installs fn to be told every stage an entity enters while removed
func (m *Manager) SetTeardownObserver(fn func(core.Entity, TeardownStage)) {
	m.observer = fn
}

// Blocks returns the number of live pyramid blocks
func (m *Manager) Blocks() int {
	return m.world.Components.Block.Count()
}

// Bombs returns the number of live projectiles
func (m *Manager) Bombs() int {
	return m.world.Components.Bomb.Count()
}

// RemoveEntity tears e down: mesh, then physics body, then components and id
// Any pending despawn for e is cancelled first. Returns false when e is not live
func (m *Manager) RemoveEntity(e core.Entity) bool {
	if !m.world.IsAlive(e) {
		return false
	}
	m.scheduler.Cancel(e)

	m.meshes.RemoveMesh(e)
	m.observe(e, StageMeshRemoved)

	m.physics.DestroyBody(e)
	m.observe(e, StagePhysicsDetached)

	m.world.DestroyEntity(e)
	m.observe(e, StageGone)

	m.updateStats()
	return true
}

func (m *Manager) observe(e core.Entity, s TeardownStage) {
	if m.observer != nil {
		m.observer(e, s)
	}
}

// Reset clears the level and builds the ground and a fresh pyramid
func (m *Manager) Reset() error {
	removed := 0
	for _, e := range m.world.Query(engine.KindTransform) {
		if m.RemoveEntity(e) {
			removed++
		}
	}
	for _, e := range m.meshes.Entities() {
		if !m.RemoveEntity(e) {
			m.meshes.RemoveMesh(e)
		}
	}
	cancelled := m.scheduler.CancelAll()

	_, err := m.factory.StaticBox(
		vmath.V3(0, parameter.GroundY, 0),
		vmath.V3(parameter.GroundHalfWidth, parameter.GroundHalfThick, parameter.GroundHalfDepth),
	)
	if err != nil {
		return fmt.Errorf("create ground: %w", err)
	}

	for _, pos := range PyramidLayout(m.opts.PyramidLevels) {
		if err := m.spawnBlock(pos); err != nil {
			return fmt.Errorf("create pyramid: %w", err)
		}
	}

	m.play(core.SoundReset)
	m.statState.Store("running")
	m.updateStats()
	m.log.WithFields(logrus.Fields{
		"removed":   removed,
		"cancelled": cancelled,
		"blocks":    m.Blocks(),
	}).Info("level reset")
	return nil
}

func (m *Manager) spawnBlock(pos vmath.Vec3) error {
	half := parameter.BlockSize / 2
	e, err := m.factory.DynamicBox(pos, vmath.V3(half, half, half), parameter.BlockMass)
	if err != nil {
		return err
	}
	m.world.Components.Block.Set(e, component.BlockComponent{})
	m.meshes.AddMesh(e, render.NewBoxMesh(parameter.BlockSize, parameter.BlockSize, parameter.BlockSize, m.blockColor()))
	return nil
}

// blockColor jitters the base brown by up to 0x44 per channel
func (m *Manager) blockColor() render.RGB {
	c := render.Hex(parameter.ColorBlockBase)
	j := uint8(m.rng.IntN(0x45))
	return render.RGB{R: c.R + j, G: c.G + j, B: c.B + j}
}

// ShootBall launches a projectile toward the pyramid along dir
// The ball despawns after the configured lifetime unless removed earlier
func (m *Manager) ShootBall(dir vmath.Vec3) (core.Entity, error) {
	pos := vmath.V3(dir.X()*parameter.BallSpawnSpread, parameter.BallSpawnHeight, parameter.BallSpawnDepth)
	e, err := m.factory.Sphere(pos, parameter.BallRadius, parameter.BallMass)
	if err != nil {
		return core.NoEntity, fmt.Errorf("shoot ball: %w", err)
	}

	m.world.Components.Bomb.Set(e, component.BombComponent{})
	m.meshes.AddMesh(e, render.NewSphereMesh(parameter.BallRadius, render.Hex(parameter.ColorBall)))
	m.world.Components.Velocity.Set(e, component.VelocityComponent{Linear: LaunchVelocity(dir)})

	gen := m.world.Generation(e)
	m.scheduler.Schedule(e, m.opts.BallLifetime, func() {
		// Slot may have been recycled by a later spawn
		if m.world.Generation(e) == gen {
			m.RemoveEntity(e)
		}
	})

	m.play(core.SoundLaunch)
	m.updateStats()
	m.log.WithFields(logrus.Fields{"entity": e, "dir": dir}).Debug("ball launched")
	return e, nil
}

func (m *Manager) play(st core.SoundType) {
	if m.sounds != nil {
		m.sounds.Play(st)
	}
}

func (m *Manager) updateStats() {
	m.statBlocks.Store(int64(m.Blocks()))
	m.statBombs.Store(int64(m.Bombs()))
}

// LaunchVelocity is the initial ball velocity for an aim direction
func LaunchVelocity(dir vmath.Vec3) vmath.Vec3 {
	s := parameter.BallLaunchSpeed
	return vmath.V3(dir.X()*s, dir.Y()*s, -s)
}

// PyramidLayout returns block centers, bottom level first, centered on x = 0
func PyramidLayout(levels int) []vmath.Vec3 {
	step := parameter.BlockSize + parameter.BlockSpacing
	out := make([]vmath.Vec3, 0, levels*(levels+1)/2)
	for level := 0; level < levels; level++ {
		n := levels - level
		y := parameter.BlockBaseY + float64(level)*step
		for i := 0; i < n; i++ {
			x := (float64(i) - float64(n-1)/2) * step
			out = append(out, vmath.V3(x, y, 0))
		}
	}
	return out
}
