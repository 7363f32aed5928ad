package system

import (
	"time"

	"github.com/lixenwraith/pyramid-smash/core"
	"github.com/lixenwraith/pyramid-smash/engine"
	"github.com/lixenwraith/pyramid-smash/parameter"
)

// SoundPlayer queues a sound effect, reporting whether it will be heard
type SoundPlayer interface {
	Play(st core.SoundType) bool
}

// AudioSystem turns collision starts into impact sounds, at most one per cooldown
type AudioSystem struct {
	world  *engine.World
	player SoundPlayer

	cooldownTicks int
	sinceLast     int
	pending       bool
	played        int
}

// NewAudioSystem subscribes to ps collisions and plays through player
func NewAudioSystem(world *engine.World, ps *PhysicsSystem, player SoundPlayer) *AudioSystem {
	s := &AudioSystem{
		world:         world,
		player:        player,
		cooldownTicks: int(parameter.ImpactCooldown / parameter.FixedTimestep),
	}
	s.Init()
	ps.OnCollision(s.onCollision)
	return s
}

// Init resets cooldown state
func (s *AudioSystem) Init() {
	s.sinceLast = s.cooldownTicks
	s.pending = false
}

// Name returns system's name
func (s *AudioSystem) Name() string {
	return "audio"
}

func (s *AudioSystem) Priority() int {
	return parameter.PriorityAudio
}

// Cooldown returns the minimum time between impact sounds
func (s *AudioSystem) Cooldown() time.Duration {
	return time.Duration(s.cooldownTicks) * parameter.FixedTimestep
}

// Played returns how many impact sounds were handed to the player
func (s *AudioSystem) Played() int {
	return s.played
}

// onCollision marks an impact when a projectile starts touching something
func (s *AudioSystem) onCollision(ev CollisionEvent) {
	if !ev.Started {
		return
	}
	bombs := s.world.Components.Bomb
	if bombs.Has(ev.Entity1) || bombs.Has(ev.Entity2) {
		s.pending = true
	}
}

func (s *AudioSystem) Update() error {
	s.sinceLast++
	if !s.pending || s.sinceLast < s.cooldownTicks {
		return nil
	}
	s.pending = false
	s.sinceLast = 0
	if s.player != nil && s.player.Play(core.SoundImpact) {
		s.played++
	}
	return nil
}
