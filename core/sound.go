package core

// SoundType represents different sound effects
type SoundType int

const (
	SoundImpact SoundType = iota // Body-to-body contact
	SoundLaunch                  // Projectile fired
	SoundReset                   // Level rebuilt
	SoundTypeCount
)

// String returns the sound name used in logs
func (s SoundType) String() string {
	switch s {
	case SoundImpact:
		return "impact"
	case SoundLaunch:
		return "launch"
	case SoundReset:
		return "reset"
	default:
		return "unknown"
	}
}
