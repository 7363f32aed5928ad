package parameter

import "time"

// Audio output
const (
	AudioSampleRate  = 44100
	AudioBufferTime  = time.Second / 10
	ImpactToneHz     = 220.0
	LaunchToneHz     = 880.0
	ResetToneHz      = 440.0
	ToneDuration     = 60 * time.Millisecond
	ImpactCooldown   = 80 * time.Millisecond
	DefaultAudioGain = 0.3
)
