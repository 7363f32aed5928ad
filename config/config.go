package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/lixenwraith/pyramid-smash/parameter"
)

// EnvPrefix prefixes environment overrides, e.g. PYRAMID_LOG_LEVEL
const EnvPrefix = "PYRAMID"

// configName is looked up in the working directory when --config is not given
const configName = "pyramid-smash"

var ErrInvalidConfig = errors.New("invalid config")

type LogConfig struct {
	Level  string
	Format string
	File   string // empty discards logs
}

type WorldConfig struct {
	Capacity int
}

type PhysicsConfig struct {
	Gravity float64
}

type GameConfig struct {
	BallLifetime  time.Duration
	PyramidLevels int
}

type RenderConfig struct {
	FPS int
}

type AudioConfig struct {
	Enabled    bool
	Volume     float64
	SampleRate int
}

type MetricsConfig struct {
	Enabled bool
}

type ProfileConfig struct {
	Mode string // "", cpu, mem or trace
	Path string
}

// Config is the resolved runtime configuration
type Config struct {
	Log     LogConfig
	World   WorldConfig
	Physics PhysicsConfig
	Game    GameConfig
	Render  RenderConfig
	Audio   AudioConfig
	Metrics MetricsConfig
	Profile ProfileConfig
}

// flag name -> config key
var flagKeys = map[string]string{
	"log-level":  "log.level",
	"log-format": "log.format",
	"log-file":   "log.file",
	"fps":        "render.fps",
	"mute":       "audio.mute",
	"profile":    "profile.mode",
}

// Flags returns the command line flag set understood by Load
func Flags(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.String("config", "", "config file (yaml, toml or json)")
	fs.String("log-level", "info", "log level")
	fs.String("log-format", "text", "log format: text or json")
	fs.String("log-file", "", "write logs to this file")
	fs.Int("fps", int(time.Second/parameter.FrameInterval), "render frames per second")
	fs.Bool("mute", false, "start with audio disabled")
	fs.String("profile", "", "profile mode: cpu, mem or trace")
	return fs
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.file", "")

	v.SetDefault("world.capacity", parameter.WorldCapacity)

	v.SetDefault("physics.gravity", parameter.GravityY)

	v.SetDefault("game.ball_lifetime", parameter.BallLifetime)
	v.SetDefault("game.pyramid_levels", parameter.PyramidLevels)

	v.SetDefault("render.fps", int(time.Second/parameter.FrameInterval))

	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.mute", false)
	v.SetDefault("audio.volume", parameter.DefaultAudioGain)
	v.SetDefault("audio.sample_rate", parameter.AudioSampleRate)

	v.SetDefault("metrics.enabled", false)

	v.SetDefault("profile.mode", "")
	v.SetDefault("profile.path", ".")
}

// Load resolves configuration from defaults, an optional file, PYRAMID_* env and flags
// flags may be nil; later sources override earlier ones
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	configFile := ""
	if flags != nil {
		configFile, _ = flags.GetString("config")
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	cfg := &Config{
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: strings.ToLower(v.GetString("log.format")),
			File:   v.GetString("log.file"),
		},
		World: WorldConfig{
			Capacity: v.GetInt("world.capacity"),
		},
		Physics: PhysicsConfig{
			Gravity: v.GetFloat64("physics.gravity"),
		},
		Game: GameConfig{
			BallLifetime:  v.GetDuration("game.ball_lifetime"),
			PyramidLevels: v.GetInt("game.pyramid_levels"),
		},
		Render: RenderConfig{
			FPS: v.GetInt("render.fps"),
		},
		Audio: AudioConfig{
			Enabled:    v.GetBool("audio.enabled") && !v.GetBool("audio.mute"),
			Volume:     v.GetFloat64("audio.volume"),
			SampleRate: v.GetInt("audio.sample_rate"),
		},
		Metrics: MetricsConfig{
			Enabled: v.GetBool("metrics.enabled"),
		},
		Profile: ProfileConfig{
			Mode: strings.ToLower(v.GetString("profile.mode")),
			Path: v.GetString("profile.path"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values the game cannot run with
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
		}
	}

	check(c.Log.Format == "text" || c.Log.Format == "json", "log.format %q", c.Log.Format)
	check(c.World.Capacity > 0, "world.capacity %d", c.World.Capacity)
	check(c.Game.BallLifetime > 0, "game.ball_lifetime %s", c.Game.BallLifetime)
	check(c.Game.PyramidLevels > 0, "game.pyramid_levels %d", c.Game.PyramidLevels)
	check(c.Render.FPS > 0, "render.fps %d", c.Render.FPS)
	check(c.Audio.SampleRate > 0, "audio.sample_rate %d", c.Audio.SampleRate)
	check(c.Audio.Volume >= 0 && c.Audio.Volume <= 1, "audio.volume %g", c.Audio.Volume)
	switch c.Profile.Mode {
	case "", "cpu", "mem", "trace":
	default:
		check(false, "profile.mode %q", c.Profile.Mode)
	}

	return errors.Join(errs...)
}

// FrameInterval is the render period derived from Render.FPS
func (c *Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.Render.FPS)
}
