package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/eggdrift/audio"
	"github.com/lixenwraith/eggdrift/motion"
)

// ErrInvalidConfig wraps every validation failure
var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Physics PhysicsConfig `yaml:"physics"`
	Audio   audio.Config  `yaml:"audio"`
	Haptics HapticsConfig `yaml:"haptics"`
	Render  RenderConfig  `yaml:"render"`
	Logging LoggingConfig `yaml:"logging"`
}

type PhysicsConfig struct {
	SpinDamping     float64 `yaml:"spin_damping"`
	VelocityDamping float64 `yaml:"velocity_damping"`
	SpinEpsilon     float64 `yaml:"spin_epsilon"`
	MaxElapsed      float64 `yaml:"max_elapsed"`
	MarginX         float64 `yaml:"margin_x"`
	MarginY         float64 `yaml:"margin_y"`
}

type HapticsConfig struct {
	Enabled bool `yaml:"enabled"`
}

type RenderConfig struct {
	FPS        int     `yaml:"fps"`
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
	Particles  int     `yaml:"particles"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
	Debug bool   `yaml:"debug"`
}

// Default returns the stock configuration
func Default() *Config {
	t := motion.DefaultTuning()
	return &Config{
		Physics: PhysicsConfig{
			SpinDamping:     t.SpinDamping,
			VelocityDamping: t.VelocityDamping,
			SpinEpsilon:     t.SpinEpsilon,
			MaxElapsed:      t.MaxElapsed,
			MarginX:         t.MarginX,
			MarginY:         t.MarginY,
		},
		Audio:   audio.DefaultConfig(),
		Haptics: HapticsConfig{Enabled: true},
		Render: RenderConfig{
			FPS:        60,
			CellWidth:  8,
			CellHeight: 16,
			Particles:  80,
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  "logs/eggdrift.log",
		},
	}
}

// Load reads a YAML file over the defaults; an empty path yields the defaults
// Environment overrides are applied last, then the result is validated
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields from EGGDRIFT_* variables
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("EGGDRIFT_AUDIO_ENABLED"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: EGGDRIFT_AUDIO_ENABLED: %v", ErrInvalidConfig, err)
		}
		c.Audio.Enabled = b
	}
	if v, ok := lookup("EGGDRIFT_MASTER_VOLUME"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: EGGDRIFT_MASTER_VOLUME: %v", ErrInvalidConfig, err)
		}
		c.Audio.MasterVolume = audio.ClampVolume(float64(n) / 100)
	}
	if v, ok := lookup("EGGDRIFT_SAMPLE_RATE"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: EGGDRIFT_SAMPLE_RATE: %v", ErrInvalidConfig, err)
		}
		c.Audio.SampleRate = n
	}
	if v, ok := lookup("EGGDRIFT_HAPTICS_ENABLED"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: EGGDRIFT_HAPTICS_ENABLED: %v", ErrInvalidConfig, err)
		}
		c.Haptics.Enabled = b
	}
	if v, ok := lookup("EGGDRIFT_FPS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: EGGDRIFT_FPS: %v", ErrInvalidConfig, err)
		}
		c.Render.FPS = n
	}
	if v, ok := lookup("EGGDRIFT_DEBUG"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: EGGDRIFT_DEBUG: %v", ErrInvalidConfig, err)
		}
		c.Logging.Debug = b
	}
	return nil
}

// Validate rejects values the engine cannot run with
func (c *Config) Validate() error {
	p := c.Physics
	if p.SpinDamping <= 0 || p.SpinDamping > 1 {
		return fmt.Errorf("%w: physics.spin_damping %v not in (0,1]", ErrInvalidConfig, p.SpinDamping)
	}
	if p.VelocityDamping <= 0 || p.VelocityDamping > 1 {
		return fmt.Errorf("%w: physics.velocity_damping %v not in (0,1]", ErrInvalidConfig, p.VelocityDamping)
	}
	if p.SpinEpsilon < 0 || p.MaxElapsed <= 0 {
		return fmt.Errorf("%w: physics.spin_epsilon and max_elapsed must be non-negative and positive", ErrInvalidConfig)
	}
	if p.MarginX < 0 || p.MarginY < 0 {
		return fmt.Errorf("%w: physics margins must be non-negative", ErrInvalidConfig)
	}
	if c.Audio.SampleRate <= 0 {
		return fmt.Errorf("%w: audio.sample_rate %d", ErrInvalidConfig, c.Audio.SampleRate)
	}
	if c.Audio.BufferDuration <= 0 {
		return fmt.Errorf("%w: audio.buffer %v", ErrInvalidConfig, c.Audio.BufferDuration)
	}
	if c.Render.FPS <= 0 {
		return fmt.Errorf("%w: render.fps %d", ErrInvalidConfig, c.Render.FPS)
	}
	if c.Render.CellWidth <= 0 || c.Render.CellHeight <= 0 {
		return fmt.Errorf("%w: render cell size %vx%v", ErrInvalidConfig, c.Render.CellWidth, c.Render.CellHeight)
	}
	if c.Render.Particles < 0 {
		return fmt.Errorf("%w: render.particles %d", ErrInvalidConfig, c.Render.Particles)
	}
	c.Audio.MasterVolume = audio.ClampVolume(c.Audio.MasterVolume)
	return nil
}

// Tuning builds the engine tuning from the physics section
func (c *Config) Tuning() motion.Tuning {
	t := motion.DefaultTuning()
	t.SpinDamping = c.Physics.SpinDamping
	t.VelocityDamping = c.Physics.VelocityDamping
	t.SpinEpsilon = c.Physics.SpinEpsilon
	t.MaxElapsed = c.Physics.MaxElapsed
	t.MarginX = c.Physics.MarginX
	t.MarginY = c.Physics.MarginY
	return t
}
