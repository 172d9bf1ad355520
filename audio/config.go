package audio

import (
	"time"
)

// Config controls the synthesizer
type Config struct {
	Enabled        bool          `yaml:"enabled"`
	MasterVolume   float64       `yaml:"master_volume"` // 0.0-1.0
	SampleRate     int           `yaml:"sample_rate"`
	BufferDuration time.Duration `yaml:"buffer"`

	TapFrequency float64       `yaml:"tap_frequency"`
	TapGain      float64       `yaml:"tap_gain"`
	TapDuration  time.Duration `yaml:"tap_duration"`

	DroneFrequency float64       `yaml:"drone_frequency"`
	DroneGain      float64       `yaml:"drone_gain"`
	DroneFade      time.Duration `yaml:"drone_fade"`
}

// DefaultConfig returns the stock voices: an 800Hz sine tap and a 200Hz triangle drone
func DefaultConfig() Config {
	return Config{
		Enabled:        true,
		MasterVolume:   1.0,
		SampleRate:     44100,
		BufferDuration: 100 * time.Millisecond,

		TapFrequency: 800,
		TapGain:      0.3,
		TapDuration:  200 * time.Millisecond,

		DroneFrequency: 200,
		DroneGain:      0.2,
		DroneFade:      100 * time.Millisecond,
	}
}

// ClampVolume bounds a volume to 0.0-1.0
func ClampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
