package audio

import (
	"errors"
)

// Wave identifies an oscillator shape
type Wave int

const (
	WaveSine Wave = iota
	WaveTriangle
	WaveSquare
	WaveSaw
)

// Silence floor for exponential ramps; an exponential curve cannot reach zero
const silenceGain = 0.001

// ErrDisabled is returned by Init when the config turns audio off
var ErrDisabled = errors.New("audio disabled by configuration")
