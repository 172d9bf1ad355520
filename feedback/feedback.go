// Package feedback defines the optional audio and haptic capabilities of the egg
// Absent capabilities are replaced by no-op implementations once at startup,
// so call sites never branch on availability.
package feedback

import (
	"math"
	"time"
)

// Audio is the synthesis surface the input mapper drives
type Audio interface {
	// PlayTap plays the short percussive cue
	PlayTap()
	// StartDrone starts the continuous tone; no-op if already running
	StartDrone()
	// SetDronePitch scales the drone base frequency; ignored without a drone
	SetDronePitch(factor float64)
	// StopDrone fades out and releases the drone; no-op if not running
	StopDrone()
}

// Haptics is the vibration surface
type Haptics interface {
	// Vibrate plays alternating on/off durations, replacing any active pattern
	Vibrate(pattern ...time.Duration)
	// Cancel stops any active pattern
	Cancel()
}

// NopAudio is the silent fallback
type NopAudio struct{}

func (NopAudio) PlayTap()              {}
func (NopAudio) StartDrone()           {}
func (NopAudio) SetDronePitch(float64) {}
func (NopAudio) StopDrone()            {}

// NopHaptics is the fallback for hosts without vibration
type NopHaptics struct{}

func (NopHaptics) Vibrate(...time.Duration) {}
func (NopHaptics) Cancel()                  {}

// Pitch curve of the drone
const (
	PitchMin           = 0.5
	PitchMax           = 2.0
	PitchVelocityScale = 100.0 // px per frame of velocity per unit of pitch
)

// PitchFactor maps a velocity component to the drone's frequency multiplier
func PitchFactor(velocity float64) float64 {
	f := math.Abs(velocity)/PitchVelocityScale + PitchMin
	return math.Max(PitchMin, math.Min(PitchMax, f))
}

// Vibration patterns in on/off order
var (
	GrabPattern = []time.Duration{
		200 * time.Millisecond, 50 * time.Millisecond,
		200 * time.Millisecond, 50 * time.Millisecond,
		200 * time.Millisecond,
	}
	DragPattern = []time.Duration{
		50 * time.Millisecond, 50 * time.Millisecond,
		50 * time.Millisecond,
	}
)
