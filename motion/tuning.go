package motion

// Physics tuning, in virtual pixels and degrees
const (
	SpinDamping     = 0.95 // per frame while idle
	VelocityDamping = 0.9  // per frame while idle
	SpinEpsilon     = 0.1  // |spin| below this snaps to zero
	FrameRateBasis  = 60.0 // spin is expressed in degrees per 1/60 s
	MaxElapsed      = 0.1  // seconds; larger frame gaps are clamped

	EggHalfWidth  = 50.0
	EggHalfHeight = 66.0
)

// Input mapping gains
const (
	SpinFromStep     = 0.5  // spin velocity per px of horizontal pointer step
	RotationFromStep = 0.3  // immediate degrees per px of horizontal pointer step
	ThrowGain        = 2.0  // release velocity per px of pointer step
	TiltGain         = 0.03 // idle tilt degrees per px from viewport center
)

// Tuning carries the engine's damping and bounds, overridable from config
type Tuning struct {
	SpinDamping     float64
	VelocityDamping float64
	SpinEpsilon     float64
	FrameRateBasis  float64
	MaxElapsed      float64

	// Margins keep the egg fully on screen: half its rendered size
	MarginX float64
	MarginY float64
}

// DefaultTuning returns the stock feel
func DefaultTuning() Tuning {
	return Tuning{
		SpinDamping:     SpinDamping,
		VelocityDamping: VelocityDamping,
		SpinEpsilon:     SpinEpsilon,
		FrameRateBasis:  FrameRateBasis,
		MaxElapsed:      MaxElapsed,
		MarginX:         EggHalfWidth,
		MarginY:         EggHalfHeight,
	}
}
