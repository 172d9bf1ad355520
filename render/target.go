package render

import (
	"time"

	"github.com/lixenwraith/eggdrift/motion"
)

// TransitionDuration is how long an eased retarget takes
const TransitionDuration = 300 * time.Millisecond

// Target holds the displayed egg transform
// With transitions on, every change eases from what is shown; with them off it snaps
type Target struct {
	logical motion.Transform
	shown   motion.Transform
	from    motion.Transform

	since time.Time
	last  time.Time

	transitions bool
	applied     bool

	ease     CubicBezier
	duration time.Duration
	shape    EggShape
}

// NewTarget creates a target with transitions enabled
func NewTarget(shape EggShape) *Target {
	return &Target{
		transitions: true,
		ease:        TransitionEase,
		duration:    TransitionDuration,
		shape:       shape,
	}
}

// Apply receives the frame's transform
func (t *Target) Apply(tr motion.Transform, now time.Time) {
	if !t.applied || !t.transitions {
		t.applied = true
		t.logical, t.shown, t.from = tr, tr, tr
		t.since, t.last = now, now
		return
	}

	if tr != t.logical {
		// Interrupted transitions restart from the shown value, one frame in
		t.from = t.shown
		t.since = t.last
		t.logical = tr
	}
	t.last = now

	p := float64(now.Sub(t.since)) / float64(t.duration)
	if p >= 1 {
		t.shown = t.logical
		return
	}
	e := t.ease.At(p)
	t.shown = motion.Transform{
		Position: motion.Vec2{
			X: lerp(t.from.Position.X, t.logical.Position.X, e),
			Y: lerp(t.from.Position.Y, t.logical.Position.Y, e),
		},
		RotationZ: lerp(t.from.RotationZ, t.logical.RotationZ, e),
		RotationX: lerp(t.from.RotationX, t.logical.RotationX, e),
	}
}

// SetTransitions toggles easing
func (t *Target) SetTransitions(enabled bool) {
	if enabled && !t.transitions {
		t.from = t.shown
		t.since = t.last
	}
	t.transitions = enabled
}

// Transitions reports whether easing is on
func (t *Target) Transitions() bool {
	return t.transitions
}

// Shown returns the transform currently drawn
func (t *Target) Shown() motion.Transform {
	return t.shown
}

// Shape returns the egg geometry
func (t *Target) Shape() EggShape {
	return t.shape
}

// Contains hit-tests a virtual pixel against the drawn egg
func (t *Target) Contains(x, y float64) bool {
	_, inside := t.shape.Sample(t.shown, x, y)
	return inside
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
