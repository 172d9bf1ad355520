package motion

import "math"

// Engine advances the motion state once per animation frame
type Engine struct {
	state    *State
	tuning   Tuning
	viewport Viewport
}

// NewEngine creates an engine with the egg resting at the viewport center
func NewEngine(vp Viewport, tuning Tuning) *Engine {
	e := &Engine{
		state:    &State{},
		tuning:   tuning,
		viewport: vp,
	}
	e.state.Position = Center(vp)
	return e
}

// State exposes the shared record for the input mapper
func (e *Engine) State() *State {
	return e.state
}

// Viewport returns the size provider the engine clamps against
func (e *Engine) Viewport() Viewport {
	return e.viewport
}

// Tuning returns the active tuning
func (e *Engine) Tuning() Tuning {
	return e.tuning
}

// Tick integrates one frame; elapsed is clamped to [0, MaxElapsed]
// While dragging the mapper drives the state directly and Tick does nothing
func (e *Engine) Tick(elapsed float64) {
	if elapsed < 0 || math.IsNaN(elapsed) {
		elapsed = 0
	}
	if elapsed > e.tuning.MaxElapsed {
		elapsed = e.tuning.MaxElapsed
	}

	s := e.state
	if s.Dragging() {
		return
	}

	s.SpinVelocity *= e.tuning.SpinDamping
	s.Velocity.X *= e.tuning.VelocityDamping
	s.Velocity.Y *= e.tuning.VelocityDamping

	w, h := e.viewport.Size()
	s.Position.X = clampMargin(s.Position.X+s.Velocity.X, e.tuning.MarginX, w)
	s.Position.Y = clampMargin(s.Position.Y+s.Velocity.Y, e.tuning.MarginY, h)

	if math.Abs(s.SpinVelocity) < e.tuning.SpinEpsilon {
		s.SpinVelocity = 0
	}
	s.RotationZ += s.SpinVelocity * elapsed * e.tuning.FrameRateBasis
}

// Recenter moves the egg to the viewport center unless it is held
func (e *Engine) Recenter() bool {
	if e.state.Dragging() {
		return false
	}
	e.state.Position = Center(e.viewport)
	return true
}

// Transform snapshots the values the render step applies
func (e *Engine) Transform() Transform {
	return Transform{
		Position:  e.state.Position,
		RotationZ: e.state.RotationZ,
		RotationX: e.state.RotationX,
	}
}

// clampMargin keeps p in [margin, dim-margin]; the lower bound wins on tiny viewports
func clampMargin(p, margin, dim float64) float64 {
	return math.Max(margin, math.Min(dim-margin, p))
}
