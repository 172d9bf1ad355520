package input

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/eggdrift/feedback"
	"github.com/lixenwraith/eggdrift/motion"
)

// Transitions is the render target's easing switch
type Transitions interface {
	SetTransitions(enabled bool)
}

type noTransitions struct{}

func (noTransitions) SetTransitions(bool) {}

// Mapper turns pointer gestures into motion state changes and feedback cues
type Mapper struct {
	engine      *motion.Engine
	state       *motion.State
	transitions Transitions
	audio       feedback.Audio
	haptics     feedback.Haptics
	log         *zap.Logger
}

// NewMapper wires the mapper to the engine's state; nil collaborators become no-ops
func NewMapper(e *motion.Engine, transitions Transitions, audio feedback.Audio, haptics feedback.Haptics, log *zap.Logger) *Mapper {
	if transitions == nil {
		transitions = noTransitions{}
	}
	if audio == nil {
		audio = feedback.NopAudio{}
	}
	if haptics == nil {
		haptics = feedback.NopHaptics{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Mapper{
		engine:      e,
		state:       e.State(),
		transitions: transitions,
		audio:       audio,
		haptics:     haptics,
		log:         log.Named("input"),
	}
}

// OnPointerStart grabs the egg at (x, y)
func (m *Mapper) OnPointerStart(x, y float64) {
	s := m.state
	held := s.Dragging()
	sess := s.BeginDrag(motion.Vec2{X: x, Y: y})

	m.audio.PlayTap()
	if !held {
		m.audio.StartDrone()
	}
	// Pitch comes from the velocity left over from before the grab
	m.audio.SetDronePitch(feedback.PitchFactor(s.Velocity.X))
	m.transitions.SetTransitions(false)
	m.haptics.Vibrate(feedback.GrabPattern...)

	m.log.Debug("drag start",
		zap.Stringer("session", sess.ID),
		zap.Float64("x", x),
		zap.Float64("y", y),
		zap.Bool("regrab", held))
}

// OnPointerMove follows the pointer while dragging, otherwise tilts toward it
func (m *Mapper) OnPointerMove(x, y float64) {
	s := m.state
	p := motion.Vec2{X: x, Y: y}

	sess := s.Session()
	if sess == nil {
		c := motion.Center(m.engine.Viewport())
		s.RotationZ = (p.X - c.X) * motion.TiltGain
		s.RotationX = -(p.Y - c.Y) * motion.TiltGain
		return
	}

	// Absolute from the grab point so rounding never accumulates
	s.Position = sess.StartPosition.Add(p.Sub(sess.StartPointer))

	step := p.Sub(sess.LastPointer)
	s.SpinVelocity = step.X * motion.SpinFromStep
	s.RotationZ += step.X * motion.RotationFromStep
	s.Velocity = step.Scale(motion.ThrowGain)
	m.audio.SetDronePitch(feedback.PitchFactor(s.Velocity.X))
	sess.LastPointer = p

	m.haptics.Vibrate(feedback.DragPattern...)
}

// OnPointerEnd releases the egg; residual velocity and spin carry the throw
func (m *Mapper) OnPointerEnd() {
	sess := m.state.EndDrag()
	if sess == nil {
		return
	}

	m.audio.StopDrone()
	m.audio.PlayTap()
	m.transitions.SetTransitions(true)
	m.haptics.Cancel()

	m.log.Debug("drag end",
		zap.Stringer("session", sess.ID),
		zap.Float64("vx", m.state.Velocity.X),
		zap.Float64("vy", m.state.Velocity.Y),
		zap.Float64("spin", m.state.SpinVelocity))
}

// OnResize recenters the egg unless it is held
func (m *Mapper) OnResize() {
	if m.engine.Recenter() {
		w, h := m.engine.Viewport().Size()
		m.log.Debug("recentered", zap.Float64("w", w), zap.Float64("h", h))
	}
}
