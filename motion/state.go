package motion

import (
	"math"

	"github.com/google/uuid"
)

// Vec2 is a point or displacement on the virtual pixel plane
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

func (v Vec2) Scale(k float64) Vec2 { return Vec2{v.X * k, v.Y * k} }

// Len returns the Euclidean length
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Viewport supplies the current drawable size in virtual pixels
type Viewport interface {
	Size() (w, h float64)
}

// Center returns the midpoint of the viewport
func Center(vp Viewport) Vec2 {
	w, h := vp.Size()
	return Vec2{w / 2, h / 2}
}

// DragSession is the bookkeeping of one grab gesture
type DragSession struct {
	ID            uuid.UUID
	StartPointer  Vec2
	LastPointer   Vec2
	StartPosition Vec2
}

// State is the single mutable motion record of the egg
// Dragging is defined by the presence of a session, so the two cannot disagree
type State struct {
	Position     Vec2
	Velocity     Vec2
	RotationZ    float64 // degrees, in-plane
	RotationX    float64 // degrees, tilt
	SpinVelocity float64

	drag *DragSession
}

// Dragging reports whether the egg is under direct manipulation
func (s *State) Dragging() bool {
	return s.drag != nil
}

// Session returns the active drag session, nil when idle
func (s *State) Session() *DragSession {
	return s.drag
}

// BeginDrag opens a session anchored at pointer p and the current position
func (s *State) BeginDrag(p Vec2) *DragSession {
	s.drag = &DragSession{
		ID:            uuid.New(),
		StartPointer:  p,
		LastPointer:   p,
		StartPosition: s.Position,
	}
	return s.drag
}

// EndDrag discards the session, returns the closed one or nil if idle
func (s *State) EndDrag() *DragSession {
	d := s.drag
	s.drag = nil
	return d
}

// Transform is the per-frame output consumed by the render target
type Transform struct {
	Position  Vec2
	RotationZ float64
	RotationX float64
}
