package render

import (
	"math"

	"github.com/lixenwraith/eggdrift/motion"
)

// EggShape is the egg outline in virtual pixels
type EggShape struct {
	HalfWidth  float64
	HalfHeight float64
}

// DefaultEggShape matches the engine margins
func DefaultEggShape() EggShape {
	return EggShape{HalfWidth: motion.EggHalfWidth, HalfHeight: motion.EggHalfHeight}
}

// Narrow top, full-width bottom
const (
	eggWaist = 0.87
	eggFlare = 0.13
)

// Radius bounds the egg under any rotation
func (e EggShape) Radius() float64 {
	return math.Max(e.HalfWidth, e.HalfHeight)
}

// Sample maps a virtual pixel into egg space and returns its shade in [0, 1]
// The transform applies translate, rotate Z, then tilt X (orthographic), so the inverse runs backwards
func (e EggShape) Sample(tr motion.Transform, x, y float64) (shade float64, inside bool) {
	dx := x - tr.Position.X
	dy := y - tr.Position.Y

	sz, cz := math.Sincos(tr.RotationZ * math.Pi / 180)
	u := dx*cz + dy*sz
	v := -dx*sz + dy*cz

	cx := math.Cos(tr.RotationX * math.Pi / 180)
	if math.Abs(cx) < 1e-3 {
		return 0, false // edge-on
	}
	v /= cx

	nv := v / e.HalfHeight
	a := e.HalfWidth * (eggWaist + eggFlare*nv)
	if a <= 0 {
		return 0, false
	}
	nu := u / a

	r2 := nu*nu + nv*nv
	if r2 > 1 {
		return 0, false
	}

	// Soft key light from the upper left plus rim falloff
	nz := math.Sqrt(1 - r2)
	light := 0.35*(-nu) + 0.55*(-nv) + 0.75*nz
	shade = 0.25 + 0.75*math.Max(0, math.Min(1, light))
	return shade, true
}
