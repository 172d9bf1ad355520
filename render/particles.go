package render

import (
	"math"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
)

// Star field defaults
const (
	DefaultParticleCount = 80
	twinklePeriod        = 4 * time.Second
)

type particle struct {
	fx, fy float64 // fraction of the viewport
	size   float64 // 1-3
	delay  time.Duration
}

// Field is the decorative star field; positions are viewport fractions so resizes keep the spread
type Field struct {
	particles []particle
	epoch     time.Time
}

// NewField scatters n stars using rng
func NewField(n int, rng *rand.Rand, epoch time.Time) *Field {
	f := &Field{
		particles: make([]particle, n),
		epoch:     epoch,
	}
	for i := range f.particles {
		f.particles[i] = particle{
			fx:    rng.Float64(),
			fy:    rng.Float64(),
			size:  rng.Float64()*2 + 1,
			delay: time.Duration(rng.Float64() * float64(twinklePeriod)),
		}
	}
	return f
}

// Len returns the number of stars
func (f *Field) Len() int {
	return len(f.particles)
}

// brightness of star i at now, in [0.2, 1]
func (f *Field) brightness(i int, now time.Time) float64 {
	p := f.particles[i]
	t := now.Sub(f.epoch) - p.delay
	phase := math.Mod(float64(t)/float64(twinklePeriod), 1)
	if phase < 0 {
		phase++
	}
	return 0.2 + 0.8*(0.5+0.5*math.Sin(2*math.Pi*phase))
}

func glyph(size float64) rune {
	switch {
	case size < 1.7:
		return '.'
	case size < 2.4:
		return '+'
	default:
		return '*'
	}
}

// Draw plots the stars on a cols x rows grid
func (f *Field) Draw(screen tcell.Screen, cols, rows int, now time.Time) {
	if cols <= 0 || rows <= 0 {
		return
	}
	base := tcell.StyleDefault.Background(RGBSpace.Color())
	for i, p := range f.particles {
		col := int(p.fx * float64(cols))
		row := int(p.fy * float64(rows))
		c := RGBSpace.Lerp(RGBStar, f.brightness(i, now))
		screen.SetContent(col, row, glyph(p.size), nil, base.Foreground(c.Color()))
	}
}
