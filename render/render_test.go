package render

import (
	"math/rand"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/eggdrift/input"
	"github.com/lixenwraith/eggdrift/motion"
)

var testCell = input.CellMetrics{Width: 8, Height: 16}

func TestTransitionEaseEndpointsAndShape(t *testing.T) {
	assert.Equal(t, 0.0, TransitionEase.At(0))
	assert.Equal(t, 1.0, TransitionEase.At(1))
	assert.Equal(t, 0.0, TransitionEase.At(-3))
	assert.Equal(t, 1.0, TransitionEase.At(7))

	prev := 0.0
	for i := 1; i <= 100; i++ {
		v := TransitionEase.At(float64(i) / 100)
		require.GreaterOrEqual(t, v, prev, "step %d", i)
		prev = v
	}

	// Ease-out: ahead of linear in the middle
	assert.Greater(t, TransitionEase.At(0.5), 0.5)

	linear := CubicBezier{0, 0, 1, 1}
	assert.InDelta(t, 0.3, linear.At(0.3), 1e-6)
}

func TestTargetSnapsWhenTransitionsOff(t *testing.T) {
	tg := NewTarget(DefaultEggShape())
	t0 := time.Unix(0, 0)

	a := motion.Transform{Position: motion.Vec2{X: 100, Y: 100}}
	b := motion.Transform{Position: motion.Vec2{X: 300, Y: 200}, RotationZ: 45}

	tg.Apply(a, t0)
	assert.Equal(t, a, tg.Shown(), "first frame snaps")

	tg.SetTransitions(false)
	assert.False(t, tg.Transitions())
	tg.Apply(b, t0.Add(16*time.Millisecond))
	assert.Equal(t, b, tg.Shown())
}

func TestTargetEasesTowardLogical(t *testing.T) {
	tg := NewTarget(DefaultEggShape())
	t0 := time.Unix(0, 0)

	a := motion.Transform{Position: motion.Vec2{X: 100, Y: 100}}
	b := motion.Transform{Position: motion.Vec2{X: 400, Y: 100}, RotationZ: 90}

	tg.Apply(a, t0)
	tg.Apply(b, t0.Add(16*time.Millisecond))

	mid := tg.Shown()
	assert.Greater(t, mid.Position.X, 100.0)
	assert.Less(t, mid.Position.X, 400.0)
	assert.Greater(t, mid.RotationZ, 0.0)
	assert.Less(t, mid.RotationZ, 90.0)

	tg.Apply(b, t0.Add(150*time.Millisecond))
	later := tg.Shown()
	assert.Greater(t, later.Position.X, mid.Position.X)

	tg.Apply(b, t0.Add(400*time.Millisecond))
	assert.Equal(t, b, tg.Shown())
}

func TestTargetReenableEasesFromShown(t *testing.T) {
	tg := NewTarget(DefaultEggShape())
	t0 := time.Unix(0, 0)

	a := motion.Transform{Position: motion.Vec2{X: 100, Y: 100}}
	b := motion.Transform{Position: motion.Vec2{X: 500, Y: 100}}

	tg.SetTransitions(false)
	tg.Apply(a, t0)
	tg.SetTransitions(true)
	tg.Apply(b, t0.Add(16*time.Millisecond))

	x := tg.Shown().Position.X
	assert.Greater(t, x, 100.0)
	assert.Less(t, x, 500.0)
}

func TestEggHitTest(t *testing.T) {
	shape := DefaultEggShape()
	at := func(tr motion.Transform, x, y float64) bool {
		_, inside := shape.Sample(tr, x, y)
		return inside
	}
	upright := motion.Transform{Position: motion.Vec2{X: 400, Y: 300}}

	assert.True(t, at(upright, 400, 300))
	assert.False(t, at(upright, 460, 300))
	assert.True(t, at(upright, 400, 360), "wide bottom")
	assert.False(t, at(upright, 400, 230))

	tilted := upright
	tilted.RotationX = 60
	assert.True(t, at(upright, 400, 340))
	assert.False(t, at(tilted, 400, 340), "tilt squashes the egg vertically")

	edgeOn := upright
	edgeOn.RotationX = 90
	assert.False(t, at(edgeOn, 400, 300))

	turned := upright
	turned.RotationZ = 90
	assert.True(t, at(turned, 460, 300), "long axis is now horizontal")

	shade, inside := shape.Sample(upright, 400, 300)
	require.True(t, inside)
	assert.GreaterOrEqual(t, shade, 0.25)
	assert.LessOrEqual(t, shade, 1.0)
}

func TestTargetContainsFollowsShown(t *testing.T) {
	tg := NewTarget(DefaultEggShape())
	tg.Apply(motion.Transform{Position: motion.Vec2{X: 200, Y: 200}}, time.Unix(0, 0))

	assert.True(t, tg.Contains(200, 200))
	assert.False(t, tg.Contains(400, 300))
}

func TestFieldBrightnessRange(t *testing.T) {
	epoch := time.Unix(0, 0)
	f := NewField(DefaultParticleCount, rand.New(rand.NewSource(7)), epoch)
	require.Equal(t, 80, f.Len())

	for i := 0; i < f.Len(); i++ {
		p := f.particles[i]
		assert.GreaterOrEqual(t, p.size, 1.0)
		assert.LessOrEqual(t, p.size, 3.0)
		assert.Less(t, p.delay, twinklePeriod)
		for _, d := range []time.Duration{0, time.Second, 3 * time.Second, 11 * time.Second} {
			b := f.brightness(i, epoch.Add(d))
			assert.GreaterOrEqual(t, b, 0.2-1e-9)
			assert.LessOrEqual(t, b, 1.0+1e-9)
		}
	}
}

func newSimScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(cols, rows)
	t.Cleanup(s.Fini)
	return s
}

type fixedShake int

func (f fixedShake) Offset(time.Time) int { return int(f) }

func leftmostEggCol(s tcell.Screen, row, cols int) int {
	for col := 0; col < cols; col++ {
		r, _, _, _ := s.GetContent(col, row)
		if r == '█' {
			return col
		}
	}
	return -1
}

func TestRendererDrawsEggAtCenter(t *testing.T) {
	s := newSimScreen(t, 100, 40)
	vp := NewScreenViewport(s, testCell)

	w, h := vp.Size()
	assert.Equal(t, 800.0, w)
	assert.Equal(t, 640.0, h)

	e := motion.NewEngine(vp, motion.DefaultTuning())
	tg := NewTarget(DefaultEggShape())
	now := time.Unix(0, 0)
	tg.Apply(e.Transform(), now)

	field := NewField(DefaultParticleCount, rand.New(rand.NewSource(1)), now)
	r := NewRenderer(s, tg, field, testCell, nil)
	r.Draw(now)

	ch, _, _, _ := s.GetContent(50, 20)
	assert.Equal(t, '█', ch)

	corner, _, _, _ := s.GetContent(0, 0)
	assert.NotEqual(t, '█', corner)

	plain := leftmostEggCol(s, 20, 100)
	require.GreaterOrEqual(t, plain, 0)

	shaken := NewRenderer(s, tg, field, testCell, fixedShake(1))
	shaken.Draw(now)
	assert.Equal(t, plain+1, leftmostEggCol(s, 20, 100))
}

func TestRendererSurvivesTinyScreen(t *testing.T) {
	s := newSimScreen(t, 3, 1)
	tg := NewTarget(DefaultEggShape())
	tg.Apply(motion.Transform{Position: motion.Vec2{X: 12, Y: 8}}, time.Unix(0, 0))

	r := NewRenderer(s, tg, nil, testCell, nil)
	assert.NotPanics(t, func() { r.Draw(time.Unix(0, 0)) })
}
