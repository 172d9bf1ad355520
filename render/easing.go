package render

import "math"

// CubicBezier is a CSS-style timing function through (0,0), (X1,Y1), (X2,Y2), (1,1)
type CubicBezier struct {
	X1, Y1, X2, Y2 float64
}

// TransitionEase is the release easing of the egg
var TransitionEase = CubicBezier{0.25, 0.46, 0.45, 0.94}

func bezier(p1, p2, t float64) float64 {
	mt := 1 - t
	return 3*mt*mt*t*p1 + 3*mt*t*t*p2 + t*t*t
}

func bezierSlope(p1, p2, t float64) float64 {
	mt := 1 - t
	return 3*mt*mt*p1 + 6*mt*t*(p2-p1) + 3*t*t*(1-p2)
}

// At returns eased progress for linear progress x in [0, 1]
func (b CubicBezier) At(x float64) float64 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}

	// Solve bezierX(t) = x: Newton first, bisection if the slope flattens
	t := x
	for i := 0; i < 8; i++ {
		err := bezier(b.X1, b.X2, t) - x
		if math.Abs(err) < 1e-7 {
			return bezier(b.Y1, b.Y2, t)
		}
		d := bezierSlope(b.X1, b.X2, t)
		if math.Abs(d) < 1e-6 {
			break
		}
		t -= err / d
	}

	lo, hi := 0.0, 1.0
	t = x
	for i := 0; i < 32; i++ {
		v := bezier(b.X1, b.X2, t)
		if math.Abs(v-x) < 1e-7 {
			break
		}
		if v < x {
			lo = t
		} else {
			hi = t
		}
		t = (lo + hi) / 2
	}
	return bezier(b.Y1, b.Y2, t)
}
