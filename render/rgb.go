package render

import (
	"github.com/gdamore/tcell/v2"
)

// RGB is a 24-bit color
type RGB struct {
	R, G, B uint8
}

// Palette
var (
	RGBBlack     = RGB{0, 0, 0}
	RGBSpace     = RGB{8, 6, 24}
	RGBShell     = RGB{255, 238, 204}
	RGBShellDark = RGB{140, 96, 70}
	RGBStar      = RGB{220, 225, 255}
)

// clamp converts float to uint8
func clamp(v float64) uint8 {
	if v >= 255.0 {
		return 255
	}
	if v <= 0.0 {
		return 0
	}
	return uint8(v + 0.5)
}

// Scale multiplies every channel by k
func (c RGB) Scale(k float64) RGB {
	return RGB{
		R: clamp(float64(c.R) * k),
		G: clamp(float64(c.G) * k),
		B: clamp(float64(c.B) * k),
	}
}

// Lerp mixes c toward o by t in [0, 1]
func (c RGB) Lerp(o RGB, t float64) RGB {
	return RGB{
		R: clamp(float64(c.R) + (float64(o.R)-float64(c.R))*t),
		G: clamp(float64(c.G) + (float64(o.G)-float64(c.G))*t),
		B: clamp(float64(c.B) + (float64(o.B)-float64(c.B))*t),
	}
}

// Screen brightens c by src with the screen blend
func Screen(c, src RGB) RGB {
	ch := func(a, b uint8) uint8 {
		return 255 - uint8((uint16(255-a)*uint16(255-b))/255)
	}
	return RGB{R: ch(c.R, src.R), G: ch(c.G, src.G), B: ch(c.B, src.B)}
}

// Color converts to a tcell color
func (c RGB) Color() tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
