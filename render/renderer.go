package render

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/eggdrift/input"
	"github.com/lixenwraith/eggdrift/motion"
)

// Shaker offsets the drawn egg by whole cells, used for the visual rumble
type Shaker interface {
	Offset(now time.Time) int
}

// Renderer draws one frame: star field, egg, hint line
type Renderer struct {
	screen tcell.Screen
	target *Target
	field  *Field
	cell   input.CellMetrics
	shaker Shaker
	hint   string
}

// NewRenderer creates a renderer; shaker may be nil
func NewRenderer(screen tcell.Screen, target *Target, field *Field, cell input.CellMetrics, shaker Shaker) *Renderer {
	return &Renderer{
		screen: screen,
		target: target,
		field:  field,
		cell:   cell,
		shaker: shaker,
		hint:   "drag the egg  m mute  r recenter  q quit",
	}
}

// Draw renders the frame and shows it
func (r *Renderer) Draw(now time.Time) {
	cols, rows := r.screen.Size()
	bg := tcell.StyleDefault.Background(RGBSpace.Color())
	r.screen.SetStyle(bg)
	r.screen.Clear()

	if r.field != nil {
		r.field.Draw(r.screen, cols, rows, now)
	}

	shake := 0
	if r.shaker != nil {
		shake = r.shaker.Offset(now)
	}
	r.drawEgg(r.target.Shown(), cols, rows, shake)
	r.drawHint(cols, rows, bg)

	r.screen.Show()
}

func (r *Renderer) drawEgg(tr motion.Transform, cols, rows, shake int) {
	shape := r.target.Shape()
	rad := shape.Radius()

	c0, r0 := r.cell.ToCell(tr.Position.X-rad, tr.Position.Y-rad)
	c1, r1 := r.cell.ToCell(tr.Position.X+rad, tr.Position.Y+rad)

	for row := max(r0, 0); row <= min(r1, rows-1); row++ {
		for col := max(c0, 0); col <= min(c1, cols-1); col++ {
			x, y := r.cell.ToPixel(col, row)
			shade, inside := shape.Sample(tr, x, y)
			if !inside {
				continue
			}
			c := RGBShellDark.Lerp(RGBShell, shade)
			if shade > 0.92 {
				c = Screen(c, RGB{60, 60, 60})
			}
			dc := col + shake
			if dc < 0 || dc >= cols {
				continue
			}
			r.screen.SetContent(dc, row, '█', nil, tcell.StyleDefault.Foreground(c.Color()).Background(RGBSpace.Color()))
		}
	}
}

func (r *Renderer) drawHint(cols, rows int, bg tcell.Style) {
	if rows < 2 || len(r.hint) > cols {
		return
	}
	style := bg.Foreground(RGBStar.Scale(0.45).Color())
	x := (cols - len(r.hint)) / 2
	for i, ch := range r.hint {
		r.screen.SetContent(x+i, rows-1, ch, nil, style)
	}
}
