package input

import (
	"github.com/gdamore/tcell/v2"
)

// CellMetrics maps terminal cells onto the virtual pixel plane
type CellMetrics struct {
	Width  float64
	Height float64
}

// ToPixel returns the virtual pixel at the center of a cell
func (c CellMetrics) ToPixel(col, row int) (x, y float64) {
	return (float64(col) + 0.5) * c.Width, (float64(row) + 0.5) * c.Height
}

// ToCell returns the cell containing a virtual pixel
func (c CellMetrics) ToCell(x, y float64) (col, row int) {
	return floorDiv(x, c.Width), floorDiv(y, c.Height)
}

func floorDiv(v, size float64) int {
	q := int(v / size)
	if v < 0 && float64(q)*size != v {
		q--
	}
	return q
}

// MouseTranslator turns tcell mouse reports into pointer events
// Button 1 is the grabbing button; other buttons and the wheel are ignored
type MouseTranslator struct {
	cell CellMetrics
	held bool
	buf  [1]PointerEvent
}

// NewMouseTranslator creates a translator for the given cell size
func NewMouseTranslator(cell CellMetrics) *MouseTranslator {
	return &MouseTranslator{cell: cell}
}

// Translate returns the events for one report; the slice is reused by the next call
func (t *MouseTranslator) Translate(ev *tcell.EventMouse) []PointerEvent {
	btns := ev.Buttons()
	if btns&(tcell.WheelUp|tcell.WheelDown|tcell.WheelLeft|tcell.WheelRight) != 0 {
		return nil
	}

	col, row := ev.Position()
	x, y := t.cell.ToPixel(col, row)
	pressed := btns&tcell.Button1 != 0

	var phase Phase
	switch {
	case pressed && !t.held:
		t.held = true
		phase = PhaseStart
	case !pressed && t.held:
		// Release reports repeat the last drag cell; a move here would zero the throw
		t.held = false
		phase = PhaseEnd
	default:
		phase = PhaseMove
	}

	t.buf[0] = PointerEvent{Phase: phase, Source: SourceMouse, X: x, Y: y}
	return t.buf[:]
}

// Held reports whether button 1 is down
func (t *MouseTranslator) Held() bool {
	return t.held
}
