package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/eggdrift/input"
)

// ScreenViewport reports the terminal size on the virtual pixel plane
type ScreenViewport struct {
	screen tcell.Screen
	cell   input.CellMetrics
}

// NewScreenViewport wraps a tcell screen
func NewScreenViewport(screen tcell.Screen, cell input.CellMetrics) *ScreenViewport {
	return &ScreenViewport{screen: screen, cell: cell}
}

// Size implements motion.Viewport
func (v *ScreenViewport) Size() (w, h float64) {
	cols, rows := v.screen.Size()
	return float64(cols) * v.cell.Width, float64(rows) * v.cell.Height
}

// Cell returns the cell metrics
func (v *ScreenViewport) Cell() input.CellMetrics {
	return v.cell
}
