package input

// TouchPhase is the kind of a touch frame
type TouchPhase uint8

const (
	TouchBegin TouchPhase = iota
	TouchMove
	TouchEnd
	TouchCancel
)

// TouchPoint is one contact in virtual pixels
type TouchPoint struct {
	ID   int64
	X, Y float64
}

// TouchFrame is one host touch event with the contacts still down, primary first
type TouchFrame struct {
	Phase   TouchPhase
	Touches []TouchPoint
}

// TouchTranslator maps touch frames to the single-pointer model: only the first contact counts
type TouchTranslator struct {
	buf [1]PointerEvent
}

// NewTouchTranslator creates a translator
func NewTouchTranslator() *TouchTranslator {
	return &TouchTranslator{}
}

// Translate returns the pointer events for f and whether the host must suppress its
// default handling (scrolling, selection). Begin and move frames are always consumed.
func (t *TouchTranslator) Translate(f TouchFrame) (events []PointerEvent, consumed bool) {
	switch f.Phase {
	case TouchBegin, TouchMove:
		if len(f.Touches) == 0 {
			return nil, true
		}
		p := f.Touches[0]
		phase := PhaseStart
		if f.Phase == TouchMove {
			phase = PhaseMove
		}
		t.buf[0] = PointerEvent{Phase: phase, Source: SourceTouch, X: p.X, Y: p.Y}
		return t.buf[:], true

	case TouchEnd, TouchCancel:
		t.buf[0] = PointerEvent{Phase: PhaseEnd, Source: SourceTouch}
		return t.buf[:], false
	}
	return nil, false
}
