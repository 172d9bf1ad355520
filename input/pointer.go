package input

// Phase is the stage of a pointer gesture
type Phase uint8

const (
	PhaseStart Phase = iota
	PhaseMove
	PhaseEnd
)

// Source identifies the device class an event came from
type Source uint8

const (
	SourceMouse Source = iota
	SourceTouch
)

// PointerEvent is a normalized single-pointer event in virtual pixels
type PointerEvent struct {
	Phase  Phase
	Source Source
	X, Y   float64
}

// HitTester reports whether a point lands on the egg
type HitTester interface {
	Contains(x, y float64) bool
}

// Router delivers normalized events to the mapper
// A start only grabs when it lands on the egg; moves and ends are accepted anywhere
type Router struct {
	mapper *Mapper
	hit    HitTester
}

// NewRouter creates a router; a nil hit tester accepts every start
func NewRouter(m *Mapper, hit HitTester) *Router {
	return &Router{mapper: m, hit: hit}
}

// Dispatch routes one event
func (r *Router) Dispatch(ev PointerEvent) {
	switch ev.Phase {
	case PhaseStart:
		if r.hit == nil || r.hit.Contains(ev.X, ev.Y) {
			r.mapper.OnPointerStart(ev.X, ev.Y)
		}
	case PhaseMove:
		r.mapper.OnPointerMove(ev.X, ev.Y)
	case PhaseEnd:
		r.mapper.OnPointerEnd()
	}
}

// DispatchAll routes events in order
func (r *Router) DispatchAll(evs []PointerEvent) {
	for _, ev := range evs {
		r.Dispatch(ev)
	}
}
