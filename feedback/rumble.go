package feedback

import (
	"time"

	"github.com/lixenwraith/eggdrift/engine"
)

// Rumble renders vibration patterns visually: during "on" segments the
// drawn egg is jittered by Offset
type Rumble struct {
	clock   engine.Clock
	pattern []time.Duration
	start   time.Time
	active  bool
}

// NewRumble creates an idle rumble driven by clock
func NewRumble(clock engine.Clock) *Rumble {
	return &Rumble{
		clock:   clock,
		pattern: make([]time.Duration, 0, 8),
	}
}

// Vibrate implements Haptics
func (r *Rumble) Vibrate(pattern ...time.Duration) {
	r.pattern = append(r.pattern[:0], pattern...)
	r.start = r.clock.Now()
	r.active = len(r.pattern) > 0
}

// Cancel implements Haptics
func (r *Rumble) Cancel() {
	r.pattern = r.pattern[:0]
	r.active = false
}

// Active reports whether now falls inside an "on" segment
func (r *Rumble) Active(now time.Time) bool {
	if !r.active {
		return false
	}
	elapsed := now.Sub(r.start)
	if elapsed < 0 {
		return false
	}
	for i, d := range r.pattern {
		if elapsed < d {
			return i%2 == 0
		}
		elapsed -= d
	}
	r.active = false
	return false
}

// Offset returns the horizontal jitter in cells, alternating each 20ms
func (r *Rumble) Offset(now time.Time) int {
	if !r.Active(now) {
		return 0
	}
	if (now.Sub(r.start)/(20*time.Millisecond))%2 == 0 {
		return 1
	}
	return -1
}
