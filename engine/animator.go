package engine

import (
	"time"

	"github.com/lixenwraith/eggdrift/motion"
)

// Target receives the transform once per frame
type Target interface {
	Apply(t motion.Transform, now time.Time)
}

// Animator is the self-rescheduling frame callback: tick the engine, hand the result to the target
type Animator struct {
	engine *motion.Engine
	target Target
	queue  *FrameQueue

	last    time.Time
	running bool
	frames  uint64

	// Bound once so re-requesting does not allocate a method value per frame
	frameFn FrameFunc
}

// NewAnimator wires an engine to a render target through a frame queue
func NewAnimator(e *motion.Engine, target Target, queue *FrameQueue) *Animator {
	a := &Animator{
		engine: e,
		target: target,
		queue:  queue,
	}
	a.frameFn = a.frame
	return a
}

// Start schedules the first frame; now is the reference for the first elapsed time
func (a *Animator) Start(now time.Time) {
	if a.running {
		return
	}
	a.running = true
	a.last = now
	a.queue.RequestFrame(a.frameFn)
}

// Stop lets the pending frame run once more without rescheduling
func (a *Animator) Stop() {
	a.running = false
}

// Running reports whether the animator reschedules itself
func (a *Animator) Running() bool {
	return a.running
}

// Frames returns the number of frames animated
func (a *Animator) Frames() uint64 {
	return a.frames
}

func (a *Animator) frame(now time.Time) {
	if !a.running {
		return
	}

	elapsed := now.Sub(a.last).Seconds()
	a.last = now

	a.engine.Tick(elapsed)
	a.target.Apply(a.engine.Transform(), now)
	a.frames++

	a.queue.RequestFrame(a.frameFn)
}
