package main

import (
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/eggdrift/config"
	"github.com/lixenwraith/eggdrift/engine"
	"github.com/lixenwraith/eggdrift/feedback"
	"github.com/lixenwraith/eggdrift/input"
	"github.com/lixenwraith/eggdrift/motion"
	"github.com/lixenwraith/eggdrift/render"
)

// muter is implemented by audio backends that can be silenced
type muter interface {
	ToggleMute() bool
}

// app owns every component touched by the UI goroutine
type app struct {
	screen   tcell.Screen
	clock    engine.Clock
	engine   *motion.Engine
	target   *render.Target
	mapper   *input.Mapper
	router   *input.Router
	mouse    *input.MouseTranslator
	queue    *engine.FrameQueue
	animator *engine.Animator
	renderer *render.Renderer
	sound    feedback.Audio
	log      *zap.Logger
}

// newApp wires the engine, mapper and renderer; shaker may be nil
func newApp(screen tcell.Screen, cfg *config.Config, clock engine.Clock, sound feedback.Audio, haptics feedback.Haptics, shaker render.Shaker, log *zap.Logger) *app {
	cell := input.CellMetrics{Width: cfg.Render.CellWidth, Height: cfg.Render.CellHeight}
	vp := render.NewScreenViewport(screen, cell)

	e := motion.NewEngine(vp, cfg.Tuning())
	shape := render.EggShape{HalfWidth: cfg.Physics.MarginX, HalfHeight: cfg.Physics.MarginY}
	target := render.NewTarget(shape)
	mapper := input.NewMapper(e, target, sound, haptics, log)
	queue := engine.NewFrameQueue()

	now := clock.Now()
	field := render.NewField(cfg.Render.Particles, rand.New(rand.NewSource(now.UnixNano())), now)

	a := &app{
		screen:   screen,
		clock:    clock,
		engine:   e,
		target:   target,
		mapper:   mapper,
		router:   input.NewRouter(mapper, target),
		mouse:    input.NewMouseTranslator(cell),
		queue:    queue,
		animator: engine.NewAnimator(e, target, queue),
		renderer: render.NewRenderer(screen, target, field, cell, shaker),
		sound:    sound,
		log:      log,
	}
	a.animator.Start(now)
	return a
}

// loop returns the frame loop presenting after every flush
func (a *app) loop(fps int) *engine.Loop[tcell.Event] {
	return &engine.Loop[tcell.Event]{
		Queue:      a.queue,
		Clock:      a.clock,
		Interval:   engine.FrameInterval(fps),
		AfterFrame: a.draw,
	}
}

func (a *app) draw(now time.Time) {
	a.renderer.Draw(now)
}

// handle processes one terminal event; false requests exit
func (a *app) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		a.router.DispatchAll(a.mouse.Translate(ev))

	case *tcell.EventResize:
		a.screen.Sync()
		a.mapper.OnResize()

	case *tcell.EventKey:
		switch input.KeyIntent(ev) {
		case input.IntentQuit:
			a.log.Info("quit requested")
			return false
		case input.IntentToggleMute:
			if m, ok := a.sound.(muter); ok {
				a.log.Info("mute toggled", zap.Bool("audible", m.ToggleMute()))
			}
		case input.IntentRecenter:
			a.mapper.OnResize()
		}
	}
	return true
}
