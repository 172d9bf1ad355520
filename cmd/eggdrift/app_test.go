package main

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lixenwraith/eggdrift/config"
	"github.com/lixenwraith/eggdrift/engine"
	"github.com/lixenwraith/eggdrift/feedback"
	"github.com/lixenwraith/eggdrift/motion"
)

// fakeAudio records cues and supports muting
type fakeAudio struct {
	taps, starts, stops int
	muted               bool
}

func (f *fakeAudio) PlayTap()              { f.taps++ }
func (f *fakeAudio) StartDrone()           { f.starts++ }
func (f *fakeAudio) SetDronePitch(float64) {}
func (f *fakeAudio) StopDrone()            { f.stops++ }
func (f *fakeAudio) ToggleMute() bool {
	f.muted = !f.muted
	return f.muted
}

type harness struct {
	app    *app
	screen tcell.SimulationScreen
	clock  *engine.MockTimeProvider
	sound  *fakeAudio
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(100, 40)
	t.Cleanup(s.Fini)

	clock := engine.NewMockTimeProvider(time.Unix(1000, 0))
	sound := &fakeAudio{}
	a := newApp(s, config.Default(), clock, sound, feedback.NopHaptics{}, nil, zap.NewNop())
	return &harness{app: a, screen: s, clock: clock, sound: sound}
}

func (h *harness) frame() {
	now := h.clock.Advance(16 * time.Millisecond)
	h.app.queue.Flush(now)
	h.app.draw(now)
}

func (h *harness) mouse(col, row int, btn tcell.ButtonMask) bool {
	return h.app.handle(tcell.NewEventMouse(col, row, btn, tcell.ModNone))
}

func (h *harness) key(r rune) bool {
	return h.app.handle(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
}

func (h *harness) state() *motion.State {
	return h.app.engine.State()
}

func TestAppDragAndFling(t *testing.T) {
	h := newHarness(t)
	h.frame()
	assert.Equal(t, motion.Vec2{X: 400, Y: 320}, h.state().Position)

	ch, _, _, _ := h.screen.GetContent(50, 20)
	assert.Equal(t, '█', ch, "egg drawn at center")

	require.True(t, h.mouse(50, 20, tcell.Button1))
	require.True(t, h.state().Dragging())
	assert.Equal(t, 1, h.sound.starts)

	h.mouse(55, 20, tcell.Button1)
	assert.Equal(t, 440.0, h.state().Position.X)

	h.frame()
	assert.Equal(t, 440.0, h.state().Position.X, "held egg does not drift")

	h.mouse(55, 20, tcell.ButtonNone)
	assert.False(t, h.state().Dragging())
	assert.Equal(t, 80.0, h.state().Velocity.X)
	assert.Equal(t, 2, h.sound.taps)
	assert.Equal(t, 1, h.sound.stops)

	h.frame()
	assert.InDelta(t, 512.0, h.state().Position.X, 1e-9)
	assert.Greater(t, h.state().RotationZ, 0.0)
}

func TestAppPressOffEggHovers(t *testing.T) {
	h := newHarness(t)
	h.frame()

	h.mouse(2, 2, tcell.Button1)
	assert.False(t, h.state().Dragging())
	assert.Zero(t, h.sound.starts)

	h.mouse(3, 2, tcell.Button1)
	assert.InDelta(t, (28.0-400)*motion.TiltGain, h.state().RotationZ, 1e-9, "tilt follows the pointer")

	h.mouse(3, 2, tcell.ButtonNone)
	assert.Zero(t, h.sound.taps)
}

func TestAppKeys(t *testing.T) {
	h := newHarness(t)

	assert.True(t, h.key('m'))
	assert.True(t, h.sound.muted)
	assert.True(t, h.key('m'))
	assert.False(t, h.sound.muted)

	h.state().Position = motion.Vec2{X: 60, Y: 70}
	assert.True(t, h.key('r'))
	assert.Equal(t, motion.Vec2{X: 400, Y: 320}, h.state().Position)

	assert.False(t, h.key('q'))
	assert.False(t, h.app.handle(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
}

func TestAppResizeRecenters(t *testing.T) {
	h := newHarness(t)
	h.screen.SetSize(60, 30)

	assert.True(t, h.app.handle(tcell.NewEventResize(60, 30)))
	assert.Equal(t, motion.Vec2{X: 240, Y: 240}, h.state().Position)
}

func TestAppLoopQuitsOnKey(t *testing.T) {
	h := newHarness(t)
	events := make(chan tcell.Event, 1)
	events <- tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	assert.NoError(t, h.app.loop(60).Run(ctx, events, h.app.handle))
}
