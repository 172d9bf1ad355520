package audio

import (
	"fmt"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"github.com/lixenwraith/eggdrift/feedback"
)

var _ feedback.Audio = (*Synth)(nil)

// Stats counts voices for diagnostics
type Stats struct {
	Taps          uint64
	DronesStarted uint64
	DronesStopped uint64
}

// drone is the continuous voice held while the egg is dragged
type drone struct {
	osc  *oscillator
	gain *gainRamp
}

// Synth renders the egg's cues through the beep speaker
// All methods are called from the UI goroutine; voice mutation is done under the speaker lock
type Synth struct {
	cfg  Config
	rate beep.SampleRate
	log  *zap.Logger

	mixer  *beep.Mixer
	volume beep.Streamer
	master *beep.Ctrl

	drone *drone
	stats Stats

	initialized bool
	lock        func()
	unlock      func()
}

// NewSynth creates an unopened synthesizer; every cue is a no-op until Init succeeds
func NewSynth(cfg Config, log *zap.Logger) *Synth {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Synth{
		cfg:   cfg,
		rate:  beep.SampleRate(cfg.SampleRate),
		log:   log.Named("audio"),
		mixer: &beep.Mixer{},
	}
	s.volume = newVolume(s.mixer, ClampVolume(cfg.MasterVolume))
	s.master = &beep.Ctrl{Streamer: s.volume, Paused: false}
	return s
}

// Init opens the speaker; failure leaves the synth silent and is reported to the caller
func (s *Synth) Init() error {
	if s.initialized {
		return nil
	}
	if !s.cfg.Enabled {
		return ErrDisabled
	}

	if err := speaker.Init(s.rate, s.rate.N(s.cfg.BufferDuration)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	s.attach(speaker.Lock, speaker.Unlock)
	speaker.Play(s.master)

	s.log.Info("speaker ready",
		zap.Int("sample_rate", s.cfg.SampleRate),
		zap.Duration("buffer", s.cfg.BufferDuration))
	return nil
}

// attach marks the synth live with the given output lock
func (s *Synth) attach(lock, unlock func()) {
	s.lock = lock
	s.unlock = unlock
	s.initialized = true
}

// Close silences every voice and releases the speaker
func (s *Synth) Close() {
	if !s.initialized {
		return
	}
	s.lock()
	s.mixer.Clear()
	s.unlock()
	s.drone = nil

	speaker.Close()
	s.initialized = false
}

// Ready reports whether cues reach an output
func (s *Synth) Ready() bool {
	return s.initialized
}

// PlayTap plays a sine blip decaying exponentially to silence
func (s *Synth) PlayTap() {
	if !s.initialized {
		return
	}

	sine, err := generators.SineTone(s.rate, s.cfg.TapFrequency)
	if err != nil {
		s.log.Debug("tap tone rejected", zap.Error(err))
		return
	}
	env := newGainRamp(sine, s.cfg.TapGain, s.rate)
	env.rampTo(silenceGain, s.cfg.TapDuration)
	voice := beep.Take(s.rate.N(s.cfg.TapDuration), env)

	s.lock()
	s.mixer.Add(voice)
	s.unlock()
	s.stats.Taps++
}

// StartDrone starts the triangle drone unless one is already held
func (s *Synth) StartDrone() {
	if !s.initialized || s.drone != nil {
		return
	}

	osc := newOscillator(s.cfg.DroneFrequency, WaveTriangle, s.rate)
	d := &drone{
		osc:  osc,
		gain: newGainRamp(osc, s.cfg.DroneGain, s.rate),
	}

	s.lock()
	s.mixer.Add(d.gain)
	s.unlock()
	s.drone = d
	s.stats.DronesStarted++
}

// SetDronePitch retunes the held drone to factor x base frequency
func (s *Synth) SetDronePitch(factor float64) {
	if s.drone == nil {
		return
	}
	s.lock()
	s.drone.osc.freq = s.cfg.DroneFrequency * factor
	s.unlock()
}

// StopDrone fades the drone out; the mixer drops it when the fade lands
func (s *Synth) StopDrone() {
	if s.drone == nil {
		return
	}
	s.lock()
	s.drone.gain.fadeOut(s.cfg.DroneFade)
	s.unlock()
	s.drone = nil
	s.stats.DronesStopped++
}

// DroneActive reports whether a drone is held
func (s *Synth) DroneActive() bool {
	return s.drone != nil
}

// ToggleMute pauses or resumes the whole output, returns true if now audible
func (s *Synth) ToggleMute() bool {
	if !s.initialized {
		return false
	}
	s.lock()
	s.master.Paused = !s.master.Paused
	audible := !s.master.Paused
	s.unlock()
	return audible
}

// Stats returns voice counters
func (s *Synth) Stats() Stats {
	return s.stats
}
