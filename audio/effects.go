package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// oscillator is an endless waveform with a frequency that may change between buffers
type oscillator struct {
	freq  float64
	phase float64
	wave  Wave
	rate  beep.SampleRate
}

// newOscillator creates an endless oscillator
func newOscillator(freq float64, wave Wave, rate beep.SampleRate) *oscillator {
	return &oscillator{
		freq: freq,
		wave: wave,
		rate: rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	inc := o.freq / float64(o.rate)
	for i := range samples {
		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveTriangle:
			val = 1 - 4*math.Abs(o.phase-0.5)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += inc
		o.phase -= math.Floor(o.phase) // keep in [0, 1)
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// gainRamp scales a stream by a gain that can glide exponentially to a target
type gainRamp struct {
	streamer beep.Streamer
	rate     beep.SampleRate

	gain      float64
	target    float64
	factor    float64 // per-sample multiplier while ramping
	remaining int     // samples left in the current ramp

	// endAtTarget drains the stream once the ramp lands
	endAtTarget bool
	done        bool
}

// newGainRamp starts at a constant gain
func newGainRamp(s beep.Streamer, gain float64, rate beep.SampleRate) *gainRamp {
	return &gainRamp{
		streamer: s,
		rate:     rate,
		gain:     gain,
		target:   gain,
	}
}

// rampTo glides exponentially from the current gain to target over d
// Both ends are floored at silenceGain
func (g *gainRamp) rampTo(target float64, d time.Duration) {
	from := math.Max(g.gain, silenceGain)
	target = math.Max(target, silenceGain)
	n := g.rate.N(d)
	if n <= 0 {
		g.gain, g.target, g.remaining = target, target, 0
		return
	}
	g.target = target
	g.remaining = n
	g.factor = math.Pow(target/from, 1/float64(n))
	g.gain = from
}

// fadeOut ramps to silence and then ends the stream
func (g *gainRamp) fadeOut(d time.Duration) {
	g.rampTo(silenceGain, d)
	g.endAtTarget = true
	if g.remaining == 0 {
		g.done = true
	}
}

func (g *gainRamp) Stream(samples [][2]float64) (n int, ok bool) {
	if g.done {
		return 0, false
	}

	n, ok = g.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		samples[i][0] *= g.gain
		samples[i][1] *= g.gain

		if g.remaining > 0 {
			g.gain *= g.factor
			g.remaining--
			if g.remaining == 0 {
				g.gain = g.target
				if g.endAtTarget {
					g.done = true
					return i + 1, true
				}
			}
		}
	}
	return n, ok
}

func (g *gainRamp) Err() error { return g.streamer.Err() }

// newVolume wraps s in a linear volume; math.Log2(0) is -Inf, so zero is made silent
func newVolume(s beep.Streamer, vol float64) *effects.Volume {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
