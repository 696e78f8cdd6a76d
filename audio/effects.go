package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveNoise
)

// oscillator generates raw audio waves with an optional exponential frequency sweep
type oscillator struct {
	startFreq float64
	endFreq   float64
	sweep     int // samples to reach endFreq; 0 holds startFreq
	phase     float64
	duration  int
	position  int
	wave      WaveType
	rate      beep.SampleRate
}

// NewOscillator creates a fixed-frequency oscillator that stops after duration
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, 0, duration, wave, rate)
}

// NewSweep creates an oscillator gliding exponentially from 'from' to 'to' Hz over sweep,
// then holding 'to' until duration
func NewSweep(from, to float64, sweep, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		startFreq: from,
		endFreq:   to,
		sweep:     rate.N(sweep),
		duration:  rate.N(duration),
		wave:      wave,
		rate:      rate,
	}
}

// freqAt returns the instantaneous frequency at sample pos
func (o *oscillator) freqAt(pos int) float64 {
	if o.sweep <= 0 || o.startFreq <= 0 || o.endFreq <= 0 {
		return o.startFreq
	}
	if pos >= o.sweep {
		return o.endFreq
	}
	return o.startFreq * math.Pow(o.endFreq/o.startFreq, float64(pos)/float64(o.sweep))
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		// Advance phase
		o.phase += o.freqAt(o.position) / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// decayEnvelope ramps gain exponentially from start to end over decay samples, then holds end
// Matches an exponential ramp on an audio-rate gain parameter
type decayEnvelope struct {
	streamer beep.Streamer
	start    float64
	end      float64
	decay    int
	position int
}

// NewDecay shapes s with an exponential decay from start to end gain over decay
func NewDecay(s beep.Streamer, start, end float64, decay time.Duration, rate beep.SampleRate) beep.Streamer {
	return &decayEnvelope{
		streamer: s,
		start:    start,
		end:      end,
		decay:    rate.N(decay),
	}
}

// gainAt returns the envelope gain at sample pos
func (e *decayEnvelope) gainAt(pos int) float64 {
	if pos >= e.decay || e.decay <= 0 {
		return e.end
	}
	if e.start <= 0 || e.end <= 0 {
		// Exponential ramps are undefined through zero; fall back to linear
		return e.start + (e.end-e.start)*float64(pos)/float64(e.decay)
	}
	return e.start * math.Pow(e.end/e.start, float64(pos)/float64(e.decay))
}

func (e *decayEnvelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		vol := e.gainAt(e.position)
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *decayEnvelope) Err() error { return e.streamer.Err() }

// Helper to create a volume effect safely
// math.Log2(0) is -Inf, so we handle 0 volume by making it silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
