package audio

import (
	"math"

	"github.com/gopxl/beep"
)

// biquad is a second-order IIR filter in direct form I, one state per channel
type biquad struct {
	streamer beep.Streamer

	b0, b1, b2 float64
	a1, a2     float64

	x1, x2 [2]float64
	y1, y2 [2]float64
}

// NewBandPass filters s with a band-pass centered at center Hz (constant 0 dB peak gain)
func NewBandPass(s beep.Streamer, center, q float64, rate beep.SampleRate) beep.Streamer {
	w0 := 2 * math.Pi * center / float64(rate)
	alpha := math.Sin(w0) / (2 * q)
	a0 := 1 + alpha

	return &biquad{
		streamer: s,
		b0:       alpha / a0,
		b1:       0,
		b2:       -alpha / a0,
		a1:       -2 * math.Cos(w0) / a0,
		a2:       (1 - alpha) / a0,
	}
}

func (f *biquad) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		for c := 0; c < 2; c++ {
			x := samples[i][c]
			y := f.b0*x + f.b1*f.x1[c] + f.b2*f.x2[c] - f.a1*f.y1[c] - f.a2*f.y2[c]

			f.x2[c], f.x1[c] = f.x1[c], x
			f.y2[c], f.y1[c] = f.y1[c], y
			samples[i][c] = y
		}
	}

	return n, ok
}

func (f *biquad) Err() error { return f.streamer.Err() }
