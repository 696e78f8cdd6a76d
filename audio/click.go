package audio

import (
	"github.com/gopxl/beep"

	"github.com/samnmy/portfolio/constants"
)

// NewClickVoice synthesizes one mechanical key click
// Each call builds an independent graph: a band-passed noise burst, a square-wave thump
// sweeping down, and a high sine snap, summed into a shared master gain
// The voice drains itself once its longest layer stops; nothing outlives ClickNoiseDuration
func NewClickVoice(rate beep.SampleRate, volume float64) beep.Streamer {
	silence := constants.AudioSilenceLevel

	noise := NewOscillator(0, constants.ClickNoiseDuration, WaveNoise, rate)
	noise = NewBandPass(noise, constants.ClickNoiseCenterHz, constants.ClickNoiseQ, rate)
	noise = NewDecay(noise, constants.ClickNoiseGain, silence, constants.ClickNoiseDecay, rate)

	thump := NewSweep(
		constants.ClickThumpStartHz,
		constants.ClickThumpEndHz,
		constants.ClickThumpSweep,
		constants.ClickThumpDuration,
		WaveSquare,
		rate,
	)
	thump = NewDecay(thump, constants.ClickThumpGain, silence, constants.ClickThumpDecay, rate)

	snap := NewOscillator(constants.ClickSnapHz, constants.ClickSnapDuration, WaveSine, rate)
	snap = NewDecay(snap, constants.ClickSnapGain, silence, constants.ClickSnapDecay, rate)

	return newVolume(beep.Mix(noise, thump, snap), constants.AudioMasterGain*volume)
}
