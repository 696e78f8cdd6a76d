package constants

import "time"

// Audio Output
const (
	// AudioSampleRate is the default output sample rate
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length; short keeps click latency low
	AudioBufferDuration = 10 * time.Millisecond

	// AudioMasterGain is the shared output gain of one click voice
	AudioMasterGain = 0.18

	// AudioSilenceLevel is the gain every click envelope decays toward
	AudioSilenceLevel = 0.001
)

// Click Noise Burst
const (
	ClickNoiseDuration = 25 * time.Millisecond
	ClickNoiseDecay    = 22 * time.Millisecond
	ClickNoiseGain     = 1.0
	ClickNoiseCenterHz = 3200.0
	ClickNoiseQ        = 0.8
)

// Click Tonal Thump
const (
	ClickThumpDuration = 20 * time.Millisecond
	ClickThumpDecay    = 20 * time.Millisecond
	ClickThumpSweep    = 18 * time.Millisecond
	ClickThumpGain     = 0.6
	ClickThumpStartHz  = 260.0
	ClickThumpEndHz    = 80.0
)

// Click High-Frequency Snap
const (
	ClickSnapDuration = 8 * time.Millisecond
	ClickSnapDecay    = 8 * time.Millisecond
	ClickSnapGain     = 0.4
	ClickSnapHz       = 5800.0
)
