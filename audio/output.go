package audio

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Output is a live audio device handle
type Output interface {
	// Init opens the device; called once per handle before any other method
	Init(rate beep.SampleRate, bufferSize int) error
	// Play schedules s immediately, mixing it with anything already playing
	Play(s beep.Streamer)
	Suspend() error
	Resume() error
	Close()
	State() State
}

// OutputFactory constructs a new device handle; it may fail or panic on headless hosts
type OutputFactory func() (Output, error)

// speakerOutput drives the process-wide beep speaker
type speakerOutput struct {
	mu    sync.Mutex
	state State
}

// NewSpeakerOutput is the default OutputFactory
func NewSpeakerOutput() (Output, error) {
	return &speakerOutput{state: StateClosed}, nil
}

func (o *speakerOutput) Init(rate beep.SampleRate, bufferSize int) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if err := speaker.Init(rate, bufferSize); err != nil {
		return fmt.Errorf("%w: %v", ErrNoAudioBackend, err)
	}
	o.state = StateRunning
	return nil
}

func (o *speakerOutput) Play(s beep.Streamer) {
	speaker.Play(s)
}

func (o *speakerOutput) Suspend() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.state != StateRunning {
		return nil
	}
	if err := speaker.Suspend(); err != nil {
		return err
	}
	o.state = StateSuspended
	return nil
}

func (o *speakerOutput) Resume() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	switch o.state {
	case StateClosed:
		return ErrOutputClosed
	case StateSuspended:
		if err := speaker.Resume(); err != nil {
			return err
		}
		o.state = StateRunning
	}
	return nil
}

func (o *speakerOutput) Close() {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.state == StateClosed {
		return
	}
	speaker.Clear()
	speaker.Close()
	o.state = StateClosed
}

func (o *speakerOutput) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}
