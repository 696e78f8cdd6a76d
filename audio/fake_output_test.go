package audio

import (
	"errors"
	"sync"

	"github.com/gopxl/beep"
)

// countingStreamer records how many samples a voice produced
type countingStreamer struct {
	beep.Streamer
	mu      sync.Mutex
	samples int
}

func (c *countingStreamer) Stream(samples [][2]float64) (int, bool) {
	n, ok := c.Streamer.Stream(samples)
	c.mu.Lock()
	c.samples += n
	c.mu.Unlock()
	return n, ok
}

func (c *countingStreamer) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.samples
}

// fakeOutput mixes played voices into a beep.Mixer the test pulls from
type fakeOutput struct {
	mu      sync.Mutex
	state   State
	inits   int
	resumes int
	initErr error
	mixer   beep.Mixer
	voices  []*countingStreamer
}

func newFakeOutput() *fakeOutput {
	return &fakeOutput{state: StateClosed}
}

func (f *fakeOutput) Init(rate beep.SampleRate, bufferSize int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inits++
	if f.initErr != nil {
		return f.initErr
	}
	f.state = StateRunning
	return nil
}

func (f *fakeOutput) Play(s beep.Streamer) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c := &countingStreamer{Streamer: s}
	f.voices = append(f.voices, c)
	f.mixer.Add(c)
}

func (f *fakeOutput) Suspend() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state == StateRunning {
		f.state = StateSuspended
	}
	return nil
}

func (f *fakeOutput) Resume() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state == StateClosed {
		return ErrOutputClosed
	}
	f.resumes++
	f.state = StateRunning
	return nil
}

func (f *fakeOutput) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = StateClosed
}

func (f *fakeOutput) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// pull streams n samples of the mixed device output
func (f *fakeOutput) pull(n int) [][2]float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	buf := make([][2]float64, n)
	f.mixer.Stream(buf)
	return buf
}

func (f *fakeOutput) playing() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.mixer.Len()
}

// factoryFor returns a factory that hands out outs in order
func factoryFor(outs ...*fakeOutput) (OutputFactory, *int) {
	calls := 0
	return func() (Output, error) {
		if calls >= len(outs) {
			return nil, errors.New("no more fake outputs")
		}
		out := outs[calls]
		calls++
		return out, nil
	}, &calls
}
