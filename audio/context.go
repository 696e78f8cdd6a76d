package audio

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep"

	"github.com/samnmy/portfolio/constants"
)

// Context lazily owns the audio output
// The device is opened on first Acquire, reused afterwards, resumed when found suspended,
// and reopened transparently once closed
type Context struct {
	mu      sync.Mutex
	factory OutputFactory
	output  Output
	rate    beep.SampleRate
	opened  int
}

// NewContext creates a context; no device is touched until Acquire
func NewContext(rate beep.SampleRate, factory OutputFactory) *Context {
	if factory == nil {
		factory = NewSpeakerOutput
	}
	if rate <= 0 {
		rate = beep.SampleRate(constants.AudioSampleRate)
	}
	return &Context{
		factory: factory,
		rate:    rate,
	}
}

// Acquire returns a live output, opening or resuming it as needed
func (c *Context) Acquire() (Output, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.output == nil || c.output.State() == StateClosed {
		out, err := c.factory()
		if err != nil {
			return nil, fmt.Errorf("create audio output: %w", err)
		}
		if err := out.Init(c.rate, c.rate.N(constants.AudioBufferDuration)); err != nil {
			return nil, fmt.Errorf("init audio output: %w", err)
		}
		c.output = out
		c.opened++
	}

	if c.output.State() == StateSuspended {
		if err := c.output.Resume(); err != nil {
			return nil, fmt.Errorf("resume audio output: %w", err)
		}
	}

	return c.output, nil
}

// Suspend pauses the open output, if any
func (c *Context) Suspend() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.output == nil {
		return nil
	}
	return c.output.Suspend()
}

// Close releases the output; a later Acquire opens a new one
func (c *Context) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.output != nil {
		c.output.Close()
		c.output = nil
	}
}

// State reports the output state; StateClosed before first use
func (c *Context) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.output == nil {
		return StateClosed
	}
	return c.output.State()
}

// SampleRate returns the rate voices must be synthesized at
func (c *Context) SampleRate() beep.SampleRate {
	return c.rate
}

// Opened returns how many device handles have been created
func (c *Context) Opened() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.opened
}
