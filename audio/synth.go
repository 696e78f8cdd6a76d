package audio

import (
	"fmt"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

// Synth plays procedurally synthesized clicks through a lazily opened Context
// Handles graceful degradation: every failure leaves the click inaudible and nothing else
type Synth struct {
	ctx    *Context
	logger *zap.Logger

	mu     sync.RWMutex // Protects config
	config *AudioConfig

	muted   atomic.Bool
	played  atomic.Uint64
	dropped atomic.Uint64
}

// NewSynth creates a synth; the output device is not opened until the first click
func NewSynth(ctx *Context, cfg *AudioConfig, logger *zap.Logger) *Synth {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Synth{
		ctx:    ctx,
		config: cfg,
		logger: logger,
	}
	s.muted.Store(!cfg.Enabled)
	return s
}

// PlayClick synthesizes and plays one voice now; fire-and-forget, never panics
func (s *Synth) PlayClick() {
	if err := s.playClick(); err != nil {
		s.dropped.Add(1)
		s.logger.Debug("click dropped", zap.Error(err))
	}
}

func (s *Synth) playClick() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("audio backend panic: %v", r)
		}
	}()

	if s.muted.Load() {
		return nil
	}

	out, err := s.ctx.Acquire()
	if err != nil {
		return err
	}

	s.mu.RLock()
	volume := s.config.MasterVolume
	s.mu.RUnlock()

	out.Play(NewClickVoice(s.ctx.SampleRate(), volume))
	s.played.Add(1)
	return nil
}

// ToggleMute toggles mute state, returns true if now enabled
// Muting suspends the output device; the next audible click resumes it
func (s *Synth) ToggleMute() bool {
	newMute := !s.muted.Load()
	s.muted.Store(newMute)
	if newMute {
		if err := s.ctx.Suspend(); err != nil {
			s.logger.Debug("audio suspend failed", zap.Error(err))
		}
	}
	return !newMute
}

// IsMuted returns current mute state
func (s *Synth) IsMuted() bool {
	return s.muted.Load()
}

// SetVolume updates master volume (0.0-1.0)
func (s *Synth) SetVolume(vol float64) {
	if vol < 0 {
		vol = 0
	} else if vol > 1 {
		vol = 1
	}

	s.mu.Lock()
	s.config.MasterVolume = vol
	s.mu.Unlock()
}

// Volume returns the master volume (0.0-1.0)
func (s *Synth) Volume() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config.MasterVolume
}

// GetStats returns played and dropped click counts
func (s *Synth) GetStats() (played, dropped uint64) {
	return s.played.Load(), s.dropped.Load()
}

// Close releases the output device
func (s *Synth) Close() {
	s.ctx.Close()
}
