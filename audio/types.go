package audio

import (
	"errors"
)

// State is the lifecycle state of an audio output
type State int

const (
	StateRunning State = iota
	StateSuspended
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateSuspended:
		return "suspended"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Sentinel errors
var (
	ErrNoAudioBackend = errors.New("no compatible audio backend found")
	ErrOutputClosed   = errors.New("audio output closed")
)

// Clicker plays a click sound; implementations never fail visibly
type Clicker interface {
	PlayClick()
}
