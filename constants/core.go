package constants

import "time"

// DefaultFPS is the frame rate used when no config overrides it
const DefaultFPS = 60

// Terminal Geometry
const (
	// CellWidthPx approximates the pixel width of one terminal cell for pointer scaling
	CellWidthPx = 8.0

	// SphereRadiusCells is the sphere radius in terminal rows; columns are doubled for aspect
	SphereRadiusCells = 6

	// HaloPeriod is one revolution of the spinning halo ring
	HaloPeriod = 4 * time.Second
)
