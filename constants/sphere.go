package constants

import "time"

// Sphere rotation tuning, defaults for physics.Tuning
const (
	// SphereBaseSpeed is the auto-rotation speed in degrees per nominal frame (~1 rev / 5s at 60fps)
	SphereBaseSpeed = 1.2

	// SphereDragSensitivity converts pointer pixels to degrees of rotation
	SphereDragSensitivity = 0.55

	// SphereFriction is the velocity multiplier per nominal frame while coasting
	SphereFriction = 0.92

	// SphereMaxVelocity caps |velocity| in degrees per nominal frame
	SphereMaxVelocity = 12.0

	// SphereIdleThreshold is the |velocity| below which coasting blends back to auto-rotation
	SphereIdleThreshold = 0.04

	// SphereBlendRate is the per-frame interpolation factor toward SphereBaseSpeed
	SphereBlendRate = 0.035

	// SphereSnapEpsilon is the distance from SphereBaseSpeed at which blending snaps to auto
	SphereSnapEpsilon = 0.001
)

// Sphere frame timing
const (
	// NominalFrame is the reference frame length velocities are expressed in
	NominalFrame = 16667 * time.Microsecond

	// MaxFrameDelta clamps frame dt after stalls (backgrounded terminal, debugger)
	MaxFrameDelta = 64 * time.Millisecond

	// MinDragDelta floors the drag dt so velocity never divides by zero
	MinDragDelta = time.Millisecond
)
