package physics

import (
	"math"
	"time"

	"github.com/samnmy/portfolio/constants"
)

// Mode is the control regime of a Rotation
type Mode int

const (
	ModeAuto Mode = iota
	ModeDragging
	ModeCoasting
)

func (m Mode) String() string {
	switch m {
	case ModeAuto:
		return "auto"
	case ModeDragging:
		return "dragging"
	case ModeCoasting:
		return "coasting"
	default:
		return "unknown"
	}
}

// Tuning holds the feel of the rotation; values are configuration, not invariants
type Tuning struct {
	BaseSpeed       float64 `yaml:"base_speed" validate:"gt=0"`
	DragSensitivity float64 `yaml:"drag_sensitivity" validate:"gt=0"`
	Friction        float64 `yaml:"friction" validate:"gt=0,lt=1"`
	MaxVelocity     float64 `yaml:"max_velocity" validate:"gtfield=BaseSpeed"`
	IdleThreshold   float64 `yaml:"idle_threshold" validate:"gt=0"`
	BlendRate       float64 `yaml:"blend_rate" validate:"gt=0,lte=1"`
	SnapEpsilon     float64 `yaml:"snap_epsilon" validate:"gt=0"`
}

// DefaultTuning returns the reference sphere tuning
func DefaultTuning() Tuning {
	return Tuning{
		BaseSpeed:       constants.SphereBaseSpeed,
		DragSensitivity: constants.SphereDragSensitivity,
		Friction:        constants.SphereFriction,
		MaxVelocity:     constants.SphereMaxVelocity,
		IdleThreshold:   constants.SphereIdleThreshold,
		BlendRate:       constants.SphereBlendRate,
		SnapEpsilon:     constants.SphereSnapEpsilon,
	}
}

// Rotation is the per-widget rotation state around the vertical axis
// Angle is in degrees and accumulates without bound; velocity is degrees per nominal frame
// Not safe for concurrent use: drive OnFrame and the drag handlers from one goroutine
type Rotation struct {
	tuning Tuning

	angle    float64
	velocity float64
	mode     Mode

	// blending latches once coasting drops below the idle threshold; friction stops applying
	blending bool

	lastFrame time.Time

	// Drag tracking, valid only in ModeDragging
	lastX    float64
	lastMove time.Time
}

// NewRotation creates an auto-rotating state whose first frame is measured from now
func NewRotation(tuning Tuning, now time.Time) *Rotation {
	return &Rotation{
		tuning:    tuning,
		velocity:  tuning.BaseSpeed,
		mode:      ModeAuto,
		lastFrame: now,
	}
}

// OnFrame advances the state by the time since the previous frame and returns the new angle
func (r *Rotation) OnFrame(now time.Time) float64 {
	dt := clampDuration(now.Sub(r.lastFrame), 0, constants.MaxFrameDelta)
	r.lastFrame = now

	switch r.mode {
	case ModeDragging:
		// Drag moves the angle directly
		return r.angle
	case ModeCoasting:
		r.coast(dt)
	default:
		r.velocity = r.tuning.BaseSpeed
	}

	r.angle += r.velocity
	return r.angle
}

// coast applies framerate-independent friction, then blends toward the base speed
func (r *Rotation) coast(dt time.Duration) {
	if !r.blending {
		r.velocity *= math.Pow(r.tuning.Friction, float64(dt)/float64(constants.NominalFrame))
		if math.Abs(r.velocity) < r.tuning.IdleThreshold {
			r.blending = true
		}
	}

	if r.blending {
		r.velocity += (r.tuning.BaseSpeed - r.velocity) * r.tuning.BlendRate
		if math.Abs(r.velocity-r.tuning.BaseSpeed) < r.tuning.SnapEpsilon {
			r.velocity = r.tuning.BaseSpeed
			r.blending = false
			r.mode = ModeAuto
		}
	}
}

// OnDragStart captures the pointer; preempts coasting and zeroes velocity
func (r *Rotation) OnDragStart(x float64, now time.Time) {
	r.mode = ModeDragging
	r.blending = false
	r.velocity = 0
	r.lastX = x
	r.lastMove = now
}

// OnDragMove rotates by the pointer delta and records the release velocity
// No-op unless dragging
func (r *Rotation) OnDragMove(x float64, now time.Time) {
	if r.mode != ModeDragging {
		return
	}

	dx := x - r.lastX
	dt := now.Sub(r.lastMove)
	if dt < constants.MinDragDelta {
		dt = constants.MinDragDelta
	}

	// px/ms scaled to degrees per nominal frame
	perMs := dx / (float64(dt) / float64(time.Millisecond))
	nominalMs := float64(constants.NominalFrame) / float64(time.Millisecond)
	r.velocity = clamp(perMs*nominalMs*r.tuning.DragSensitivity, -r.tuning.MaxVelocity, r.tuning.MaxVelocity)

	r.lastX = x
	r.lastMove = now
	r.angle += dx * r.tuning.DragSensitivity
}

// OnDragEnd releases the pointer and begins coasting with the last drag velocity
// Pointer-leave is routed here as well; a release without a drag is a no-op
func (r *Rotation) OnDragEnd() {
	if r.mode != ModeDragging {
		return
	}
	r.mode = ModeCoasting
	r.blending = false
}

// Angle returns the accumulated angle in degrees
func (r *Rotation) Angle() float64 { return r.angle }

// Velocity returns degrees per nominal frame
func (r *Rotation) Velocity() float64 { return r.velocity }

// Mode returns the current control regime
func (r *Rotation) Mode() Mode { return r.mode }

// Blending reports whether coasting has entered the blend-to-auto phase
func (r *Rotation) Blending() bool { return r.blending }

// Tuning returns the tuning the rotation was created with
func (r *Rotation) Tuning() Tuning { return r.tuning }

// Wrap reduces an accumulated angle to [0, 360)
func Wrap(angle float64) float64 {
	a := math.Mod(angle, 360)
	if a < 0 {
		a += 360
	}
	return a
}

// CoastFrameBound returns an upper bound on frames for a coast starting at v0 to reach
// ModeAuto when every frame advances by dt; math.MaxInt when friction cannot progress
func CoastFrameBound(t Tuning, v0 float64, dt time.Duration) int {
	if dt > constants.MaxFrameDelta {
		dt = constants.MaxFrameDelta
	}

	frictionFrames := 0
	speed := math.Min(math.Abs(v0), t.MaxVelocity)
	if speed >= t.IdleThreshold {
		if dt <= 0 {
			return math.MaxInt
		}
		perFrame := float64(dt) / float64(constants.NominalFrame) * math.Log(t.Friction)
		frictionFrames = int(math.Ceil(math.Log(t.IdleThreshold/speed)/perFrame)) + 1
	}

	// Blending starts strictly inside (-idle, idle); gap to base shrinks by (1-rate) per frame
	gap := math.Abs(t.BaseSpeed) + t.IdleThreshold
	blendFrames := 1
	if gap > t.SnapEpsilon && t.BlendRate < 1 {
		blendFrames = int(math.Ceil(math.Log(t.SnapEpsilon/gap)/math.Log(1-t.BlendRate))) + 1
	}

	return frictionFrames + blendFrames + 1
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampDuration(d, lo, hi time.Duration) time.Duration {
	if d < lo {
		return lo
	}
	if d > hi {
		return hi
	}
	return d
}
