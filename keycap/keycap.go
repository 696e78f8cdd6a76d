// Package keycap animates a mechanical key cap: hovering presses it down with a spring,
// lights its glow ring, and plays a synthesized click.
package keycap

import (
	"math"

	"github.com/charmbracelet/harmonica"

	"github.com/samnmy/portfolio/audio"
	"github.com/samnmy/portfolio/constants"
)

// Key is one social-link key cap
type Key struct {
	Label string
	Href  string

	clicker audio.Clicker
	hovered bool

	press      harmonica.Spring
	depth      float64
	depthVel   float64
	depthGoal  float64
	glowSpring harmonica.Spring
	glow       float64
	glowVel    float64
	glowGoal   float64
}

// New creates a key cap animated at fps frames per second
func New(label, href string, clicker audio.Clicker, fps int) *Key {
	dt := harmonica.FPS(fps)
	pressFreq, pressDamp := SpringParams(constants.KeycapStiffness, constants.KeycapDamping, constants.KeycapMass)
	glowFreq, glowDamp := SpringParams(constants.KeycapGlowStiffness, constants.KeycapGlowDamping, constants.KeycapGlowMass)

	return &Key{
		Label:      label,
		Href:       href,
		clicker:    clicker,
		press:      harmonica.NewSpring(dt, pressFreq, pressDamp),
		glowSpring: harmonica.NewSpring(dt, glowFreq, glowDamp),
	}
}

// SpringParams converts a mass-spring-damper into harmonica's angular frequency and damping ratio
func SpringParams(stiffness, damping, mass float64) (angularFrequency, dampingRatio float64) {
	angularFrequency = math.Sqrt(stiffness / mass)
	dampingRatio = damping / (2 * math.Sqrt(stiffness*mass))
	return angularFrequency, dampingRatio
}

// HoverStart presses the cap and clicks; repeated calls while hovered do nothing
func (k *Key) HoverStart() {
	if k.hovered {
		return
	}
	k.hovered = true
	k.depthGoal = constants.KeycapPressDepth
	k.glowGoal = 1
	k.playClick()
}

// HoverEnd releases the cap
func (k *Key) HoverEnd() {
	if !k.hovered {
		return
	}
	k.hovered = false
	k.depthGoal = 0
	k.glowGoal = 0
}

// Click plays a click and returns the link to open
func (k *Key) Click() string {
	k.playClick()
	return k.Href
}

func (k *Key) playClick() {
	if k.clicker != nil {
		k.clicker.PlayClick()
	}
}

// Update advances both springs by one frame
func (k *Key) Update() {
	k.depth, k.depthVel = k.press.Update(k.depth, k.depthVel, k.depthGoal)
	k.glow, k.glowVel = k.glowSpring.Update(k.glow, k.glowVel, k.glowGoal)
}

// Hovered reports whether the pointer is over the key
func (k *Key) Hovered() bool { return k.hovered }

// Depth is how far the cap is pressed, 0 at rest
func (k *Key) Depth() float64 { return k.depth }

// Glow is the glow ring opacity
func (k *Key) Glow() float64 { return clamp(k.glow, 0, 1) }

// SideHeight shrinks as the cap presses down, giving the parallax depth illusion
func (k *Key) SideHeight() float64 {
	return mapRange(k.depth, 0, constants.KeycapMaxDepth, constants.KeycapSideHeightRest, constants.KeycapSideHeightDown)
}

// SideOpacity fades the side as the cap presses down
func (k *Key) SideOpacity() float64 {
	return mapRange(k.depth, 0, constants.KeycapMaxDepth, 1, constants.KeycapSideOpacityLow)
}

// Settled reports whether both springs have come to rest at their goals
func (k *Key) Settled() bool {
	const eps = 1e-3
	return math.Abs(k.depth-k.depthGoal) < eps && math.Abs(k.depthVel) < eps &&
		math.Abs(k.glow-k.glowGoal) < eps && math.Abs(k.glowVel) < eps
}

// mapRange maps v from [in0, in1] to [out0, out1], clamped to the output range
func mapRange(v, in0, in1, out0, out1 float64) float64 {
	t := clamp((v-in0)/(in1-in0), 0, 1)
	return out0 + (out1-out0)*t
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
