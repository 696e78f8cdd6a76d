package keycap

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samnmy/portfolio/constants"
)

type countingClicker struct {
	clicks int
}

func (c *countingClicker) PlayClick() { c.clicks++ }

func settle(k *Key, frames int) {
	for i := 0; i < frames && !k.Settled(); i++ {
		k.Update()
	}
}

// TestHoverPressesAndClicks verifies hover start clicks once and the cap sinks to the press depth
func TestHoverPressesAndClicks(t *testing.T) {
	clicker := &countingClicker{}
	k := New("GitHub", "https://github.com/Samnmy", clicker, 60)

	k.HoverStart()
	k.HoverStart()
	assert.Equal(t, 1, clicker.clicks)
	assert.True(t, k.Hovered())

	settle(k, 600)
	require.True(t, k.Settled())
	assert.InDelta(t, constants.KeycapPressDepth, k.Depth(), 1e-2)
	assert.InDelta(t, 1.0, k.Glow(), 1e-2)

	// depth 4 of 5 maps side height 5 -> 1.8 and opacity 1 -> 0.52
	assert.InDelta(t, 1.8, k.SideHeight(), 0.02)
	assert.InDelta(t, 0.52, k.SideOpacity(), 0.01)
}

// TestHoverEndReleases verifies the cap springs back to rest without clicking
func TestHoverEndReleases(t *testing.T) {
	clicker := &countingClicker{}
	k := New("LinkedIn", "https://linkedin.com/in/samuel-monsalve-orrego", clicker, 60)

	k.HoverStart()
	settle(k, 600)
	k.HoverEnd()
	k.HoverEnd()
	settle(k, 600)

	assert.Equal(t, 1, clicker.clicks)
	assert.False(t, k.Hovered())
	assert.InDelta(t, 0, k.Depth(), 1e-2)
	assert.InDelta(t, constants.KeycapSideHeightRest, k.SideHeight(), 0.02)
	assert.InDelta(t, 1.0, k.SideOpacity(), 0.01)
}

// TestClickReturnsLink verifies clicking plays a sound and yields the href
func TestClickReturnsLink(t *testing.T) {
	clicker := &countingClicker{}
	k := New("Email", "mailto:samuel.monsalve.orrego@gmail.com", clicker, 60)

	assert.Equal(t, "mailto:samuel.monsalve.orrego@gmail.com", k.Click())
	assert.Equal(t, 1, clicker.clicks)
}

// TestNilClicker verifies a key without audio still animates
func TestNilClicker(t *testing.T) {
	k := New("GitHub", "", nil, 60)
	require.NotPanics(t, func() {
		k.HoverStart()
		k.Click()
		k.Update()
	})
}

// TestPressIsUnderdamped verifies the press overshoots slightly, like the reference spring
func TestPressIsUnderdamped(t *testing.T) {
	k := New("GitHub", "", nil, 60)
	k.HoverStart()

	peak := 0.0
	for i := 0; i < 120; i++ {
		k.Update()
		peak = math.Max(peak, k.Depth())
	}
	assert.Greater(t, peak, constants.KeycapPressDepth)
	assert.Less(t, peak, constants.KeycapMaxDepth)
}

func TestSpringParams(t *testing.T) {
	freq, ratio := SpringParams(420, 22, 0.6)
	assert.InDelta(t, math.Sqrt(700), freq, 1e-9)
	assert.InDelta(t, 22/(2*math.Sqrt(252)), ratio, 1e-9)

	// Critical damping
	_, ratio = SpringParams(100, 20, 1)
	assert.InDelta(t, 1.0, ratio, 1e-9)
}

func TestMapRangeClamps(t *testing.T) {
	assert.Equal(t, 5.0, mapRange(-3, 0, 5, 5, 1))
	assert.Equal(t, 1.0, mapRange(9, 0, 5, 5, 1))
	assert.InDelta(t, 3.0, mapRange(2.5, 0, 5, 5, 1), 1e-9)
}
