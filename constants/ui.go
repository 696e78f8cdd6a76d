package constants

import "time"

// Contact Form Timing
const (
	// ContactStatusRevert is how long the sent/error state is shown before returning to idle
	ContactStatusRevert = 5 * time.Second

	// ContactRequestTimeout bounds a single relay request
	ContactRequestTimeout = 15 * time.Second
)

// Keycap press animation
const (
	KeycapPressDepth     = 4.0
	KeycapMaxDepth       = 5.0
	KeycapStiffness      = 420.0
	KeycapDamping        = 22.0
	KeycapMass           = 0.6
	KeycapGlowStiffness  = 300.0
	KeycapGlowDamping    = 20.0
	KeycapGlowMass       = 1.0
	KeycapSideHeightRest = 5.0
	KeycapSideHeightDown = 1.0
	KeycapSideOpacityLow = 0.4
)

// Logging
const (
	LogDir      = "logs"
	LogFileName = "portfolio.log"
	MaxLogSize  = 10 * 1024 * 1024
)
