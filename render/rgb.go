package render

import "github.com/gdamore/tcell/v2"

// RGB is a 24-bit color
type RGB struct {
	R, G, B uint8
}

// Palette
var (
	RGBBackground = RGB{10, 10, 18}
	RGBText       = RGB{226, 232, 240}
	RGBMuted      = RGB{100, 116, 139}
	RGBPrimary    = RGB{99, 102, 241}
	RGBAccent     = RGB{168, 85, 247}
	RGBSuccess    = RGB{34, 197, 94}
	RGBError      = RGB{239, 68, 68}
	RGBKeyCap     = RGB{39, 39, 42}
	RGBKeySide    = RGB{24, 24, 27}
)

func clamp8(v float64) uint8 {
	if v >= 255.0 {
		return 255
	}
	if v <= 0.0 {
		return 0
	}
	return uint8(v + 0.5)
}

// Lerp blends c toward o by t in [0, 1]
func (c RGB) Lerp(o RGB, t float64) RGB {
	if t <= 0 {
		return c
	}
	if t >= 1 {
		return o
	}
	return RGB{
		R: clamp8(float64(c.R) + (float64(o.R)-float64(c.R))*t),
		G: clamp8(float64(c.G) + (float64(o.G)-float64(c.G))*t),
		B: clamp8(float64(c.B) + (float64(o.B)-float64(c.B))*t),
	}
}

// Scale multiplies every channel by k
func (c RGB) Scale(k float64) RGB {
	return RGB{clamp8(float64(c.R) * k), clamp8(float64(c.G) * k), clamp8(float64(c.B) * k)}
}

// Color converts to a tcell true color
func (c RGB) Color() tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Fg returns a default-background style with c as foreground
func (c RGB) Fg() tcell.Style {
	return tcell.StyleDefault.Foreground(c.Color()).Background(RGBBackground.Color())
}
