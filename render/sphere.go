package render

import (
	"math"
	"time"

	"github.com/samnmy/portfolio/constants"
	"github.com/samnmy/portfolio/physics"
)

const (
	haloSegments = 32
	haloTail     = haloSegments / 4
	avatarGlyph  = "☺"
)

// drawSphere projects the disc rotating about the vertical axis
// Its width scales with |cos(angle)|; the face shown follows the sign of cos(angle)
// The accumulated angle is reduced to one turn first so long sessions keep full precision
func (r *Renderer) drawSphere(angle float64) {
	l := r.layout
	c := math.Cos(physics.Wrap(angle) * math.Pi / 180)
	front := c >= 0
	span := math.Abs(c)

	base := RGBPrimary
	if !front {
		base = RGBAccent
	}

	for dy := -l.RadiusY; dy <= l.RadiusY; dy++ {
		fy := float64(dy) / float64(l.RadiusY)
		rowHalf := float64(l.RadiusX) * math.Sqrt(math.Max(0, 1-fy*fy))
		half := rowHalf * span

		if half < 0.5 {
			// Edge-on
			if rowHalf >= 0.5 {
				r.screen.SetContent(l.CenterX, l.CenterY+dy, '│', nil, base.Scale(0.6).Fg())
			}
			continue
		}

		n := int(math.Round(half))
		for dx := -n; dx <= n; dx++ {
			fx := float64(dx) / float64(l.RadiusX)
			depth := math.Sqrt(math.Max(0, 1-fx*fx/(span*span+1e-9)-fy*fy))
			shade := base.Scale(0.35 + 0.65*depth)
			r.screen.SetContent(l.CenterX+dx, l.CenterY+dy, '█', nil, shade.Fg().Background(shade.Color()))
		}
	}

	label := avatarGlyph
	if !front {
		label = r.tr.T("sphere.monogram")
	}
	if float64(l.RadiusX)*span >= float64(len([]rune(label))) {
		style := RGBText.Fg().Background(base.Color()).Bold(true)
		r.drawText(l.CenterX-len([]rune(label))/2, l.CenterY, label, style)
	}
}

// drawHalo draws the ring around the sphere with a bright arc circling once per HaloPeriod
func (r *Renderer) drawHalo(elapsed time.Duration) {
	l := r.layout
	head := haloHead(elapsed)
	rx := float64(l.RadiusX + 3)
	ry := float64(l.RadiusY + 2)

	for i := 0; i < haloSegments; i++ {
		theta := 2 * math.Pi * float64(i) / haloSegments
		x := l.CenterX + int(math.Round(rx*math.Cos(theta)))
		y := l.CenterY + int(math.Round(ry*math.Sin(theta)))

		trail := (head - i + haloSegments) % haloSegments
		if trail < haloTail {
			glow := 1 - float64(trail)/haloTail
			r.screen.SetContent(x, y, '•', nil, RGBBackground.Lerp(RGBAccent, glow).Fg())
			continue
		}
		r.screen.SetContent(x, y, '·', nil, RGBMuted.Scale(0.5).Fg())
	}
}

// haloHead is the lit segment index for elapsed time
func haloHead(elapsed time.Duration) int {
	phase := math.Mod(float64(elapsed)/float64(constants.HaloPeriod), 1)
	if phase < 0 {
		phase++
	}
	return int(phase*haloSegments) % haloSegments
}
