package render

import (
	"math"

	"github.com/samnmy/portfolio/constants"
	"github.com/samnmy/portfolio/keycap"
)

// capOffset is how many rows the cap sinks at depth
func capOffset(depth float64) int {
	if depth >= constants.KeycapMaxDepth/2 {
		return 1
	}
	return 0
}

// drawKeys draws each cap above its side; a pressed cap covers the side row
func (r *Renderer) drawKeys(keys []*keycap.Key) {
	for i, k := range keys {
		if i >= len(r.layout.Keys) {
			return
		}
		rect := r.layout.Keys[i]
		off := capOffset(k.Depth())

		// Side, shrinking and fading as the cap goes down
		if off == 0 {
			side := RGBBackground.Lerp(RGBKeySide, k.SideOpacity())
			glyph := '▀'
			if k.SideHeight() > (constants.KeycapSideHeightRest+constants.KeycapSideHeightDown)/2 {
				glyph = '█'
			}
			for x := rect.X + 1; x < rect.X+rect.W-1; x++ {
				r.screen.SetContent(x, rect.Y+keyHeight, glyph, nil, side.Fg())
			}
		}

		border := RGBMuted.Lerp(RGBPrimary, k.Glow()).Fg()
		face := RGBKeyCap.Fg().Background(RGBKeyCap.Color())
		top := rect.Y + off
		for y := top; y < top+keyHeight; y++ {
			for x := rect.X; x < rect.X+rect.W; x++ {
				ch := ' '
				style := face
				switch {
				case y == top && (x == rect.X || x == rect.X+rect.W-1):
					ch = '╭'
					if x != rect.X {
						ch = '╮'
					}
					style = border
				case y == top+keyHeight-1 && (x == rect.X || x == rect.X+rect.W-1):
					ch = '╰'
					if x != rect.X {
						ch = '╯'
					}
					style = border
				case y == top || y == top+keyHeight-1:
					ch = '─'
					style = border
				case x == rect.X || x == rect.X+rect.W-1:
					ch = '│'
					style = border
				}
				r.screen.SetContent(x, y, ch, nil, style)
			}
		}

		label := []rune(k.Label)
		lx := rect.X + int(math.Max(1, float64(rect.W-len(label))/2))
		labelStyle := RGBText.Lerp(RGBPrimary, k.Glow()*0.5).Fg().Background(RGBKeyCap.Color())
		r.drawText(lx, top+1, string(label), labelStyle)
	}
}
