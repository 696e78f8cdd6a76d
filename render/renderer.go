// Package render draws the portfolio page on a tcell screen.
package render

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/samnmy/portfolio/contact"
	"github.com/samnmy/portfolio/i18n"
	"github.com/samnmy/portfolio/keycap"
)

// Frame is the state drawn in one frame
type Frame struct {
	Angle   float64
	Elapsed time.Duration
	Keys    []*keycap.Key
	Status  contact.Status
	Fields  contact.Message
	Editing bool
	Field   contact.Field
	Modal   *CVModal
	Notice  string
	Muted   bool
}

// Renderer owns the screen layout and draws frames
// Draw and Resize must run on one goroutine
type Renderer struct {
	screen tcell.Screen
	tr     *i18n.Translator
	keys   int
	layout Layout
}

// NewRenderer lays out keyCount key caps for the current screen size
func NewRenderer(screen tcell.Screen, tr *i18n.Translator, keyCount int) *Renderer {
	r := &Renderer{screen: screen, tr: tr, keys: keyCount}
	r.Resize()
	return r
}

// Resize recomputes the layout from the screen size
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.layout = NewLayout(w, h, r.keys)
}

// Layout returns the current layout for hit testing
func (r *Renderer) Layout() Layout {
	return r.layout
}

// Draw renders f and shows it
func (r *Renderer) Draw(f Frame) {
	bg := RGBBackground.Fg()
	r.screen.Fill(' ', bg)

	l := r.layout
	r.drawCentered(1, r.tr.T("hero.greeting")+" "+r.tr.T("hero.name"), RGBText.Fg().Bold(true))
	r.drawCentered(2, r.tr.T("hero.role"), RGBPrimary.Fg())

	r.drawHalo(f.Elapsed)
	r.drawSphere(f.Angle)
	r.drawCentered(l.HintY, r.tr.T("sphere.hint"), RGBMuted.Fg().Italic(true))

	r.drawKeys(f.Keys)
	r.drawForm(f)
	r.drawStatus(f.Status)

	if f.Notice != "" {
		r.drawCentered(l.StatusY+2, f.Notice, RGBMuted.Fg())
	}

	help := r.tr.T("help.keys") + "  [" + r.tr.T("common.languageName") + "]"
	if f.Muted {
		help += "  ♪×"
	}
	r.drawText(1, l.HelpY, help, RGBMuted.Fg())

	if f.Modal != nil && f.Modal.IsOpen() {
		r.drawModal()
	}

	r.screen.Show()
}

func (r *Renderer) drawStatus(s contact.Status) {
	color := RGBText
	switch s {
	case contact.StatusSending:
		color = RGBMuted
	case contact.StatusSent:
		color = RGBSuccess
	case contact.StatusError:
		color = RGBError
	}
	label := r.tr.T("contact.sendMessage") + ": [ " + r.tr.T(s.LabelKey()) + " ]"
	r.drawCentered(r.layout.StatusY, label, color.Fg())
}

// drawForm draws one row per contact field; empty fields show their placeholder
func (r *Renderer) drawForm(f Frame) {
	x := r.layout.Width/2 - 24
	for i, field := range []contact.Field{contact.FieldName, contact.FieldEmail, contact.FieldMessage} {
		y := r.layout.FormY + i
		active := f.Editing && f.Field == field

		labelStyle := RGBMuted.Fg()
		if active {
			labelStyle = RGBPrimary.Fg().Bold(true)
		}
		label := r.tr.T("contact.labels." + field.Key())
		r.drawText(x, y, label, labelStyle)

		value, style := f.Fields.Get(field), RGBText.Fg()
		if value == "" {
			value, style = r.tr.T("contact.placeholders."+field.Key()), RGBMuted.Fg().Italic(true)
		}
		if active {
			value = f.Fields.Get(field) + "▏"
			style = RGBText.Fg()
		}
		r.drawText(x+10, y, value, style)
	}
}

func (r *Renderer) drawModal() {
	m := r.layout.Modal
	border := RGBPrimary.Fg()
	fill := RGBBackground.Fg()

	for y := m.Y; y < m.Y+m.H; y++ {
		for x := m.X; x < m.X+m.W; x++ {
			ch := ' '
			switch {
			case (y == m.Y || y == m.Y+m.H-1) && (x == m.X || x == m.X+m.W-1):
				ch = '+'
			case y == m.Y || y == m.Y+m.H-1:
				ch = '─'
			case x == m.X || x == m.X+m.W-1:
				ch = '│'
			}
			style := fill
			if ch != ' ' {
				style = border
			}
			r.screen.SetContent(x, y, ch, nil, style)
		}
	}

	r.drawCentered(m.Y+1, r.tr.T("cv.badge"), RGBAccent.Fg())
	r.drawCentered(m.Y+2, r.tr.T("cv.title"), RGBText.Fg().Bold(true))
	r.drawCentered(m.Y+3, r.tr.T("cv.subtitle"), RGBMuted.Fg())

	y := m.Y + 5
	for i, opt := range CVOptions {
		r.drawText(m.X+2, y, "["+string(rune('1'+i))+"] "+r.tr.T("cv."+opt.Key+".label"), RGBText.Fg().Bold(true))
		r.drawText(m.X+6, y+1, r.tr.T("cv."+opt.Key+".description"), RGBMuted.Fg())
		y += 2
	}
	r.drawText(m.X+2, m.Y+m.H-2, "[Esc] "+r.tr.T("cv.close"), RGBMuted.Fg())
}

func (r *Renderer) drawText(x, y int, s string, style tcell.Style) {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

func (r *Renderer) drawCentered(y int, s string, style tcell.Style) {
	r.drawText((r.layout.Width-len([]rune(s)))/2, y, s, style)
}
