package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samnmy/portfolio/constants"
	"github.com/samnmy/portfolio/contact"
	"github.com/samnmy/portfolio/i18n"
	"github.com/samnmy/portfolio/keycap"
)

func newTestRenderer(t *testing.T, keys int) (*Renderer, tcell.SimulationScreen, *i18n.Translator) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 40)

	tr := i18n.NewTranslator(i18n.DefaultCatalog(), i18n.English)
	return NewRenderer(screen, tr, keys), screen, tr
}

func rowText(screen tcell.Screen, y int) string {
	w, _ := screen.Size()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		sb.WriteRune(r)
	}
	return sb.String()
}

func cell(screen tcell.Screen, x, y int) rune {
	r, _, _, _ := screen.GetContent(x, y)
	return r
}

func testKeys() []*keycap.Key {
	return []*keycap.Key{
		keycap.New("GitHub", "https://github.com/Samnmy", nil, 60),
		keycap.New("LinkedIn", "https://www.linkedin.com/in/samuel-monsalve-orrego", nil, 60),
		keycap.New("Email", "mailto:samuel.monsalve.orrego@gmail.com", nil, 60),
	}
}

func TestLayoutHitTesting(t *testing.T) {
	l := NewLayout(80, 40, 3)

	assert.True(t, l.HitSphere(l.CenterX, l.CenterY))
	assert.True(t, l.HitSphere(l.CenterX-l.RadiusX, l.CenterY-l.RadiusY))
	assert.False(t, l.HitSphere(l.CenterX+l.RadiusX+1, l.CenterY))
	assert.False(t, l.HitSphere(0, 0))

	require.Len(t, l.Keys, 3)
	for i, k := range l.Keys {
		assert.Equal(t, i, l.HitKey(k.X+k.W/2, k.Y+1))
	}
	assert.Equal(t, -1, l.HitKey(0, 0))
}

func TestDrawFaces(t *testing.T) {
	r, screen, _ := newTestRenderer(t, 0)
	l := r.Layout()

	r.Draw(Frame{Angle: 0})
	assert.Equal(t, '☺', cell(screen, l.CenterX, l.CenterY))

	r.Draw(Frame{Angle: 180})
	assert.Equal(t, 'S', cell(screen, l.CenterX-1, l.CenterY))
	assert.Equal(t, 'M', cell(screen, l.CenterX, l.CenterY))

	// Accumulated angles reduce to one turn in either direction
	r.Draw(Frame{Angle: 720})
	assert.Equal(t, '☺', cell(screen, l.CenterX, l.CenterY))
	r.Draw(Frame{Angle: -180})
	assert.Equal(t, 'M', cell(screen, l.CenterX, l.CenterY))
	r.Draw(Frame{Angle: 360*1e9 + 180})
	assert.Equal(t, 'M', cell(screen, l.CenterX, l.CenterY))
}

// TestDrawProjectedWidth verifies the disc narrows with |cos(angle)|
func TestDrawProjectedWidth(t *testing.T) {
	r, screen, _ := newTestRenderer(t, 0)
	l := r.Layout()
	y := l.CenterY - 1

	countDisc := func() int {
		n := 0
		for x := l.Sphere.X; x < l.Sphere.X+l.Sphere.W; x++ {
			if cell(screen, x, y) == '█' {
				n++
			}
		}
		return n
	}

	r.Draw(Frame{Angle: 0})
	assert.Equal(t, 25, countDisc())

	r.Draw(Frame{Angle: 60})
	assert.Equal(t, 13, countDisc())

	r.Draw(Frame{Angle: 90})
	assert.Equal(t, 0, countDisc())
	assert.Equal(t, '│', cell(screen, l.CenterX, y))
}

func TestDrawTextAndStatus(t *testing.T) {
	r, screen, tr := newTestRenderer(t, 3)
	l := r.Layout()

	r.Draw(Frame{Keys: testKeys(), Status: contact.StatusIdle})
	assert.Contains(t, rowText(screen, 1), "Hi, I'm Samuel Monsalve")
	assert.Contains(t, rowText(screen, l.HintY), "Drag to spin")
	assert.Contains(t, rowText(screen, l.StatusY), "[ Send Message ]")
	assert.Contains(t, rowText(screen, l.Keys[0].Y+1), "GitHub")

	r.Draw(Frame{Status: contact.StatusSent, Notice: "opened"})
	assert.Contains(t, rowText(screen, l.StatusY), "Message sent successfully!")
	assert.Contains(t, rowText(screen, l.StatusY+2), "opened")

	tr.Set(i18n.Spanish)
	r.Draw(Frame{Status: contact.StatusError})
	assert.Contains(t, rowText(screen, l.StatusY), "Error al enviar. Inténtalo de nuevo.")
	assert.Contains(t, rowText(screen, l.HintY), "Arrastra para girar")
}

func TestDrawModal(t *testing.T) {
	r, screen, _ := newTestRenderer(t, 0)
	m := r.Layout().Modal
	modal := &CVModal{}

	r.Draw(Frame{Modal: modal})
	assert.NotContains(t, rowText(screen, m.Y+2), "Which CV do you want?")

	modal.Open()
	r.Draw(Frame{Modal: modal})
	assert.Contains(t, rowText(screen, m.Y+2), "Which CV do you want?")
	assert.Contains(t, rowText(screen, m.Y+5), "[1] Standard CV")
	assert.Contains(t, rowText(screen, m.Y+7), "[2] ATS CV")
	assert.Contains(t, rowText(screen, m.Y+m.H-2), "[Esc] Close")
}

func TestDrawPressedKey(t *testing.T) {
	r, screen, _ := newTestRenderer(t, 3)
	keys := testKeys()
	rect := r.Layout().Keys[0]

	r.Draw(Frame{Keys: keys})
	assert.Equal(t, '╭', cell(screen, rect.X, rect.Y))

	keys[0].HoverStart()
	for i := 0; i < 120; i++ {
		keys[0].Update()
	}
	r.Draw(Frame{Keys: keys})
	assert.NotEqual(t, '╭', cell(screen, rect.X, rect.Y))
	assert.Equal(t, '╭', cell(screen, rect.X, rect.Y+1))
	assert.Contains(t, rowText(screen, rect.Y+2), "GitHub")
}

func TestHaloHead(t *testing.T) {
	assert.Equal(t, 0, haloHead(0))
	assert.Equal(t, haloSegments/2, haloHead(constants.HaloPeriod/2))
	assert.Equal(t, 0, haloHead(constants.HaloPeriod))
	assert.Equal(t, haloSegments/4, haloHead(5*constants.HaloPeriod+constants.HaloPeriod/4))
	assert.Equal(t, 3*haloSegments/4, haloHead(-constants.HaloPeriod/4))
}

func TestCVModalChoose(t *testing.T) {
	var m CVModal

	_, ok := m.Choose(0)
	assert.False(t, ok, "closed modal ignores choices")

	m.Open()
	_, ok = m.Choose(5)
	assert.False(t, ok)
	assert.True(t, m.IsOpen())

	opt, ok := m.Choose(1)
	require.True(t, ok)
	assert.Equal(t, "ats", opt.Key)
	assert.Equal(t, "CV_ATS_Samuel_Monsalve_Orrego.pdf", opt.Filename)
	assert.False(t, m.IsOpen())

	m.Open()
	m.Close()
	assert.False(t, m.IsOpen())
}

func TestRGBLerp(t *testing.T) {
	a, b := RGB{0, 0, 0}, RGB{200, 100, 50}
	assert.Equal(t, a, a.Lerp(b, -1))
	assert.Equal(t, b, a.Lerp(b, 2))
	assert.Equal(t, RGB{100, 50, 25}, a.Lerp(b, 0.5))
	assert.Equal(t, RGB{255, 150, 75}, RGB{200, 100, 50}.Scale(1.5))
}

func TestDrawForm(t *testing.T) {
	r, screen, _ := newTestRenderer(t, 0)
	y := r.Layout().FormY

	r.Draw(Frame{})
	assert.Contains(t, rowText(screen, y), "Name")
	assert.Contains(t, rowText(screen, y), "Your name")
	assert.Contains(t, rowText(screen, y+1), "your@email.com")

	r.Draw(Frame{
		Fields:  contact.Message{Name: "Ada", Email: "ada@exa"},
		Editing: true,
		Field:   contact.FieldEmail,
	})
	assert.Contains(t, rowText(screen, y), "Ada")
	assert.Contains(t, rowText(screen, y+1), "ada@exa▏")
	assert.Contains(t, rowText(screen, y+2), "Tell me about your project")
}
