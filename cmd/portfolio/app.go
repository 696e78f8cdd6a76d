package main

import (
	"context"
	"errors"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/samnmy/portfolio/config"
	"github.com/samnmy/portfolio/contact"
	"github.com/samnmy/portfolio/i18n"
	"github.com/samnmy/portfolio/keycap"
	"github.com/samnmy/portfolio/physics"
	"github.com/samnmy/portfolio/render"
)

// soundBoard is the click synth as seen by the page
type soundBoard interface {
	PlayClick()
	ToggleMute() bool
	IsMuted() bool
}

// motionClock pauses page animation
type motionClock interface {
	Toggle() bool
	IsPaused() bool
}

// socialLinks are the key caps under the sphere
var socialLinks = []struct {
	labelKey string
	href     string
}{
	{"keys.github", "https://github.com/Samnmy"},
	{"keys.linkedin", "https://www.linkedin.com/in/samuel-monsalve-orrego"},
	{"keys.email", "mailto:samuel.monsalve.orrego@gmail.com"},
}

// App is the interactive page; every method runs on the frame loop goroutine
type App struct {
	ctx      context.Context
	cfg      *config.Config
	tr       *i18n.Translator
	sounds   soundBoard
	form     *contact.Form
	logger   *zap.Logger
	renderer *render.Renderer

	rot   *physics.Rotation
	angle float64
	keys  []*keycap.Key
	modal render.CVModal
	start time.Time

	motion motionClock

	// Pointer state
	pressed  bool
	dragging bool
	hover    int

	editing bool
	field   contact.Field
	notice  string
}

// NewApp builds the page for screen, starting its clocks at now
func NewApp(ctx context.Context, screen tcell.Screen, cfg *config.Config, tr *i18n.Translator,
	sounds soundBoard, form *contact.Form, logger *zap.Logger, now time.Time) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	a := &App{
		ctx:    ctx,
		cfg:    cfg,
		tr:     tr,
		sounds: sounds,
		form:   form,
		logger: logger,
		rot:    physics.NewRotation(cfg.Tuning, now),
		start:  now,
		hover:  -1,
	}
	for _, link := range socialLinks {
		a.keys = append(a.keys, keycap.New(tr.T(link.labelKey), link.href, sounds, cfg.FPS))
	}
	a.renderer = render.NewRenderer(screen, tr, len(a.keys))
	return a
}

// SetMotionClock enables pausing; frames must then be timed by the same clock
func (a *App) SetMotionClock(c motionClock) {
	a.motion = c
}

func (a *App) paused() bool {
	return a.motion != nil && a.motion.IsPaused()
}

// Frame advances the animations and draws; while paused it only redraws
func (a *App) Frame(now time.Time) {
	if !a.paused() {
		a.angle = a.rot.OnFrame(now)
	}
	for _, k := range a.keys {
		k.Update()
	}

	a.renderer.Draw(render.Frame{
		Angle:   a.angle,
		Elapsed: now.Sub(a.start),
		Keys:    a.keys,
		Status:  a.form.Status(),
		Fields:  a.form.Fields(),
		Editing: a.editing,
		Field:   a.field,
		Modal:   &a.modal,
		Notice:  a.notice,
		Muted:   a.sounds.IsMuted(),
	})
}

// HandleEvent applies one terminal event; false means quit
func (a *App) HandleEvent(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.renderer.Resize()
	case *tcell.EventMouse:
		a.handleMouse(ev, now)
	case *tcell.EventKey:
		return a.handleKey(ev)
	}
	return true
}

func (a *App) handleMouse(ev *tcell.EventMouse, now time.Time) {
	x, y := ev.Position()
	down := ev.Buttons()&tcell.ButtonPrimary != 0
	px := float64(x) * a.cfg.CellWidthPx
	layout := a.renderer.Layout()

	if a.modal.IsOpen() {
		a.endDrag()
		a.pressed = down
		return
	}

	switch {
	case down && !a.pressed:
		a.pressed = true
		// Pointer timestamps come from the motion clock, which is frozen while paused
		if layout.HitSphere(x, y) && !a.paused() {
			a.rot.OnDragStart(px, now)
			a.dragging = true
		} else if i := layout.HitKey(x, y); i >= 0 {
			a.notice = a.keys[i].Click()
		}
	case down && a.dragging:
		if layout.HitSphere(x, y) {
			a.rot.OnDragMove(px, now)
		} else {
			// Leaving the sphere ends the drag like a release
			a.endDrag()
		}
	case !down:
		a.pressed = false
		a.endDrag()
	}

	a.setHover(layout.HitKey(x, y))
}

func (a *App) endDrag() {
	if a.dragging {
		a.rot.OnDragEnd()
		a.dragging = false
	}
}

func (a *App) setHover(i int) {
	if i == a.hover {
		return
	}
	if a.hover >= 0 {
		a.keys[a.hover].HoverEnd()
	}
	if i >= 0 {
		a.keys[i].HoverStart()
	}
	a.hover = i
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlC {
		return false
	}
	if a.modal.IsOpen() {
		a.handleModalKey(ev)
		return true
	}
	if a.editing {
		a.handleFormKey(ev)
		return true
	}

	switch ev.Key() {
	case tcell.KeyEscape:
		return false
	case tcell.KeyTab:
		a.setHover((a.hover + 1) % len(a.keys))
	case tcell.KeyEnter:
		a.clickFocused()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case 'l':
			a.toggleLanguage()
		case 'c':
			a.modal.Open()
		case 'f':
			a.editing = true
			a.field = contact.FieldName
		case 'k':
			a.clickFocused()
		case 'm':
			a.sounds.ToggleMute()
		case 'p':
			if a.motion != nil && a.motion.Toggle() {
				a.endDrag()
			}
		}
	}
	return true
}

func (a *App) clickFocused() {
	if a.hover >= 0 {
		a.notice = a.keys[a.hover].Click()
		return
	}
	a.sounds.PlayClick()
}

func (a *App) toggleLanguage() {
	lang := a.tr.Toggle()
	for i, link := range socialLinks {
		a.keys[i].Label = a.tr.T(link.labelKey)
	}
	a.logger.Debug("language changed", zap.String("language", string(lang)))
}

func (a *App) handleModalKey(ev *tcell.EventKey) {
	switch {
	case ev.Key() == tcell.KeyEscape:
		a.modal.Close()
	case ev.Key() == tcell.KeyRune && ev.Rune() >= '1' && ev.Rune() <= '9':
		if opt, ok := a.modal.Choose(int(ev.Rune() - '1')); ok {
			a.notice = a.tr.T("cv.chosen") + " " + opt.Filename
			a.logger.Info("cv selected", zap.String("file", opt.File))
		}
	}
}

func (a *App) handleFormKey(ev *tcell.EventKey) {
	msg := a.form.Fields()
	value := []rune(msg.Get(a.field))

	switch ev.Key() {
	case tcell.KeyEscape:
		a.editing = false
		return
	case tcell.KeyTab:
		a.field = a.field.Next()
		return
	case tcell.KeyEnter:
		a.submit()
		return
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(value) > 0 {
			value = value[:len(value)-1]
		}
	case tcell.KeyRune:
		value = append(value, ev.Rune())
	default:
		return
	}

	msg.Set(a.field, string(value))
	a.form.SetFields(msg)
}

func (a *App) submit() {
	err := a.form.Submit(a.ctx)
	switch {
	case err == nil:
		a.editing = false
		a.notice = ""
	case errors.Is(err, contact.ErrBusy):
		a.notice = a.tr.T("contact.busy")
	case errors.Is(err, contact.ErrInvalid):
		a.notice = a.tr.T("contact.invalid")
	default:
		a.notice = err.Error()
	}
}
