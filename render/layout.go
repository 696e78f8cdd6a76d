package render

import "github.com/samnmy/portfolio/constants"

// Rect is a screen region in cells
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether cell (x, y) lies inside r
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Key cap geometry
const (
	keyWidth  = 12
	keyHeight = 3
	keyGap    = 2
)

// Layout positions every widget for a screen size
type Layout struct {
	Width, Height int

	// Sphere is the pointer capture box around the disc
	Sphere  Rect
	CenterX int
	CenterY int
	RadiusX int
	RadiusY int

	HintY   int
	Keys    []Rect
	FormY   int
	StatusY int
	HelpY   int
	Modal   Rect
}

// NewLayout computes a layout for a w x h screen with keyCount key caps
func NewLayout(w, h, keyCount int) Layout {
	// Terminal cells are roughly twice as tall as wide
	ry := constants.SphereRadiusCells
	rx := ry * 2

	l := Layout{
		Width:   w,
		Height:  h,
		CenterX: w / 2,
		CenterY: 4 + ry + 2,
		RadiusX: rx,
		RadiusY: ry,
	}
	l.Sphere = Rect{X: l.CenterX - rx, Y: l.CenterY - ry, W: 2*rx + 1, H: 2*ry + 1}
	l.HintY = l.CenterY + ry + 3

	rowWidth := keyCount*keyWidth + (keyCount-1)*keyGap
	keyX := (w - rowWidth) / 2
	keyY := l.HintY + 2
	for i := 0; i < keyCount; i++ {
		l.Keys = append(l.Keys, Rect{X: keyX + i*(keyWidth+keyGap), Y: keyY, W: keyWidth, H: keyHeight + 1})
	}

	l.FormY = keyY + keyHeight + 3
	l.StatusY = l.FormY + 4
	l.HelpY = h - 1

	mw, mh := 64, 11
	l.Modal = Rect{X: (w - mw) / 2, Y: (h - mh) / 2, W: mw, H: mh}
	return l
}

// HitSphere reports whether (x, y) is over the sphere
func (l Layout) HitSphere(x, y int) bool {
	return l.Sphere.Contains(x, y)
}

// HitKey returns the index of the key cap under (x, y), or -1
func (l Layout) HitKey(x, y int) int {
	for i, r := range l.Keys {
		if r.Contains(x, y) {
			return i
		}
	}
	return -1
}
