package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"

	"pan-zoom/canvas"
)

// DrawTextFunc draws s with its top-left corner at (x, y).
type DrawTextFunc func(screen *ebiten.Image, face font.Face, s string, x, y int, clr color.Color)

type UISystem struct {
	buttons       []*Button
	getFontFace   func() font.Face
	getScreenSize func() (int, int)
	onZoomIn      func()
	onZoomOut     func()
	drawText      DrawTextFunc
	Debug         *DebugPanel
}

func NewUISystem(getFontFace func() font.Face, getScreenSize func() (int, int), onZoomIn func(), onZoomOut func(), drawText DrawTextFunc) *UISystem {
	ui := &UISystem{
		getFontFace:   getFontFace,
		getScreenSize: getScreenSize,
		onZoomIn:      onZoomIn,
		onZoomOut:     onZoomOut,
		drawText:      drawText,
		Debug:         &DebugPanel{},
	}
	ui.initButtons()
	return ui
}

func (ui *UISystem) initButtons() {
	size := canvas.Rect{W: buttonSize, H: buttonSize}
	zoomIn := &Button{Label: "+", Bounds: size, OnClick: ui.onZoomIn}
	zoomOut := &Button{Label: "-", Bounds: size, OnClick: ui.onZoomOut}
	ui.buttons = []*Button{zoomIn, zoomOut}
	ui.updateButtonPositions()
}

// Buttons are anchored to the top-right corner, zoom-in outermost.
func (ui *UISystem) updateButtonPositions() {
	w, _ := ui.getScreenSize()
	x := float64(w) - buttonMargin
	for _, b := range ui.buttons {
		x -= b.Bounds.W
		b.Bounds.X = x
		b.Bounds.Y = buttonMargin
		x -= buttonMargin
	}
}

// IsMouseOver reports whether (mx, my) is over any control.
func (ui *UISystem) IsMouseOver(mx, my int) bool {
	ui.updateButtonPositions()
	for _, b := range ui.buttons {
		if b.IsMouseOver(mx, my) {
			return true
		}
	}
	return false
}

// Click fires the first button under (mx, my) and reports whether one was hit.
func (ui *UISystem) Click(mx, my int) bool {
	ui.updateButtonPositions()
	for _, b := range ui.buttons {
		if b.IsMouseOver(mx, my) {
			if b.OnClick != nil {
				b.OnClick()
			}
			return true
		}
	}
	return false
}

func (ui *UISystem) Update() {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		ui.Click(ebiten.CursorPosition())
	}
}

func (ui *UISystem) Draw(screen *ebiten.Image) {
	ui.updateButtonPositions()
	for _, b := range ui.buttons {
		b.Draw(screen, ui.getFontFace, ui.drawText)
	}
	if ui.Debug != nil {
		ui.Debug.Draw(screen, ui.getScreenSize, ui.getFontFace, ui.drawText)
	}
}
