package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"pan-zoom/canvas"
)

const (
	buttonSize   = 30
	buttonMargin = 10
)

var buttonColor = color.RGBA{60, 60, 70, 200}

// Button is a labelled screen-space control.
type Button struct {
	Label   string
	Bounds  canvas.Rect
	OnClick func()
}

// IsMouseOver uses the same edge rule as canvas.Rect.Contains.
func (b *Button) IsMouseOver(mx, my int) bool {
	return b.Bounds.Contains(canvas.Vec2{X: float64(mx), Y: float64(my)})
}

func (b *Button) Draw(screen *ebiten.Image, getFace func() font.Face, drawText DrawTextFunc) {
	r := b.Bounds
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), buttonColor, false)
	if getFace == nil || drawText == nil {
		return
	}
	face := getFace()
	if face == nil {
		return
	}
	x, y := labelOrigin(r, font.MeasureString(face, b.Label).Ceil(), face.Metrics().Height.Ceil())
	drawText(screen, face, b.Label, x, y, color.White)
}

// labelOrigin centres a textW x textH label in r.
func labelOrigin(r canvas.Rect, textW, textH int) (int, int) {
	return int(r.X + (r.W-float64(textW))/2), int(r.Y + (r.H-float64(textH))/2)
}
