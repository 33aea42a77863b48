// Package input converts window input into camera changes.
package input

import (
	"github.com/hajimehoshi/ebiten/v2"

	"pan-zoom/canvas"
)

// Host defines the callbacks the controller needs from the main game.
type Host interface {
	CursorPosition() (x, y int)
	// IsMouseOver reports whether a screen-space overlay control is at (x, y).
	IsMouseOver(x, y int) bool
	Quit()
	Resize(width, height int)
	RequestScreenshot()
}

// DragState is the pan state machine.
type DragState int

const (
	Idle DragState = iota
	Dragging
)

func (s DragState) String() string {
	if s == Dragging {
		return "dragging"
	}
	return "idle"
}

// Controller applies input events to a camera. All camera mutation driven by
// input goes through Camera.ZoomAt and Camera.Pan here.
type Controller struct {
	host      Host
	cam       *canvas.Camera
	panButton ebiten.MouseButton

	state DragState
}

func NewController(h Host, cam *canvas.Camera, panButton ebiten.MouseButton) *Controller {
	return &Controller{host: h, cam: cam, panButton: panButton}
}

// State returns the current drag state.
func (c *Controller) State() DragState { return c.state }

// Handle applies events in order. The pointer is sampled once per call.
func (c *Controller) Handle(events []Event) {
	if len(events) == 0 {
		return
	}
	mx, my := c.host.CursorPosition()
	pointer := canvas.Vec2{X: float64(mx), Y: float64(my)}

	for _, ev := range events {
		switch ev.Kind {
		case Quit:
			c.host.Quit()
		case Resized:
			c.host.Resize(ev.Width, ev.Height)
		case Wheel:
			c.cam.ZoomAt(ev.DeltaY, pointer)
		case ButtonDown:
			if ev.Button == c.panButton && !c.host.IsMouseOver(mx, my) {
				c.state = Dragging
			}
		case ButtonUp:
			if ev.Button == c.panButton {
				c.state = Idle
			}
		case Motion:
			if c.state == Dragging {
				c.cam.Pan(float64(ev.XRel), float64(ev.YRel))
			}
		case Screenshot:
			c.host.RequestScreenshot()
		}
	}
}
