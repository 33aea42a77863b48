package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var trackedButtons = []ebiten.MouseButton{
	ebiten.MouseButtonLeft,
	ebiten.MouseButtonMiddle,
	ebiten.MouseButtonRight,
}

// Source is the per-tick input state a Poller reads.
type Source interface {
	WindowClosing() bool
	KeyJustPressed(k ebiten.Key) bool
	Wheel() (dx, dy float64)
	CursorPosition() (x, y int)
	ButtonJustPressed(b ebiten.MouseButton) bool
	ButtonJustReleased(b ebiten.MouseButton) bool
}

type ebitenSource struct{}

func (ebitenSource) WindowClosing() bool { return ebiten.IsWindowBeingClosed() }
func (ebitenSource) KeyJustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }
func (ebitenSource) Wheel() (float64, float64) { return ebiten.Wheel() }
func (ebitenSource) CursorPosition() (int, int) { return ebiten.CursorPosition() }
func (ebitenSource) ButtonJustPressed(b ebiten.MouseButton) bool {
	return inpututil.IsMouseButtonJustPressed(b)
}
func (ebitenSource) ButtonJustReleased(b ebiten.MouseButton) bool {
	return inpututil.IsMouseButtonJustReleased(b)
}

// Poller turns ebiten's per-tick input state into a finite event slice.
type Poller struct {
	src Source
	// size reports the current layout size of the window.
	size func() (int, int)

	lastW, lastH int
	lastX, lastY int
	primed       bool

	buf []Event
}

// NewPoller returns a poller that reads the window size through size.
// It enables close-request handling so closing the window yields a Quit event.
func NewPoller(size func() (int, int)) *Poller {
	ebiten.SetWindowClosingHandled(true)
	return NewPollerFrom(ebitenSource{}, size)
}

// NewPollerFrom returns a poller reading input from src.
func NewPollerFrom(src Source, size func() (int, int)) *Poller {
	return &Poller{src: src, size: size}
}

// Poll returns the events of this tick in the order quit, resize, wheel,
// motion, button presses, button releases, screenshot. The slice is reused
// by the next call.
func (p *Poller) Poll() []Event {
	p.buf = p.buf[:0]

	if p.src.WindowClosing() || p.src.KeyJustPressed(ebiten.KeyEscape) {
		p.buf = append(p.buf, Event{Kind: Quit})
	}

	if w, h := p.size(); w != p.lastW || h != p.lastH {
		if p.primed {
			p.buf = append(p.buf, Event{Kind: Resized, Width: w, Height: h})
		}
		p.lastW, p.lastH = w, h
	}

	if _, dy := p.src.Wheel(); dy != 0 {
		p.buf = append(p.buf, Event{Kind: Wheel, DeltaY: dy})
	}
	// Keyboard zoom
	if p.src.KeyJustPressed(ebiten.KeyEqual) || p.src.KeyJustPressed(ebiten.KeyKPAdd) {
		p.buf = append(p.buf, Event{Kind: Wheel, DeltaY: 1})
	}
	if p.src.KeyJustPressed(ebiten.KeyMinus) || p.src.KeyJustPressed(ebiten.KeyKPSubtract) {
		p.buf = append(p.buf, Event{Kind: Wheel, DeltaY: -1})
	}

	mx, my := p.src.CursorPosition()
	if p.primed && (mx != p.lastX || my != p.lastY) {
		p.buf = append(p.buf, Event{Kind: Motion, XRel: mx - p.lastX, YRel: my - p.lastY})
	}
	p.lastX, p.lastY = mx, my

	for _, b := range trackedButtons {
		if p.src.ButtonJustPressed(b) {
			p.buf = append(p.buf, Event{Kind: ButtonDown, Button: b})
		}
	}
	for _, b := range trackedButtons {
		if p.src.ButtonJustReleased(b) {
			p.buf = append(p.buf, Event{Kind: ButtonUp, Button: b})
		}
	}

	if p.src.KeyJustPressed(ebiten.KeyF12) {
		p.buf = append(p.buf, Event{Kind: Screenshot})
	}

	p.primed = true
	return p.buf
}
