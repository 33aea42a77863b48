package input

import "github.com/hajimehoshi/ebiten/v2"

// Kind identifies an input event.
type Kind int

const (
	Quit Kind = iota
	Resized
	Wheel
	ButtonDown
	ButtonUp
	Motion
	Screenshot
)

func (k Kind) String() string {
	switch k {
	case Quit:
		return "quit"
	case Resized:
		return "resized"
	case Wheel:
		return "wheel"
	case ButtonDown:
		return "button_down"
	case ButtonUp:
		return "button_up"
	case Motion:
		return "motion"
	case Screenshot:
		return "screenshot"
	}
	return "unknown"
}

// Event is one entry of the per-tick input stream. Only the fields relevant
// to Kind are set.
type Event struct {
	Kind Kind

	// Resized
	Width, Height int
	// Wheel
	DeltaY float64
	// ButtonDown, ButtonUp
	Button ebiten.MouseButton
	// Motion
	XRel, YRel int
}
