package gui

import (
	"image"
)

// State of the driver as seen by the GUI
type State int

// list of possible states
const (
	StateRunning State = iota
	StateHalted
)

func (s State) String() string {
	if s == StateHalted {
		return "halted"
	}
	return "running"
}

// GUI is the means of communication between the hardware and the frontend. the
// channels are all buffered so that neither side has to wait for the other
type GUI struct {
	// images are sent to the GUI once per refresh interval. if the GUI hasn't
	// consumed the previous image then the new image is dropped
	SetImage chan *image.RGBA

	// user input sent to the hardware. the hardware drains the channel every
	// time the keypad register is read
	UserInput chan Input

	// state changes sent to the GUI
	State chan State
}

// NewGUI is the preferred method of initialisation for the GUI type
func NewGUI() *GUI {
	return &GUI{
		SetImage:  make(chan *image.RGBA, 1),
		UserInput: make(chan Input, 16),
		State:     make(chan State, 1),
	}
}

// PushInput sends input to the hardware without blocking. returns false if
// the input could not be sent
func (g *GUI) PushInput(inp Input) bool {
	select {
	case g.UserInput <- inp:
		return true
	default:
	}
	return false
}

// PushImage sends an image to the GUI without blocking. returns false if the
// GUI has not yet consumed the previous image
func (g *GUI) PushImage(img *image.RGBA) bool {
	select {
	case g.SetImage <- img:
		return true
	default:
	}
	return false
}

// PushState sends a state change to the GUI. an unconsumed state change is
// replaced by the new state
func (g *GUI) PushState(s State) {
	for {
		select {
		case g.State <- s:
			return
		default:
		}
		select {
		case <-g.State:
		default:
		}
	}
}
