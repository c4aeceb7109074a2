package gui

// Action is the type of user input
type Action int

// list of actions. the directional actions and the buttons map directly onto
// keys of the device's keypad
const (
	Nothing Action = iota

	StickLeft
	StickUp
	StickRight
	StickDown
	StickButtonA
	StickButtonB
	Select
	Start
	ShoulderL
	ShoulderR
)

func (a Action) String() string {
	switch a {
	case StickLeft:
		return "left"
	case StickUp:
		return "up"
	case StickRight:
		return "right"
	case StickDown:
		return "down"
	case StickButtonA:
		return "A"
	case StickButtonB:
		return "B"
	case Select:
		return "select"
	case Start:
		return "start"
	case ShoulderL:
		return "L"
	case ShoulderR:
		return "R"
	}
	return "nothing"
}

// Input is sent from the GUI to the hardware. for all actions the Data field
// is a bool indicating whether the key is pressed (true) or released (false)
type Input struct {
	Action Action
	Data   any
}
