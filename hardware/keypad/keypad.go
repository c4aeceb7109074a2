package keypad

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/reticle/gui"
	"github.com/jetsetilly/reticle/logger"
)

// Key is a single bit in the KEYINPUT register
type Key uint16

// list of keys in bit order
const (
	A      Key = 1 << 0
	B      Key = 1 << 1
	Select Key = 1 << 2
	Start  Key = 1 << 3
	Right  Key = 1 << 4
	Left   Key = 1 << 5
	Up     Key = 1 << 6
	Down   Key = 1 << 7
	R      Key = 1 << 8
	L      Key = 1 << 9
)

// the bits in KEYINPUT that correspond to a key
const keyMask = 0x03ff

var keyNames = [...]string{"A", "B", "select", "start", "right", "left", "up", "down", "R", "L"}

// KeyInput is the raw value of the KEYINPUT register. the register is active
// low, meaning that a bit is zero when the key is pressed
type KeyInput uint16

// Released is the value of the register when no keys are pressed
const Released KeyInput = keyMask

// Pressed returns true if the key is pressed
func (k KeyInput) Pressed(key Key) bool {
	return uint16(k)&uint16(key) == 0
}

// With returns a copy of the register with the key pressed or released
func (k KeyInput) With(key Key, pressed bool) KeyInput {
	if pressed {
		return k &^ KeyInput(key)
	}
	return (k | KeyInput(key)) & keyMask
}

// XTribool returns +1 if right is pressed, -1 if left is pressed and zero if
// neither or both are pressed
func (k KeyInput) XTribool() int {
	return tribool(k.Pressed(Right), k.Pressed(Left))
}

// YTribool returns +1 if down is pressed, -1 if up is pressed and zero if
// neither or both are pressed. the y axis increases down the screen
func (k KeyInput) YTribool() int {
	return tribool(k.Pressed(Down), k.Pressed(Up))
}

func tribool(plus, minus bool) int {
	switch {
	case plus && !minus:
		return 1
	case minus && !plus:
		return -1
	}
	return 0
}

func (k KeyInput) String() string {
	var s strings.Builder
	for i, n := range keyNames {
		if k.Pressed(Key(1 << i)) {
			if s.Len() > 0 {
				s.WriteString("+")
			}
			s.WriteString(n)
		}
	}
	if s.Len() == 0 {
		return "none"
	}
	return s.String()
}

// Keypad is the input hardware of the device. user input arrives from the GUI
// on a channel and the channel is drained every time the register is read
type Keypad struct {
	inp   chan gui.Input
	state KeyInput
}

// NewKeypad is the preferred method of initialisation for the Keypad type. the
// channel can be nil, in which case the state only changes with calls to Update()
func NewKeypad(inp chan gui.Input) *Keypad {
	kp := &Keypad{
		inp: inp,
	}
	kp.Reset()
	return kp
}

// Reset releases all keys
func (kp *Keypad) Reset() {
	kp.state = Released
}

// Label implements the Area interface
func (kp *Keypad) Label() string {
	return "KEYPAD"
}

func (kp *Keypad) String() string {
	return fmt.Sprintf("%s: %s", kp.Label(), kp.state)
}

// Read the KEYINPUT register
func (kp *Keypad) Read() KeyInput {
	kp.drain()
	return kp.state
}

func (kp *Keypad) drain() {
	if kp.inp == nil {
		return
	}
	for {
		select {
		case inp := <-kp.inp:
			err := kp.Update(inp)
			if err != nil {
				logger.Log(logger.Allow, "keypad", err.Error())
			}
		default:
			return
		}
	}
}

// Update the state of the keypad with user input. pressing a direction
// releases the opposite direction because the directional pad on the device
// is a rocker
func (kp *Keypad) Update(inp gui.Input) error {
	pressed, ok := inp.Data.(bool)
	if !ok {
		return fmt.Errorf("keypad: unexpected data type for %s input (%T)", inp.Action, inp.Data)
	}

	switch inp.Action {
	case gui.StickLeft:
		if pressed {
			kp.state = kp.state.With(Right, false)
		}
		kp.state = kp.state.With(Left, pressed)
	case gui.StickRight:
		if pressed {
			kp.state = kp.state.With(Left, false)
		}
		kp.state = kp.state.With(Right, pressed)
	case gui.StickUp:
		if pressed {
			kp.state = kp.state.With(Down, false)
		}
		kp.state = kp.state.With(Up, pressed)
	case gui.StickDown:
		if pressed {
			kp.state = kp.state.With(Up, false)
		}
		kp.state = kp.state.With(Down, pressed)
	case gui.StickButtonA:
		kp.state = kp.state.With(A, pressed)
	case gui.StickButtonB:
		kp.state = kp.state.With(B, pressed)
	case gui.Select:
		kp.state = kp.state.With(Select, pressed)
	case gui.Start:
		kp.state = kp.state.With(Start, pressed)
	case gui.ShoulderL:
		kp.state = kp.state.With(L, pressed)
	case gui.ShoulderR:
		kp.state = kp.state.With(R, pressed)
	default:
		return fmt.Errorf("keypad: unsupported action (%s)", inp.Action)
	}

	return nil
}
