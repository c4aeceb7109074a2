package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jetsetilly/reticle/gui"
	input "github.com/quasilyte/ebitengine-input"
)

// the keymap actions are the same values as the gui actions
const (
	ActionStickLeft    = input.Action(gui.StickLeft)
	ActionStickUp      = input.Action(gui.StickUp)
	ActionStickRight   = input.Action(gui.StickRight)
	ActionStickDown    = input.Action(gui.StickDown)
	ActionStickButtonA = input.Action(gui.StickButtonA)
	ActionStickButtonB = input.Action(gui.StickButtonB)
	ActionSelect       = input.Action(gui.Select)
	ActionStart        = input.Action(gui.Start)
	ActionShoulderL    = input.Action(gui.ShoulderL)
	ActionShoulderR    = input.Action(gui.ShoulderR)
)

var keymap = input.Keymap{
	ActionStickLeft:    {input.KeyGamepadLeft, input.KeyLeft},
	ActionStickUp:      {input.KeyGamepadUp, input.KeyUp},
	ActionStickRight:   {input.KeyGamepadRight, input.KeyRight},
	ActionStickDown:    {input.KeyGamepadDown, input.KeyDown},
	ActionStickButtonA: {input.KeyGamepadA, input.KeySpace, input.KeyX},
	ActionStickButtonB: {input.KeyGamepadB, input.KeyZ},
	ActionSelect:       {input.KeyGamepadBack, input.KeyBackspace},
	ActionStart:        {input.KeyGamepadStart, input.KeyEnter},
	ActionShoulderL:    {input.KeyGamepadL1, input.KeyA},
	ActionShoulderR:    {input.KeyGamepadR1, input.KeyS},
}

// the order in which actions are checked
var actions = [...]input.Action{
	ActionStickLeft, ActionStickUp, ActionStickRight, ActionStickDown,
	ActionStickButtonA, ActionStickButtonB,
	ActionSelect, ActionStart,
	ActionShoulderL, ActionShoulderR,
}

func (eg *guiEbiten) input() error {
	if inpututil.IsKeyJustReleased(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	eg.inputSystem.Update()

	for _, a := range actions {
		var inp gui.Input
		if eg.inputHandler.ActionIsJustPressed(a) {
			inp = gui.Input{Action: gui.Action(a), Data: true}
		} else if eg.inputHandler.ActionIsJustReleased(a) {
			inp = gui.Input{Action: gui.Action(a), Data: false}
		} else {
			continue
		}

		// input is dropped if the keypad hasn't drained the channel. this
		// only happens if the driver has halted
		if !eg.g.PushInput(inp) {
			return nil
		}
	}

	return nil
}
