package keypad_test

import (
	"testing"

	"github.com/jetsetilly/reticle/gui"
	"github.com/jetsetilly/reticle/hardware/keypad"
	"github.com/jetsetilly/reticle/test"
)

func TestKeyInput(t *testing.T) {
	k := keypad.Released
	test.ExpectEquality(t, k.String(), "none")
	test.ExpectEquality(t, k.XTribool(), 0)
	test.ExpectEquality(t, k.YTribool(), 0)

	k = k.With(keypad.Right, true).With(keypad.Up, true)
	test.ExpectEquality(t, k.XTribool(), 1)
	test.ExpectEquality(t, k.YTribool(), -1)
	test.ExpectEquality(t, k.String(), "right+up")

	// active low
	test.ExpectEquality(t, uint16(k), 0x03af)

	k = k.With(keypad.Left, true)
	test.ExpectEquality(t, k.XTribool(), 0)

	k = k.With(keypad.Right, false).With(keypad.Up, false).With(keypad.Down, true)
	test.ExpectEquality(t, k.XTribool(), -1)
	test.ExpectEquality(t, k.YTribool(), 1)
}

func TestKeypadUpdate(t *testing.T) {
	inp := make(chan gui.Input, 4)
	kp := keypad.NewKeypad(inp)
	test.ExpectEquality(t, kp.Read(), keypad.Released)

	inp <- gui.Input{Action: gui.StickLeft, Data: true}
	inp <- gui.Input{Action: gui.StickButtonA, Data: true}
	k := kp.Read()
	test.ExpectSuccess(t, k.Pressed(keypad.Left))
	test.ExpectSuccess(t, k.Pressed(keypad.A))

	// pressing the opposite direction releases the other direction
	inp <- gui.Input{Action: gui.StickRight, Data: true}
	k = kp.Read()
	test.ExpectFailure(t, k.Pressed(keypad.Left))
	test.ExpectSuccess(t, k.Pressed(keypad.Right))

	// the register holds the level until the key is released
	k = kp.Read()
	test.ExpectSuccess(t, k.Pressed(keypad.Right))
	test.ExpectSuccess(t, k.Pressed(keypad.A))

	inp <- gui.Input{Action: gui.StickRight, Data: false}
	inp <- gui.Input{Action: gui.StickButtonA, Data: false}
	test.ExpectEquality(t, kp.Read(), keypad.Released)
}

func TestKeypadBadInput(t *testing.T) {
	kp := keypad.NewKeypad(nil)
	test.ExpectFailure(t, kp.Update(gui.Input{Action: gui.StickUp, Data: 10}))
	test.ExpectFailure(t, kp.Update(gui.Input{Action: gui.Nothing, Data: true}))
	test.ExpectEquality(t, kp.Read(), keypad.Released)
}
