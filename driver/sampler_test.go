package driver

import (
	"testing"

	"github.com/jetsetilly/reticle/hardware/keypad"
	"github.com/jetsetilly/reticle/test"
)

type fixedKeys keypad.KeyInput

func (k fixedKeys) Read() keypad.KeyInput {
	return keypad.KeyInput(k)
}

func TestSampler(t *testing.T) {
	sample := func(k keypad.KeyInput) (Step, bool) {
		return NewSampler(fixedKeys(k)).Sample()
	}

	step, action := sample(keypad.Released)
	test.ExpectEquality(t, step, Step{})
	test.ExpectFailure(t, action)

	step, _ = sample(keypad.Released.With(keypad.Right, true))
	test.ExpectEquality(t, step, Step{X: 1})

	step, _ = sample(keypad.Released.With(keypad.Left, true).With(keypad.Up, true))
	test.ExpectEquality(t, step, Step{X: -1, Y: -1})

	step, _ = sample(keypad.Released.With(keypad.Down, true))
	test.ExpectEquality(t, step, Step{Y: 1})

	// opposing directions cancel
	step, _ = sample(keypad.Released.With(keypad.Left, true).With(keypad.Right, true))
	test.ExpectEquality(t, step, Step{})

	// only the A button is the action
	_, action = sample(keypad.Released.With(keypad.B, true))
	test.ExpectFailure(t, action)
	step, action = sample(keypad.Released.With(keypad.A, true))
	test.ExpectEquality(t, step, Step{})
	test.ExpectSuccess(t, action)
}
