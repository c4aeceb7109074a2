package driver

import (
	"github.com/jetsetilly/reticle/hardware/keypad"
)

// Step is the change in the cursor position requested by the user in a single
// refresh interval. each component is -1, 0 or +1
type Step struct {
	X, Y int
}

// KeyReader is implemented by the keypad hardware
type KeyReader interface {
	Read() keypad.KeyInput
}

// Sampler reads the keypad once per refresh interval
type Sampler struct {
	keys KeyReader
}

// NewSampler is the preferred method of initialisation for the Sampler type
func NewSampler(keys KeyReader) *Sampler {
	return &Sampler{keys: keys}
}

// Sample the keypad. returns the step requested by the directional pad and
// whether the A button is pressed. there is no debouncing or edge detection
func (s *Sampler) Sample() (Step, bool) {
	k := s.keys.Read()
	return Step{X: k.XTribool(), Y: k.YTribool()}, k.Pressed(keypad.A)
}
