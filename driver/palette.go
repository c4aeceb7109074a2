package driver

import (
	"github.com/jetsetilly/reticle/hardware/spec"
)

// PaletteWriter is implemented by palette memory
type PaletteWriter interface {
	Write(idx uint8, c spec.Colour)
}

// RegisterPalette writes the colour table to object palette memory starting
// at index 1. index 0 is the transparent colour and is not written
func RegisterPalette(pal PaletteWriter) {
	for i, c := range spec.ColourTable {
		pal.Write(uint8(i+1), c.Colour)
	}
}
