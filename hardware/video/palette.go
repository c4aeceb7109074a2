package video

import (
	"github.com/jetsetilly/reticle/hardware/spec"
)

// NumPaletteEntries is the number of entries in each of the two palettes
const NumPaletteEntries = 256

// Palette is one half of palette memory. index 0 of the palette is the
// transparent colour and is never drawn by the compositor for objects
type Palette struct {
	label   string
	entries [NumPaletteEntries]spec.Colour
}

// Label implements the Area interface
func (p *Palette) Label() string {
	return p.label
}

// Reset clears all palette entries to black
func (p *Palette) Reset() {
	clear(p.entries[:])
}

// Write the colour to the palette index. the unused top bit of the colour is
// discarded
func (p *Palette) Write(idx uint8, c spec.Colour) {
	p.entries[idx] = c & 0x7fff
}

// Entry returns the colour at the palette index
func (p *Palette) Entry(idx uint8) spec.Colour {
	return p.entries[idx]
}
