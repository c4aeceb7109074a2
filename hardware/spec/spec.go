package spec

import (
	"time"
)

// dimensions of the mode 3 bitmap. the cursor and the pixel plotter share the
// same coordinate domain
const (
	Width  = 240
	Height = 160
)

// "The GBA has a refresh rate of about 59.73 hz. One frame consists of 228
// scanlines (160 visible and 68 vblank) of 1232 cycles each at 16.78MHz"
const (
	ClockSpeed       = 16777216.0
	ClksScanline     = 1232
	ScanlinesVisible = 160
	ScanlinesTotal   = 228
)

// RefreshRate is the number of refresh intervals per second
const RefreshRate = ClockSpeed / (ClksScanline * ScanlinesTotal)

// RefreshInterval is the duration of one refresh interval. the clock speed is a
// whole number so the sum can be done in integer nanoseconds
var RefreshInterval = time.Second * ClksScanline * ScanlinesTotal / time.Duration(ClockSpeed)

// the reticle is drawn in a single 8x8 tile but only the top-left 7x7 pixels
// are used. the centre of the reticle is at (3,3)
const (
	ObjectSize   = 8
	ReticleSize  = 7
	ReticleFocus = ReticleSize / 2
)

// Colour is a 15bit colour stored in BGR555 format. the most significant bit
// is unused
type Colour uint16

// colours used by the demo. the order is important because it is the order
// in which the colours are registered in object palette memory
const (
	Black   Colour = 0x0000
	Red     Colour = 0x001f
	Green   Colour = 0x03e0
	Blue    Colour = 0x7c00
	Yellow  Colour = 0x03ff
	Magenta Colour = 0x7c1f
	Cyan    Colour = 0x7fe0
	White   Colour = 0x7fff
)

// NamedColour associates a name with a Colour
type NamedColour struct {
	Name   string
	Colour Colour
}

// ColourTable is the list of colours written to object palette memory at
// startup. the first entry is written to index 1 because index 0 is reserved
// for transparency
var ColourTable = [...]NamedColour{
	{Name: "black", Colour: Black},
	{Name: "red", Colour: Red},
	{Name: "green", Colour: Green},
	{Name: "blue", Colour: Blue},
	{Name: "yellow", Colour: Yellow},
	{Name: "magenta", Colour: Magenta},
	{Name: "cyan", Colour: Cyan},
	{Name: "white", Colour: White},
}

// PaletteIndex returns the object palette index that the named colour is
// registered at. returns zero (the transparent index) if the name is not in
// the ColourTable
func PaletteIndex(name string) uint8 {
	for i, c := range ColourTable {
		if c.Name == name {
			return uint8(i + 1)
		}
	}
	return 0
}

// the reticle tile is the second 8bpp tile in character block 5. object tile
// ids are always counted in 32 byte units from the start of character block
// 4, so the id of the tile is 512 (the start of block 5) plus 2
const (
	ReticleCharBlock = 5
	ReticleTileIndex = 1
	ReticleTileID    = (ReticleCharBlock-4)*512 + ReticleTileIndex*2
)

// ReticleSlot is the OAM slot reserved for the reticle
const ReticleSlot = 0
