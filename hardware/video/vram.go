package video

import (
	"encoding/binary"
	"fmt"
	"image"
	"image/color"
	"math/rand/v2"

	"github.com/jetsetilly/reticle/hardware/spec"
)

// size of VRAM in bytes
const vramSize = 0x18000

// VRAM is divided into character blocks of 16k. blocks 4 and 5 are for
// object tiles
const (
	charBlockSize  = 0x4000
	objectTileBase = 0x10000
)

// size of tiles in bytes
const (
	tile4Size = 32
	tile8Size = 64
)

// in the bitmap modes the framebuffer overlaps with character block 4. object
// tiles with an id below this value are inside the framebuffer and are not
// drawn
const bitmapObjectTileMin = 512

// VRAM is the video memory of the device
type VRAM struct {
	data [vramSize]uint8
}

// Label implements the Area interface
func (vram *VRAM) Label() string {
	return "VRAM"
}

// Reset VRAM. random values are written to memory if the random argument is
// true
func (vram *VRAM) Reset(random bool) {
	if random {
		for i := range vram.data {
			vram.data[i] = uint8(rand.IntN(256))
		}
	} else {
		clear(vram.data[:])
	}
}

// Read byte from VRAM
func (vram *VRAM) Read(idx uint32) (uint8, error) {
	if int(idx) >= len(vram.data) {
		return 0, fmt.Errorf("vram: read out of range (%#05x)", idx)
	}
	return vram.data[idx], nil
}

// Tile8 is the pixel data of an 8bpp tile. each byte is a palette index and
// pixels are ordered left to right and top to bottom
type Tile8 [tile8Size]uint8

// Set the pixel in the tile to the palette index. implements the same
// signature as the bitmap for drawing functions
func (t *Tile8) Set(x, y int, idx uint8) {
	if x < 0 || x >= 8 || y < 0 || y >= 8 {
		return
	}
	t[y*8+x] = idx
}

// WriteTile8 copies an 8bpp tile into a character block. the index is in
// units of 8bpp tiles
func (vram *VRAM) WriteTile8(block int, index int, tile Tile8) error {
	a := block*charBlockSize + index*tile8Size
	if block < 0 || index < 0 || a+tile8Size > len(vram.data) {
		return fmt.Errorf("vram: tile write out of range (block %d, index %d)", block, index)
	}
	copy(vram.data[a:], tile[:])
	return nil
}

// objectPixel returns the palette index of the pixel in the object tile
// data. tile is in 32 byte units from the start of object VRAM. a return
// value of zero means the pixel is transparent
func (vram *VRAM) objectPixel(tile int, x, y int, colour8 bool) uint8 {
	if colour8 {
		a := objectTileBase + tile*tile4Size + y*8 + x
		if a >= len(vram.data) {
			return 0
		}
		return vram.data[a]
	}
	a := objectTileBase + tile*tile4Size + y*4 + x/2
	if a >= len(vram.data) {
		return 0
	}
	v := vram.data[a]
	if x&0x01 == 0x01 {
		return v >> 4
	}
	return v & 0x0f
}

// Framebuffer is the mode 3 bitmap in VRAM. every pixel is a 15bit colour
// stored in two bytes. Framebuffer implements the draw.Image interface
type Framebuffer struct {
	vram *VRAM
}

// ColorModel implements the image.Image interface
func (fb Framebuffer) ColorModel() color.Model {
	return spec.ColourModel
}

// Bounds implements the image.Image interface
func (fb Framebuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, spec.Width, spec.Height)
}

// At implements the image.Image interface
func (fb Framebuffer) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}.In(fb.Bounds())) {
		return spec.Black
	}
	return fb.Pixel(x, y)
}

// Set implements the draw.Image interface. coordinates outside of the
// framebuffer are ignored
func (fb Framebuffer) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}.In(fb.Bounds())) {
		return
	}
	fb.SetBGR555(x, y, spec.ColourModel.Convert(c).(spec.Colour))
}

// Pixel returns the colour at the coordinates
func (fb Framebuffer) Pixel(x, y int) spec.Colour {
	a := (y*spec.Width + x) * 2
	return spec.Colour(binary.LittleEndian.Uint16(fb.vram.data[a:]))
}

// SetBGR555 writes the colour to the coordinates. there is no bounds check
// beyond that which the Go runtime does for slice access. callers must make
// sure the coordinates are inside the framebuffer because an out of range
// coordinate may write into the object tiles that follow the framebuffer
func (fb Framebuffer) SetBGR555(x, y int, c spec.Colour) {
	a := (y*spec.Width + x) * 2
	binary.LittleEndian.PutUint16(fb.vram.data[a:], uint16(c))
}
