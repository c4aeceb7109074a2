package video

import (
	"fmt"
)

// ObjectMode is the rendering mode of an object
type ObjectMode int

// list of object modes
const (
	ObjectNormal ObjectMode = iota
	ObjectAffine
	ObjectDisabled
	ObjectAffineDouble
)

// ObjectShape and ObjectSize together specify the dimensions of an object
type ObjectShape int

// list of object shapes
const (
	ShapeSquare ObjectShape = iota
	ShapeHorizontal
	ShapeVertical
)

// ObjectSize is one of four sizes. the meaning of the size depends on the shape
type ObjectSize int

// dimensions of objects in pixels indexed by shape and then size
var objectDimensions = [3][4][2]int{
	{{8, 8}, {16, 16}, {32, 32}, {64, 64}},
	{{16, 8}, {32, 8}, {32, 16}, {64, 32}},
	{{8, 16}, {8, 32}, {16, 32}, {32, 64}},
}

// ObjectAttributes is the decoded form of the three attribute words of an OAM
// entry. the fourth word of each entry is part of the affine parameters and
// is not touched by ObjectAttributes
type ObjectAttributes struct {
	// attribute 0
	Row     uint8
	Mode    ObjectMode
	Mosaic  bool
	Colour8 bool
	Shape   ObjectShape

	// attribute 1. the column is nine bits wide
	Column uint16
	HFlip  bool
	VFlip  bool
	Size   ObjectSize

	// attribute 2. the tile id is ten bits wide. tiles are counted in 32 byte
	// units from the start of object VRAM, even for 8bpp objects
	TileID      uint16
	Priority    uint8
	PaletteBank uint8
}

// Words encodes the attributes into the three raw attribute words
func (attr ObjectAttributes) Words() [3]uint16 {
	var w [3]uint16

	w[0] = uint16(attr.Row)
	w[0] |= (uint16(attr.Mode) & 0x03) << 8
	if attr.Mosaic {
		w[0] |= 0x1000
	}
	if attr.Colour8 {
		w[0] |= 0x2000
	}
	w[0] |= (uint16(attr.Shape) & 0x03) << 14

	w[1] = attr.Column & 0x01ff
	if attr.HFlip {
		w[1] |= 0x1000
	}
	if attr.VFlip {
		w[1] |= 0x2000
	}
	w[1] |= (uint16(attr.Size) & 0x03) << 14

	w[2] = attr.TileID & 0x03ff
	w[2] |= (uint16(attr.Priority) & 0x03) << 10
	w[2] |= (uint16(attr.PaletteBank) & 0x0f) << 12

	return w
}

// SetWords decodes the three raw attribute words
func (attr *ObjectAttributes) SetWords(w [3]uint16) {
	attr.Row = uint8(w[0])
	attr.Mode = ObjectMode((w[0] >> 8) & 0x03)
	attr.Mosaic = w[0]&0x1000 == 0x1000
	attr.Colour8 = w[0]&0x2000 == 0x2000
	attr.Shape = ObjectShape(w[0] >> 14)

	attr.Column = w[1] & 0x01ff
	attr.HFlip = w[1]&0x1000 == 0x1000
	attr.VFlip = w[1]&0x2000 == 0x2000
	attr.Size = ObjectSize(w[1] >> 14)

	attr.TileID = w[2] & 0x03ff
	attr.Priority = uint8((w[2] >> 10) & 0x03)
	attr.PaletteBank = uint8(w[2] >> 12)
}

// Dimensions returns the width and height of the object in pixels. returns
// zero for the prohibited shape value
func (attr ObjectAttributes) Dimensions() (int, int) {
	if attr.Shape > ShapeVertical {
		return 0, 0
	}
	d := objectDimensions[attr.Shape][attr.Size&0x03]
	return d[0], d[1]
}

// Position returns the screen coordinates of the top-left corner of the
// object. the row wraps at 256 and the column wraps at 512 so that objects
// can be partially off the top or left of the screen
func (attr ObjectAttributes) Position() (int, int) {
	x := int(attr.Column & 0x01ff)
	if x >= 256 {
		x -= 512
	}
	y := int(attr.Row)
	if y >= 192 {
		y -= 256
	}
	return x, y
}

func (attr ObjectAttributes) String() string {
	x, y := attr.Position()
	w, h := attr.Dimensions()
	return fmt.Sprintf("pos=%d,%d dim=%dx%d tile=%d 8bpp=%v", x, y, w, h, attr.TileID, attr.Colour8)
}
