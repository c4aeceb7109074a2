package spec

import (
	"fmt"
	"image/color"
)

// RGBA implements the color.Color interface
func (c Colour) RGBA() (r, g, b, a uint32) {
	expand := func(v uint32) uint32 {
		v = (v << 3) | (v >> 2)
		return v<<8 | v
	}
	r = expand(uint32(c) & 0x1f)
	g = expand((uint32(c) >> 5) & 0x1f)
	b = expand((uint32(c) >> 10) & 0x1f)
	return r, g, b, 0xffff
}

// NRGBA returns the colour as an 8bit per channel value. used by the
// compositor when building the image sent to the GUI
func (c Colour) NRGBA() color.NRGBA {
	r, g, b, _ := c.RGBA()
	return color.NRGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: 255}
}

func (c Colour) String() string {
	return fmt.Sprintf("%#04x", uint16(c))
}

// ColourModel converts any color.Color to a Colour. alpha is ignored because
// the framebuffer has no transparency
var ColourModel = color.ModelFunc(func(c color.Color) color.Color {
	if v, ok := c.(Colour); ok {
		return v
	}
	r, g, b, _ := c.RGBA()
	return Colour((r >> 11) | ((g >> 11) << 5) | ((b >> 11) << 10))
})
