package startup

import (
	"image"
	"image/color"

	"github.com/jetsetilly/reticle/hardware/spec"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Caption is the text drawn by DrawCaption()
const Caption = "Reticle Demo"

// placement of the caption and the box around it. the corners of the box are
// inclusive
var (
	captionOrigin = image.Point{X: 20, Y: 20}
	captionBox    = image.Rect(15, 15, 227, 39)
)

const captionStroke = 3

// DrawCaption draws the caption text and a box around it
func DrawCaption(dst draw.Image) {
	face := basicfont.Face7x13

	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(spec.Cyan),
		Face: face,
		Dot:  fixed.P(captionOrigin.X, captionOrigin.Y+face.Ascent),
	}
	d.DrawString(Caption)

	strokeRect(dst, captionBox, captionStroke, spec.Cyan)
}

// strokeRect draws the outline of the rectangle. the stroke is centred on the
// edges of the rectangle
func strokeRect(dst draw.Image, r image.Rectangle, width int, col color.Color) {
	for i := -(width / 2); i < width-width/2; i++ {
		x0, y0 := r.Min.X-i, r.Min.Y-i
		x1, y1 := r.Max.X+i, r.Max.Y+i
		for x := x0; x <= x1; x++ {
			dst.Set(x, y0, col)
			dst.Set(x, y1, col)
		}
		for y := y0; y <= y1; y++ {
			dst.Set(x0, y, col)
			dst.Set(x1, y, col)
		}
	}
}
