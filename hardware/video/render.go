package video

import (
	"image"
	"image/color"

	"github.com/jetsetilly/reticle/hardware/spec"
)

// Render composites the display into a new image. the image represents what
// the display hardware would show for the current state of the registers and
// memory
//
// only the mode 3 bitmap background is supported. objects are drawn on top of
// the background in reverse slot order so that slot 0 has the highest
// priority. affine objects are drawn without transformation
func (vid *Video) Render() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, spec.Width, spec.Height))

	// the display shows white during forced blank
	if vid.Control.ForcedBlank {
		for i := range img.Pix {
			img.Pix[i] = 0xff
		}
		return img
	}

	// backdrop colour is palette entry 0 of the background palette
	backdrop := vid.BGPalette.Entry(0).NRGBA()
	for y := range spec.Height {
		for x := range spec.Width {
			img.SetRGBA(x, y, color.RGBA(backdrop))
		}
	}

	if vid.Control.Mode == Mode3 && vid.Control.BG[2] {
		fb := vid.Framebuffer()
		for y := range spec.Height {
			for x := range spec.Width {
				c := fb.Pixel(x, y).NRGBA()
				img.SetRGBA(x, y, color.RGBA(c))
			}
		}
	}

	if vid.Control.OBJ {
		for slot := NumObjects - 1; slot >= 0; slot-- {
			vid.renderObject(img, vid.OAM.Object(slot))
		}
	}

	return img
}

func (vid *Video) renderObject(img *image.RGBA, attr ObjectAttributes) {
	if attr.Mode == ObjectDisabled {
		return
	}

	if vid.Control.Mode.Bitmap() && attr.TileID < bitmapObjectTileMin {
		return
	}

	w, h := attr.Dimensions()
	if w == 0 {
		return
	}
	ox, oy := attr.Position()

	// number of 32 byte units per tile
	step := 1
	if attr.Colour8 {
		step = 2
	}

	for py := range h {
		sy := oy + py
		if sy < 0 || sy >= spec.Height {
			continue
		}

		ty := py
		if attr.VFlip {
			ty = h - 1 - py
		}

		for px := range w {
			sx := ox + px
			if sx < 0 || sx >= spec.Width {
				continue
			}

			tx := px
			if attr.HFlip {
				tx = w - 1 - px
			}

			// tile containing the pixel
			var tile int
			if vid.Control.ObjMapping1D {
				tile = int(attr.TileID) + ((ty/8)*(w/8)+(tx/8))*step
			} else {
				tile = int(attr.TileID) + (ty/8)*32 + (tx/8)*step
			}

			idx := vid.VRAM.objectPixel(tile&0x03ff, tx%8, ty%8, attr.Colour8)
			if idx == 0 {
				continue
			}
			if !attr.Colour8 {
				idx += attr.PaletteBank << 4
			}

			img.SetRGBA(sx, sy, color.RGBA(vid.ObjPalette.Entry(idx).NRGBA()))
		}
	}
}
