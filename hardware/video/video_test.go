package video

import (
	"image/color"
	"testing"

	"github.com/jetsetilly/reticle/hardware/spec"
	"github.com/jetsetilly/reticle/test"
)

func TestDisplayControl(t *testing.T) {
	var ctrl DisplayControl
	ctrl.Set(0x1443)
	test.ExpectEquality(t, ctrl.Mode, Mode3)
	test.ExpectSuccess(t, ctrl.Mode.Bitmap())
	test.ExpectSuccess(t, ctrl.BG[2])
	test.ExpectFailure(t, ctrl.BG[0])
	test.ExpectSuccess(t, ctrl.OBJ)
	test.ExpectSuccess(t, ctrl.ObjMapping1D)
	test.ExpectFailure(t, ctrl.ForcedBlank)
	test.ExpectEquality(t, ctrl.Value(), 0x1443)

	ctrl.ForcedBlank = true
	test.ExpectEquality(t, ctrl.Value(), 0x14c3)

	test.ExpectFailure(t, Mode0.Bitmap())
	test.ExpectFailure(t, Mode2.Bitmap())
	test.ExpectSuccess(t, Mode5.Bitmap())
}

func TestDisplayStatus(t *testing.T) {
	var r StatusRegister

	r.Write(DisplayStatus{VBlankIRQ: true, VCountSetting: 100})
	test.ExpectEquality(t, r.Read().Value(), 0x6408)

	// status bits are not writable
	r.Write(DisplayStatus{VBlank: true, VBlankIRQ: true})
	test.ExpectFailure(t, r.Read().VBlank)

	// but they are preserved by a write
	r.SetVBlank(true)
	r.Write(DisplayStatus{})
	test.ExpectSuccess(t, r.Read().VBlank)
	test.ExpectFailure(t, r.Read().VBlankIRQ)

	r.SetVBlank(false)
	test.ExpectFailure(t, r.Read().VBlank)
}

func TestObjectAttributes(t *testing.T) {
	attr := ObjectAttributes{
		Row:         0xfd,
		Colour8:     true,
		Column:      0x01fd,
		HFlip:       true,
		TileID:      514,
		Priority:    1,
		PaletteBank: 3,
	}
	w := attr.Words()
	test.ExpectEquality(t, w, [3]uint16{0x20fd, 0x11fd, 0x3602})

	var d ObjectAttributes
	d.SetWords(w)
	test.ExpectEquality(t, d, attr)

	x, y := d.Position()
	test.ExpectEquality(t, x, -3)
	test.ExpectEquality(t, y, -3)

	// column is masked to nine bits
	attr = ObjectAttributes{Column: 0xffff}
	test.ExpectEquality(t, attr.Words()[1]&0x01ff, 0x01ff)
	test.ExpectEquality(t, attr.Words()[1]&0x0e00, 0)

	w0, h0 := ObjectAttributes{}.Dimensions()
	test.ExpectEquality(t, w0, 8)
	test.ExpectEquality(t, h0, 8)
	w0, h0 = ObjectAttributes{Shape: ShapeVertical, Size: 3}.Dimensions()
	test.ExpectEquality(t, w0, 32)
	test.ExpectEquality(t, h0, 64)
}

func TestOAM(t *testing.T) {
	var oam OAM

	attr := ObjectAttributes{Row: 77, Column: 117, Colour8: true, TileID: 514}
	oam.Write(0, attr)
	test.ExpectEquality(t, oam.Object(0), attr)

	// little endian encoding of the first attribute word
	b, err := oam.Read(0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, b, 0x4d)
	b, err = oam.Read(1)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, b, 0x20)

	// neighbouring slot is untouched
	test.ExpectEquality(t, oam.Object(1), ObjectAttributes{})

	_, err = oam.Read(oamSize)
	test.ExpectFailure(t, err)
}

func TestFramebuffer(t *testing.T) {
	vid := NewVideo()
	fb := vid.Framebuffer()

	fb.SetBGR555(50, 50, spec.Red)
	test.ExpectEquality(t, fb.Pixel(50, 50), spec.Red)
	test.ExpectEquality(t, fb.At(50, 50), color.Color(spec.Red))

	// two bytes per pixel, little endian
	b, err := vid.VRAM.Read((50*spec.Width + 50) * 2)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, b, 0x1f)

	// the draw.Image interface converts colours to BGR555
	fb.Set(10, 10, color.RGBA{G: 255, A: 255})
	test.ExpectEquality(t, fb.Pixel(10, 10), spec.Green)

	// out of range coordinates are ignored by the draw.Image interface
	fb.Set(spec.Width, 0, color.White)
	test.ExpectEquality(t, fb.Pixel(0, 1), spec.Black)
	test.ExpectEquality(t, fb.At(-1, 0), color.Color(spec.Black))
}

func TestWriteTile(t *testing.T) {
	var vram VRAM

	var tile Tile8
	tile.Set(3, 3, 4)
	tile.Set(8, 0, 1)
	test.ExpectSuccess(t, vram.WriteTile8(5, 1, tile))

	test.ExpectEquality(t, vram.objectPixel(514, 3, 3, true), 4)
	test.ExpectEquality(t, vram.objectPixel(514, 0, 0, true), 0)

	test.ExpectFailure(t, vram.WriteTile8(6, 0, tile))
	test.ExpectFailure(t, vram.WriteTile8(5, -1, tile))
}

func TestRenderForcedBlank(t *testing.T) {
	vid := NewVideo()
	vid.Framebuffer().SetBGR555(0, 0, spec.Red)

	img := vid.Render()
	test.ExpectEquality(t, img.RGBAAt(0, 0), color.RGBA{R: 255, G: 255, B: 255, A: 255})
}

func TestRender(t *testing.T) {
	vid := NewVideo()
	vid.Control.Set(0x1443)

	fb := vid.Framebuffer()
	fb.SetBGR555(20, 10, spec.Green)

	var tile Tile8
	tile.Set(3, 3, 1)
	test.DemandSuccess(t, vid.VRAM.WriteTile8(5, 1, tile))
	vid.ObjPalette.Write(1, spec.Red)

	vid.OAM.Write(0, ObjectAttributes{Row: 10, Column: 20, Colour8: true, TileID: 514})

	img := vid.Render()

	// the object pixel is drawn over the bitmap
	test.ExpectEquality(t, img.RGBAAt(23, 13), color.RGBA{R: 255, A: 255})

	// transparent object pixels show the bitmap
	test.ExpectEquality(t, img.RGBAAt(20, 10), color.RGBA{G: 255, A: 255})
	test.ExpectEquality(t, img.RGBAAt(21, 10), color.RGBA{A: 255})

	// objects using tiles inside the framebuffer are not drawn in bitmap modes
	vid.OAM.Write(0, ObjectAttributes{Row: 10, Column: 20, Colour8: true, TileID: 2})
	img = vid.Render()
	test.ExpectEquality(t, img.RGBAAt(23, 13), color.RGBA{A: 255})

	// disabled objects are not drawn
	vid.OAM.Write(0, ObjectAttributes{Row: 10, Column: 20, Colour8: true, TileID: 514, Mode: ObjectDisabled})
	img = vid.Render()
	test.ExpectEquality(t, img.RGBAAt(23, 13), color.RGBA{A: 255})
}
