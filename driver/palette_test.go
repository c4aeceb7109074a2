package driver

import (
	"testing"

	"github.com/jetsetilly/reticle/hardware/spec"
	"github.com/jetsetilly/reticle/hardware/video"
	"github.com/jetsetilly/reticle/test"
)

type paletteRecorder struct {
	indexes []uint8
	colours []spec.Colour
}

func (r *paletteRecorder) Write(idx uint8, c spec.Colour) {
	r.indexes = append(r.indexes, idx)
	r.colours = append(r.colours, c)
}

func TestRegisterPalette(t *testing.T) {
	var r paletteRecorder
	RegisterPalette(&r)

	test.DemandEquality(t, len(r.indexes), 8)

	expected := []spec.Colour{
		spec.Black, spec.Red, spec.Green, spec.Blue,
		spec.Yellow, spec.Magenta, spec.Cyan, spec.White,
	}
	for i := range r.indexes {
		test.ExpectEquality(t, r.indexes[i], uint8(i+1))
		test.ExpectEquality(t, r.colours[i], expected[i])
	}
}

func TestRegisterPaletteTransparency(t *testing.T) {
	vid := video.NewVideo()
	vid.ObjPalette.Write(0, spec.Magenta)

	RegisterPalette(&vid.ObjPalette)

	test.ExpectEquality(t, vid.ObjPalette.Entry(0), spec.Magenta)
	test.ExpectEquality(t, vid.ObjPalette.Entry(4), spec.Blue)
	test.ExpectEquality(t, vid.ObjPalette.Entry(9), spec.Black)
}
