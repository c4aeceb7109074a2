package spec_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/reticle/hardware/spec"
	"github.com/jetsetilly/reticle/test"
)

func TestRefreshInterval(t *testing.T) {
	// 280896 cycles at 16777216hz
	test.ExpectEquality(t, spec.RefreshInterval, 16742706*time.Nanosecond)
	test.ExpectSuccess(t, spec.RefreshRate > 59.72 && spec.RefreshRate < 59.74)

	// the vblank period is the last 68 scanlines of the interval
	vblank := spec.RefreshInterval * (spec.ScanlinesTotal - spec.ScanlinesVisible) / spec.ScanlinesTotal
	test.ExpectSuccess(t, vblank > 4990*time.Microsecond && vblank < 5000*time.Microsecond)
}

func TestPaletteIndex(t *testing.T) {
	test.ExpectEquality(t, spec.PaletteIndex("black"), 1)
	test.ExpectEquality(t, spec.PaletteIndex("white"), uint8(len(spec.ColourTable)))
	test.ExpectEquality(t, spec.PaletteIndex("orange"), 0)
}
