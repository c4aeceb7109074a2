package startup

import (
	"github.com/jetsetilly/reticle/hardware/spec"
	"github.com/jetsetilly/reticle/hardware/video"
)

// TileWriter is implemented by VRAM
type TileWriter interface {
	WriteTile8(block int, index int, tile video.Tile8) error
}

// DrawReticle draws the reticle into object tile memory. the reticle is a
// circle with a cross through the centre, drawn in blue. the rest of the tile
// is transparent
func DrawReticle(vram TileWriter) error {
	var tile video.Tile8

	idx := spec.PaletteIndex("blue")
	const c = spec.ReticleFocus

	// midpoint circle
	x, y := c, 0
	d := 1 - c
	for x >= y {
		for _, p := range [][2]int{
			{x, y}, {y, x}, {-y, x}, {-x, y},
			{-x, -y}, {-y, -x}, {y, -x}, {x, -y},
		} {
			tile.Set(c+p[0], c+p[1], idx)
		}
		y++
		if d < 0 {
			d += 2*y + 1
		} else {
			x--
			d += 2*(y-x) + 1
		}
	}

	// cross
	for i := range spec.ReticleSize {
		tile.Set(i, c, idx)
		tile.Set(c, i, idx)
	}

	return vram.WriteTile8(spec.ReticleCharBlock, spec.ReticleTileIndex, tile)
}
