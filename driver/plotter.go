package driver

import (
	"github.com/jetsetilly/reticle/hardware/spec"
)

// PixelWriter is implemented by the framebuffer
type PixelWriter interface {
	SetBGR555(x, y int, c spec.Colour)
}

// Plotter writes single pixels to the framebuffer
type Plotter struct {
	fb PixelWriter
}

// NewPlotter is the preferred method of initialisation for the Plotter type
func NewPlotter(fb PixelWriter) *Plotter {
	return &Plotter{fb: fb}
}

// Plot the colour at the position. the position must be valid
func (pl *Plotter) Plot(p Position, c spec.Colour) {
	pl.fb.SetBGR555(p.X, p.Y, c)
}
