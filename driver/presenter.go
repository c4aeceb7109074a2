package driver

import (
	"github.com/jetsetilly/reticle/hardware/spec"
	"github.com/jetsetilly/reticle/hardware/video"
)

// ObjectWriter is implemented by OAM
type ObjectWriter interface {
	Write(slot int, attr video.ObjectAttributes)
}

// Presenter moves the reticle object
type Presenter struct {
	oam ObjectWriter
}

// NewPresenter is the preferred method of initialisation for the Presenter type
func NewPresenter(oam ObjectWriter) *Presenter {
	return &Presenter{oam: oam}
}

// Present writes the reticle's OAM slot so that the centre of the reticle is
// at the position. the position must be valid
func (pr *Presenter) Present(p Position) {
	pr.oam.Write(spec.ReticleSlot, video.ObjectAttributes{
		Row:     uint8(p.Y - spec.ReticleFocus),
		Colour8: true,
		Column:  uint16(p.X-spec.ReticleFocus) & 0x01ff,
		TileID:  spec.ReticleTileID,
	})
}
