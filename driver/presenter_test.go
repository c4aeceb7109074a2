package driver

import (
	"testing"

	"github.com/jetsetilly/reticle/hardware/spec"
	"github.com/jetsetilly/reticle/hardware/video"
	"github.com/jetsetilly/reticle/test"
)

type objectRecorder struct {
	writes []video.ObjectAttributes
	slots  []int
}

func (r *objectRecorder) Write(slot int, attr video.ObjectAttributes) {
	r.slots = append(r.slots, slot)
	r.writes = append(r.writes, attr)
}

func TestPresenter(t *testing.T) {
	var r objectRecorder
	pr := NewPresenter(&r)

	pr.Present(Position{X: 120, Y: 80})
	test.DemandEquality(t, len(r.writes), 1)
	test.ExpectEquality(t, r.slots[0], spec.ReticleSlot)

	attr := r.writes[0]
	x, y := attr.Position()
	test.ExpectEquality(t, x, 117)
	test.ExpectEquality(t, y, 77)
	test.ExpectEquality(t, attr.TileID, 514)
	test.ExpectSuccess(t, attr.Colour8)
	test.ExpectEquality(t, attr.Mode, video.ObjectNormal)
	test.ExpectEquality(t, attr.Words(), [3]uint16{0x204d, 0x0075, 0x0202})
}

func TestPresenterTopLeft(t *testing.T) {
	var r objectRecorder
	pr := NewPresenter(&r)

	// the reticle is partially off the top and left of the screen
	pr.Present(Position{X: 0, Y: 0})
	x, y := r.writes[0].Position()
	test.ExpectEquality(t, x, -3)
	test.ExpectEquality(t, y, -3)
	test.ExpectEquality(t, r.writes[0].Words(), [3]uint16{0x20fd, 0x01fd, 0x0202})
}

func TestPresenterIdempotence(t *testing.T) {
	var oam video.OAM
	pr := NewPresenter(&oam)

	pr.Present(Position{X: 33, Y: 99})
	once := oam.Object(spec.ReticleSlot)

	pr.Present(Position{X: 33, Y: 99})
	twice := oam.Object(spec.ReticleSlot)

	test.ExpectEquality(t, once, twice)

	// no other slot is touched
	for slot := 1; slot < video.NumObjects; slot++ {
		test.DemandEquality(t, oam.Object(slot), video.ObjectAttributes{}, slot)
	}
}
