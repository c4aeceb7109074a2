package startup

import (
	"github.com/jetsetilly/reticle/hardware/video"
)

// InitialiseDisplay sets up the display for the mode 3 bitmap with objects.
// the display is left in forced blank
func InitialiseDisplay(ctrl *video.DisplayControl) {
	*ctrl = video.DisplayControl{
		Mode:         video.Mode3,
		BG:           [4]bool{2: true},
		OBJ:          true,
		ObjMapping1D: true,
		ForcedBlank:  true,
	}
}

// EndBlank turns off forced blank. the rest of the display control register
// is unchanged
func EndBlank(ctrl *video.DisplayControl) {
	ctrl.ForcedBlank = false
}
