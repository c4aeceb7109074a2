package video

import (
	"fmt"
	"strings"
)

// DisplayMode selects how the background layers are interpreted
type DisplayMode int

// list of display modes. modes 3 to 5 are bitmap modes
const (
	Mode0 DisplayMode = iota
	Mode1
	Mode2
	Mode3
	Mode4
	Mode5
)

// Bitmap returns true if the mode is one of the bitmap modes
func (m DisplayMode) Bitmap() bool {
	return m >= Mode3 && m <= Mode5
}

// DisplayControl is the decoded form of the DISPCNT register
type DisplayControl struct {
	Mode DisplayMode // 0 to 5 only

	// frame select for the paged bitmap modes 4 and 5
	Frame1 bool

	// allow access to OAM during hblank
	HBlankFree bool

	// object tiles are mapped one dimensionally if true. otherwise the tiles
	// of an object are arranged as a 32x32 tile matrix
	ObjMapping1D bool

	// the display shows white and VRAM/OAM/palette can be accessed freely
	ForcedBlank bool

	BG  [4]bool
	OBJ bool

	Window0   bool
	Window1   bool
	ObjWindow bool
}

// Value encodes the fields into the raw register value
func (ctrl DisplayControl) Value() uint16 {
	v := uint16(ctrl.Mode) & 0x07
	bit := func(b bool, n uint) {
		if b {
			v |= 1 << n
		}
	}
	bit(ctrl.Frame1, 4)
	bit(ctrl.HBlankFree, 5)
	bit(ctrl.ObjMapping1D, 6)
	bit(ctrl.ForcedBlank, 7)
	for i, b := range ctrl.BG {
		bit(b, uint(8+i))
	}
	bit(ctrl.OBJ, 12)
	bit(ctrl.Window0, 13)
	bit(ctrl.Window1, 14)
	bit(ctrl.ObjWindow, 15)
	return v
}

// Set decodes a raw register value into the fields
func (ctrl *DisplayControl) Set(data uint16) {
	ctrl.Mode = DisplayMode(data & 0x07)
	ctrl.Frame1 = data&0x0010 == 0x0010
	ctrl.HBlankFree = data&0x0020 == 0x0020
	ctrl.ObjMapping1D = data&0x0040 == 0x0040
	ctrl.ForcedBlank = data&0x0080 == 0x0080
	for i := range ctrl.BG {
		ctrl.BG[i] = data&(0x0100<<i) != 0
	}
	ctrl.OBJ = data&0x1000 == 0x1000
	ctrl.Window0 = data&0x2000 == 0x2000
	ctrl.Window1 = data&0x4000 == 0x4000
	ctrl.ObjWindow = data&0x8000 == 0x8000
}

func (ctrl DisplayControl) String() string {
	var s strings.Builder
	s.WriteString(fmt.Sprintf("mode=%d ", ctrl.Mode))
	s.WriteString(fmt.Sprintf("bg=%v ", ctrl.BG))
	s.WriteString(fmt.Sprintf("obj=%v ", ctrl.OBJ))
	s.WriteString(fmt.Sprintf("1d=%v ", ctrl.ObjMapping1D))
	s.WriteString(fmt.Sprintf("blank=%v", ctrl.ForcedBlank))
	return s.String()
}
