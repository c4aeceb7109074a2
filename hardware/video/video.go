package video

import (
	"fmt"
)

// Video is the display hardware of the device. it owns the display registers
// and the three memory areas used for display: VRAM, OAM and palette memory
type Video struct {
	// DISPCNT is only ever written by the main loop
	Control DisplayControl

	// DISPSTAT is shared with the refresh generator
	Status StatusRegister

	VRAM VRAM
	OAM  OAM

	BGPalette  Palette
	ObjPalette Palette
}

// NewVideo is the preferred method of initialisation for the Video type
func NewVideo() *Video {
	vid := &Video{
		BGPalette:  Palette{label: "BG palette"},
		ObjPalette: Palette{label: "OBJ palette"},
	}
	vid.Reset(false)
	return vid
}

// Reset the display hardware. the display starts in forced blank
func (vid *Video) Reset(random bool) {
	vid.Control = DisplayControl{ForcedBlank: true}
	vid.Status.Write(DisplayStatus{})
	vid.Status.SetVBlank(false)
	vid.VRAM.Reset(random)
	vid.OAM.Reset()
	vid.BGPalette.Reset()
	vid.ObjPalette.Reset()
}

// Framebuffer returns the mode 3 bitmap view of VRAM
func (vid *Video) Framebuffer() Framebuffer {
	return Framebuffer{vram: &vid.VRAM}
}

// Label implements the Area interface
func (vid *Video) Label() string {
	return "VIDEO"
}

func (vid *Video) String() string {
	return fmt.Sprintf("%s: %s, %s", vid.Label(), vid.Control.String(), vid.Status.Read().String())
}
