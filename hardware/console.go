package hardware

import (
	"context"
	"fmt"

	"github.com/jetsetilly/reticle/gui"
	"github.com/jetsetilly/reticle/hardware/irq"
	"github.com/jetsetilly/reticle/hardware/keypad"
	"github.com/jetsetilly/reticle/hardware/video"
)

// Console is the device. each part of the hardware is a singleton owned by the
// Console and components that need access to hardware are given a reference
// to the part they need
type Console struct {
	IRQ    *irq.Controller
	Video  *video.Video
	Keypad *keypad.Keypad

	g       *gui.GUI
	refresh *refresh
}

// Create a new console. the GUI argument can be nil
func Create(g *gui.GUI) *Console {
	con := &Console{
		IRQ:   irq.NewController(),
		Video: video.NewVideo(),
		g:     g,
	}

	var inp chan gui.Input
	if g != nil {
		inp = g.UserInput
	}
	con.Keypad = keypad.NewKeypad(inp)

	con.refresh = newRefresh(&con.Video.Status, con.IRQ)
	con.Reset(false)

	return con
}

// Reset the console. if random is true, memory is filled with random values
func (con *Console) Reset(random bool) {
	con.IRQ.Reset()
	con.Video.Reset(random)
	con.Keypad.Reset()
}

// Start the refresh generator. the generator stops when the context is
// cancelled
func (con *Console) Start(ctx context.Context) {
	go con.refresh.run(ctx)
}

// Nudge causes the next vblank to happen immediately
func (con *Console) Nudge() {
	con.refresh.Nudge()
}

// Frames returns the number of vblanks generated since the console was created
func (con *Console) Frames() uint64 {
	return con.refresh.frames.Load()
}

// Scanout renders the display and sends the image to the GUI. the image is
// dropped if the GUI has not consumed the previous one
func (con *Console) Scanout() {
	if con.g == nil {
		return
	}
	con.g.PushImage(con.Video.Render())
}

func (con *Console) String() string {
	return fmt.Sprintf("%s\nIRQ: %s\n%s", con.Video.String(), con.IRQ.String(), con.Keypad.String())
}
