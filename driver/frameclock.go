package driver

import (
	"context"

	"github.com/jetsetilly/reticle/hardware/irq"
	"github.com/jetsetilly/reticle/hardware/video"
)

// FrameClock wraps the vblank interrupt
type FrameClock struct {
	irq *irq.Controller
}

// NewFrameClock is the preferred method of initialisation for the FrameClock type
func NewFrameClock(ctrl *irq.Controller) *FrameClock {
	return &FrameClock{
		irq: ctrl,
	}
}

// the interrupt service routine. the vblank bit is acknowledged in IF and set
// in the BIOS flags. the bit written back is the same bit that was observed
func (fc *FrameClock) handler(flags irq.Flags) {
	if flags.Has(irq.VBlank) {
		ack := flags & irq.VBlank
		fc.irq.AcknowledgeBIOS(ack)
		fc.irq.Acknowledge(ack)
	}
}

// Enable installs the interrupt handler and enables the vblank interrupt in
// DISPSTAT, IE and IME, in that order
func (fc *FrameClock) Enable(stat *video.StatusRegister) {
	fc.irq.SetHandler(fc.handler)

	s := stat.Read()
	s.VBlankIRQ = true
	stat.Write(s)

	fc.irq.SetIE(fc.irq.IE().WithVBlank(true))
	fc.irq.SetIME(true)
}

// Pending returns true if a refresh has happened that has not yet been
// consumed by WaitForRefresh()
func (fc *FrameClock) Pending() bool {
	return fc.irq.BIOSIF().VBlank()
}

// WaitForRefresh blocks until the next refresh. a refresh that happened
// before the call is discarded. on return the refresh pending flag is clear
//
// other interrupts will wake the halt but are otherwise ignored
func (fc *FrameClock) WaitForRefresh() {
	fc.irq.TakeBIOS(irq.VBlank)
	for {
		fc.irq.Halt()
		if fc.irq.TakeBIOS(irq.VBlank) {
			return
		}
	}
}

// WaitForRefreshContext is the same as WaitForRefresh() except that it returns
// early with the context's error if the context is cancelled
func (fc *FrameClock) WaitForRefreshContext(ctx context.Context) error {
	fc.irq.TakeBIOS(irq.VBlank)
	for {
		if err := fc.irq.HaltContext(ctx); err != nil {
			return err
		}
		if fc.irq.TakeBIOS(irq.VBlank) {
			return nil
		}
	}
}
