package irq

import (
	"context"
	"fmt"
	"sync/atomic"
)

// Handler is the interrupt service routine. it is called with the flags that
// are both enabled and requested at the moment of dispatch
//
// the handler runs in the interrupt context and must do the minimum amount
// of work possible. it is responsible for acknowledging the interrupt
type Handler func(flags Flags)

// Controller models the interrupt registers of the device. the registers are
// written by two execution contexts: the interrupt context (the goroutine
// calling Request()) and the main loop. all register access is therefore
// atomic
type Controller struct {
	// interrupt enable
	ie atomic.Uint32

	// interrupt request flags. writing a bit to IF acknowledges the interrupt,
	// in other words, a write clears the bits that are set in the written value
	ifr atomic.Uint32

	// interrupt master enable. only bit 0 is meaningful
	ime atomic.Bool

	// the interrupt check flags used by the BIOS halt routines. unlike IF this
	// is an ordinary memory location and the handler sets bits in it
	biosIF atomic.Uint32

	handler atomic.Pointer[Handler]

	// the halt line is signalled whenever any enabled interrupt is requested.
	// the channel has a capacity of one and is only written to if it is empty
	halt chan struct{}
}

// NewController is the preferred method of initialisation for the Controller type
func NewController() *Controller {
	return &Controller{
		halt: make(chan struct{}, 1),
	}
}

func (c *Controller) String() string {
	return fmt.Sprintf("ime=%v ie=%v if=%v bios_if=%v", c.IME(), c.IE(), c.IF(), c.BIOSIF())
}

// Reset all registers. any pending wake signal is discarded
func (c *Controller) Reset() {
	c.ime.Store(false)
	c.ie.Store(0)
	c.ifr.Store(0)
	c.biosIF.Store(0)
	select {
	case <-c.halt:
	default:
	}
}

// SetHandler registers the interrupt service routine. a nil handler means
// that interrupts are not serviced even when enabled
func (c *Controller) SetHandler(h Handler) {
	if h == nil {
		c.handler.Store(nil)
		return
	}
	c.handler.Store(&h)
}

// SetIME sets the interrupt master enable
func (c *Controller) SetIME(enable bool) {
	c.ime.Store(enable)
}

// IME returns the state of the interrupt master enable
func (c *Controller) IME() bool {
	return c.ime.Load()
}

// SetIE writes the interrupt enable register
func (c *Controller) SetIE(f Flags) {
	c.ie.Store(uint32(f & mask))
}

// IE reads the interrupt enable register
func (c *Controller) IE() Flags {
	return Flags(c.ie.Load())
}

// IF reads the interrupt request register
func (c *Controller) IF() Flags {
	return Flags(c.ifr.Load())
}

// Acknowledge writes to the IF register. bits set in the value are cleared in
// the register. bits that are not set are left unchanged
func (c *Controller) Acknowledge(f Flags) {
	c.ifr.And(^uint32(f))
}

// BIOSIF reads the BIOS interrupt check flags
func (c *Controller) BIOSIF() Flags {
	return Flags(c.biosIF.Load())
}

// AcknowledgeBIOS sets the bits in the BIOS interrupt check flags. this is
// the second stage of interrupt acknowledgement and is done by the handler
func (c *Controller) AcknowledgeBIOS(f Flags) {
	c.biosIF.Or(uint32(f & mask))
}

// TakeBIOS clears the specified bits in the BIOS interrupt check flags and
// returns true if any of them were set
func (c *Controller) TakeBIOS(f Flags) bool {
	return Flags(c.biosIF.And(^uint32(f)))&f != 0
}

// Pending returns the interrupts that are both enabled and requested
func (c *Controller) Pending() Flags {
	return c.IE() & c.IF()
}

// Request is called by a peripheral when it wants to raise an interrupt. the
// request is recorded in IF and if the source is enabled in IE then the halt
// line is signalled. if the master enable is set the handler is called before
// the halt line is signalled
//
// Request is the interrupt context. it must be called from a single goroutine
func (c *Controller) Request(f Flags) {
	c.ifr.Or(uint32(f & mask))

	pending := c.Pending()
	if pending == 0 {
		return
	}

	if c.ime.Load() {
		if h := c.handler.Load(); h != nil {
			(*h)(pending)
		}
	}

	select {
	case c.halt <- struct{}{}:
	default:
	}
}

// Halt parks the caller until an enabled interrupt has been requested. it is
// possible for Halt() to return because of an interrupt that happened before
// the call. callers should always check for the condition they are waiting
// for and call Halt() again if necessary
func (c *Controller) Halt() {
	<-c.halt
}

// HaltContext is the same as Halt() but returns early with the context's error
// if the context is cancelled
func (c *Controller) HaltContext(ctx context.Context) error {
	select {
	case <-c.halt:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
