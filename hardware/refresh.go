package hardware

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/jetsetilly/reticle/hardware/irq"
	"github.com/jetsetilly/reticle/hardware/spec"
	"github.com/jetsetilly/reticle/hardware/video"
	"github.com/jetsetilly/reticle/logger"
)

// refresh generates the vblank signal once every refresh interval. the
// generator runs in its own goroutine and that goroutine is the interrupt
// context of the device
type refresh struct {
	stat *video.StatusRegister
	irq  *irq.Controller

	interval time.Duration
	vblank   time.Duration

	// a nudge causes the next vblank to happen immediately. the channel has a
	// capacity of one and a nudge is dropped if one is already pending
	nudge chan bool

	// number of vblanks generated
	frames atomic.Uint64
}

func newRefresh(stat *video.StatusRegister, ctrl *irq.Controller) *refresh {
	return &refresh{
		stat:     stat,
		irq:      ctrl,
		interval: spec.RefreshInterval,
		vblank:   spec.RefreshInterval * (spec.ScanlinesTotal - spec.ScanlinesVisible) / spec.ScanlinesTotal,
		nudge:    make(chan bool, 1),
	}
}

// run the generator until the context is cancelled
func (r *refresh) run(ctx context.Context) {
	tick := time.NewTicker(r.interval)
	defer tick.Stop()

	end := time.NewTimer(r.vblank)
	end.Stop()
	defer end.Stop()

	logger.Logf(logger.Allow, "refresh", "vblank every %v", r.interval)

	for {
		select {
		case <-ctx.Done():
			return
		case <-tick.C:
		case <-r.nudge:
		case <-end.C:
			r.stat.SetVBlank(false)
			continue
		}

		r.startVBlank()
		end.Reset(r.vblank)
	}
}

// the start of the vblank period. the status bit is always set but the
// interrupt is only requested if it is enabled in DISPSTAT
func (r *refresh) startVBlank() {
	r.frames.Add(1)
	r.stat.SetVBlank(true)
	if r.stat.Read().VBlankIRQ {
		r.irq.Request(irq.VBlank)
	}
}

// Nudge the generator so that the next vblank happens immediately
func (r *refresh) Nudge() {
	select {
	case r.nudge <- true:
	default:
	}
}
