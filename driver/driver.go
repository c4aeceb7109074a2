package driver

import (
	"context"
	"errors"
	"fmt"

	"github.com/jetsetilly/reticle/gui"
	"github.com/jetsetilly/reticle/hardware"
	"github.com/jetsetilly/reticle/hardware/spec"
	"github.com/jetsetilly/reticle/logger"
	"github.com/jetsetilly/reticle/startup"
)

// ErrHalt is the wrapping error for an unrecoverable fault in the main loop.
// once halted the driver does nothing until it is stopped
var ErrHalt = errors.New("halt")

// Stats are counters updated by the main loop
type Stats struct {
	Frames   int
	Moves    int
	Rejected int
	Stamps   int
	Position Position
}

func (s Stats) String() string {
	return fmt.Sprintf("frames=%d moves=%d rejected=%d stamps=%d position=%s",
		s.Frames, s.Moves, s.Rejected, s.Stamps, s.Position)
}

// Driver is the main loop of the demo
type Driver struct {
	con *hardware.Console
	g   *gui.GUI

	clock     *FrameClock
	sampler   *Sampler
	cursor    *Cursor
	presenter *Presenter
	plotter   *Plotter

	// the colour of the pixel plotted when the A button is pressed
	stamp spec.Colour

	stats Stats

	// the main loop stops after this many frames. zero is unlimited
	limit int
}

// NewDriver is the preferred method of initialisation for the Driver type. the
// GUI argument can be nil
func NewDriver(con *hardware.Console, g *gui.GUI) *Driver {
	d := &Driver{
		con:       con,
		g:         g,
		clock:     NewFrameClock(con.IRQ),
		sampler:   NewSampler(con.Keypad),
		cursor:    NewCursor(),
		presenter: NewPresenter(&con.Video.OAM),
		plotter:   NewPlotter(con.Video.Framebuffer()),
		stamp:     spec.Blue,
	}
	d.stats.Position = d.cursor.Position()
	return d
}

// Boot prepares the display and enables interrupts. Boot must be called
// exactly once before Run()
func (d *Driver) Boot() error {
	vid := d.con.Video

	logger.Log(logger.Allow, "driver", "set up display")
	startup.InitialiseDisplay(&vid.Control)

	logger.Log(logger.Allow, "driver", "register palette")
	RegisterPalette(&vid.ObjPalette)

	logger.Log(logger.Allow, "driver", "draw reticle")
	if err := startup.DrawReticle(&vid.VRAM); err != nil {
		return fmt.Errorf("driver: %w", err)
	}

	logger.Log(logger.Allow, "driver", "draw backdrop and caption")
	fb := vid.Framebuffer()
	if err := startup.DrawImage(fb); err != nil {
		return fmt.Errorf("driver: %w", err)
	}
	startup.DrawCaption(fb)

	logger.Log(logger.Allow, "driver", "enable interrupts")
	d.clock.Enable(&vid.Status)

	startup.EndBlank(&vid.Control)

	return nil
}

// SetFrameLimit sets the number of frames after which Run() returns. a value
// of zero or less means there is no limit. it is not safe to call while Run()
// is executing
func (d *Driver) SetFrameLimit(n int) {
	d.limit = max(n, 0)
}

// Tick runs one iteration of the main loop without waiting for the refresh
func (d *Driver) Tick() {
	d.stats.Frames++

	step, action := d.sampler.Sample()

	p, ok := d.cursor.Apply(step)
	if !ok {
		d.stats.Rejected++
		return
	}
	if step != (Step{}) {
		d.stats.Moves++
	}
	d.stats.Position = p

	d.presenter.Present(p)

	if action {
		d.plotter.Plot(p, d.stamp)
		d.stats.Stamps++
	}
}

// Run the main loop until the context is cancelled or until the frame limit
// has been reached
//
// an unexpected fault in the loop causes the driver to halt. the halted driver
// does nothing until the context is cancelled, at which point the fault is
// returned wrapped in ErrHalt
func (d *Driver) Run(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrHalt, r)
			logger.Log(logger.Allow, "driver", err.Error())
			if d.g != nil {
				d.g.PushState(gui.StateHalted)
			}
			<-ctx.Done()
		}
	}()

	logger.Log(logger.Allow, "driver", "start main loop")

	for {
		if err := d.clock.WaitForRefreshContext(ctx); err != nil {
			logger.Logf(logger.Allow, "driver", "main loop ended: %s", d.stats.String())
			return nil
		}
		d.Tick()
		d.con.Scanout()

		if d.limit > 0 && d.stats.Frames >= d.limit {
			logger.Logf(logger.Allow, "driver", "frame limit reached: %s", d.stats.String())
			return nil
		}
	}
}

// Stats returns a copy of the counters. it is not safe to call Stats() while
// Run() is executing
func (d *Driver) Stats() Stats {
	return d.stats
}
