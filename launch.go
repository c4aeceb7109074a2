package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jetsetilly/reticle/driver"
	"github.com/jetsetilly/reticle/gui"
	"github.com/jetsetilly/reticle/gui/ebiten"
	"github.com/jetsetilly/reticle/gui/headless"
	"github.com/jetsetilly/reticle/gui/terminal"
	"github.com/jetsetilly/reticle/hardware"
	"github.com/jetsetilly/reticle/logger"
	"github.com/jetsetilly/reticle/monitor"
	"github.com/jetsetilly/reticle/statsview"
)

func launchFrontend(endGui chan bool, g *gui.GUI, opts options) error {
	switch opts.frontend {
	case frontendTerminal:
		return terminal.Launch(endGui, g)
	case frontendHeadless:
		n, err := headless.Launch(endGui, g)
		logger.Logf(logger.Allow, "headless", "%d frames received", n)
		return err
	}
	return ebiten.Launch(endGui, g, opts.scale)
}

// number of log entries shown by the monitor when the driver has finished. the
// tail is not shown if the log has already been echoed
const logTail = 10

// launch the hardware and the driver. the function returns when the endDriver
// channel is written to, on an interrupt signal, or after the number of frames
// specified in the options
func launch(endDriver chan bool, g *gui.GUI, opts options) error {
	// the terminal frontend owns stdout so log echoing and the monitor are
	// disabled
	useStdout := opts.frontend != frontendTerminal

	if opts.log && useStdout {
		logger.SetEcho(os.Stdout)
		defer logger.SetEcho(nil)
	}

	if opts.stats {
		if statsview.Available() {
			statsview.Launch(os.Stdout)
		} else {
			logger.Log(logger.Allow, programName, "statsview not available in this build")
		}
	}

	con := hardware.Create(g)
	con.Reset(opts.random)

	d := driver.NewDriver(con, g)
	if err := d.Boot(); err != nil {
		return fmt.Errorf("%s: %w", programName, err)
	}

	d.SetFrameLimit(opts.frames)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT)
	defer signal.Stop(sig)

	go func() {
		select {
		case <-endDriver:
		case <-sig:
		case <-ctx.Done():
		}
		cancel()
	}()

	con.Start(ctx)
	err := d.Run(ctx)

	if useStdout {
		m := monitor.NewMonitor(os.Stdout, con)
		m.Title()
		m.Hardware()
		m.Summary(d.Stats())
		if !opts.log {
			m.Log(logTail)
		}
		if err != nil {
			m.Error(err)
		}
	}

	if err != nil {
		return fmt.Errorf("%s: %w", programName, err)
	}
	return nil
}
