package driver

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jetsetilly/reticle/gui"
	"github.com/jetsetilly/reticle/hardware"
	"github.com/jetsetilly/reticle/hardware/video"
	"github.com/jetsetilly/reticle/test"
)

type faultyOAM struct{}

func (faultyOAM) Write(_ int, _ video.ObjectAttributes) {
	panic("bus error")
}

func TestDriverHalt(t *testing.T) {
	g := gui.NewGUI()
	con := hardware.Create(g)
	d := NewDriver(con, g)
	test.DemandSuccess(t, d.Boot())

	d.presenter = NewPresenter(faultyOAM{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	con.Start(ctx)

	result := make(chan error, 1)
	go func() {
		result <- d.Run(ctx)
	}()

	select {
	case s := <-g.State:
		test.ExpectEquality(t, s, gui.StateHalted)
	case <-time.After(2 * time.Second):
		t.Fatalf("driver did not halt")
	}

	// the halted driver does not return until the context is cancelled
	select {
	case <-result:
		t.Fatalf("halted driver returned before cancellation")
	case <-time.After(50 * time.Millisecond):
	}

	cancel()

	select {
	case err := <-result:
		test.ExpectSuccess(t, errors.Is(err, ErrHalt))
	case <-time.After(time.Second):
		t.Fatalf("driver did not stop")
	}
}
