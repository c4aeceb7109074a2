package main

import (
	"testing"
	"time"

	"github.com/jetsetilly/reticle/test"
)

func TestLaunchFrameLimit(t *testing.T) {
	// the terminal frontend keeps the monitor off stdout
	opts := options{frontend: frontendTerminal, frames: 3}

	endDriver := make(chan bool)
	result := make(chan error, 1)
	go func() {
		result <- launch(endDriver, nil, opts)
	}()

	select {
	case err := <-result:
		test.ExpectSuccess(t, err)
	case <-time.After(2 * time.Second):
		t.Fatalf("launch did not stop after the frame limit")
	}
}

func TestLaunchEndChannel(t *testing.T) {
	opts := options{frontend: frontendTerminal}

	endDriver := make(chan bool, 1)
	result := make(chan error, 1)
	go func() {
		result <- launch(endDriver, nil, opts)
	}()

	endDriver <- true

	select {
	case err := <-result:
		test.ExpectSuccess(t, err)
	case <-time.After(2 * time.Second):
		t.Fatalf("launch did not stop when the end channel was written to")
	}
}
