package main

import (
	"fmt"
	"os"

	"github.com/jetsetilly/reticle/gui"
)

const programName = "reticle"

func main() {
	opts, err := parseOptions(os.Args[1:])
	if err != nil {
		fmt.Printf("*** %s\n", err)
		os.Exit(10)
	}

	// buffered channels. this means we don't have to worry about the gui closing
	// before the driver and vice versa
	endGui := make(chan bool, 1)
	endDriver := make(chan bool, 1)

	// the driver result channel is buffered because we don't know the order
	// in which the gui and driver will end
	resultDriver := make(chan error, 1)

	g := gui.NewGUI()

	go func() {
		resultDriver <- launch(endDriver, g, opts)
		endGui <- true
	}()

	// the frontend runs on the main goroutine because some windowing systems
	// require it
	errGui := launchFrontend(endGui, g, opts)
	endDriver <- true

	var failed bool
	if errGui != nil {
		fmt.Printf("*** %s\n", errGui)
		failed = true
	}
	if err := <-resultDriver; err != nil {
		fmt.Printf("*** %s\n", err)
		failed = true
	}
	if failed {
		os.Exit(10)
	}
}
