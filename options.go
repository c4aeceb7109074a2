package main

import (
	"flag"
	"fmt"
	"strings"
)

// list of frontends
const (
	frontendEbiten   = "ebiten"
	frontendTerminal = "terminal"
	frontendHeadless = "headless"
)

type options struct {
	frontend string

	// number of frames to run for before quitting. zero means run until the
	// frontend is closed
	frames int

	// echo log entries to stdout
	log bool

	// launch the statsview server
	stats bool

	// integer scaling of the ebiten window
	scale int

	// fill memory with random values on reset
	random bool
}

func parseOptions(args []string) (options, error) {
	var opts options

	flgs := flag.NewFlagSet(programName, flag.ExitOnError)
	flgs.StringVar(&opts.frontend, "frontend", frontendEbiten, "frontend to use: ebiten, terminal or headless")
	flgs.IntVar(&opts.frames, "frames", 0, "number of frames to run before quitting (zero is unlimited)")
	flgs.BoolVar(&opts.log, "log", false, "echo log entries to stdout")
	flgs.BoolVar(&opts.stats, "stats", false, "launch statsview server (requires statsview build tag)")
	flgs.IntVar(&opts.scale, "scale", 3, "scaling of the display in the ebiten frontend")
	flgs.BoolVar(&opts.random, "random", false, "fill memory with random values on reset")
	err := flgs.Parse(args)
	if err != nil {
		return options{}, err
	}

	if len(flgs.Args()) > 0 {
		return options{}, fmt.Errorf("too many arguments")
	}

	opts.frontend = strings.ToLower(opts.frontend)
	switch opts.frontend {
	case frontendEbiten, frontendTerminal, frontendHeadless:
	default:
		return options{}, fmt.Errorf("unknown frontend (%s)", opts.frontend)
	}

	if opts.frames < 0 {
		return options{}, fmt.Errorf("frames must not be negative")
	}
	if opts.scale < 1 {
		return options{}, fmt.Errorf("scale must be at least one")
	}

	// a headless run without a frame limit would never end
	if opts.frontend == frontendHeadless && opts.frames == 0 {
		opts.frames = 600
	}

	return opts, nil
}
