// The wasm build of the demo. build with GOOS=js GOARCH=wasm and serve the
// resulting binary with the httpd program
package main

import (
	"context"
	"os"

	"github.com/jetsetilly/reticle/driver"
	"github.com/jetsetilly/reticle/gui"
	"github.com/jetsetilly/reticle/gui/ebiten"
	"github.com/jetsetilly/reticle/hardware"
	"github.com/jetsetilly/reticle/logger"
)

// the canvas is scaled by the browser so there is no need for a large scaling
// value
const scale = 2

func main() {
	// logger messages will be viewable in javascript log for WASM build
	logger.SetEcho(os.Stderr)

	g := gui.NewGUI()

	con := hardware.Create(g)
	con.Reset(true)

	d := driver.NewDriver(con, g)
	if err := d.Boot(); err != nil {
		logger.Log(logger.Allow, "wasm", err.Error())
		return
	}

	// the page is closed without any notice so the context is never cancelled
	ctx := context.Background()
	con.Start(ctx)
	go func() {
		err := d.Run(ctx)
		if err != nil {
			logger.Log(logger.Allow, "wasm", err.Error())
		}
	}()

	err := ebiten.Launch(nil, g, scale)
	if err != nil {
		logger.Log(logger.Allow, "wasm", err.Error())
	}
}
