// Package headless is a frontend that shows nothing. rendered frames are
// consumed and discarded so that the hardware never blocks
package headless

import (
	"github.com/jetsetilly/reticle/gui"
	"github.com/jetsetilly/reticle/logger"
)

// Launch the frontend. the function blocks until the endGui channel is
// written to. returns the number of frames that were received
func Launch(endGui chan bool, g *gui.GUI) (int, error) {
	var frames int
	for {
		select {
		case <-endGui:
			return frames, nil
		case <-g.SetImage:
			frames++
		case s := <-g.State:
			logger.Logf(logger.Allow, "headless", "state changed to %s", s)
		}
	}
}
