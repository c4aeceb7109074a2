// Package ebiten is the windowed frontend. rendered frames from the hardware
// are drawn scaled to the window and keyboard and gamepad input is sent to
// the keypad
package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jetsetilly/reticle/gui"
	"github.com/jetsetilly/reticle/logger"
	"github.com/jetsetilly/reticle/version"
	input "github.com/quasilyte/ebitengine-input"
)

type windowGeometry struct {
	x, y int
	w, h int
}

func (g windowGeometry) valid() bool {
	return g.x >= 0 && g.y >= 0 && g.w > 0 && g.h > 0
}

type guiEbiten struct {
	g    *gui.GUI
	geom windowGeometry

	started bool
	endGui  chan bool

	state gui.State

	main *ebiten.Image

	// width/height of incoming image from the hardware. not to be confused
	// with window dimensions
	width  int
	height int

	// integer scaling of the image
	scale int

	inputHandler *input.Handler
	inputSystem  input.System
}

func (eg *guiEbiten) initialise() {
	eg.inputHandler = eg.inputSystem.NewHandler(uint8(0), keymap)
	eg.started = true
}

func (eg *guiEbiten) Update() error {
	if !eg.started {
		eg.initialise()
	}

	// deal with quit condition
	select {
	case <-eg.endGui:
		return ebiten.Termination
	default:
	}

	// handle user input
	err := eg.input()
	if err != nil {
		return err
	}

	// change state if necessary
	select {
	case eg.state = <-eg.g.State:
		logger.Logf(logger.Allow, "gui", "state changed to %s", eg.state)
	default:
	}

	// retrieve any pending images
	select {
	case img := <-eg.g.SetImage:
		if eg.main == nil || eg.main.Bounds() != img.Bounds() {
			eg.width = img.Bounds().Dx()
			eg.height = img.Bounds().Dy()
			eg.main = ebiten.NewImage(eg.width, eg.height)
		}
		eg.main.WritePixels(img.Pix)
	default:
	}

	return nil
}

func (eg *guiEbiten) Draw(screen *ebiten.Image) {
	if eg.main != nil {
		var op ebiten.DrawImageOptions
		op.GeoM.Scale(float64(eg.scale), float64(eg.scale))

		// the image is dimmed when the driver has halted
		if eg.state == gui.StateHalted {
			op.ColorScale.SetR(0.2)
			op.ColorScale.SetG(0.2)
			op.ColorScale.SetB(0.2)
			op.ColorScale.SetA(1.0)
		}

		screen.DrawImage(eg.main, &op)
	}

	eg.geom.x, eg.geom.y = ebiten.WindowPosition()
	eg.geom.w, eg.geom.h = ebiten.WindowSize()
}

func (eg *guiEbiten) Layout(width, height int) (int, int) {
	if eg.main != nil {
		return eg.width * eg.scale, eg.height * eg.scale
	}
	return width, height
}

// Launch the frontend. the function blocks until the window is closed or until
// the endGui channel is written to. must be called from the main goroutine
func Launch(endGui chan bool, g *gui.GUI, scale int) error {
	ebiten.SetWindowTitle(version.Title())
	ebiten.SetVsyncEnabled(true)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowPosition(10, 10)
	ebiten.SetTPS(ebiten.SyncWithFPS)

	eg := &guiEbiten{
		endGui: endGui,
		g:      g,
		state:  gui.StateRunning,
		scale:  max(scale, 1),
	}

	eg.inputSystem.Init(input.SystemConfig{
		DevicesEnabled: input.AnyDevice,
	})

	var err error

	eg.geom, err = onWindowOpen()
	if err != nil {
		logger.Log(logger.Allow, "gui", err.Error())
	}
	if eg.geom.valid() {
		ebiten.SetWindowPosition(eg.geom.x, eg.geom.y)
		ebiten.SetWindowSize(eg.geom.w, eg.geom.h)
	}

	defer func() {
		err := onWindowClose(eg.geom)
		if err != nil {
			logger.Log(logger.Allow, "gui", err.Error())
			return
		}
	}()

	return ebiten.RunGame(eg)
}
