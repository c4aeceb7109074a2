package terminal

import (
	"image"
	"image/color"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/jetsetilly/reticle/gui"
	"github.com/jetsetilly/reticle/test"
)

func newSimulation(t *testing.T) (*Terminal, tcell.SimulationScreen, *gui.GUI) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	test.DemandSuccess(t, screen.Init())
	screen.SetSize(80, 24)
	g := gui.NewGUI()
	return NewTerminal(screen, g), screen, g
}

func TestDraw(t *testing.T) {
	term, screen, _ := newSimulation(t)

	img := image.NewRGBA(image.Rect(0, 0, 240, 160))
	img.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})
	term.img = img

	// 240 pixels in 80 columns and 160 pixels in 23 rows of two pixels each
	// gives a step of four
	test.ExpectEquality(t, term.step(), 4)

	img.SetRGBA(0, 4, color.RGBA{B: 255, A: 255})
	term.draw()

	r, _, style, _ := screen.GetContent(0, 0)
	test.ExpectEquality(t, r, halfBlock)
	test.ExpectEquality(t, style, tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(255, 0, 0)).
		Background(tcell.NewRGBColor(0, 0, 255)))

	// the image occupies 60 columns
	r, _, _, _ = screen.GetContent(59, 0)
	test.ExpectEquality(t, r, halfBlock)
	r, _, _, _ = screen.GetContent(60, 0)
	test.ExpectInequality(t, r, halfBlock)
}

func TestDrawHalted(t *testing.T) {
	term, screen, _ := newSimulation(t)
	term.state = gui.StateHalted
	term.draw()

	r, _, _, _ := screen.GetContent(0, 23)
	test.ExpectEquality(t, r, 'H')
}

func TestInput(t *testing.T) {
	term, _, g := newSimulation(t)
	now := time.Now()

	test.ExpectSuccess(t, term.handleInput(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), now))
	test.ExpectEquality(t, <-g.UserInput, gui.Input{Action: gui.StickRight, Data: true})

	// a repeated key is not sent again
	now = now.Add(releaseDelay / 2)
	test.ExpectSuccess(t, term.handleInput(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), now))
	test.ExpectEquality(t, len(g.UserInput), 0)

	// the key is held until the release delay has elapsed since the last repeat
	term.releaseKeys(now.Add(releaseDelay / 2))
	test.ExpectEquality(t, len(g.UserInput), 0)
	term.releaseKeys(now.Add(releaseDelay))
	test.ExpectEquality(t, <-g.UserInput, gui.Input{Action: gui.StickRight, Data: false})

	test.ExpectSuccess(t, term.handleInput(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), now))
	test.ExpectEquality(t, <-g.UserInput, gui.Input{Action: gui.StickButtonA, Data: true})

	// unmapped keys are ignored
	test.ExpectSuccess(t, term.handleInput(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), now))
	test.ExpectEquality(t, len(g.UserInput), 0)

	test.ExpectFailure(t, term.handleInput(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), now))
}
