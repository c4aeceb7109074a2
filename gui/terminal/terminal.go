// Package terminal is a frontend for text terminals. each character cell
// shows two pixels of the display by using the upper half block character
// with different foreground and background colours
package terminal

import (
	"fmt"
	"image"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/jetsetilly/reticle/gui"
	"github.com/jetsetilly/reticle/logger"
	"github.com/jetsetilly/reticle/version"
)

const (
	// how often the screen is redrawn
	frameInterval = 16 * time.Millisecond

	// terminals do not report key releases. a key is released when no repeat
	// of the key has been seen for this duration
	releaseDelay = 150 * time.Millisecond
)

const halfBlock = '▀'

// Terminal is the tcell frontend
type Terminal struct {
	screen tcell.Screen
	g      *gui.GUI

	state gui.State
	img   *image.RGBA

	// time of the most recent press of each held action
	held map[gui.Action]time.Time
}

// NewTerminal is the preferred method of initialisation for the Terminal
// type. the screen must have been initialised
func NewTerminal(screen tcell.Screen, g *gui.GUI) *Terminal {
	return &Terminal{
		screen: screen,
		g:      g,
		state:  gui.StateRunning,
		held:   make(map[gui.Action]time.Time),
	}
}

// the scale factor that fits the image into the screen
func (t *Terminal) step() int {
	w, h := t.screen.Size()
	if w <= 0 || h <= 1 {
		return 0
	}

	// the bottom line is reserved for the status line
	h--

	b := t.img.Bounds()
	s := max((b.Dx()+w-1)/w, (b.Dy()+h*2-1)/(h*2), 1)
	return s
}

func colour(c [4]uint8) tcell.Color {
	return tcell.NewRGBColor(int32(c[0]), int32(c[1]), int32(c[2]))
}

func (t *Terminal) pixel(x, y int) [4]uint8 {
	b := t.img.Bounds()
	if y >= b.Max.Y {
		return [4]uint8{}
	}
	c := t.img.RGBAAt(x, y)
	return [4]uint8{c.R, c.G, c.B, c.A}
}

func (t *Terminal) draw() {
	t.screen.Clear()

	if t.img != nil {
		step := t.step()
		if step > 0 {
			b := t.img.Bounds()
			for cy := 0; cy*2*step < b.Dy(); cy++ {
				for cx := 0; cx*step < b.Dx(); cx++ {
					x := b.Min.X + cx*step
					y := b.Min.Y + cy*2*step
					style := tcell.StyleDefault.
						Foreground(colour(t.pixel(x, y))).
						Background(colour(t.pixel(x, y+step)))
					t.screen.SetContent(cx, cy, halfBlock, nil, style)
				}
			}
		}
	}

	t.drawStatus()
	t.screen.Show()
}

func (t *Terminal) drawStatus() {
	_, h := t.screen.Size()
	if h <= 0 {
		return
	}

	style := tcell.StyleDefault
	status := version.Short()
	if t.state == gui.StateHalted {
		style = style.Foreground(tcell.ColorRed).Reverse(true)
		status = "HALTED"
	}

	for i, r := range status {
		t.screen.SetContent(i, h-1, r, nil, style)
	}
}

var runeActions = map[rune]gui.Action{
	' ': gui.StickButtonA,
	'x': gui.StickButtonA,
	'z': gui.StickButtonB,
	'a': gui.ShoulderL,
	's': gui.ShoulderR,
}

var keyActions = map[tcell.Key]gui.Action{
	tcell.KeyLeft:       gui.StickLeft,
	tcell.KeyRight:      gui.StickRight,
	tcell.KeyUp:         gui.StickUp,
	tcell.KeyDown:       gui.StickDown,
	tcell.KeyEnter:      gui.Start,
	tcell.KeyBackspace2: gui.Select,
}

// handle a single event. returns false if the frontend should quit
func (t *Terminal) handleInput(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}

		var action gui.Action
		var ok bool
		if ev.Key() == tcell.KeyRune {
			action, ok = runeActions[ev.Rune()]
		} else {
			action, ok = keyActions[ev.Key()]
		}
		if !ok {
			return true
		}

		if _, held := t.held[action]; !held {
			t.g.PushInput(gui.Input{Action: action, Data: true})
		}
		t.held[action] = now

	case *tcell.EventResize:
		t.screen.Sync()
	}

	return true
}

// release any key that has not been repeated recently
func (t *Terminal) releaseKeys(now time.Time) {
	for action, last := range t.held {
		if now.Sub(last) >= releaseDelay {
			if t.g.PushInput(gui.Input{Action: action, Data: false}) {
				delete(t.held, action)
			}
		}
	}
}

// Run the frontend until the user quits or until the endGui channel is
// written to
func (t *Terminal) Run(endGui chan bool) {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)

	// PollEvent() returns nil once the screen has been finalised
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	for {
		select {
		case <-endGui:
			return
		case ev := <-events:
			if !t.handleInput(ev, time.Now()) {
				return
			}
		case img := <-t.g.SetImage:
			t.img = img
		case t.state = <-t.g.State:
			logger.Logf(logger.Allow, "terminal", "state changed to %s", t.state)
		case now := <-ticker.C:
			t.releaseKeys(now)
			t.draw()
		}
	}
}

// Launch the frontend on the controlling terminal. the function blocks until
// the user quits or until the endGui channel is written to
func Launch(endGui chan bool, g *gui.GUI) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	defer screen.Fini()

	NewTerminal(screen, g).Run(endGui)
	return nil
}
