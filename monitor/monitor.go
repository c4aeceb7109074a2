// Package monitor prints the state of the hardware and the driver. it is used
// by the headless frontend and for the summary printed when the program ends
package monitor

import (
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/reticle/driver"
	"github.com/jetsetilly/reticle/hardware"
	"github.com/jetsetilly/reticle/hardware/spec"
	"github.com/jetsetilly/reticle/logger"
	"github.com/jetsetilly/reticle/version"
)

// Monitor writes styled reports to an io.Writer
type Monitor struct {
	out    io.Writer
	con    *hardware.Console
	styles styles
}

// NewMonitor is the preferred method of initialisation for the Monitor type
func NewMonitor(out io.Writer, con *hardware.Console) *Monitor {
	return &Monitor{
		out:    out,
		con:    con,
		styles: newStyles(),
	}
}

func (m *Monitor) println(s string) {
	fmt.Fprintln(m.out, s)
}

// Title prints the application title
func (m *Monitor) Title() {
	m.println(m.styles.title.Render(version.Title()))
}

// Hardware prints the state of the display registers, the interrupt
// controller, the keypad and the reticle object
func (m *Monitor) Hardware() {
	m.println(m.styles.video.Render(m.con.Video.String()))
	m.println(m.styles.video.Render(fmt.Sprintf("reticle: %s",
		m.con.Video.OAM.Object(spec.ReticleSlot).String())))
	m.println(m.styles.irq.Render(fmt.Sprintf("IRQ: %s", m.con.IRQ.String())))
	m.println(m.styles.keypad.Render(m.con.Keypad.String()))
}

// Summary prints the driver counters
func (m *Monitor) Summary(stats driver.Stats) {
	m.println(m.styles.driver.Render(stats.String()))
	m.println(m.styles.driver.Render(fmt.Sprintf("vblanks generated: %d", m.con.Frames())))
}

// Log prints the most recent entries of the central logger
func (m *Monitor) Log(n int) {
	var s strings.Builder
	logger.Tail(&s, n)
	for _, l := range strings.Split(strings.TrimRight(s.String(), "\n"), "\n") {
		if l == "" {
			continue
		}
		m.println(m.styles.log.Render(l))
	}
}

// Error prints an error
func (m *Monitor) Error(err error) {
	m.println(m.styles.err.Render(err.Error()))
}
