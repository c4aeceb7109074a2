package monitor_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/jetsetilly/reticle/driver"
	"github.com/jetsetilly/reticle/hardware"
	"github.com/jetsetilly/reticle/logger"
	"github.com/jetsetilly/reticle/monitor"
	"github.com/jetsetilly/reticle/test"
)

func TestHardware(t *testing.T) {
	con := hardware.Create(nil)
	var s strings.Builder
	m := monitor.NewMonitor(&s, con)

	m.Hardware()
	test.ExpectSuccess(t, strings.Contains(s.String(), "VIDEO: mode=0"))
	test.ExpectSuccess(t, strings.Contains(s.String(), "blank=true"))
	test.ExpectSuccess(t, strings.Contains(s.String(), "reticle: pos=0,0"))
	test.ExpectSuccess(t, strings.Contains(s.String(), "KEYPAD: none"))
}

func TestSummary(t *testing.T) {
	con := hardware.Create(nil)
	d := driver.NewDriver(con, nil)
	test.DemandSuccess(t, d.Boot())
	d.Tick()

	var s strings.Builder
	m := monitor.NewMonitor(&s, con)
	m.Summary(d.Stats())
	test.ExpectSuccess(t, strings.Contains(s.String(), "frames=1 moves=0 rejected=0 stamps=0 position=(120,80)"))
}

func TestLogAndError(t *testing.T) {
	logger.Clear()
	logger.Log(logger.Allow, "test", "monitor entry")

	var s strings.Builder
	m := monitor.NewMonitor(&s, hardware.Create(nil))
	m.Log(10)
	test.ExpectSuccess(t, strings.Contains(s.String(), "test: monitor entry"))

	s.Reset()
	m.Error(errors.New("monitor error"))
	test.ExpectSuccess(t, strings.Contains(s.String(), "monitor error"))
}
