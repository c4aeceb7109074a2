package video

import (
	"fmt"
	"sync/atomic"
)

// DisplayStatus is the decoded form of the DISPSTAT register
type DisplayStatus struct {
	// status bits. these are set by the hardware and are read-only from the
	// point of view of the program
	VBlank bool
	HBlank bool
	VCount bool

	// interrupt enable bits
	VBlankIRQ bool
	HBlankIRQ bool
	VCountIRQ bool

	// the scanline that sets the VCount status bit
	VCountSetting uint8
}

// the status bits in the register
const statusMask = 0x0007

// Value encodes the fields into the raw register value
func (stat DisplayStatus) Value() uint16 {
	var v uint16
	bit := func(b bool, n uint) {
		if b {
			v |= 1 << n
		}
	}
	bit(stat.VBlank, 0)
	bit(stat.HBlank, 1)
	bit(stat.VCount, 2)
	bit(stat.VBlankIRQ, 3)
	bit(stat.HBlankIRQ, 4)
	bit(stat.VCountIRQ, 5)
	v |= uint16(stat.VCountSetting) << 8
	return v
}

// Set decodes a raw register value into the fields
func (stat *DisplayStatus) Set(data uint16) {
	stat.VBlank = data&0x0001 == 0x0001
	stat.HBlank = data&0x0002 == 0x0002
	stat.VCount = data&0x0004 == 0x0004
	stat.VBlankIRQ = data&0x0008 == 0x0008
	stat.HBlankIRQ = data&0x0010 == 0x0010
	stat.VCountIRQ = data&0x0020 == 0x0020
	stat.VCountSetting = uint8(data >> 8)
}

func (stat DisplayStatus) String() string {
	return fmt.Sprintf("vblank=%v irq=%v", stat.VBlank, stat.VBlankIRQ)
}

// StatusRegister holds the DISPSTAT register. the register is shared between
// the refresh generator, which sets the status bits and reads the interrupt
// enable bits, and the main loop, which writes the interrupt enable bits.
// access is therefore atomic
type StatusRegister struct {
	v atomic.Uint32
}

// Read the register
func (r *StatusRegister) Read() DisplayStatus {
	var stat DisplayStatus
	stat.Set(uint16(r.v.Load()))
	return stat
}

// Write the register. the status bits are read-only and are preserved
func (r *StatusRegister) Write(stat DisplayStatus) {
	for {
		o := r.v.Load()
		n := (o & statusMask) | (uint32(stat.Value()) &^ statusMask)
		if r.v.CompareAndSwap(o, n) {
			return
		}
	}
}

// SetVBlank is used by the hardware to set or clear the vblank status bit
func (r *StatusRegister) SetVBlank(set bool) {
	if set {
		r.v.Or(0x0001)
	} else {
		r.v.And(^uint32(0x0001))
	}
}
