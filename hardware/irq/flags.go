package irq

import (
	"fmt"
	"strings"
)

// Flags is the bit layout shared by the IE, IF and BIOS_IF registers. a set
// bit in IE enables the corresponding interrupt source; a set bit in IF means
// that the source has raised an interrupt that has not yet been acknowledged
type Flags uint16

// list of interrupt sources
const (
	VBlank  Flags = 1 << 0
	HBlank  Flags = 1 << 1
	VCount  Flags = 1 << 2
	Timer0  Flags = 1 << 3
	Timer1  Flags = 1 << 4
	Timer2  Flags = 1 << 5
	Timer3  Flags = 1 << 6
	Serial  Flags = 1 << 7
	DMA0    Flags = 1 << 8
	DMA1    Flags = 1 << 9
	DMA2    Flags = 1 << 10
	DMA3    Flags = 1 << 11
	Keypad  Flags = 1 << 12
	GamePak Flags = 1 << 13
)

// mask of bits that are meaningful in the registers. bits 14 and 15 are unused
const mask Flags = 0x3fff

var names = [...]string{
	"vblank", "hblank", "vcount",
	"timer0", "timer1", "timer2", "timer3",
	"serial",
	"dma0", "dma1", "dma2", "dma3",
	"keypad", "gamepak",
}

// VBlank returns true if the VBlank bit is set
func (f Flags) VBlank() bool {
	return f&VBlank == VBlank
}

// WithVBlank returns a copy of the flags with the VBlank bit set or cleared
func (f Flags) WithVBlank(set bool) Flags {
	return f.With(VBlank, set)
}

// With returns a copy of the flags with the specified bits set or cleared
func (f Flags) With(bits Flags, set bool) Flags {
	if set {
		return (f | bits) & mask
	}
	return f &^ bits
}

// Has returns true if all of the specified bits are set
func (f Flags) Has(bits Flags) bool {
	return f&bits == bits
}

func (f Flags) String() string {
	var s strings.Builder
	for i, n := range names {
		if f&(1<<i) != 0 {
			if s.Len() > 0 {
				s.WriteString("|")
			}
			s.WriteString(n)
		}
	}
	if s.Len() == 0 {
		return "none"
	}
	return s.String()
}

// GoString returns the raw register value
func (f Flags) GoString() string {
	return fmt.Sprintf("%#04x", uint16(f))
}
