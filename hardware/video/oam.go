package video

import (
	"encoding/binary"
	"fmt"
)

// NumObjects is the number of object slots in OAM
const NumObjects = 128

// size of OAM in bytes. each slot is eight bytes
const oamSize = NumObjects * 8

// OAM is the object attribute memory
type OAM struct {
	data [oamSize]uint8
}

// Label implements the Area interface
func (oam *OAM) Label() string {
	return "OAM"
}

// Reset OAM. zeroed memory means that every object is enabled at (0,0) using
// tile 0. in the bitmap modes tile 0 is inside the framebuffer and is never
// drawn so the zeroed objects are invisible
func (oam *OAM) Reset() {
	clear(oam.data[:])
}

// Read byte from OAM
func (oam *OAM) Read(idx uint16) (uint8, error) {
	if int(idx) >= len(oam.data) {
		return 0, fmt.Errorf("oam: read out of range (%#04x)", idx)
	}
	return oam.data[idx], nil
}

// Write the attributes to the object slot. the affine parameter word in the
// slot is preserved. there is no range check on the slot number because the
// presenter never writes to anything other than its reserved slot
func (oam *OAM) Write(slot int, attr ObjectAttributes) {
	w := attr.Words()
	b := oam.data[slot*8:]
	binary.LittleEndian.PutUint16(b[0:], w[0])
	binary.LittleEndian.PutUint16(b[2:], w[1])
	binary.LittleEndian.PutUint16(b[4:], w[2])
}

// Object returns the decoded attributes of the object in the slot
func (oam *OAM) Object(slot int) ObjectAttributes {
	b := oam.data[slot*8:]
	var attr ObjectAttributes
	attr.SetWords([3]uint16{
		binary.LittleEndian.Uint16(b[0:]),
		binary.LittleEndian.Uint16(b[2:]),
		binary.LittleEndian.Uint16(b[4:]),
	})
	return attr
}
