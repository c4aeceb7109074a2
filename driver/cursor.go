package driver

import (
	"fmt"

	"github.com/jetsetilly/reticle/hardware/spec"
)

// Position is a coordinate in the framebuffer
type Position struct {
	X, Y int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Add the step to the position. there is no wraparound
func (p Position) Add(s Step) Position {
	return Position{X: p.X + s.X, Y: p.Y + s.Y}
}

// Valid returns true if the position is inside the framebuffer
func (p Position) Valid() bool {
	return p.X >= 0 && p.X < spec.Width && p.Y >= 0 && p.Y < spec.Height
}

// Cursor holds the current cursor position. the position is always valid
type Cursor struct {
	pos Position
}

// NewCursor returns a cursor in the centre of the framebuffer
func NewCursor() *Cursor {
	return &Cursor{
		pos: Position{X: spec.Width / 2, Y: spec.Height / 2},
	}
}

// Position returns the current position of the cursor
func (c *Cursor) Position() Position {
	return c.pos
}

// Apply the step to the cursor. if the new position is inside the framebuffer
// it is committed and returned with a true value. otherwise the cursor is
// unchanged and the unchanged position is returned with a false value
//
// both axes are checked together. a diagonal step that leaves the framebuffer
// on one axis is rejected entirely, it is not clamped to the valid axis
func (c *Cursor) Apply(s Step) (Position, bool) {
	candidate := c.pos.Add(s)
	if !candidate.Valid() {
		return c.pos, false
	}
	c.pos = candidate
	return c.pos, true
}
