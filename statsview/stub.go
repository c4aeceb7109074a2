//go:build !statsview

package statsview

import (
	"io"
)

// Launch does nothing without the statsview build constraint
func Launch(_ io.Writer) {
}

// Available returns true if a statsview is available to launch.
func Available() bool {
	return false
}
