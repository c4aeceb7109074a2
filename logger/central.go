package logger

import (
	"io"
)

// only allowing one central log for the entire application
var central *logger

// maximum number of entries in the central logger
const maxCentral = 256

func init() {
	central = newLogger(maxCentral)
}

// Log adds an entry to the central logger
func Log(perm Permission, tag, detail string) {
	if perm == Allow || perm.AllowLogging() {
		central.log(tag, detail)
	}
}

// Logf adds a formatted entry to the central logger
func Logf(perm Permission, tag, detail string, args ...any) {
	if perm == Allow || perm.AllowLogging() {
		central.logf(tag, detail, args...)
	}
}

// Clear all entries from central logger
func Clear() {
	central.clear()
}

// Write contents of central logger to io.Writer
func Write(output io.Writer) {
	central.write(output)
}

// Tail writes the last N entries to io.Writer
func Tail(output io.Writer, number int) {
	central.tail(output, number)
}

// SetEcho prints new log entries to io.Writer as they are added. a nil writer
// turns echoing off
func SetEcho(output io.Writer) {
	central.setEcho(output)
}
