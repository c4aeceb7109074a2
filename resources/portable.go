package resources

import (
	"os"
	"path/filepath"
)

const portableMarker = "portable.txt"

// the base path when running in portable mode. empty if the location of the
// executable could not be determined
var portablePath string

func init() {
	exe, err := os.Executable()
	if err != nil {
		return
	}
	portablePath = filepath.Join(filepath.Dir(exe), "Reticle_UserData")
}

// checkPortable returns true if the portable marker file is next to the
// executable
func checkPortable() bool {
	if portablePath == "" {
		return false
	}
	_, err := os.Stat(filepath.Join(filepath.Dir(portablePath), portableMarker))
	return err == nil
}
