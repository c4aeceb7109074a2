package version

import (
	"fmt"
	"runtime/debug"
	"sync"
)

// ApplicationName is the name to use when referring to the application
const ApplicationName = "Reticle"

// number is set by the linker for release builds
//
//	go build -ldflags "-X github.com/jetsetilly/reticle/version.number=v0.1"
var number string

// length of the revision hash in short strings
const shortRevision = 7

// Build describes how the running binary was built
type Build struct {
	// the release number or one of "unreleased" or "local". unreleased means
	// that the binary was built from a vcs checkout without a release number.
	// local means that there is no vcs information at all, which is normal
	// for "go run ."
	Version string

	// the vcs revision. empty if there is no vcs information
	Revision string

	// the working tree had uncommitted changes
	Modified bool

	// the binary has a release number
	Release bool
}

// revision returns the vcs revision, optionally shortened, with a "+dirty"
// suffix if the working tree was modified
func (b Build) revision(short bool) string {
	if b.Revision == "" {
		return "no revision"
	}
	r := b.Revision
	if short && len(r) > shortRevision {
		r = r[:shortRevision]
	}
	if b.Modified {
		r += "+dirty"
	}
	return r
}

// String returns the release number for release builds and the version and
// full revision otherwise
func (b Build) String() string {
	if b.Release {
		return b.Version
	}
	return fmt.Sprintf("%s %s", b.Version, b.revision(false))
}

func readBuild(info *debug.BuildInfo, ok bool, number string) Build {
	var b Build
	var vcs bool

	if ok {
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				b.Revision = s.Value
			case "vcs.modified":
				b.Modified = s.Value == "true"
			}
		}
	}

	switch {
	case number != "":
		b.Version = number
		b.Release = true
	case vcs:
		b.Version = "unreleased"
	default:
		b.Version = "local"
	}

	return b
}

var current = sync.OnceValue(func() Build {
	info, ok := debug.ReadBuildInfo()
	return readBuild(info, ok, number)
})

// Current returns the build information for the running binary
func Current() Build {
	return current()
}

// Title returns a string suitable for a window title or a banner
func Title() string {
	return title(Current())
}

func title(b Build) string {
	if b.Release {
		return fmt.Sprintf("%s %s", ApplicationName, b.Version)
	}
	return fmt.Sprintf("%s (%s %s)", ApplicationName, b.Version, b.revision(true))
}

// Short returns the application name and the shortest useful identifier for
// the build. used where space is limited
func Short() string {
	return short(Current())
}

func short(b Build) string {
	if b.Release {
		return fmt.Sprintf("%s %s", ApplicationName, b.Version)
	}
	return fmt.Sprintf("%s %s", ApplicationName, b.revision(true))
}
