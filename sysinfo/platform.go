package sysinfo

import "runtime"

// Platform is the OS family that gates which probe chain a detector runs.
// Exactly one Platform is active per process; it is chosen once at startup
// and handed to NewDetector.
type Platform int

const (
	Linux Platform = iota
	FreeBSD
	OpenBSD
	NetBSD
	DragonFly
	Other
)

var platformNames = [...]string{
	Linux:     "linux",
	FreeBSD:   "freebsd",
	OpenBSD:   "openbsd",
	NetBSD:    "netbsd",
	DragonFly: "dragonfly",
	Other:     "other",
}

// String returns the lower-case GOOS-style name of the platform.
func (p Platform) String() string {
	if p >= 0 && int(p) < len(platformNames) {
		return platformNames[p]
	}
	return "other"
}

// IsBSD reports whether the platform belongs to the BSD family.
func (p Platform) IsBSD() bool {
	switch p {
	case FreeBSD, OpenBSD, NetBSD, DragonFly:
		return true
	}
	return false
}

// PlatformFromGOOS maps a runtime.GOOS value to a Platform. Anything that is
// not Linux or one of the four BSDs is Other.
func PlatformFromGOOS(goos string) Platform {
	switch goos {
	case "linux", "android":
		return Linux
	case "freebsd":
		return FreeBSD
	case "openbsd":
		return OpenBSD
	case "netbsd":
		return NetBSD
	case "dragonfly":
		return DragonFly
	default:
		return Other
	}
}

// CurrentPlatform returns the Platform of the running binary.
func CurrentPlatform() Platform {
	return PlatformFromGOOS(runtime.GOOS)
}
