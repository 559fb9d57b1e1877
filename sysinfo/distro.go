package sysinfo

import (
	"bufio"
	"strings"
)

const osReleasePath = "/etc/os-release"

// releaseMarker is a per-family file whose presence identifies a distro
// that predates os-release.
type releaseMarker struct {
	path string
	// identify returns the identifier and pretty name given a reader for
	// the marker file. It is only called once the file is known to exist.
	identify func(read func() string) (id, pretty string)
}

func fixedRelease(id, pretty string) func(func() string) (string, string) {
	return func(func() string) (string, string) { return id, pretty }
}

// releaseMarkers are checked in order; the first existing file wins.
var releaseMarkers = []releaseMarker{
	{"/etc/debian_version", fixedRelease("debian", "Debian GNU/Linux")},
	{"/etc/redhat-release", func(read func() string) (string, string) {
		content := read()
		var id string
		switch {
		case strings.Contains(content, "Fedora"):
			id = "fedora"
		case strings.Contains(content, "CentOS"):
			id = "centos"
		case strings.Contains(content, "Red Hat"):
			id = "rhel"
		}
		return id, CleanRelease(content)
	}},
	{"/etc/arch-release", fixedRelease("arch", "Arch Linux")},
	{"/etc/gentoo-release", fixedRelease("gentoo", "Gentoo Linux")},
	{"/etc/slackware-version", func(read func() string) (string, string) {
		return "slackware", CleanRelease(read())
	}},
}

// bsdKernels maps a lower-cased uname sysname to its identifier and the
// label used in the pretty name.
var bsdKernels = map[string]struct{ id, label string }{
	"freebsd":   {"freebsd", "FreeBSD"},
	"openbsd":   {"openbsd", "OpenBSD"},
	"netbsd":    {"netbsd", "NetBSD"},
	"dragonfly": {"dragonfly", "DragonFly BSD"},
}

// distroRenames maps raw identifiers to the names the art catalog uses.
// Identity entries are listed so the set of recognized ids is explicit.
var distroRenames = map[string]string{
	"linuxmint":   "mint",
	"popos":       "pop_os",
	"elementary":  "elementary",
	"zorin":       "zorin",
	"kali":        "kali",
	"parrot":      "parrot",
	"endeavouros": "endeavouros",
	"artixlinux":  "artix",
	"rocky":       "rocky",
	"almalinux":   "almalinux",
	"mxlinux":     "mx",
	"mx":          "mx",
}

// CanonicalDistroID applies the rename table and lower-cases the result.
func CanonicalDistroID(id string) string {
	if renamed, ok := distroRenames[id]; ok {
		id = renamed
	}
	return strings.ToLower(id)
}

// Distro returns the OS identifier and pretty name. The identifier is empty
// when nothing recognized the system.
func (d *Detector) Distro() (id, pretty string) {
	source := ""
	if content := d.probe.ReadFile(osReleasePath); content != "" {
		id, pretty = parseOSRelease(content)
		source = osReleasePath
	}

	if id == "" {
		for _, marker := range releaseMarkers {
			if !d.probe.Exists(marker.path) {
				continue
			}
			path := marker.path
			id, pretty = marker.identify(func() string { return d.probe.ReadFile(path) })
			source = path
			break
		}
	}

	// A BSD kernel always wins over release files.
	if uts, ok := d.probe.Uname(); ok {
		if bsd, ok := bsdKernels[strings.ToLower(uts.Sysname)]; ok {
			id = bsd.id
			pretty = strings.TrimSpace(bsd.label + " " + uts.Release)
			source = "uname"
		}
	}

	id = CanonicalDistroID(id)
	if pretty == "" {
		d.missed("os", UnknownSystem)
		return id, UnknownSystem
	}
	d.found("os", source, pretty)
	return id, pretty
}

// parseOSRelease extracts ID and PRETTY_NAME from os-release content.
// Keys such as ID_LIKE are ignored.
func parseOSRelease(content string) (id, pretty string) {
	scanner := bufio.NewScanner(strings.NewReader(content))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		switch key {
		case "PRETTY_NAME":
			pretty = CleanRelease(value)
		case "ID":
			id = CleanRelease(value)
		}
	}
	return id, pretty
}
