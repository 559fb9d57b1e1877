package sysinfo

import (
	"fmt"
	"strconv"
	"strings"
)

// packageManager is one entry of the package-count priority list.
type packageManager struct {
	name string
	// present reports whether this manager owns the system. Only the first
	// present manager is ever counted.
	present func(p Prober) bool
	// count is a shell pipeline that prints the number of installed packages.
	count string
}

func onPath(name string) func(Prober) bool {
	return func(p Prober) bool { return p.HasCommand(name) }
}

func fileExists(path string) func(Prober) bool {
	return func(p Prober) bool { return p.Exists(path) }
}

var packageManagers = []packageManager{
	{"pkg", onPath("pkg"), "pkg info -a 2>/dev/null | wc -l"},
	{"dpkg", fileExists("/var/lib/dpkg/status"), `dpkg-query -f '${binary:Package}\n' -W 2>/dev/null | wc -l`},
	{"rpm", fileExists("/var/lib/rpm"), "rpm -qa 2>/dev/null | wc -l"},
	{"pacman", onPath("pacman"), "pacman -Q 2>/dev/null | wc -l"},
	{"portage", onPath("emerge"), "qlist -I 2>/dev/null | wc -l"},
	{"xbps", onPath("xbps-query"), "xbps-query -l 2>/dev/null | wc -l"},
	{"apk", onPath("apk"), "apk list --installed 2>/dev/null | wc -l"},
}

// Packages returns "<count> (<manager>)" for the first package manager
// present on the system, or Unknown.
func (d *Detector) Packages() string {
	for _, pm := range packageManagers {
		if !pm.present(d.probe) {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(d.probe.Run(pm.count)))
		if err != nil || n <= 0 {
			d.log.Debug("package count failed", "manager", pm.name, "err", err)
			break
		}
		packages := fmt.Sprintf("%d (%s)", n, pm.name)
		d.found("packages", pm.name, packages)
		return packages
	}
	d.missed("packages", Unknown)
	return Unknown
}
