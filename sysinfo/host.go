package sysinfo

import "strings"

// Hostname returns the network name of the host, or Unknown.
func (d *Detector) Hostname() string {
	if name, ok := d.probe.Hostname(); ok {
		d.found("hostname", "gethostname", name)
		return name
	}
	d.missed("hostname", Unknown)
	return Unknown
}

// Username returns the account name of the current user. $USER covers
// static binaries where the account lookup is unavailable.
func (d *Detector) Username() string {
	if name, ok := d.probe.CurrentUser(); ok {
		d.found("username", "getpwuid", name)
		return name
	}
	if name := d.probe.Getenv("USER"); name != "" {
		d.found("username", "$USER", name)
		return name
	}
	d.missed("username", Unknown)
	return Unknown
}

// Kernel returns "<sysname> <release>", e.g. "Linux 6.8.0-45-generic".
func (d *Detector) Kernel() string {
	uts, ok := d.probe.Uname()
	if !ok || uts.Sysname == "" {
		d.missed("kernel", Unknown)
		return Unknown
	}
	kernel := strings.TrimSpace(uts.Sysname + " " + uts.Release)
	d.found("kernel", "uname", kernel)
	return kernel
}
