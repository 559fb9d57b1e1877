package sysinfo

import (
	"path"
	"strconv"
	"strings"
)

// Terminal identifies the terminal emulator. Detection order:
//
//  1. $TERM_PROGRAM
//  2. the grandparent process: kfetch's parent is the shell, and the
//     shell's parent is normally the emulator
//  3. $TERM
func (d *Detector) Terminal() string {
	if term := d.probe.Getenv("TERM_PROGRAM"); term != "" {
		d.found("terminal", "$TERM_PROGRAM", term)
		return term
	}

	if shellPID := d.probe.Getppid(); shellPID > 0 {
		ppid := d.probe.Run("ps -o ppid= -p " + strconv.Itoa(shellPID))
		if pid, err := strconv.Atoi(strings.TrimSpace(ppid)); err == nil && pid > 0 {
			if comm := d.probe.Run("ps -o comm= -p " + strconv.Itoa(pid)); comm != "" {
				term := strings.TrimPrefix(path.Base(firstLine(comm)), "-")
				d.found("terminal", "ps", term)
				return term
			}
		}
	}

	if term := d.probe.Getenv("TERM"); term != "" {
		d.found("terminal", "$TERM", term)
		return term
	}
	d.missed("terminal", Unknown)
	return Unknown
}

// Desktop returns the desktop environment or window manager name, or
// NoDesktop on a bare console.
func (d *Detector) Desktop() string {
	for _, key := range []string{"XDG_CURRENT_DESKTOP", "DESKTOP_SESSION"} {
		if de := d.probe.Getenv(key); de != "" {
			d.found("desktop", "$"+key, de)
			return de
		}
	}
	d.missed("desktop", NoDesktop)
	return NoDesktop
}
