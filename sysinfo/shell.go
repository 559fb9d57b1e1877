package sysinfo

import (
	"bufio"
	"path"
	"strconv"
	"strings"
)

const passwdPath = "/etc/passwd"

// Shell returns the name of the user's login shell. When the name is the
// generic "sh" alias it is resolved to the interpreter it links to.
func (d *Detector) Shell() string {
	shellPath, source := d.probe.Getenv("SHELL"), "$SHELL"
	if shellPath == "" {
		shellPath, source = passwdShell(d.probe.ReadFile(passwdPath), d.probe.Getuid()), passwdPath
	}
	if shellPath == "" {
		d.missed("shell", Unknown)
		return Unknown
	}

	shell := path.Base(shellPath)
	if shell == "sh" {
		if target, ok := d.probe.ResolveCommand("sh"); ok {
			if name := path.Base(target); name != "" && name != "." && name != "sh" {
				shell, source = name, source+" -> "+target
			}
		}
	}
	d.found("shell", source, shell)
	return shell
}

// passwdShell returns the shell field of the passwd entry for uid.
func passwdShell(passwd string, uid int) string {
	if uid < 0 {
		return ""
	}
	want := strconv.Itoa(uid)
	scanner := bufio.NewScanner(strings.NewReader(passwd))
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		// name:password:uid:gid:gecos:home:shell
		fields := strings.Split(line, ":")
		if len(fields) < 7 || fields[2] != want {
			continue
		}
		return strings.TrimSpace(fields[6])
	}
	return ""
}
