//go:build windows

package sysinfo

import (
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"
)

const currentVersionKey = `SOFTWARE\Microsoft\Windows NT\CurrentVersion`

// Uname reports "Windows" and the full build, e.g. "10.0.22631.4317".
func (p *HostProber) Uname() (Uname, bool) {
	v := windows.RtlGetVersion()
	if v == nil || v.MajorVersion == 0 {
		p.miss("uname", errors.New("RtlGetVersion returned no version"))
		return Uname{}, false
	}
	release := fmt.Sprintf("%d.%d.%d", v.MajorVersion, v.MinorVersion, v.BuildNumber)
	if ubr, ok := p.registryInt(currentVersionKey, "UBR"); ok {
		release = fmt.Sprintf("%s.%d", release, ubr)
	}
	return Uname{Sysname: "Windows", Release: release, Machine: runtime.GOARCH}, true
}

func (p *HostProber) registryInt(path, name string) (uint64, bool) {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, path, registry.QUERY_VALUE)
	if err != nil {
		p.miss("registry", fmt.Errorf("open %s: %w", path, err))
		return 0, false
	}
	defer func() { _ = k.Close() }()

	value, _, err := k.GetIntegerValue(name)
	if err != nil {
		p.miss("registry", fmt.Errorf("read %s\\%s: %w", path, name, err))
		return 0, false
	}
	return value, true
}
