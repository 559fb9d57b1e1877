package sysinfo

import "time"

// fakeProber answers probes from canned maps. Anything not listed misses.
type fakeProber struct {
	commands map[string]string // Run: full command line -> output
	files    map[string]string // ReadFile / ReadFirstLine / Exists
	paths    map[string]bool   // HasCommand
	resolved map[string]string // ResolveCommand
	env      map[string]string
	sysctls  map[string]string
	uints    map[string]uint64

	hostname string
	user     string
	uid      int
	ppid     int
	now      time.Time

	uname      *Uname
	sysinfo    *SysinfoStats
	bootTime   time.Time
	hostUptime uint64
	vmTotal    uint64
	vmUsed     uint64
	cpuBrand   string

	ran []string
}

func newFakeProber() *fakeProber {
	return &fakeProber{
		commands: map[string]string{},
		files:    map[string]string{},
		paths:    map[string]bool{},
		resolved: map[string]string{},
		env:      map[string]string{},
		sysctls:  map[string]string{},
		uints:    map[string]uint64{},
		uid:      -1,
	}
}

func (f *fakeProber) Run(cmd string) string {
	f.ran = append(f.ran, cmd)
	return f.commands[cmd]
}

func (f *fakeProber) ReadFile(path string) string { return f.files[path] }

func (f *fakeProber) ReadFirstLine(path string) string { return firstLine(f.files[path]) }

func (f *fakeProber) Exists(path string) bool {
	_, ok := f.files[path]
	return ok
}

func (f *fakeProber) HasCommand(name string) bool { return f.paths[name] }

func (f *fakeProber) ResolveCommand(name string) (string, bool) {
	target, ok := f.resolved[name]
	return target, ok
}

func (f *fakeProber) Getenv(key string) string { return f.env[key] }

func (f *fakeProber) Hostname() (string, bool)    { return f.hostname, f.hostname != "" }
func (f *fakeProber) CurrentUser() (string, bool) { return f.user, f.user != "" }
func (f *fakeProber) Getuid() int                 { return f.uid }
func (f *fakeProber) Getppid() int                { return f.ppid }
func (f *fakeProber) Now() time.Time              { return f.now }

func (f *fakeProber) Uname() (Uname, bool) {
	if f.uname == nil {
		return Uname{}, false
	}
	return *f.uname, true
}

func (f *fakeProber) Sysinfo() (SysinfoStats, bool) {
	if f.sysinfo == nil {
		return SysinfoStats{}, false
	}
	return *f.sysinfo, true
}

func (f *fakeProber) Sysctl(name string) (string, bool) {
	v, ok := f.sysctls[name]
	return v, ok
}

func (f *fakeProber) SysctlUint(name string) (uint64, bool) {
	v, ok := f.uints[name]
	return v, ok
}

func (f *fakeProber) SysctlBootTime() (time.Time, bool) { return f.bootTime, !f.bootTime.IsZero() }

func (f *fakeProber) HostUptime() (uint64, bool) { return f.hostUptime, f.hostUptime > 0 }

func (f *fakeProber) VirtualMemory() (uint64, uint64, bool) {
	return f.vmTotal, f.vmUsed, f.vmTotal > 0
}

func (f *fakeProber) CPUBrand() (string, bool) { return f.cpuBrand, f.cpuBrand != "" }

var allPlatforms = []Platform{Linux, FreeBSD, OpenBSD, NetBSD, DragonFly, Other}
