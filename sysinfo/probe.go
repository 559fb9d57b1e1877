package sysinfo

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"os/user"
	"path/filepath"
	"strings"
	"time"

	"github.com/klauspost/cpuid/v2"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
)

// Uname holds the fields of uname(2) that detectors care about.
type Uname struct {
	Sysname string
	Release string
	Machine string
}

// SysinfoStats mirrors the parts of the Linux sysinfo(2) record used for
// uptime and memory. RAM figures are in units of Unit bytes.
type SysinfoStats struct {
	Uptime    int64
	TotalRAM  uint64
	FreeRAM   uint64
	BufferRAM uint64
	Unit      uint32
}

// Prober is the probe layer every detector reads the host through. Command
// and file probes return "" for "no answer"; parameter probes return an ok
// flag. None of them return errors: a miss is a normal outcome.
type Prober interface {
	// Run executes cmd through sh -c and returns trimmed stdout. The exit
	// status is ignored.
	Run(cmd string) string
	// ReadFile returns the trimmed contents of path, or "".
	ReadFile(path string) string
	// ReadFirstLine returns the trimmed first line of path, or "".
	ReadFirstLine(path string) string
	Exists(path string) bool
	HasCommand(name string) bool
	// ResolveCommand finds name on PATH and follows symlinks to the real
	// executable.
	ResolveCommand(name string) (string, bool)

	Getenv(key string) string
	Hostname() (string, bool)
	CurrentUser() (string, bool)
	Getuid() int
	Getppid() int
	Now() time.Time

	Uname() (Uname, bool)
	Sysinfo() (SysinfoStats, bool)
	Sysctl(name string) (string, bool)
	SysctlUint(name string) (uint64, bool)
	SysctlBootTime() (time.Time, bool)

	HostUptime() (uint64, bool)
	VirtualMemory() (total, used uint64, ok bool)
	CPUBrand() (string, bool)
}

// HostProber is the Prober backed by the real operating system.
type HostProber struct {
	log *slog.Logger
}

// NewHostProber returns a HostProber that logs every probe at debug level.
// A nil logger discards the records.
func NewHostProber(logger *slog.Logger) *HostProber {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &HostProber{log: logger}
}

func (p *HostProber) miss(probe string, err error) {
	p.log.Debug("probe missed", "probe", probe, "err", err)
}

func (p *HostProber) Run(cmd string) string {
	// Output still returns whatever reached stdout when the command exits
	// non-zero, which is what a popen-style probe wants.
	out, err := exec.Command("sh", "-c", cmd).Output()
	text := strings.TrimSpace(string(out))
	if err != nil && text == "" {
		p.miss(cmd, fmt.Errorf("run: %w", err))
		return ""
	}
	p.log.Debug("probe", "cmd", cmd, "ok", text != "")
	return text
}

func (p *HostProber) ReadFile(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		p.miss(path, err)
		return ""
	}
	p.log.Debug("probe", "file", path, "ok", true)
	return strings.TrimSpace(string(data))
}

func (p *HostProber) ReadFirstLine(path string) string {
	f, err := os.Open(path)
	if err != nil {
		p.miss(path, err)
		return ""
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if scanner.Scan() {
		return strings.TrimSpace(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		p.miss(path, fmt.Errorf("scan: %w", err))
	}
	return ""
}

func (p *HostProber) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (p *HostProber) HasCommand(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

func (p *HostProber) ResolveCommand(name string) (string, bool) {
	path, err := exec.LookPath(name)
	if err != nil {
		p.miss("lookpath "+name, err)
		return "", false
	}
	target, err := filepath.EvalSymlinks(path)
	if err != nil {
		p.miss("readlink "+path, err)
		return "", false
	}
	return target, true
}

func (p *HostProber) Getenv(key string) string { return os.Getenv(key) }

func (p *HostProber) Hostname() (string, bool) {
	name, err := os.Hostname()
	if err != nil {
		p.miss("hostname", err)
		return "", false
	}
	return name, name != ""
}

func (p *HostProber) CurrentUser() (string, bool) {
	u, err := user.Current()
	if err != nil {
		p.miss("user", err)
		return "", false
	}
	return u.Username, u.Username != ""
}

func (p *HostProber) Getuid() int  { return os.Getuid() }
func (p *HostProber) Getppid() int { return os.Getppid() }

func (p *HostProber) Now() time.Time { return time.Now() }

func (p *HostProber) HostUptime() (uint64, bool) {
	secs, err := host.Uptime()
	if err != nil {
		p.miss("gopsutil host.Uptime", err)
		return 0, false
	}
	return secs, secs > 0
}

func (p *HostProber) VirtualMemory() (total, used uint64, ok bool) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		p.miss("gopsutil mem.VirtualMemory", err)
		return 0, 0, false
	}
	return vm.Total, vm.Used, vm.Total > 0
}

// CPUBrand asks gopsutil for the processor model and falls back to the
// CPUID brand string, which works without any OS support on x86.
func (p *HostProber) CPUBrand() (string, bool) {
	infos, err := cpu.Info()
	if err == nil && len(infos) > 0 && strings.TrimSpace(infos[0].ModelName) != "" {
		return strings.TrimSpace(infos[0].ModelName), true
	}
	if err != nil {
		p.miss("gopsutil cpu.Info", err)
	}
	brand := strings.TrimSpace(cpuid.CPU.BrandName)
	return brand, brand != ""
}
