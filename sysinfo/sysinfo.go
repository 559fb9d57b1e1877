// Package sysinfo detects host facts for kfetch. Each fact has its own
// detector that walks an ordered, platform-gated chain of probes and falls
// back to a sentinel when nothing answers. Detectors never fail.
package sysinfo

import "log/slog"

// ANSI color codes for terminal output formatting
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorBlue   = "\033[34m"
	ColorPurple = "\033[35m"
	ColorCyan   = "\033[36m"
	ColorWhite  = "\033[37m"
)

// Sentinels for facts that could not be determined.
const (
	Unknown       = "Unknown"
	UnknownSystem = "Unknown System"
	UnknownCPU    = "Unknown CPU"
	NoDesktop     = "None (TTY)"
)

// HostSnapshot is the full set of detected facts, one display-ready string
// per fact. It is built once by Detector.Collect and handed out by value.
type HostSnapshot struct {
	// DistroID is the canonical lower-case OS identifier used to pick
	// ASCII art ("arch", "mint", "freebsd"). Empty when unknown.
	DistroID string

	// OS is the human-readable OS name, or UnknownSystem.
	OS string

	Hostname string
	Username string

	// Kernel is "<sysname> <release>".
	Kernel string

	// Uptime is formatted by FormatUptime.
	Uptime string

	Shell    string
	Desktop  string
	Terminal string
	CPU      string
	GPU      string

	// Memory is "<used> MB / <total> MB".
	Memory string

	// Packages is "<count> (<manager>)".
	Packages string
}

// Detector runs the per-fact probe chains for one platform.
type Detector struct {
	probe    Prober
	platform Platform
	log      *slog.Logger
}

// NewDetector returns a Detector that reads the host through probe and runs
// the chains for platform. A nil logger discards log records.
func NewDetector(probe Prober, platform Platform, logger *slog.Logger) *Detector {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Detector{
		probe:    probe,
		platform: platform,
		log:      logger.With("platform", platform.String()),
	}
}

// Collect runs every detector in a fixed order and returns the snapshot.
// Detectors run one after another on the calling goroutine so the probe
// sequence is reproducible for a given host state.
func (d *Detector) Collect() HostSnapshot {
	var s HostSnapshot
	s.DistroID, s.OS = d.Distro()
	s.Hostname = d.Hostname()
	s.Username = d.Username()
	s.Kernel = d.Kernel()
	s.Uptime = d.Uptime()
	s.Shell = d.Shell()
	s.Desktop = d.Desktop()
	s.Terminal = d.Terminal()
	s.CPU = d.CPU()
	s.GPU = d.GPU()
	s.Memory = d.Memory()
	s.Packages = d.Packages()
	return s
}

// GetSystemInfo collects a snapshot of the running host.
// This is the main entry point for gathering all system details.
func GetSystemInfo(logger *slog.Logger) HostSnapshot {
	return NewDetector(NewHostProber(logger), CurrentPlatform(), logger).Collect()
}

// found logs which source answered for a fact.
func (d *Detector) found(fact, source, value string) {
	d.log.Debug("fact detected", "fact", fact, "source", source, "value", value)
}

// missed logs a fact that fell through to its sentinel.
func (d *Detector) missed(fact, sentinel string) {
	d.log.Debug("fact unknown", "fact", fact, "sentinel", sentinel)
}
