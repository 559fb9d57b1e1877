// Package main provides the kfetch command-line tool for displaying system
// information next to an ASCII logo of the running operating system.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"regexp"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/pflag"

	"kfetch/ascii"
	"kfetch/config"
	"kfetch/sysinfo"
)

// ansiRegex matches ANSI escape codes for removal/measurement purposes
var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// main is the entry point for the kfetch application.
// It loads settings, collects the host snapshot, selects the ASCII art,
// and displays them side-by-side in the terminal.
func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes kfetch and returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	flags, err := config.ParseArgs(args, stderr)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	path := flags.ConfigPath
	if path == "" {
		if home, err := os.UserHomeDir(); err == nil {
			path = config.DefaultPath(home)
		}
	}
	settings := config.Default()
	if path != "" {
		if settings, err = config.Load(path); err != nil {
			fmt.Fprintf(stderr, "kfetch: %v\n", err)
			return 1
		}
	}
	flags.Apply(settings)

	logger := newLogger(stderr, settings.Verbose)
	logger.Debug("settings loaded", "path", path)

	info := sysinfo.GetSystemInfo(logger)
	if !ascii.HasLogo(info.DistroID) {
		logger.Debug("no dedicated logo, using generic", "distro", info.DistroID)
	}

	r := &renderer{
		out:      stdout,
		settings: settings,
		colors:   settings.ShowColors && colorsSupported(stdout),
	}
	r.display(r.logoLines(info.DistroID), r.infoLines(info))
	return 0
}

// newLogger returns a text logger on w. Verbose runs log every probe.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// colorsSupported reports whether w is a terminal and NO_COLOR is unset.
func colorsSupported(w io.Writer) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// renderer lays out the logo and the info column.
type renderer struct {
	out      io.Writer
	settings *config.Settings
	colors   bool
}

// logoLines returns the logo for distroID with the configured art color
// applied, or nil when art is disabled.
func (r *renderer) logoLines(distroID string) []string {
	if !r.settings.ShowArt {
		return nil
	}
	logo := ascii.GetLogo(distroID)
	out := make([]string, len(logo))
	for i, line := range logo {
		switch {
		case !r.colors:
			out[i] = stripANSI(line)
		case r.settings.ArtColor != "":
			out[i] = r.colorize(stripANSI(line), r.settings.ArtColor)
		default:
			out[i] = line
		}
	}
	return out
}

// infoLines builds the info column from the snapshot, honoring the
// per-fact show flags.
func (r *renderer) infoLines(info sysinfo.HostSnapshot) []string {
	s := r.settings
	lines := []string{""}

	var head []string
	if s.ShowUsername {
		head = append(head, r.colorize(info.Username, sysinfo.ColorCyan))
	}
	if s.ShowHostname {
		head = append(head, r.colorize(info.Hostname, sysinfo.ColorCyan))
	}
	if len(head) > 0 {
		title := strings.Join(head, "@")
		// Use visible width (stripping ANSI) so colors don't break alignment
		lines = append(lines, title, strings.Repeat("-", getVisibleWidth(title)))
	}

	fields := []struct {
		show  bool
		label string
		value string
	}{
		{s.ShowOS, "OS", info.OS},
		{s.ShowKernel, "Kernel", info.Kernel},
		{s.ShowUptime, "Uptime", info.Uptime},
		{s.ShowPackages, "Packages", info.Packages},
		{s.ShowShell, "Shell", info.Shell},
		{s.ShowDE, "DE", info.Desktop},
		{s.ShowTerminal, "Terminal", info.Terminal},
		{s.ShowCPU, "CPU", info.CPU},
		{s.ShowGPU, "GPU", info.GPU},
		{s.ShowMemory, "Memory", info.Memory},
	}
	// Labels follow the art color; values take the text color when set.
	labelColor := sysinfo.ColorBlue
	if s.ArtColor != "" {
		labelColor = s.ArtColor
	}
	for _, f := range fields {
		if f.show {
			lines = append(lines, fmt.Sprintf("%s: %s", r.colorize(f.label, labelColor), r.colorize(f.value, s.TextColor)))
		}
	}

	if r.colors {
		lines = append(lines, "", colorBar())
	}
	return append(lines, "")
}

// display renders the ASCII art logo and system information side-by-side.
//
// Parameters:
//   - logo: Slice of strings representing the ASCII art, one string per line
//   - infoLines: Formatted information lines
//
// Logo and info are top-aligned so the art stays anchored when info lines
// change length.
func (r *renderer) display(logo, infoLines []string) {
	if len(logo) == 0 {
		for _, line := range infoLines {
			fmt.Fprintln(r.out, line)
		}
		return
	}

	// Calculate logo width for proper spacing (excluding ANSI codes)
	logoWidth := 0
	for _, line := range logo {
		if w := getVisibleWidth(line); w > logoWidth {
			logoWidth = w
		}
	}

	maxLines := len(logo)
	if len(infoLines) > maxLines {
		maxLines = len(infoLines)
	}

	gap := strings.Repeat(" ", r.settings.Gap)
	for i := 0; i < maxLines; i++ {
		var logoLine, infoLine string

		if i < len(logo) {
			logoLine = logo[i]
			if pad := logoWidth - getVisibleWidth(logoLine); pad > 0 {
				logoLine += strings.Repeat(" ", pad)
			}
		} else {
			logoLine = strings.Repeat(" ", logoWidth)
		}

		if i < len(infoLines) {
			infoLine = infoLines[i]
		}

		fmt.Fprintln(r.out, strings.TrimRight(logoLine+gap+infoLine, " "))
	}
}

// colorize wraps text with an ANSI color code, or returns it unchanged when
// colors are off.
func (r *renderer) colorize(text, color string) string {
	if !r.colors || color == "" {
		return text
	}
	return color + text + sysinfo.ColorReset
}

// getVisibleWidth calculates the visible width of a string excluding ANSI escape codes.
//
// Parameters:
//   - s: The string to measure (may contain ANSI color codes)
//
// Returns:
//   - The number of terminal columns (wide runes count double)
func getVisibleWidth(s string) int {
	return runewidth.StringWidth(stripANSI(s))
}

func stripANSI(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}

// colorBar generates a visual representation of available terminal colors.
//
// Returns:
//   - A string containing colored blocks representing the 16 basic terminal colors
func colorBar() string {
	var bar strings.Builder
	// 40-47 standard, 100-107 bright backgrounds
	for bg := 40; bg <= 47; bg++ {
		fmt.Fprintf(&bar, "\033[%dm   ", bg)
	}
	for bg := 100; bg <= 107; bg++ {
		fmt.Fprintf(&bar, "\033[%dm   ", bg)
	}
	bar.WriteString(sysinfo.ColorReset)
	return bar.String()
}
