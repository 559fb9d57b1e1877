// Package config holds kfetch's display settings: which facts to show and
// how to color them. Settings come from a key=value file and are then
// overridden by command-line flags.
package config

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// DefaultGap is the number of spaces between the logo and the info column.
const DefaultGap = 4

// Settings controls what the renderer prints. The detectors never read it.
type Settings struct {
	ShowArt      bool
	ShowColors   bool
	ShowUsername bool
	ShowHostname bool
	ShowOS       bool
	ShowKernel   bool
	ShowUptime   bool
	ShowPackages bool
	ShowShell    bool
	ShowDE       bool
	ShowTerminal bool
	ShowCPU      bool
	ShowGPU      bool
	ShowMemory   bool

	// ArtColor and TextColor are raw ANSI sequences. Empty means the
	// logo's own colors and the default label color.
	ArtColor  string
	TextColor string

	// Verbose enables debug logging of the probe chains on stderr.
	Verbose bool

	// Gap is the number of spaces between logo and info.
	Gap int

	extras map[string]string
}

// Default returns settings with every fact shown.
func Default() *Settings {
	return &Settings{
		ShowArt:      true,
		ShowColors:   true,
		ShowUsername: true,
		ShowHostname: true,
		ShowOS:       true,
		ShowKernel:   true,
		ShowUptime:   true,
		ShowPackages: true,
		ShowShell:    true,
		ShowDE:       true,
		ShowTerminal: true,
		ShowCPU:      true,
		ShowGPU:      true,
		ShowMemory:   true,
		Gap:          DefaultGap,
		extras:       map[string]string{},
	}
}

// DefaultPath returns the config file location under home.
func DefaultPath(home string) string {
	return filepath.Join(home, ".config", "kfetch.conf")
}

// Load reads settings from path. A missing file is not an error and yields
// Default().
func Load(path string) (*Settings, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("open config %s: %w", path, err)
	}
	defer f.Close()

	s, err := LoadFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return s, nil
}

// LoadFromReader parses key=value lines on top of Default().
func LoadFromReader(r io.Reader) (*Settings, error) {
	s := Default()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key, value = strings.TrimSpace(key), strings.TrimSpace(value)
		if key == "" {
			continue
		}
		s.set(key, value)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return s, nil
}

// showFlags maps config keys to the booleans they control. The CLI uses the
// same keys for its --no-* flags.
func (s *Settings) showFlags() map[string]*bool {
	return map[string]*bool{
		"show_art":      &s.ShowArt,
		"show_colors":   &s.ShowColors,
		"show_username": &s.ShowUsername,
		"show_hostname": &s.ShowHostname,
		"show_os":       &s.ShowOS,
		"show_kernel":   &s.ShowKernel,
		"show_uptime":   &s.ShowUptime,
		"show_packages": &s.ShowPackages,
		"show_shell":    &s.ShowShell,
		"show_de":       &s.ShowDE,
		"show_terminal": &s.ShowTerminal,
		"show_cpu":      &s.ShowCPU,
		"show_gpu":      &s.ShowGPU,
		"show_memory":   &s.ShowMemory,
	}
}

func (s *Settings) set(key, value string) {
	if flag, ok := s.showFlags()[key]; ok {
		*flag = parseBool(value)
		return
	}
	switch key {
	case "custom_art_color":
		s.ArtColor = ColorNameToCode(value)
	case "custom_text_color":
		s.TextColor = ColorNameToCode(value)
	case "verbose_output":
		s.Verbose = parseBool(value)
	default:
		s.extras[key] = value
	}
}

// Extra returns an unrecognized config value, or def when key is absent.
func (s *Settings) Extra(key, def string) string {
	if v, ok := s.extras[key]; ok {
		return v
	}
	return def
}

// ExtraBool is Extra parsed as a boolean.
func (s *Settings) ExtraBool(key string, def bool) bool {
	if v, ok := s.extras[key]; ok {
		return parseBool(v)
	}
	return def
}

// parseBool accepts true, 1 and yes in any case.
func parseBool(value string) bool {
	switch strings.ToLower(value) {
	case "true", "1", "yes":
		return true
	}
	return false
}
