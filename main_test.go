package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"kfetch/config"
	"kfetch/sysinfo"
)

var sampleSnapshot = sysinfo.HostSnapshot{
	DistroID: "arch",
	OS:       "Arch Linux",
	Hostname: "devbox",
	Username: "alice",
	Kernel:   "Linux 6.10.2-arch1-1",
	Uptime:   "1 hour, 0 min",
	Shell:    "zsh",
	Desktop:  "Hyprland",
	Terminal: "kitty",
	CPU:      "AMD Ryzen 7 5800X 8-Core Processor",
	GPU:      "AMD Navi 21",
	Memory:   "5120 MB / 32017 MB",
	Packages: "1024 (pacman)",
}

func TestGetVisibleWidth(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"plain", 5},
		{sysinfo.ColorCyan + "alice" + sysinfo.ColorReset, 5},
		{"\033[1;35mx\033[0m", 1},
		{"日本", 4},
		{"", 0},
	}
	for _, tc := range tests {
		if got := getVisibleWidth(tc.in); got != tc.want {
			t.Errorf("getVisibleWidth(%q) = %d; want %d", tc.in, got, tc.want)
		}
	}
}

func TestInfoLinesHonorsShowFlags(t *testing.T) {
	s := config.Default()
	s.ShowGPU = false
	s.ShowShell = false
	r := &renderer{settings: s}

	text := strings.Join(r.infoLines(sampleSnapshot), "\n")
	for _, want := range []string{"alice@devbox", "------------", "OS: Arch Linux", "Memory: 5120 MB / 32017 MB", "DE: Hyprland", "Packages: 1024 (pacman)"} {
		if !strings.Contains(text, want) {
			t.Errorf("info missing %q:\n%s", want, text)
		}
	}
	for _, unwanted := range []string{"GPU:", "Shell:", "\033["} {
		if strings.Contains(text, unwanted) {
			t.Errorf("info contains %q:\n%s", unwanted, text)
		}
	}
}

func TestInfoLinesHostnameOnly(t *testing.T) {
	s := config.Default()
	s.ShowUsername = false
	r := &renderer{settings: s}

	lines := r.infoLines(sampleSnapshot)
	if lines[1] != "devbox" || lines[2] != "------" {
		t.Fatalf("header = %q, %q", lines[1], lines[2])
	}
}

func TestInfoLinesCustomColors(t *testing.T) {
	s := config.Default()
	s.ArtColor = "\033[0;32m"
	s.TextColor = "\033[0;31m"
	r := &renderer{settings: s, colors: true}

	text := strings.Join(r.infoLines(sampleSnapshot), "\n")
	want := "\033[0;32mKernel" + sysinfo.ColorReset + ": \033[0;31mLinux 6.10.2-arch1-1" + sysinfo.ColorReset
	if !strings.Contains(text, want) {
		t.Fatalf("kernel line not colored as label=art, value=text:\n%q", text)
	}
}

func TestInfoLinesDefaultColors(t *testing.T) {
	r := &renderer{settings: config.Default(), colors: true}

	text := strings.Join(r.infoLines(sampleSnapshot), "\n")
	want := sysinfo.ColorBlue + "Kernel" + sysinfo.ColorReset + ": Linux 6.10.2-arch1-1\n"
	if !strings.Contains(text, want) {
		t.Fatalf("kernel line without overrides = %q", text)
	}
}

func TestLogoLines(t *testing.T) {
	s := config.Default()
	r := &renderer{settings: s}
	for _, line := range r.logoLines("debian") {
		if strings.Contains(line, "\033[") {
			t.Fatalf("colorless logo line has escapes: %q", line)
		}
	}

	s.ArtColor = "\033[0;32m"
	r.colors = true
	for _, line := range r.logoLines("debian") {
		if !strings.HasPrefix(line, s.ArtColor) || strings.Count(line, "\033[") != 2 {
			t.Fatalf("art color not applied: %q", line)
		}
	}

	s.ShowArt = false
	if got := r.logoLines("debian"); got != nil {
		t.Fatalf("logoLines with art off = %q", got)
	}
}

func TestDisplayAlignsColumns(t *testing.T) {
	var out bytes.Buffer
	s := config.Default()
	s.Gap = 2
	r := &renderer{out: &out, settings: s}

	logo := []string{"/\\", "\033[31m/__\\\033[0m"}
	r.display(logo, []string{"one", "two", "three"})

	want := "/\\    one\n\033[31m/__\\\033[0m  two\n      three\n"
	if out.String() != want {
		t.Fatalf("display =\n%q\nwant\n%q", out.String(), want)
	}
}

func TestDisplayWithoutLogo(t *testing.T) {
	var out bytes.Buffer
	r := &renderer{out: &out, settings: config.Default()}
	r.display(nil, []string{"a", "b"})
	if out.String() != "a\nb\n" {
		t.Fatalf("display = %q", out.String())
	}
}

func TestColorBar(t *testing.T) {
	bar := colorBar()
	if getVisibleWidth(bar) != 16*3 {
		t.Fatalf("colorBar width = %d", getVisibleWidth(bar))
	}
	if !strings.HasSuffix(bar, sysinfo.ColorReset) {
		t.Fatal("colorBar does not reset")
	}
}

func TestRunExitCodes(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"--definitely-not-a-flag"}, &stdout, &stderr); code != 2 {
		t.Errorf("unknown flag exit = %d; want 2", code)
	}
	if !strings.Contains(stderr.String(), "definitely-not-a-flag") || !strings.Contains(stderr.String(), "--no-memory") {
		t.Errorf("unknown flag stderr lacks error or usage: %q", stderr.String())
	}

	stderr.Reset()
	if code := run([]string{"--config", t.TempDir()}, &stdout, &stderr); code != 1 {
		t.Errorf("unreadable config exit = %d; want 1", code)
	}
	if !strings.Contains(stderr.String(), "kfetch:") {
		t.Errorf("stderr = %q", stderr.String())
	}

	if code := run([]string{"--help"}, &stdout, &stderr); code != 0 {
		t.Errorf("--help exit = %d; want 0", code)
	}
}

func TestRunPrintsFacts(t *testing.T) {
	var stdout, stderr bytes.Buffer
	args := []string{"--config", filepath.Join(t.TempDir(), "kfetch.conf"), "--no-art", "--no-gpu"}
	if code := run(args, &stdout, &stderr); code != 0 {
		t.Fatalf("run exit = %d, stderr: %s", code, stderr.String())
	}
	out := stdout.String()
	for _, want := range []string{"OS: ", "Kernel: ", "Memory: "} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "GPU: ") || strings.Contains(out, "\033[") {
		t.Errorf("unexpected GPU line or color escapes:\n%s", out)
	}
}
