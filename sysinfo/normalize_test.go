package sysinfo

import (
	"regexp"
	"strings"
	"testing"
)

var sampleGPUStrings = []string{
	"NVIDIA Corporation GA102 [GeForce RTX 3080] (rev a1)",
	"Advanced Micro Devices, Inc. [AMD/ATI] Navi 21 [Radeon RX 6800/6800 XT / 6900 XT] (rev c1)",
	"Intel Corporation UHD Graphics 620 (rev 07)",
	"vendor 'Intel Corporation' device 'HD Graphics 530'",
	"'Advanced Micro Devices, Inc. [AMD/ATI]' 'Ellesmere [Radeon RX 470/480/570/570X/580/580X/590]'",
	"\"vendor device X\"",
	"Advanced Micro [x]Devices",
	"  Mesa Intel(R)   Xe Graphics (TGL GT2)  ",
	"stray ] bracket [ here",
	"NVIDIA GeForce RTX 4090",
	"",
}

func TestNormalizeGPU(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"NVIDIA Corporation GA102 [GeForce RTX 3080] (rev a1)", "NVIDIA GA102 (rev a1)"},
		{"Advanced Micro Devices, Inc. [AMD/ATI] Navi 21 [Radeon RX 6800/6800 XT / 6900 XT] (rev c1)", "AMD Navi 21 (rev c1)"},
		{"Intel Corporation UHD Graphics 620 (rev 07)", "Intel UHD Graphics 620 (rev 07)"},
		{"vendor 'Intel Corporation' device 'HD Graphics 530'", "Intel device HD Graphics 530"},
		{"Advanced Micro [x]Devices", "AMD"},
		{"\t Mesa   Intel(R)\tXe  ", "Mesa Intel(R) Xe"},
		{UnknownGPU, UnknownGPU},
	}
	for _, tc := range tests {
		if got := NormalizeGPU(tc.in); got != tc.want {
			t.Errorf("NormalizeGPU(%q) = %q; want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeGPUIdempotent(t *testing.T) {
	for _, in := range sampleGPUStrings {
		once := NormalizeGPU(in)
		twice := NormalizeGPU(once)
		if once != twice {
			t.Errorf("NormalizeGPU not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestNormalizeGPURemovesPunctuation(t *testing.T) {
	doubleSpace := regexp.MustCompile(`\s{2,}`)
	for _, in := range sampleGPUStrings {
		got := NormalizeGPU(in)
		if strings.ContainsAny(got, `'",[]`) {
			t.Errorf("NormalizeGPU(%q) = %q still contains quote, comma or bracket", in, got)
		}
		if doubleSpace.MatchString(got) {
			t.Errorf("NormalizeGPU(%q) = %q has a whitespace run", in, got)
		}
		if got != strings.TrimSpace(got) {
			t.Errorf("NormalizeGPU(%q) = %q is not trimmed", in, got)
		}
	}
}

func TestCleanRelease(t *testing.T) {
	tests := []struct{ in, want string }{
		{`"Ubuntu 24.04.1 LTS"`, "Ubuntu 24.04.1 LTS"},
		{`'arch'`, "arch"},
		{"Fedora release 40 (Forty)\n", "Fedora release 40 (Forty)"},
		{`"Tom's   Linux 1.0"`, "Tom's Linux 1.0"},
		{`Bob's "Edition"`, `Bob's "Edition"`},
		{`"unbalanced'`, `"unbalanced'`},
		{`"`, `"`},
	}
	for _, tc := range tests {
		if got := CleanRelease(tc.in); got != tc.want {
			t.Errorf("CleanRelease(%q) = %q; want %q", tc.in, got, tc.want)
		}
	}
}
