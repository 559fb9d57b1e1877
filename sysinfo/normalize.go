package sysinfo

import (
	"regexp"
	"strings"
)

// UnknownGPU is the GPU sentinel. Normalizers return it untouched.
const UnknownGPU = "Unknown GPU"

// Rule is one rewrite step of a Normalizer.
type Rule interface {
	Apply(s string) string
}

// Literal replaces every occurrence of Old with New.
type Literal struct {
	Old, New string
}

func (r Literal) Apply(s string) string { return strings.ReplaceAll(s, r.Old, r.New) }

// Prefix drops a leading key prefix when the text starts with it.
type Prefix string

func (r Prefix) Apply(s string) string { return strings.TrimPrefix(s, string(r)) }

// Pattern replaces every match of Re with Replacement.
type Pattern struct {
	Re          *regexp.Regexp
	Replacement string
}

func (r Pattern) Apply(s string) string { return r.Re.ReplaceAllString(s, r.Replacement) }

// Normalizer applies an ordered list of rules left to right.
type Normalizer []Rule

// Normalize runs the rules until the text stops changing, which makes the
// result idempotent even when one step exposes work for an earlier one
// (a quoted "vendor " prefix, a bracket span inside a vendor name).
// Every rule deletes or shortens text, apart from turning lone tabs into
// spaces, so the loop terminates.
func (n Normalizer) Normalize(s string) string {
	if s == UnknownGPU {
		return s
	}
	for {
		next := n.pass(s)
		if next == s {
			return s
		}
		s = next
	}
}

func (n Normalizer) pass(s string) string {
	for _, rule := range n {
		s = rule.Apply(s)
	}
	return s
}

var (
	bracketSpan = regexp.MustCompile(`\[[^\]]*\]`)
	strayChars  = regexp.MustCompile(`['",\[\]]`)
	whitespace  = regexp.MustCompile(`\s+`)
	trimSpace   = Pattern{Re: regexp.MustCompile(`^\s+|\s+$`)}
)

// GPUNormalizer cleans vendor strings from lspci, pciconf, dmesg and
// glxinfo into a short display name.
var GPUNormalizer = Normalizer{
	Literal{"Advanced Micro Devices", "AMD"},
	Literal{"Intel Corporation", "Intel"},
	Literal{"NVIDIA Corporation", "NVIDIA"},
	Literal{"Corporation", ""},
	Literal{"Inc.", ""},
	Prefix("vendor "),
	Prefix("device "),
	Pattern{Re: bracketSpan},
	Pattern{Re: strayChars},
	Pattern{Re: whitespace, Replacement: " "},
	trimSpace,
}

// ReleaseNormalizer collapses whitespace in os-release values and
// release-file contents.
var ReleaseNormalizer = Normalizer{
	Pattern{Re: whitespace, Replacement: " "},
	trimSpace,
}

// CleanRelease strips one pair of surrounding quotes and then applies
// ReleaseNormalizer. Quotes inside the value are kept.
func CleanRelease(s string) string {
	return ReleaseNormalizer.Normalize(unquote(strings.TrimSpace(s)))
}

// unquote removes one matching pair of single or double quotes.
func unquote(s string) string {
	if len(s) >= 2 && s[0] == s[len(s)-1] && (s[0] == '"' || s[0] == '\'') {
		return s[1 : len(s)-1]
	}
	return s
}

// NormalizeGPU is GPUNormalizer.Normalize.
func NormalizeGPU(s string) string { return GPUNormalizer.Normalize(s) }
