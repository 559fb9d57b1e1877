package sysinfo

import (
	"bufio"
	"regexp"
	"strings"
)

const nvidiaQuery = "nvidia-smi --query-gpu=name --format=csv,noheader 2>/dev/null"

// gpuProbe is one step of a GPU chain. It returns "" on a miss.
type gpuProbe struct {
	name string
	run  func(p Prober) string
}

var (
	lspciProbe = gpuProbe{"lspci", func(p Prober) string {
		if !p.HasCommand("lspci") {
			return ""
		}
		return parseLspci(p.Run("lspci -v 2>/dev/null"))
	}}
	nvidiaProbe = gpuProbe{"nvidia-smi", func(p Prober) string {
		if !p.HasCommand("nvidia-smi") {
			return ""
		}
		return firstLine(p.Run(nvidiaQuery))
	}}
	pciconfProbe = gpuProbe{"pciconf", func(p Prober) string {
		return parsePciconf(p.Run("pciconf -lv 2>/dev/null"))
	}}
	bsdDmesgProbe = gpuProbe{"dmesg", func(p Prober) string {
		return parseDmesgGPU(p.Run("dmesg 2>/dev/null"), bsdGraphicsLine)
	}}
	glxinfoProbe = gpuProbe{"glxinfo", func(p Prober) string {
		if !p.HasCommand("glxinfo") {
			return ""
		}
		return parseGlxinfo(p.Run("glxinfo 2>/dev/null"))
	}}
	otherDmesgProbe = gpuProbe{"dmesg", func(p Prober) string {
		return parseDmesgGPU(p.Run("dmesg 2>/dev/null"), anyGraphicsLine)
	}}
)

// gpuChains lists the probes per platform, in priority order. Proprietary
// driver tools go first on the BSDs and last on Linux.
var gpuChains = map[Platform][]gpuProbe{
	Linux:     {lspciProbe, nvidiaProbe},
	FreeBSD:   {nvidiaProbe, pciconfProbe, bsdDmesgProbe, glxinfoProbe},
	DragonFly: {nvidiaProbe, pciconfProbe, bsdDmesgProbe, glxinfoProbe},
	OpenBSD:   {nvidiaProbe, pciconfProbe, bsdDmesgProbe, glxinfoProbe},
	NetBSD:    {nvidiaProbe, pciconfProbe, bsdDmesgProbe, glxinfoProbe},
	Other:     {otherDmesgProbe},
}

// GPU returns the normalized name of the first graphics adapter found, or
// UnknownGPU.
func (d *Detector) GPU() string {
	chain, ok := gpuChains[d.platform]
	if !ok {
		chain = gpuChains[Other]
	}
	for _, probe := range chain {
		if name := strings.TrimSpace(probe.run(d.probe)); name != "" {
			gpu := NormalizeGPU(name)
			if gpu == "" {
				continue
			}
			d.found("gpu", probe.name, gpu)
			return gpu
		}
	}
	d.missed("gpu", UnknownGPU)
	return UnknownGPU
}

// parseLspci returns the device description of the first VGA or 3D
// controller in lspci output, with the "<slot> <class>: " head removed.
func parseLspci(out string) string {
	scanner := bufio.NewScanner(strings.NewReader(out))
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.Contains(line, "VGA") && !strings.Contains(line, "3D") {
			continue
		}
		if _, desc, ok := strings.Cut(line, ": "); ok {
			return strings.TrimSpace(desc)
		}
		return strings.TrimSpace(line)
	}
	return ""
}

var (
	pciconfDisplay = regexp.MustCompile(`(?i)vgapci|nvidia|amd|radeon|intel`)
	pciconfVendor  = regexp.MustCompile(`vendor\s*=\s*'([^']+)'`)
	pciconfDevice  = regexp.MustCompile(`device\s*=\s*'([^']+)'`)
)

// pciconfContext is how many lines after a matching device line still
// belong to its verbose description.
const pciconfContext = 3

// parsePciconf extracts "<vendor> <device>" for the first display-related
// entry of `pciconf -lv` output.
func parsePciconf(out string) string {
	if out == "" {
		return ""
	}
	lines := strings.Split(out, "\n")
	var selected []string
	for i := 0; i < len(lines); i++ {
		if !pciconfDisplay.MatchString(lines[i]) {
			continue
		}
		end := i + pciconfContext + 1
		if end > len(lines) {
			end = len(lines)
		}
		selected = append(selected, lines[i:end]...)
		i = end - 1
	}
	block := strings.Join(selected, "\n")

	var vendor, device string
	if m := pciconfVendor.FindStringSubmatch(block); m != nil {
		vendor = m[1]
	}
	if m := pciconfDevice.FindStringSubmatch(block); m != nil {
		device = m[1]
	}
	return strings.TrimSpace(vendor + " " + device)
}

var (
	bsdGraphicsLine = regexp.MustCompile(`(?i)(nvidia|amd|radeon|intel).*graphics|vga`)
	anyGraphicsLine = regexp.MustCompile(`(?i)vga|graphics|nvidia|amd|radeon`)
)

// parseDmesgGPU returns the text after the first colon of the first kernel
// log line matching re.
func parseDmesgGPU(out string, re *regexp.Regexp) string {
	scanner := bufio.NewScanner(strings.NewReader(out))
	for scanner.Scan() {
		line := scanner.Text()
		if !re.MatchString(line) {
			continue
		}
		if _, rest, ok := strings.Cut(line, ":"); ok {
			return strings.TrimSpace(rest)
		}
		return strings.TrimSpace(line)
	}
	return ""
}

// parseGlxinfo returns the OpenGL renderer string.
func parseGlxinfo(out string) string {
	scanner := bufio.NewScanner(strings.NewReader(out))
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.Contains(line, "OpenGL renderer string") {
			continue
		}
		if _, rest, ok := strings.Cut(line, ":"); ok {
			return strings.TrimSpace(rest)
		}
	}
	return ""
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return strings.TrimSpace(line)
}
