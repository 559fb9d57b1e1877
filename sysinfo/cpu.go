package sysinfo

import (
	"bufio"
	"strings"
)

const procCPUInfoPath = "/proc/cpuinfo"

// CPU returns the processor model without its clock suffix, or UnknownCPU.
func (d *Detector) CPU() string {
	var model, source string
	switch {
	case d.platform == Linux:
		model, source = parseCPUInfo(d.probe.ReadFile(procCPUInfoPath)), procCPUInfoPath
	case d.platform.IsBSD():
		model, _ = d.probe.Sysctl("hw.model")
		source = "hw.model"
	}
	if model == "" {
		model, _ = d.probe.CPUBrand()
		source = "cpu brand"
	}

	model = trimClock(model)
	if model == "" {
		d.missed("cpu", UnknownCPU)
		return UnknownCPU
	}
	d.found("cpu", source, model)
	return model
}

// parseCPUInfo returns the first "model name" value from /proc/cpuinfo.
func parseCPUInfo(content string) string {
	scanner := bufio.NewScanner(strings.NewReader(content))
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "model name") {
			continue
		}
		if _, value, ok := strings.Cut(line, ":"); ok {
			return strings.TrimSpace(value)
		}
	}
	return ""
}

// trimClock drops an "@ 3.60GHz" style suffix.
func trimClock(model string) string {
	if at := strings.Index(model, "@"); at >= 0 {
		model = model[:at]
	}
	return strings.TrimSpace(model)
}
