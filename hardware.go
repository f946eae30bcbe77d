package main

import "runtime"

// HardwareInfo describes the machine a suite ran on, enough to interpret
// speedup differences across runs.
type HardwareInfo struct {
	OS      string `json:"os"`
	Arch    string `json:"arch"`
	NumCPU  int    `json:"num_cpu"`
	HasNEON bool   `json:"has_neon"`
	HasSSE2 bool   `json:"has_sse2"`
}

// DetectHardware gathers basic system information. Feature flags are
// derived from the architecture baseline: NEON is mandatory on arm64 and
// SSE2 on amd64. Wider extensions would need cpuid or /proc parsing, so
// they are not claimed here.
func DetectHardware() HardwareInfo {
	return HardwareInfo{
		OS:      runtime.GOOS,
		Arch:    runtime.GOARCH,
		NumCPU:  runtime.NumCPU(),
		HasNEON: runtime.GOARCH == "arm64",
		HasSSE2: runtime.GOARCH == "amd64",
	}
}
