package main

import "errors"

var (
	// ErrAllocation indicates a kernel buffer request was refused before use.
	// Surfaced instead of handing a kernel an invalid buffer.
	ErrAllocation = errors.New("kernel: allocation refused")

	// ErrDomain indicates input outside the value range an optimization
	// assumes (counting sort's bounded domain, fibonacci's 64-bit range).
	ErrDomain = errors.New("kernel: domain violation")

	// ErrDivergence indicates baseline and optimized checksums differ
	// beyond the kernel's declared tolerance.
	ErrDivergence = errors.New("kernel: checksum divergence")
)
