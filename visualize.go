package main

import (
	"fmt"
	"strings"
)

// chartWidth is the bar length of the largest speedup.
const chartWidth = 40

// renderSpeedupChart renders an ASCII bar chart of per-kernel speedups,
// scaled to the largest one.
func renderSpeedupChart(results []BenchmarkResult) string {
	maxSpeedup := 0.0
	for _, r := range results {
		if r.Speedup > maxSpeedup {
			maxSpeedup = r.Speedup
		}
	}
	if maxSpeedup <= 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("Speedup (optimized vs baseline):\n")
	for _, r := range results {
		bar := int(r.Speedup / maxSpeedup * chartWidth)
		if bar < 1 && r.Speedup > 0 {
			bar = 1
		}
		fmt.Fprintf(&b, "  %-16s %s %.2fx\n",
			r.Kernel, strings.Repeat("#", bar), r.Speedup)
	}
	return b.String()
}
