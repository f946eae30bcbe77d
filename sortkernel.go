package main

import "fmt"

// Comparison vs counting sort. The baseline is an O(n^2) exchange sort.
// The optimized variant is an O(n+R) counting sort that only works because
// the generator masks every value into [0, R): it tallies occurrences in
// one pass and emits each value its counted number of times in ascending
// order. Duplicates come out contiguously, so tie order is identical by
// construction and the position-weighted checksum cannot tell the two
// variants apart.
//
// The domain assumption is enforced, not trusted: a value outside [0, R)
// fails with ErrDomain before any table access. Silently masking it into
// range would be a defect, not an optimization.

// sortValueMask confines generated values to [0, 32768).
const sortValueMask = 0x7fff

// sortInput generates the kernel's input sequence. Each variant calls
// this separately so in-place sorting in one can never affect the other.
func sortInput(spec KernelSpec) ([]int32, error) {
	buf, err := allocInt32(spec.Size)
	if err != nil {
		return nil, err
	}
	NewLCG(spec.Seed).FillInts(buf, sortValueMask)
	return buf, nil
}

// exchangeSort is the O(n^2) baseline, sorting in place.
func exchangeSort(a []int32) {
	for i := 0; i < len(a)-1; i++ {
		for j := 0; j < len(a)-i-1; j++ {
			if a[j] > a[j+1] {
				a[j], a[j+1] = a[j+1], a[j]
			}
		}
	}
}

// countingSort sorts a in place, assuming every value lies in
// [0, domain). The assumption is validated during the tally pass; a value
// outside it returns ErrDomain with the array untouched beyond the tally.
func countingSort(a []int32, domain int) error {
	if domain <= 0 {
		return fmt.Errorf("%w: counting sort domain %d", ErrDomain, domain)
	}
	counts, err := allocInt32(domain)
	if err != nil {
		return err
	}

	for _, v := range a {
		if v < 0 || int(v) >= domain {
			return fmt.Errorf("%w: value %d outside [0,%d)", ErrDomain, v, domain)
		}
		counts[v]++
	}

	idx := 0
	for v := 0; v < domain; v++ {
		for c := counts[v]; c > 0; c-- {
			a[idx] = int32(v)
			idx++
		}
	}
	return nil
}

// sortChecksum is the position-weighted sum over the sorted sequence.
func sortChecksum(a []int32) int64 {
	var cs int64
	for i, v := range a {
		cs += int64(v) * int64(i+1)
	}
	return cs
}

func sortBaseline(spec KernelSpec) (Checksum, error) {
	a, err := sortInput(spec)
	if err != nil {
		return 0, err
	}
	exchangeSort(a)
	return Checksum(sortChecksum(a)), nil
}

func sortOptimized(spec KernelSpec) (Checksum, error) {
	a, err := sortInput(spec)
	if err != nil {
		return 0, err
	}
	if err := countingSort(a, spec.Domain); err != nil {
		return 0, err
	}
	return Checksum(sortChecksum(a)), nil
}
