package main

import "fmt"

// ===========================================================================
// WHAT'S GOING ON HERE
// ===========================================================================
//
// Substring search counting OVERLAPPING matches: after a match at
// position i the scan resumes at i+1, not i+m. That one detail shapes
// the whole equivalence contract, because the obvious Horspool "advance
// by shift after a match" silently switches to non-overlapping counting
// and produces a different total.
//
// Baseline: naive O(n*m) sliding comparison.
//
// Optimized: Boyer-Moore-Horspool. A 256-entry bad-character table maps
// each byte to m-1-lastIndex(byte) over the first m-1 pattern bytes
// (default m for bytes absent from the pattern; the final pattern byte is
// deliberately excluded so a matching last byte can still shift). The
// scan compares the pattern's last byte first and on mismatch advances by
// the table shift for the text byte under the pattern's last position.
// On a full match it counts and advances by exactly 1, preserving the
// baseline's overlapping semantics.
//
// ===========================================================================

// searchAlphabet is the number of distinct text letters, 'A' through 'H'.
// Small enough that a seven-byte pattern actually occurs in a megabyte of
// random text.
const searchAlphabet = 8

// searchInput generates the text and validates the pattern against it.
func searchInput(spec KernelSpec) (text, pattern []byte, err error) {
	if len(spec.Pattern) == 0 {
		return nil, nil, fmt.Errorf("%w: empty search pattern", ErrDomain)
	}
	text, err = allocBytes(spec.Size)
	if err != nil {
		return nil, nil, err
	}
	NewLCG(spec.Seed).FillLetters(text, searchAlphabet)
	return text, []byte(spec.Pattern), nil
}

// naiveSearchCount counts overlapping occurrences of pattern in text by
// sliding comparison.
func naiveSearchCount(text, pattern []byte) int {
	n, m := len(text), len(pattern)
	if m == 0 || n < m {
		return 0
	}
	count := 0
	for i := 0; i <= n-m; i++ {
		j := 0
		for j < m && text[i+j] == pattern[j] {
			j++
		}
		if j == m {
			count++
		}
	}
	return count
}

// horspoolSearchCount counts overlapping occurrences with a bad-character
// shift table. Match totals are identical to naiveSearchCount for any
// text/pattern pair.
func horspoolSearchCount(text, pattern []byte) int {
	n, m := len(text), len(pattern)
	if m == 0 || n < m {
		return 0
	}

	var shift [256]int
	for i := range shift {
		shift[i] = m
	}
	for i := 0; i < m-1; i++ {
		shift[pattern[i]] = m - 1 - i
	}

	count := 0
	last := m - 1
	i := 0
	for i <= n-m {
		// Last byte first: on random text this rejects most
		// alignments with a single comparison.
		if text[i+last] == pattern[last] {
			j := last - 1
			for j >= 0 && text[i+j] == pattern[j] {
				j--
			}
			if j < 0 {
				count++
				i++ // overlap-preserving advance, never the table shift
				continue
			}
		}
		i += shift[text[i+last]]
	}
	return count
}

func searchBaseline(spec KernelSpec) (Checksum, error) {
	text, pattern, err := searchInput(spec)
	if err != nil {
		return 0, err
	}
	return Checksum(naiveSearchCount(text, pattern)), nil
}

func searchOptimized(spec KernelSpec) (Checksum, error) {
	text, pattern, err := searchInput(spec)
	if err != nil {
		return 0, err
	}
	return Checksum(horspoolSearchCount(text, pattern)), nil
}
