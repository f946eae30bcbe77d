package main

// LCG is the deterministic input source shared by every kernel that
// consumes pseudo-random data. The recurrence
//
//	state = state*1103515245 + 12345 (mod 2^32)
//
// is inherently serial: each output depends on the previous state, so an
// optimized code path may batch its loop body but must never skip or
// reassociate the recurrence itself. Values derive from the high 16 bits
// of the state, which have a longer period than the low bits.
type LCG struct {
	state uint32
}

// NewLCG returns a generator positioned at the given seed. Two generators
// with the same seed produce byte-identical sequences.
func NewLCG(seed uint32) *LCG {
	return &LCG{state: seed}
}

// Next advances the recurrence once and returns the high 16 bits.
func (g *LCG) Next() uint32 {
	g.state = g.state*1103515245 + 12345
	return g.state >> 16
}

// FillInts fills dst with successive values masked to the kernel's value
// domain. The body is processed four elements per iteration; each element
// still performs one sequential state transition, so the sequence is
// identical to the element-at-a-time loop for any length.
func (g *LCG) FillInts(dst []int32, mask uint32) {
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		dst[i] = int32(g.Next() & mask)
		dst[i+1] = int32(g.Next() & mask)
		dst[i+2] = int32(g.Next() & mask)
		dst[i+3] = int32(g.Next() & mask)
	}
	for ; i < len(dst); i++ {
		dst[i] = int32(g.Next() & mask)
	}
}

// FillLetters fills dst with letters drawn from the first alphabetSize
// letters starting at 'A'.
func (g *LCG) FillLetters(dst []byte, alphabetSize uint32) {
	for i := range dst {
		dst[i] = byte('A' + g.Next()%alphabetSize)
	}
}
