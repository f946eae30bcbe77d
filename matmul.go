package main

import "fmt"

// ===========================================================================
// WHAT'S GOING ON HERE
// ===========================================================================
//
// Dense N x N matrix multiply, row-major layout, the most algorithmically
// loaded kernel of the corpus.
//
// Baseline: the textbook i-j-k triple loop with one scalar accumulator
// per output cell. The inner loop walks B down a column, so every access
// to B lands on a different cache line. Fine for correctness, terrible
// for the memory hierarchy.
//
// Optimized: reorder to i-k-j. With C zero-initialized up front, the
// inner loop becomes "C row += a[i][k] * B row", and both the B row and
// the C row stream sequentially. The inner loop is then handed to the
// lane op set (axpyLanes), which processes four doubles per step with an
// exact scalar remainder for N mod 4 columns. Unaligned-capable loads are
// assumed, so no alignment requirement is imposed on the buffers.
//
// The reordering reassociates each cell's multiply-accumulate chain, so
// the two variants agree within relative tolerance, not bit-for-bit.
//
// RECOMMENDED READING:
// - "What Every Programmer Should Know About Memory" by Ulrich Drepper
// - "Computer Architecture: A Quantitative Approach" by Hennessy &
//   Patterson, Chapter 2: Memory Hierarchy Design
//
// ===========================================================================

// Matrix is a square row-major float64 matrix.
type Matrix struct {
	n    int
	data []float64
}

// newMatrix allocates a zeroed n x n matrix.
func newMatrix(n int) (*Matrix, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: matrix dimension %d", ErrDomain, n)
	}
	data, err := allocFloat64(n * n)
	if err != nil {
		return nil, err
	}
	return &Matrix{n: n, data: data}, nil
}

// newPatternMatrix fills an n x n matrix with the corpus's fixed input
// pattern ((i*stride) % 100) / 100. Stride 1 yields operand A, stride 7
// operand B.
func newPatternMatrix(n, stride int) (*Matrix, error) {
	m, err := newMatrix(n)
	if err != nil {
		return nil, err
	}
	for i := range m.data {
		m.data[i] = float64((i*stride)%100) / 100.0
	}
	return m, nil
}

// Row returns row i as a slice aliasing the matrix storage.
func (m *Matrix) Row(i int) []float64 {
	return m.data[i*m.n : (i+1)*m.n]
}

// matMulNaive computes c = a*b with the i-j-k loop order and a scalar
// accumulator per cell.
func matMulNaive(a, b, c *Matrix) error {
	if a.n != b.n || a.n != c.n {
		return fmt.Errorf("%w: matmul dimensions %d, %d, %d", ErrDomain, a.n, b.n, c.n)
	}
	n := a.n
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			sum := 0.0
			for k := 0; k < n; k++ {
				sum += a.data[i*n+k] * b.data[k*n+j]
			}
			c.data[i*n+j] = sum
		}
	}
	return nil
}

// matMulIKJ computes c = a*b with the i-k-j loop order. c must arrive
// zeroed; each k step streams one row of b into one row of c through the
// lane ops.
func matMulIKJ(a, b, c *Matrix) error {
	if a.n != b.n || a.n != c.n {
		return fmt.Errorf("%w: matmul dimensions %d, %d, %d", ErrDomain, a.n, b.n, c.n)
	}
	n := a.n
	for i := 0; i < n; i++ {
		cRow := c.Row(i)
		for k := 0; k < n; k++ {
			axpyLanes(cRow, a.data[i*n+k], b.Row(k))
		}
	}
	return nil
}

// matMulInputs builds the two fixed operands and a zeroed result matrix.
func matMulInputs(spec KernelSpec) (a, b, c *Matrix, err error) {
	if a, err = newPatternMatrix(spec.Size, 1); err != nil {
		return nil, nil, nil, err
	}
	if b, err = newPatternMatrix(spec.Size, 7); err != nil {
		return nil, nil, nil, err
	}
	if c, err = newMatrix(spec.Size); err != nil {
		return nil, nil, nil, err
	}
	return a, b, c, nil
}

func matMulBaseline(spec KernelSpec) (Checksum, error) {
	a, b, c, err := matMulInputs(spec)
	if err != nil {
		return 0, err
	}
	if err := matMulNaive(a, b, c); err != nil {
		return 0, err
	}
	sum := 0.0
	for _, v := range c.data {
		sum += v
	}
	return Checksum(sum), nil
}

func matMulOptimized(spec KernelSpec) (Checksum, error) {
	a, b, c, err := matMulInputs(spec)
	if err != nil {
		return 0, err
	}
	if err := matMulIKJ(a, b, c); err != nil {
		return 0, err
	}
	return Checksum(sumLanes(c.data)), nil
}
