package main

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAxpyLanesRemainderExact(t *testing.T) {
	// Lane width must never matter for correctness, including lengths
	// not divisible by it.
	for _, n := range []int{0, 1, 2, 3, 4, 5, 7, 8, 9, 100, 101, 102, 103} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			x := make([]float64, n)
			for i := range x {
				x[i] = float64(i) * 0.25
			}

			got := make([]float64, n)
			want := make([]float64, n)
			for i := range want {
				got[i] = 1.5
				want[i] = 1.5 + 2.0*x[i]
			}

			axpyLanes(got, 2.0, x)
			assert.Equal(t, want, got)
		})
	}
}

func TestSumLanesRemainderIncluded(t *testing.T) {
	for _, n := range []int{0, 1, 3, 4, 5, 6, 7, 8, 9, 257} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			x := make([]float64, n)
			want := 0.0
			for i := range x {
				x[i] = 1.0 / float64(i+1)
				want += x[i]
			}
			assert.InDelta(t, want, sumLanes(x), 1e-12)
		})
	}
}

func TestMatMulIdentity(t *testing.T) {
	// A = I implies C = B, exactly.
	a, err := newMatrix(2)
	require.NoError(t, err)
	a.data[0], a.data[3] = 1, 1

	b, err := newMatrix(2)
	require.NoError(t, err)
	copy(b.data, []float64{0.3, 0.7, 0.1, 0.9})

	c, err := newMatrix(2)
	require.NoError(t, err)
	require.NoError(t, matMulNaive(a, b, c))
	assert.Equal(t, b.data, c.data)

	c2, err := newMatrix(2)
	require.NoError(t, err)
	require.NoError(t, matMulIKJ(a, b, c2))
	assert.Equal(t, b.data, c2.data)
}

func TestMatMulOrdersAgree(t *testing.T) {
	// Dimensions on and off the lane-width multiple, so the remainder
	// columns are exercised.
	for _, n := range []int{1, 2, 3, 4, 5, 7, 16, 33} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			a, err := newPatternMatrix(n, 1)
			require.NoError(t, err)
			b, err := newPatternMatrix(n, 7)
			require.NoError(t, err)

			cNaive, err := newMatrix(n)
			require.NoError(t, err)
			require.NoError(t, matMulNaive(a, b, cNaive))

			cIKJ, err := newMatrix(n)
			require.NoError(t, err)
			require.NoError(t, matMulIKJ(a, b, cIKJ))

			for i := range cNaive.data {
				require.InDelta(t, cNaive.data[i], cIKJ.data[i], 1e-9,
					"cell %d diverged", i)
			}
		})
	}
}

func TestMatMulKernelChecksumsWithinTolerance(t *testing.T) {
	spec := KernelSpec{Name: "matrix-multiply", Size: 4, RelTol: 1e-9}

	base, err := matMulBaseline(spec)
	require.NoError(t, err)
	opt, err := matMulOptimized(spec)
	require.NoError(t, err)

	assert.InEpsilon(t, float64(base), float64(opt), 1e-9)
}

func TestMatMulDimensionValidation(t *testing.T) {
	_, err := newMatrix(0)
	require.ErrorIs(t, err, ErrDomain)

	a, err := newMatrix(2)
	require.NoError(t, err)
	b, err := newMatrix(3)
	require.NoError(t, err)
	c, err := newMatrix(2)
	require.NoError(t, err)

	require.ErrorIs(t, matMulNaive(a, b, c), ErrDomain)
	require.ErrorIs(t, matMulIKJ(a, b, c), ErrDomain)
}
