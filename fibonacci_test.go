package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fibFirstEleven = []int64{0, 1, 1, 2, 3, 5, 8, 13, 21, 34, 55}

func TestFibKnownValues(t *testing.T) {
	for n, want := range fibFirstEleven {
		assert.Equal(t, want, fibNaive(n), "fibNaive(%d)", n)

		got, err := fibIter(n)
		require.NoError(t, err)
		assert.Equal(t, want, got, "fibIter(%d)", n)
	}
}

func TestFibRunningSum(t *testing.T) {
	// Sum of fib(0..10) is 143 (= fib(12) - 1).
	var sum int64
	for _, v := range fibFirstEleven {
		sum += v
	}
	assert.Equal(t, int64(143), sum)

	cs, err := fibonacciOptimized(KernelSpec{Size: 11})
	require.NoError(t, err)
	assert.Equal(t, Checksum(143), cs)
}

func TestFibVariantsAgree(t *testing.T) {
	for n := 0; n <= 25; n++ {
		got, err := fibIter(n)
		require.NoError(t, err)
		require.Equal(t, fibNaive(n), got, "n=%d", n)
	}
}

func TestFibDomainBounds(t *testing.T) {
	// fib(92) is the last value that fits in int64.
	got, err := fibIter(maxFibArg)
	require.NoError(t, err)
	assert.Equal(t, int64(7540113804746346429), got)

	_, err = fibIter(maxFibArg + 1)
	require.ErrorIs(t, err, ErrDomain)

	_, err = fibIter(-1)
	require.ErrorIs(t, err, ErrDomain)
}

func TestFibonacciKernelChecksumsEqual(t *testing.T) {
	spec := KernelSpec{Name: "fibonacci", Size: 25}

	base, err := fibonacciBaseline(spec)
	require.NoError(t, err)
	opt, err := fibonacciOptimized(spec)
	require.NoError(t, err)

	assert.Equal(t, base, opt)
}
