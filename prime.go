package main

import "math"

// Trial-division primality over [2, bound). The baseline tests every
// divisor up to n-1; the optimized variant handles 2 specially, then
// tests only odd candidates against odd divisors up to floor(sqrt(n)).
// Both must enumerate the identical prime set: 0 and 1 are not prime,
// 2 is prime and never touches the odd-only fast path.

// isPrimeTrial is the exhaustive baseline test.
func isPrimeTrial(n int) bool {
	if n < 2 {
		return false
	}
	for i := 2; i < n; i++ {
		if n%i == 0 {
			return false
		}
	}
	return true
}

// isPrimeSqrt tests odd divisors up to floor(sqrt(n)).
func isPrimeSqrt(n int) bool {
	if n < 2 {
		return false
	}
	if n == 2 {
		return true
	}
	if n%2 == 0 {
		return false
	}
	limit := int(math.Sqrt(float64(n)))
	for i := 3; i <= limit; i += 2 {
		if n%i == 0 {
			return false
		}
	}
	return true
}

// primeChecksum folds the (count, sum) pair into one scalar. For any
// bound up to one million the sum stays below 2^39 and the count below
// 10^6, so the fold is lossless in 64 bits and exact in a Checksum.
func primeChecksum(count int, sum int64) Checksum {
	return Checksum(sum*1_000_000 + int64(count))
}

func primeBaseline(spec KernelSpec) (Checksum, error) {
	count, sum := 0, int64(0)
	for i := 2; i < spec.Size; i++ {
		if isPrimeTrial(i) {
			count++
			sum += int64(i)
		}
	}
	return primeChecksum(count, sum), nil
}

func primeOptimized(spec KernelSpec) (Checksum, error) {
	count, sum := 0, int64(0)
	if spec.Size > 2 {
		// 2 is the only even prime; the loop below skips evens entirely.
		count, sum = 1, 2
	}
	for i := 3; i < spec.Size; i += 2 {
		if isPrimeSqrt(i) {
			count++
			sum += int64(i)
		}
	}
	return primeChecksum(count, sum), nil
}
