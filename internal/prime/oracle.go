// Package prime classifies integers by trial division.
//
// Two oracles are provided: a naive test that tries every divisor below n,
// and an optimized test that rejects even numbers and then tries odd divisors
// up to the integer square root. Both agree for every uint32 input.
package prime

import (
	"fmt"
	"math"
)

// Method selects the trial-division oracle.
type Method uint8

const (
	// Naive tries every divisor in [2, n). O(n) per integer.
	Naive Method = iota

	// Optimized tries 2, then odd divisors in [3, isqrt(n)]. O(sqrt(n)).
	Optimized
)

// String implements fmt.Stringer.
func (m Method) String() string {
	switch m {
	case Naive:
		return "naive"
	case Optimized:
		return "optimized"
	default:
		return fmt.Sprintf("Method(%d)", uint8(m))
	}
}

// Valid reports whether m names a known oracle.
func (m Method) Valid() bool {
	return m == Naive || m == Optimized
}

// IsPrime reports whether n is prime using the oracle selected by m.
// An unknown method is treated as Optimized; callers validate with Valid.
func IsPrime(n uint32, m Method) bool {
	if m == Naive {
		return IsPrimeNaive(n)
	}
	return IsPrimeOptimized(n)
}

// IsPrimeNaive reports whether n is prime by testing every d in [2, n).
// 0 and 1 are not prime.
func IsPrimeNaive(n uint32) bool {
	if n < 2 {
		return false
	}
	for d := uint32(2); d < n; d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}

// IsPrimeOptimized reports whether n is prime by rejecting even n > 2 and
// testing odd d in [3, isqrt(n)]. The bound is inclusive, so perfect squares
// of odd primes (9, 25, 49, ...) are caught.
func IsPrimeOptimized(n uint32) bool {
	if n < 2 {
		return false
	}
	if n == 2 {
		return true
	}
	if n%2 == 0 {
		return false
	}
	limit := isqrt(n)
	for d := uint32(3); d <= limit; d += 2 {
		if n%d == 0 {
			return false
		}
	}
	return true
}

// isqrt returns floor(sqrt(n)). The float estimate is corrected with integer
// arithmetic so rounding in math.Sqrt can never move the bound.
func isqrt(n uint32) uint32 {
	r := uint64(math.Sqrt(float64(n)))
	v := uint64(n)
	for r*r > v {
		r--
	}
	for (r+1)*(r+1) <= v {
		r++
	}
	return uint32(r)
}
