package prime

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPrime_SmallValues(t *testing.T) {
	tests := []struct {
		n    uint32
		want bool
	}{
		{0, false},
		{1, false},
		{2, true},
		{3, true},
		{4, false},
		{9, false},
		{25, false},
		{49, false},
		{97, true},
		{121, false},
		{7919, true},
		{65521, true},       // largest 16-bit prime
		{65537, true},       // Fermat prime F4
		{4294967291, true},  // largest 32-bit prime
		{4294967295, false}, // 3 * 5 * 17 * 257 * 65537
		{4294836225, false}, // 65535^2
	}

	for _, tt := range tests {
		assert.Equalf(t, tt.want, IsPrimeOptimized(tt.n), "IsPrimeOptimized(%d)", tt.n)
		if tt.n < 100000 {
			assert.Equalf(t, tt.want, IsPrimeNaive(tt.n), "IsPrimeNaive(%d)", tt.n)
		}
	}
}

func TestIsPrime_OraclesAgree(t *testing.T) {
	for n := uint32(1); n <= 10000; n++ {
		naive := IsPrime(n, Naive)
		optimized := IsPrime(n, Optimized)
		if naive != optimized {
			t.Fatalf("n=%d: naive=%v optimized=%v", n, naive, optimized)
		}
	}
}

func TestIsPrime_PerfectSquaresOfPrimes(t *testing.T) {
	for _, p := range []uint32{3, 5, 7, 11, 13, 251, 65521} {
		sq := p * p
		assert.Falsef(t, IsPrimeOptimized(sq), "IsPrimeOptimized(%d^2=%d)", p, sq)
	}
}

func TestIsqrt(t *testing.T) {
	tests := []struct {
		n, want uint32
	}{
		{0, 0},
		{1, 1},
		{3, 1},
		{4, 2},
		{8, 2},
		{9, 3},
		{10, 3},
		{4294836224, 65534},
		{4294836225, 65535},
		{math.MaxUint32, 65535},
	}
	for _, tt := range tests {
		assert.Equalf(t, tt.want, isqrt(tt.n), "isqrt(%d)", tt.n)
	}
}

func TestMethod_String(t *testing.T) {
	assert.Equal(t, "naive", Naive.String())
	assert.Equal(t, "optimized", Optimized.String())
	assert.Equal(t, "Method(9)", Method(9).String())
	assert.True(t, Optimized.Valid())
	assert.False(t, Method(9).Valid())
}
