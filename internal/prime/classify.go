package prime

import (
	"time"

	"github.com/gogpu/primebmp/internal/parallel"
)

// Class is the primality outcome for one integer.
type Class uint8

const (
	// Composite marks a non-prime integer (including 1).
	Composite Class = iota
	// Prime marks a prime integer.
	Prime
)

// String implements fmt.Stringer.
func (c Class) String() string {
	if c == Prime {
		return "prime"
	}
	return "composite"
}

// classOf converts an oracle result to a Class.
func classOf(isPrime bool) Class {
	if isPrime {
		return Prime
	}
	return Composite
}

const (
	// chunksPerWorker over-partitions the range so work stealing can even
	// out the growing cost of larger integers.
	chunksPerWorker = 8

	// minChunk keeps tasks from being dominated by dispatch overhead.
	minChunk = 256
)

// Classify returns the classification of 1..n in order: element i describes
// the integer i+1. n == 0 yields an empty slice.
func Classify(n uint32, m Method) []Class {
	classes := make([]Class, n)
	for k := uint32(1); k <= n && k != 0; k++ {
		classes[k-1] = classOf(IsPrime(k, m))
	}
	return classes
}

// ClassifyParallel computes the same result as Classify on pool.
//
// The result slice is allocated up front and [0, n) is split into disjoint
// ranges; each task writes only the indices of its own range. The call
// returns after the pool's barrier, so the slice is complete and no longer
// shared when the caller sees it.
func ClassifyParallel(pool *parallel.WorkerPool, n uint32, m Method) []Class {
	classes := make([]Class, n)
	if n == 0 {
		return classes
	}

	total := int(n)
	chunks := min(pool.Workers()*chunksPerWorker, (total+minChunk-1)/minChunk)

	start := time.Now()
	pool.ForEachRange(total, chunks, func(r parallel.Range) {
		for i := r.Start; i < r.End; i++ {
			classes[i] = classOf(IsPrime(uint32(i)+1, m))
		}
	})

	slogger().Debug("prime: parallel classify done",
		"n", n,
		"method", m,
		"workers", pool.Workers(),
		"chunks", chunks,
		"elapsed", time.Since(start))

	return classes
}

// Bools converts classes to booleans (true for Prime).
func Bools(classes []Class) []bool {
	out := make([]bool, len(classes))
	for i, c := range classes {
		out[i] = c == Prime
	}
	return out
}

// Count returns the number of Prime entries in classes.
func Count(classes []Class) int {
	n := 0
	for _, c := range classes {
		if c == Prime {
			n++
		}
	}
	return n
}
