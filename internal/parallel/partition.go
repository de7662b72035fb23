// Package parallel provides the fixed-size worker pool behind the parallel
// range classifier.
//
// Work is expressed as a set of disjoint index ranges over one pre-allocated
// slice. Each range is handed to exactly one task, so tasks never touch each
// other's indices and no locking is needed; ExecuteAll is the only barrier.
package parallel

// Range is a half-open index interval [Start, End).
type Range struct {
	Start int
	End   int
}

// Len returns the number of indices in r.
func (r Range) Len() int {
	return r.End - r.Start
}

// Partition splits [0, n) into at most chunks contiguous, non-overlapping
// ranges that together cover every index exactly once. Range sizes differ by
// at most one. It returns nil when n <= 0.
func Partition(n, chunks int) []Range {
	if n <= 0 {
		return nil
	}
	if chunks <= 0 {
		chunks = 1
	}
	chunks = min(chunks, n)

	base := n / chunks
	extra := n % chunks

	ranges := make([]Range, chunks)
	start := 0
	for i := 0; i < chunks; i++ {
		size := base
		if i < extra {
			size++
		}
		ranges[i] = Range{Start: start, End: start + size}
		start += size
	}
	return ranges
}
