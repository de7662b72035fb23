// Package primebmp draws the primes in 1..N as a 24-bit bitmap.
//
// # Overview
//
// An image of width x height pixels covers the integers 1..width*height in
// row-major order: the top-left pixel is 1, the pixel to its right is 2, and
// so on. Each pixel gets the prime color if its integer is prime and the
// composite color otherwise. The result is written as an uncompressed BMP.
//
// # Quick Start
//
//	r, err := primebmp.New(100, 100,
//	    primebmp.WithVariant(primebmp.OptimizedParallel),
//	    primebmp.WithWorkers(4),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	stats, err := r.RenderFile("primes.bmp")
//
// # Variants
//
// Two trial-division oracles are available: a naive one that tries every
// divisor below n, and an optimized one that skips even numbers and stops at
// the integer square root. Each runs either sequentially or on a fixed-size
// worker pool. All four variants produce identical images.
//
// # Architecture
//
// The library is organized into:
//   - Public API: Renderer, Config, Option, Variant, Color
//   - internal/prime: oracles and range classification
//   - internal/parallel: worker pool and range partitioning
//   - internal/image: pixel buffer and classification-to-color mapping
//   - internal/bmp: byte-exact BMP encoder and header reader
//
// # Logging
//
// primebmp is silent by default. Use SetLogger to route diagnostics to a
// [log/slog] logger.
package primebmp
