package main

import (
	"fmt"
	"runtime"
	"slices"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/gogpu/primebmp"
	"github.com/gogpu/primebmp/internal/prime"
)

func newVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check that all four methods classify 1..n identically",
		Args:  cobra.NoArgs,
		RunE:  runVerify,
	}
	cmd.Flags().Uint32P("n", "n", 10000, "Upper end of the range 1..n")
	cmd.Flags().IntP("jobs", "j", 0, "Number of worker goroutines for parallel methods (0 = one per CPU)")
	return cmd
}

func runVerify(cmd *cobra.Command, args []string) error {
	n, _ := cmd.Flags().GetUint32("n")
	jobs, _ := cmd.Flags().GetInt("jobs")
	if jobs == 0 {
		jobs = runtime.NumCPU()
	}
	if n == 0 {
		return fmt.Errorf("--n must be positive")
	}

	variants := primebmp.Variants()
	results := make([][]prime.Class, len(variants))

	// Each variant gets its own Renderer (and pool); results land in
	// separate slots, so the goroutines share nothing.
	var g errgroup.Group
	for i, v := range variants {
		i, v := i, v // per-iteration copy: go 1.21 loop variable semantics
		g.Go(func() error {
			r, err := primebmp.New(int(n), 1, primebmp.WithVariant(v), primebmp.WithWorkers(jobs))
			if err != nil {
				return fmt.Errorf("%s: %w", v, err)
			}
			classes, err := r.Classify()
			if err != nil {
				return fmt.Errorf("%s: %w", v, err)
			}
			results[i] = classes
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i := 1; i < len(results); i++ {
		if !slices.Equal(results[0], results[i]) {
			idx := firstDifference(results[0], results[i])
			return fmt.Errorf("%s and %s disagree at %d", variants[0], variants[i], idx+1)
		}
	}

	printer().Fprintf(cmd.OutOrStdout(), "All %d methods agree on 1..%d: %d primes\n",
		len(variants), n, prime.Count(results[0]))
	return nil
}

// firstDifference returns the first index where a and b differ.
func firstDifference(a, b []prime.Class) int {
	for i := 0; i < min(len(a), len(b)); i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return min(len(a), len(b))
}
