package main

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/primebmp"
)

const defaultOutput = "output.bmp"

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [filename]",
		Short: "Render the primes in 1..width*height to a BMP file",
		Long: `Render classifies every integer in 1..width*height and writes one pixel
per integer, left to right and top to bottom, using the prime color for
primes and the composite color for everything else.

Methods:
  1, optimized-parallel    square-root trial division on the worker pool (default)
  2, naive-parallel        full trial division on the worker pool
  3, optimized-sequential  square-root trial division on one goroutine
  4, naive-sequential      full trial division on one goroutine`,
		Args: cobra.MaximumNArgs(1),
		RunE: runRender,
	}

	f := cmd.Flags()
	f.IntP("width", "W", 100, "Width of the BMP file")
	f.IntP("height", "H", 100, "Height of the BMP file")
	f.Uint8("composite-red", 0, "Value for the red composite (0-255)")
	f.Uint8("composite-green", 0, "Value for the green composite (0-255)")
	f.Uint8("composite-blue", 0, "Value for the blue composite (0-255)")
	f.Uint8("prime-red", 255, "Value for the red prime (0-255)")
	f.Uint8("prime-green", 255, "Value for the green prime (0-255)")
	f.Uint8("prime-blue", 255, "Value for the blue prime (0-255)")
	f.String("prime-color", "", "Prime color as #rrggbb (overrides --prime-red/green/blue)")
	f.String("composite-color", "", "Composite color as #rrggbb (overrides --composite-red/green/blue)")
	f.IntP("jobs", "j", 1, "Number of worker goroutines (0 = one per CPU)")
	f.StringP("method", "m", "1", "Prime generation method (number or name, see above)")

	return cmd
}

func runRender(cmd *cobra.Command, args []string) error {
	f := cmd.Flags()
	width, _ := f.GetInt("width")
	height, _ := f.GetInt("height")
	jobs, _ := f.GetInt("jobs")
	methodStr, _ := f.GetString("method")

	primeColor, err := colorFlags(cmd, "prime")
	if err != nil {
		return err
	}
	compositeColor, err := colorFlags(cmd, "composite")
	if err != nil {
		return err
	}

	variant, err := parseMethod(methodStr)
	if err != nil {
		return err
	}

	if jobs == 0 {
		jobs = runtime.NumCPU()
	}

	r, err := primebmp.New(width, height,
		primebmp.WithVariant(variant),
		primebmp.WithWorkers(jobs),
		primebmp.WithPrimeColor(primeColor),
		primebmp.WithCompositeColor(compositeColor),
	)
	if err != nil {
		return err
	}

	name := defaultOutput
	if len(args) > 0 {
		name = args[0]
	}
	path := outputName(name)

	stats, err := r.RenderFile(path)
	if err != nil {
		return fmt.Errorf("rendering %s: %w", path, err)
	}

	p := printer()
	out := cmd.OutOrStdout()
	p.Fprintf(out, "Rendered %dx%d (%d integers, %d primes) with %s\n",
		stats.Width, stats.Height, stats.N, stats.Primes, stats.Variant)
	p.Fprintf(out, "Output: %s (%d bytes) in %v\n", path, stats.Bytes, stats.Elapsed)
	return nil
}

// colorFlags reads the <prefix>-red/green/blue flags, or the <prefix>-color
// hex flag when it is set.
func colorFlags(cmd *cobra.Command, prefix string) (primebmp.Color, error) {
	f := cmd.Flags()
	if hex, _ := f.GetString(prefix + "-color"); hex != "" {
		c, err := primebmp.Hex(hex)
		if err != nil {
			return primebmp.Color{}, fmt.Errorf("--%s-color: %w", prefix, err)
		}
		return c, nil
	}
	r, _ := f.GetUint8(prefix + "-red")
	g, _ := f.GetUint8(prefix + "-green")
	b, _ := f.GetUint8(prefix + "-blue")
	return primebmp.RGB(r, g, b), nil
}

// parseMethod maps --method to a variant. Names go through ParseVariant.
// Numbers 2, 3 and 4 select their variant; any other number falls back to
// optimized-parallel, which keeps older scripts working.
func parseMethod(s string) (primebmp.Variant, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return primebmp.ParseVariant(s)
	}

	v := primebmp.Variant(n)
	if n < 1 || n > 4 {
		primebmp.Logger().Warn("unknown method number, using default",
			"method", n, "default", primebmp.DefaultVariant)
		v = primebmp.DefaultVariant
	}
	return v, nil
}

// outputName appends ".bmp" unless name already ends with it.
func outputName(name string) string {
	if len(name) > len(".bmp") && strings.HasSuffix(name, ".bmp") {
		return name
	}
	return name + ".bmp"
}
