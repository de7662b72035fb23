package primebmp

import "github.com/gogpu/primebmp/internal/color"

// Defaults used when an option is not supplied.
const (
	DefaultVariant = OptimizedParallel
	DefaultWorkers = 1
)

// Option configures a Renderer during creation.
//
// Example:
//
//	r, err := primebmp.New(640, 480,
//	    primebmp.WithVariant(primebmp.OptimizedParallel),
//	    primebmp.WithWorkers(runtime.NumCPU()),
//	    primebmp.WithPrimeColor(primebmp.RGB(255, 200, 0)),
//	)
type Option func(*Config)

// Config is the full parameter set of one render.
type Config struct {
	Width          int
	Height         int
	PrimeColor     Color
	CompositeColor Color
	Variant        Variant

	// Workers is the size of the worker pool used by parallel variants.
	// Sequential variants ignore it, but it must still be positive.
	Workers int
}

// defaultConfig returns the configuration used before options apply.
func defaultConfig(width, height int) Config {
	return Config{
		Width:          width,
		Height:         height,
		PrimeColor:     color.White,
		CompositeColor: color.Black,
		Variant:        DefaultVariant,
		Workers:        DefaultWorkers,
	}
}

// WithVariant selects the classification strategy.
func WithVariant(v Variant) Option {
	return func(c *Config) {
		c.Variant = v
	}
}

// WithWorkers sets the worker pool size for parallel variants.
// The pool is created with exactly n goroutines; n must be positive.
func WithWorkers(n int) Option {
	return func(c *Config) {
		c.Workers = n
	}
}

// WithPrimeColor sets the color of pixels whose integer is prime.
func WithPrimeColor(col Color) Option {
	return func(c *Config) {
		c.PrimeColor = col
	}
}

// WithCompositeColor sets the color of pixels whose integer is not prime.
func WithCompositeColor(col Color) Option {
	return func(c *Config) {
		c.CompositeColor = col
	}
}
