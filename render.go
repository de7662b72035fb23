package primebmp

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/gogpu/primebmp/internal/bmp"
	"github.com/gogpu/primebmp/internal/image"
	"github.com/gogpu/primebmp/internal/parallel"
	"github.com/gogpu/primebmp/internal/prime"
)

// Renderer turns the primality of 1..width*height into a bitmap.
//
// A Renderer holds only validated configuration; every call classifies from
// scratch, and parallel variants start and stop their own worker pool. It is
// safe to use one Renderer from several goroutines.
type Renderer struct {
	cfg Config
}

// Stats describes a finished render.
type Stats struct {
	Width   int
	Height  int
	N       uint32 // integers classified (width*height)
	Primes  int
	Bytes   int64 // bytes written to the sink
	Variant Variant
	Workers int
	Elapsed time.Duration
}

// New validates the parameters of a width x height render and returns a
// Renderer for them. Nothing is computed until a render method is called.
func New(width, height int, opts ...Option) (*Renderer, error) {
	cfg := defaultConfig(width, height)
	for _, opt := range opts {
		opt(&cfg)
	}

	if _, err := bmp.EncodedSize(cfg.Width, cfg.Height); err != nil {
		return nil, err
	}
	if uint64(cfg.Width)*uint64(cfg.Height) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %dx%d pixels exceed the 32-bit range", ErrTooLarge, cfg.Width, cfg.Height)
	}
	if !cfg.Variant.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownVariant, uint8(cfg.Variant))
	}
	if cfg.Workers <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidWorkers, cfg.Workers)
	}

	return &Renderer{cfg: cfg}, nil
}

// Config returns the validated configuration.
func (r *Renderer) Config() Config {
	return r.cfg
}

// N returns the number of integers classified: width*height.
func (r *Renderer) N() uint32 {
	return uint32(r.cfg.Width * r.cfg.Height)
}

// Classify returns the classification of 1..N using the configured variant.
func (r *Renderer) Classify() ([]prime.Class, error) {
	n := r.N()
	m := r.cfg.Variant.Method()

	if !r.cfg.Variant.Parallel() {
		return prime.Classify(n, m), nil
	}

	pool, err := parallel.NewWorkerPool(r.cfg.Workers)
	if err != nil {
		return nil, err
	}
	defer pool.Close()

	return prime.ClassifyParallel(pool, n, m), nil
}

// Image classifies 1..N and maps the result onto a row-major pixel buffer.
func (r *Renderer) Image() (*image.RGBBuf, error) {
	buf, _, err := r.image()
	return buf, err
}

func (r *Renderer) image() (*image.RGBBuf, int, error) {
	classes, err := r.Classify()
	if err != nil {
		return nil, 0, err
	}
	buf, err := image.MapClasses(classes, r.cfg.Width, r.cfg.Height, r.cfg.PrimeColor, r.cfg.CompositeColor)
	if err != nil {
		return nil, 0, err
	}
	return buf, prime.Count(classes), nil
}

// Render classifies, maps and encodes the image to w.
func (r *Renderer) Render(w io.Writer) (*Stats, error) {
	start := time.Now()

	buf, primes, err := r.image()
	if err != nil {
		return nil, err
	}

	cw := &countingWriter{w: w}
	if err := bmp.EncodeBuf(cw, buf); err != nil {
		return nil, err
	}

	stats := &Stats{
		Width:   r.cfg.Width,
		Height:  r.cfg.Height,
		N:       r.N(),
		Primes:  primes,
		Bytes:   cw.n,
		Variant: r.cfg.Variant,
		Workers: r.cfg.Workers,
		Elapsed: time.Since(start),
	}

	Logger().Info("primebmp: rendered",
		"width", stats.Width,
		"height", stats.Height,
		"variant", stats.Variant,
		"workers", stats.Workers,
		"primes", stats.Primes,
		"bytes", stats.Bytes,
		"elapsed", stats.Elapsed)

	return stats, nil
}

// RenderFile renders to a newly created file at path.
//
// Output goes through a buffered writer that is flushed before the file is
// closed. If any step fails the partial file is removed and the error is
// returned, joined with any close error.
func (r *Renderer) RenderFile(path string) (stats *Stats, err error) {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("primebmp: create output: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("primebmp: close output: %w", cerr))
		}
		if err != nil {
			stats = nil
			if rerr := os.Remove(f.Name()); rerr != nil && !errors.Is(rerr, os.ErrNotExist) {
				Logger().Warn("primebmp: remove partial output", "path", f.Name(), "err", rerr)
			}
		}
	}()

	bw := bufio.NewWriter(f)
	stats, err = r.Render(bw)
	if err != nil {
		return nil, err
	}
	if err := bw.Flush(); err != nil {
		return nil, fmt.Errorf("primebmp: flush output: %w", err)
	}
	return stats, nil
}

// countingWriter counts bytes successfully written to w.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
