package primebmp

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gogpu/primebmp/internal/prime"
)

// ErrUnknownVariant is returned for a classification variant that is not
// one of the four defined strategies.
var ErrUnknownVariant = errors.New("primebmp: unknown classification variant")

// Variant selects the primality oracle and whether the range is classified
// on one goroutine or on the worker pool.
type Variant uint8

const (
	// OptimizedParallel runs the square-root-bounded oracle on the worker pool.
	OptimizedParallel Variant = iota + 1

	// NaiveParallel runs the naive oracle on the worker pool.
	NaiveParallel

	// OptimizedSequential runs the square-root-bounded oracle in order on the
	// calling goroutine.
	OptimizedSequential

	// NaiveSequential runs the naive oracle in order on the calling goroutine.
	NaiveSequential
)

var variantNames = map[Variant]string{
	OptimizedParallel:   "optimized-parallel",
	NaiveParallel:       "naive-parallel",
	OptimizedSequential: "optimized-sequential",
	NaiveSequential:     "naive-sequential",
}

// Variants lists every defined variant.
func Variants() []Variant {
	return []Variant{OptimizedParallel, NaiveParallel, OptimizedSequential, NaiveSequential}
}

// String implements fmt.Stringer.
func (v Variant) String() string {
	if name, ok := variantNames[v]; ok {
		return name
	}
	return fmt.Sprintf("Variant(%d)", uint8(v))
}

// Valid reports whether v is one of the defined variants.
func (v Variant) Valid() bool {
	_, ok := variantNames[v]
	return ok
}

// Parallel reports whether v classifies on the worker pool.
func (v Variant) Parallel() bool {
	return v == OptimizedParallel || v == NaiveParallel
}

// Method returns the trial-division oracle used by v.
func (v Variant) Method() prime.Method {
	if v == NaiveParallel || v == NaiveSequential {
		return prime.Naive
	}
	return prime.Optimized
}

// ParseVariant parses a variant name such as "optimized-parallel".
// Matching is case-insensitive; anything else is ErrUnknownVariant.
func ParseVariant(s string) (Variant, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for v, n := range variantNames {
		if n == name {
			return v, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownVariant, s)
}

// MarshalText implements encoding.TextMarshaler.
func (v Variant) MarshalText() ([]byte, error) {
	if !v.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownVariant, uint8(v))
	}
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Variant) UnmarshalText(text []byte) error {
	parsed, err := ParseVariant(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
