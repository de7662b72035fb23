package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/primebmp"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() { primebmp.SetLogger(nil) })

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestOutputName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"output.bmp", "output.bmp"},
		{"primes", "primes.bmp"},
		{"a.png", "a.png.bmp"},
		{".bmp", ".bmp.bmp"},
		{"x.bmp", "x.bmp"},
		{"dir/out.bmp", "dir/out.bmp"},
	}
	for _, tt := range tests {
		assert.Equalf(t, tt.want, outputName(tt.in), "outputName(%q)", tt.in)
	}
}

func TestParseMethod(t *testing.T) {
	tests := []struct {
		in   string
		want primebmp.Variant
	}{
		{"1", primebmp.OptimizedParallel},
		{"2", primebmp.NaiveParallel},
		{"3", primebmp.OptimizedSequential},
		{"4", primebmp.NaiveSequential},
		{"0", primebmp.OptimizedParallel},
		{"9", primebmp.OptimizedParallel},
		{"-3", primebmp.OptimizedParallel},
		{"naive-sequential", primebmp.NaiveSequential},
	}
	for _, tt := range tests {
		got, err := parseMethod(tt.in)
		require.NoErrorf(t, err, "parseMethod(%q)", tt.in)
		assert.Equalf(t, tt.want, got, "parseMethod(%q)", tt.in)
	}

	_, err := parseMethod("fastest")
	assert.ErrorIs(t, err, primebmp.ErrUnknownVariant)
}

func TestRenderCmd(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "primes")

	out, err := execute(t, "render", name, "-W", "10", "-H", "10", "-j", "3", "-m", "2",
		"--prime-color", "#ff0000", "--composite-blue", "200")
	require.NoError(t, err)
	assert.Contains(t, out, "25 primes")
	assert.Contains(t, out, "naive-parallel")

	data, err := os.ReadFile(name + ".bmp")
	require.NoError(t, err)
	assert.Len(t, data, 54+10*32)

	// Pixel for 1 (composite) sits at the start of the last stored row.
	first := 54 + 9*32
	assert.Equal(t, []byte{200, 0, 0}, data[first:first+3])
	// Pixel for 2 (prime) follows it.
	assert.Equal(t, []byte{0, 0, 255}, data[first+3:first+6])
}

func TestRenderCmd_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := execute(t, "render", filepath.Join(dir, "a"), "-W", "0")
	assert.ErrorIs(t, err, primebmp.ErrInvalidDimensions)

	_, err = execute(t, "render", filepath.Join(dir, "b"), "-j", "-1")
	assert.ErrorIs(t, err, primebmp.ErrInvalidWorkers)

	_, err = execute(t, "render", filepath.Join(dir, "c"), "-m", "bogus")
	assert.ErrorIs(t, err, primebmp.ErrUnknownVariant)

	_, err = execute(t, "render", filepath.Join(dir, "d"), "--prime-color", "nothex")
	assert.Error(t, err)

	_, err = execute(t, "render", "a", "b")
	assert.Error(t, err)
}

func TestVerifyCmd(t *testing.T) {
	out, err := execute(t, "verify", "--n", "10000", "-j", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "1,229 primes")
	assert.Contains(t, out, "1..10,000")
}

func TestIdentifyCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "id.bmp")
	_, err := execute(t, "render", path, "-W", "5", "-H", "3")
	require.NoError(t, err)

	out, err := execute(t, "identify", path)
	require.NoError(t, err)
	assert.Contains(t, out, "5 x 3")
	assert.Contains(t, out, "Row padding: 1 bytes")
	assert.Contains(t, out, "Colors:      2 distinct")
}

func TestIdentifyCmd_NotBMP(t *testing.T) {
	path := filepath.Join(t.TempDir(), "junk.bmp")
	require.NoError(t, os.WriteFile(path, bytes.Repeat([]byte{'x'}, 64), 0o644))

	_, err := execute(t, "identify", path)
	assert.Error(t, err)
}
