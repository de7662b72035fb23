package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/primebmp/internal/bmp"
	"github.com/gogpu/primebmp/internal/image"
)

func newIdentifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "identify [file]",
		Short: "Inspect a BMP header and check the file decodes",
		Args:  cobra.ExactArgs(1),
		RunE:  runIdentify,
	}
}

func runIdentify(cmd *cobra.Command, args []string) error {
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	h, err := bmp.ReadHeader(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	img, err := image.DecodeBMPBytes(data)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}

	p := printer()
	out := cmd.OutOrStdout()
	p.Fprintf(out, "File:        %s\n", path)
	p.Fprintf(out, "Dimensions:  %d x %d\n", h.Width, h.Height)
	p.Fprintf(out, "Bits/pixel:  %d\n", h.BitCount)
	p.Fprintf(out, "Row padding: %d bytes\n", bmp.RowPadding(int(h.Width)))
	p.Fprintf(out, "File size:   %d bytes (header says %d)\n", len(data), h.FileSize)
	p.Fprintf(out, "Colors:      %d distinct\n", distinctColors(img))
	if uint32(len(data)) != h.FileSize {
		return fmt.Errorf("%s: header file size %d does not match actual size %d", path, h.FileSize, len(data))
	}
	return nil
}

// distinctColors counts the different pixel values in img.
func distinctColors(img *image.RGBBuf) int {
	seen := make(map[[3]byte]struct{})
	for _, c := range img.Pixels() {
		seen[c.BGR()] = struct{}{}
	}
	return len(seen)
}
