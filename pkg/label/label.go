// Package label generates printable barcode labels for catalog variants.
package label

import (
	"bytes"
	"fmt"
	"image/png"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
)

// Options controls the rendered label size in pixels.
type Options struct {
	Width  int
	Height int
}

// DefaultOptions fits a 38x25mm label roll at 203dpi.
var DefaultOptions = Options{Width: 300, Height: 120}

// CODE128PNG encodes value as a CODE128 barcode and returns it as a PNG.
func CODE128PNG(value string, opts Options) ([]byte, error) {
	if value == "" {
		return nil, fmt.Errorf("label: barcode value is empty")
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		opts = DefaultOptions
	}

	code, err := code128.Encode(value)
	if err != nil {
		return nil, fmt.Errorf("label: failed to encode %q: %w", value, err)
	}

	scaled, err := barcode.Scale(code, opts.Width, opts.Height)
	if err != nil {
		return nil, fmt.Errorf("label: failed to scale barcode: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return nil, fmt.Errorf("label: failed to encode png: %w", err)
	}
	return buf.Bytes(), nil
}
