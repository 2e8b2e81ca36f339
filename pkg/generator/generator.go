// Package generator writes rendered icons to disk as PNG and reports how the
// result compares with the size budget.
//
// All output follows one pipeline: an image.Image is produced first, then
// encoded with best compression, written, and measured back from the file
// system.
package generator

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
)

// DefaultOutput is the file the icon is written to when no path is given.
const DefaultOutput = "app-icon-512.png"

// DefaultLimit is the size budget for a single icon file (1MB).
const DefaultLimit int64 = 1024 * 1024

// Options holds export parameters. The zero value uses the defaults.
type Options struct {
	Limit       int64                // size budget in bytes (default: DefaultLimit)
	Compression png.CompressionLevel // default: png.BestCompression
}

func (o Options) limit() int64 {
	if o.Limit <= 0 {
		return DefaultLimit
	}
	return o.Limit
}

func (o Options) encoder() *png.Encoder {
	level := o.Compression
	if level == png.DefaultCompression {
		level = png.BestCompression
	}
	return &png.Encoder{CompressionLevel: level}
}

// Export encodes img as PNG at output and returns a report built from the
// size the file system reports for the written file.
func Export(output string, img image.Image, opts Options) (*Report, error) {
	if output == "" {
		output = DefaultOutput
	}
	if err := writePNG(output, img, opts.encoder()); err != nil {
		return nil, err
	}

	info, err := os.Stat(output)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", output, err)
	}

	b := img.Bounds()
	return &Report{
		Path:   output,
		Bytes:  info.Size(),
		Width:  b.Dx(),
		Height: b.Dy(),
		Format: "PNG",
		Limit:  opts.limit(),
	}, nil
}

// Encode writes img as PNG to w using the same encoder settings as Export.
// This is useful for in-memory generation (e.g. HTTP responses).
func Encode(w io.Writer, img image.Image, opts Options) error {
	if err := opts.encoder().Encode(w, img); err != nil {
		return fmt.Errorf("encode PNG: %w", err)
	}
	return nil
}

// EncodeBytes is Encode into a fresh buffer.
func EncodeBytes(img image.Image, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, img, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
