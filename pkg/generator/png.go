// png.go — PNG file writer.
package generator

import (
	"fmt"
	"image"
	"image/png"
	"os"
)

// writePNG encodes img to a PNG file at the given path. The file is
// truncated and fully rewritten on every call.
func writePNG(output string, img image.Image, enc *png.Encoder) error {
	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("create %s: %w", output, err)
	}

	if err := enc.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode PNG: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", output, err)
	}
	return nil
}
