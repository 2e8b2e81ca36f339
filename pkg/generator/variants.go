// variants.go — downscaled copies of the master icon for PWA and Android.
package generator

import (
	"fmt"
	"image"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	xdraw "golang.org/x/image/draw"
)

// DefaultSizes are the launcher and manifest sizes the app ships.
var DefaultSizes = []int{72, 96, 128, 144, 152, 192, 384, 512}

// MaxSize caps requested variant sizes.
const MaxSize = 2048

// VariantName is the file name used for a size×size variant.
func VariantName(size int) string {
	return fmt.Sprintf("icon-%dx%d.png", size, size)
}

// Scale resamples src into a new size×size image with Catmull-Rom. A source
// already at that size is copied unchanged.
func Scale(src image.Image, size int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	sb := src.Bounds()
	if sb.Dx() == size && sb.Dy() == size {
		xdraw.Copy(dst, image.Point{}, src, sb, xdraw.Src, nil)
		return dst
	}
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, sb, xdraw.Src, nil)
	return dst
}

// ExportSet writes one VariantName file per size into dir and returns the
// reports in the same order.
func ExportSet(dir string, src image.Image, sizes []int, opts Options) ([]*Report, error) {
	reports := make([]*Report, 0, len(sizes))
	for _, size := range sizes {
		out := filepath.Join(dir, VariantName(size))
		r, err := Export(out, Scale(src, size), opts)
		if err != nil {
			return reports, fmt.Errorf("variant %d: %w", size, err)
		}
		reports = append(reports, r)
	}
	return reports, nil
}

// ParseSizes parses a comma-separated size list. "default" yields
// DefaultSizes and an empty string yields nil.
func ParseSizes(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	switch s {
	case "":
		return nil, nil
	case "default":
		return slices.Clone(DefaultSizes), nil
	}

	var sizes []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid size %q: %w", part, err)
		}
		if n < 1 || n > MaxSize {
			return nil, fmt.Errorf("size %d out of range 1..%d", n, MaxSize)
		}
		if slices.Contains(sizes, n) {
			return nil, fmt.Errorf("duplicate size %d", n)
		}
		sizes = append(sizes, n)
	}
	return sizes, nil
}
