// color.go — solid image creation.
package generator

import (
	"image"
	"image/color"
	"image/draw"
)

// NewSolidImage creates a uniform solid-color image using draw.Draw.
func NewSolidImage(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{c}, image.Point{}, draw.Src)
	return img
}
