// Package preview lays icon variants side by side on one sheet, each
// captioned with its pixel size, for a quick visual check of the set.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/buyright/appicon/pkg/generator"
)

// Options controls the sheet. Zero fields take the defaults below.
type Options struct {
	Background color.Color // default #1a1a2e
	Label      color.Color // default white
	Padding    int         // default 24
	FontSize   float64     // default 16
	FontPath   string      // custom TTF; embedded Go Regular otherwise
}

func (o *Options) applyDefaults() {
	if o.Background == nil {
		o.Background = color.RGBA{0x1a, 0x1a, 0x2e, 0xff}
	}
	if o.Label == nil {
		o.Label = color.White
	}
	if o.Padding <= 0 {
		o.Padding = 24
	}
	if o.FontSize <= 0 {
		o.FontSize = 16
	}
}

// Render builds the sheet. Images are placed left to right, top-aligned,
// and composited over the background so translucent edges stay visible.
func Render(images []image.Image, opts Options) (*image.RGBA, error) {
	if len(images) == 0 {
		return nil, fmt.Errorf("preview: no images")
	}
	opts.applyDefaults()

	fm, err := NewFontManager(opts.FontPath)
	if err != nil {
		return nil, err
	}
	face, err := fm.Face(opts.FontSize)
	if err != nil {
		return nil, err
	}
	defer face.Close()

	metrics := face.Metrics()
	labelH := (metrics.Ascent + metrics.Descent).Ceil()

	pad := opts.Padding
	width, tallest := pad, 0
	for _, img := range images {
		b := img.Bounds()
		width += b.Dx() + pad
		tallest = max(tallest, b.Dy())
	}
	height := pad + tallest + pad/2 + labelH + pad

	sheet := generator.NewSolidImage(width, height, opts.Background)

	x := pad
	for _, img := range images {
		b := img.Bounds()
		dst := image.Rect(x, pad, x+b.Dx(), pad+b.Dy())
		draw.Draw(sheet, dst, img, b.Min, draw.Over)

		label := fmt.Sprintf("%dx%d", b.Dx(), b.Dy())
		adv := font.MeasureString(face, label).Ceil()
		lx := x + (b.Dx()-adv)/2
		ly := pad + tallest + pad/2 + metrics.Ascent.Ceil()
		drawString(sheet, label, lx, ly, opts.Label, face)

		x += b.Dx() + pad
	}
	return sheet, nil
}

// drawString draws text with its baseline at y.
func drawString(img *image.RGBA, text string, x, y int, col color.Color, face font.Face) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}
