// Package icon draws the BuyRight application icon: a white house outline
// with a checkmark, on the brand green.
package icon

import (
	"image"
	"image/color"

	"github.com/buyright/appicon/pkg/canvas"
)

// Size is the edge length of the master icon in pixels.
const Size = 512

// Palette.
var (
	Brand  = color.RGBA{88, 204, 2, 255}    // #58CC02
	Ink    = color.RGBA{255, 255, 255, 255} // house and checkmark
	Edge   = color.NRGBA{70, 160, 0, 0}     // vignette; alpha set per ring
	Shadow = color.NRGBA{60, 140, 0, 120}
)

// Options tunes rendering. The zero value renders the reference icon.
type Options struct {
	Mode canvas.Mode
}

// Render draws the master icon at Size×Size.
func Render(opts Options) *image.RGBA {
	l := NewLayout(Size)
	c := canvas.New(l.Size, l.Size, Brand)
	c.SetMode(opts.Mode)

	drawVignette(c, l)
	drawHouse(c, l)
	drawCheck(c, l)

	return c.Image()
}

// drawVignette darkens the border with nested 1px outlines whose alpha grows
// linearly from 0 at the edge.
func drawVignette(c *canvas.Canvas, l Layout) {
	for i := range l.Vignette {
		col := Edge
		col.A = uint8(20 * i / l.Vignette)
		c.Rectangle(canvas.Box(i, i, l.Size-i-1, l.Size-i-1), canvas.Style{Outline: col, Width: 1})
	}
}

func drawHouse(c *canvas.Canvas, l Layout) {
	c.Rectangle(l.House, canvas.Style{Outline: Ink, Width: HouseWidth})
	c.Polygon(l.Roof[:], canvas.Style{Outline: Ink, Width: HouseWidth})

	c.Rectangle(l.Door, canvas.Style{Outline: Ink, Width: DetailWidth})
	c.Ellipse(l.Handle, canvas.Style{Fill: Ink})

	for _, w := range l.Windows {
		c.Rectangle(w.Frame, canvas.Style{Outline: Ink, Width: DetailWidth})
		c.Line(w.Vertical[0], w.Vertical[1], Ink, MullionWidth)
		c.Line(w.Horizontal[0], w.Horizontal[1], Ink, MullionWidth)
	}

	// Filled with the background so it masks the roof stroke behind it.
	c.Rectangle(l.Chimney, canvas.Style{Fill: Brand, Outline: Ink, Width: DetailWidth})
}

// drawCheck draws the glyph and then its offset shadow. The shadow lands on
// top of the glyph; existing icons ship with that order.
func drawCheck(c *canvas.Canvas, l Layout) {
	k := l.Check
	c.Line(k[0], k[1], Ink, CheckWidth)
	c.Line(k[1], k[2], Ink, CheckWidth)

	d := l.ShadowShift
	c.Line(k[0].Add(d), k[1].Add(d), Shadow, CheckWidth)
	c.Line(k[1].Add(d), k[2].Add(d), Shadow, CheckWidth)
}
