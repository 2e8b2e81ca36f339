// Package canvas provides a fixed-size RGBA drawing surface with the few
// primitives needed to draw flat icons: rectangles, polygons, thick lines and
// ellipses.
//
// Points name pixel centres, so Point{10, 4} is the centre of pixel (10, 4).
// Rectangles are half-open image.Rectangles; use Box to build one from
// inclusive corner coordinates.
package canvas

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strings"

	"golang.org/x/image/math/f32"
	"golang.org/x/image/vector"
)

// Mode selects how shapes are written into the pixel buffer.
type Mode int

const (
	// Replace writes the shape colour into the covered pixels in place of
	// what was there. The buffer is premultiplied, so a translucent colour
	// is stored with its RGB scaled by alpha and alpha 0 stores transparent
	// black.
	Replace Mode = iota
	// Blend composites the shape over the pixels already there.
	Blend
)

// ParseMode accepts "replace" or "blend". Empty string is Replace.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "replace":
		return Replace, nil
	case "blend":
		return Blend, nil
	default:
		return Replace, fmt.Errorf("invalid mode %q: use replace or blend", s)
	}
}

func (m Mode) String() string {
	if m == Blend {
		return "blend"
	}
	return "replace"
}

func (m Mode) op() draw.Op {
	if m == Blend {
		return draw.Over
	}
	return draw.Src
}

// Style describes how a closed shape is painted. A nil colour skips that part.
type Style struct {
	Fill    color.Color
	Outline color.Color
	Width   int // outline width in pixels
}

// Canvas is an RGBA pixel buffer plus the state needed to rasterise shapes.
type Canvas struct {
	img  *image.RGBA
	mode Mode
	z    *vector.Rasterizer
	mask *image.Alpha // coverage of the path being painted
}

// New allocates a w×h canvas filled with bg.
func New(w, h int, bg color.Color) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	return &Canvas{
		img:  img,
		z:    vector.NewRasterizer(w, h),
		mask: image.NewAlpha(img.Bounds()),
	}
}

// SetMode changes the compositing mode for subsequent drawing calls.
func (c *Canvas) SetMode(m Mode) { c.mode = m }

// Bounds returns the canvas rectangle.
func (c *Canvas) Bounds() image.Rectangle { return c.img.Bounds() }

// Image returns the underlying pixel buffer. The canvas keeps drawing into
// the same buffer, so callers should stop drawing before handing it on.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Box converts inclusive corner coordinates into a half-open rectangle
// covering pixels x0..x1 and y0..y1.
func Box(x0, y0, x1, y1 int) image.Rectangle {
	r := image.Rect(x0, y0, x1, y1)
	r.Max = r.Max.Add(image.Pt(1, 1))
	return r
}

// Rectangle paints r. The outline is drawn inward from the edge of r, so a
// Width of 8 covers the outermost 8 pixels on every side.
func (c *Canvas) Rectangle(r image.Rectangle, s Style) {
	r = r.Canon()
	if s.Fill != nil {
		c.fillRect(r, s.Fill)
	}
	if s.Outline == nil || s.Width <= 0 {
		return
	}

	w := s.Width
	if 2*w >= r.Dx() || 2*w >= r.Dy() {
		c.fillRect(r, s.Outline)
		return
	}

	// Four disjoint bands so Blend never composites a pixel twice.
	c.fillRect(image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+w), s.Outline)
	c.fillRect(image.Rect(r.Min.X, r.Max.Y-w, r.Max.X, r.Max.Y), s.Outline)
	c.fillRect(image.Rect(r.Min.X, r.Min.Y+w, r.Min.X+w, r.Max.Y-w), s.Outline)
	c.fillRect(image.Rect(r.Max.X-w, r.Min.Y+w, r.Max.X, r.Max.Y-w), s.Outline)
}

func (c *Canvas) fillRect(r image.Rectangle, col color.Color) {
	r = r.Intersect(c.img.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(c.img, r, image.NewUniform(col), image.Point{}, c.mode.op())
}

// Polygon paints the closed convex polygon through pts. The outline is drawn
// inward from the edges, so a Width of 8 stays inside the filled area.
func (c *Canvas) Polygon(pts []image.Point, s Style) {
	if len(pts) < 3 {
		return
	}
	outer := make([]f32.Vec2, len(pts))
	for i, p := range pts {
		outer[i] = toVec(p)
	}
	if signedArea(outer) < 0 {
		reverse(outer)
	}

	if s.Fill != nil {
		addPolygon(c.z, outer)
		c.paint(s.Fill)
	}
	if s.Outline == nil || s.Width <= 0 {
		return
	}

	addPolygon(c.z, outer)
	if inner, ok := inset(outer, float32(s.Width)); ok {
		reverse(inner)
		addPolygon(c.z, inner)
	}
	c.paint(s.Outline)
}

// Line paints a width-thick segment from a to b with flat ends.
func (c *Canvas) Line(a, b image.Point, col color.Color, width int) {
	if a == b {
		return
	}
	width = max(width, 1)
	addSegment(c.z, toVec(a), toVec(b), float32(width)/2)
	c.paint(col)
}

// Ellipse paints the ellipse inscribed in r.
func (c *Canvas) Ellipse(r image.Rectangle, s Style) {
	r = r.Canon()
	if r.Empty() {
		return
	}
	cx := float32(r.Min.X+r.Max.X) / 2
	cy := float32(r.Min.Y+r.Max.Y) / 2
	rx := float32(r.Dx()) / 2
	ry := float32(r.Dy()) / 2

	if s.Fill != nil {
		addEllipse(c.z, cx, cy, rx, ry, true)
		c.paint(s.Fill)
	}
	if s.Outline == nil || s.Width <= 0 {
		return
	}

	w := float32(s.Width)
	addEllipse(c.z, cx, cy, rx, ry, true)
	if rx > w && ry > w {
		// Opposite winding cancels the inner area, leaving a ring.
		addEllipse(c.z, cx, cy, rx-w, ry-w, false)
	}
	c.paint(s.Outline)
}

// paint flushes the accumulated path onto the image and clears it. The path
// is rasterised into a coverage mask first; compositing through the mask
// leaves pixels outside the path untouched in both modes.
func (c *Canvas) paint(col color.Color) {
	b := c.img.Bounds()
	c.z.DrawOp = draw.Src
	c.z.Draw(c.mask, b, image.Opaque, image.Point{})
	draw.DrawMask(c.img, b, image.NewUniform(col), image.Point{}, c.mask, b.Min, c.mode.op())
	c.z.Reset(b.Dx(), b.Dy())
}

func centre(p image.Point) (float32, float32) {
	return float32(p.X) + 0.5, float32(p.Y) + 0.5
}
