// layout.go — icon geometry derived from the canvas size.
package icon

import (
	"image"

	"github.com/buyright/appicon/pkg/canvas"
)

// Layout holds every shape position of the icon. All values are pure
// functions of Size.
type Layout struct {
	Size int

	// Vignette is the number of nested 1px outlines drawn from the edge.
	Vignette int

	House   image.Rectangle
	Roof    [3]image.Point
	Door    image.Rectangle
	Handle  image.Rectangle
	Windows [2]Window
	Chimney image.Rectangle

	Check       [3]image.Point // short stroke is Check[0]→Check[1], long is Check[1]→Check[2]
	ShadowShift image.Point
}

// Window is a square pane with a cross through its middle.
type Window struct {
	Frame      image.Rectangle
	Vertical   [2]image.Point
	Horizontal [2]image.Point
}

// Stroke widths.
const (
	HouseWidth   = 8
	DetailWidth  = 4
	MullionWidth = 2
	CheckWidth   = 12
)

// NewLayout computes the icon geometry for a size×size canvas.
func NewLayout(size int) Layout {
	l := Layout{Size: size, Vignette: size / 8}

	left := size / 4
	right := 3 * size / 4
	bottom := 3*size/4 + 20
	top := size/2 - 20
	l.House = canvas.Box(left, top, right, bottom)

	apex := image.Pt(size/2, size/4-10)
	l.Roof = [3]image.Point{
		{left - 15, top},
		apex,
		{right + 15, top},
	}

	const doorW, doorH = 40, 80
	doorLeft := apex.X - doorW/2
	doorRight := apex.X + doorW/2
	doorTop := bottom - doorH
	l.Door = canvas.Box(doorLeft, doorTop, doorRight, bottom)

	hx, hy := doorRight-12, doorTop+doorH/2
	l.Handle = canvas.Box(hx-3, hy-3, hx+3, hy+3)

	const pane = 35
	wy := top + 40
	for i, wx := range [2]int{left + 35, right - 35 - pane} {
		l.Windows[i] = Window{
			Frame: canvas.Box(wx, wy, wx+pane, wy+pane),
			Vertical: [2]image.Point{
				{wx + pane/2, wy},
				{wx + pane/2, wy + pane},
			},
			Horizontal: [2]image.Point{
				{wx, wy + pane/2},
				{wx + pane, wy + pane/2},
			},
		}
	}

	const chimneyW, chimneyH = 25, 60
	cx, cy := right-50, apex.Y+30
	l.Chimney = canvas.Box(cx, cy, cx+chimneyW, cy+chimneyH)

	c := image.Pt(3*size/4+30, 3*size/4+30)
	l.Check = [3]image.Point{
		c.Add(image.Pt(-25, -5)),
		c.Add(image.Pt(-5, 15)),
		c.Add(image.Pt(40, -30)),
	}
	l.ShadowShift = image.Pt(3, 3)

	return l
}

// Bounds returns the pixel extent of every shape the icon draws, keyed by a
// short name. Stroked lines are widened by half their width; the roof is
// stroked inward and needs no padding.
func (l Layout) Bounds() map[string]image.Rectangle {
	b := map[string]image.Rectangle{
		"vignette": canvas.Box(0, 0, l.Size-1, l.Size-1),
		"house":    l.House,
		"roof":     strokeBounds(l.Roof[:], 0),
		"door":     l.Door,
		"handle":   l.Handle,
		"chimney":  l.Chimney,
		"check":    strokeBounds(l.Check[:], CheckWidth),
		"shadow":   strokeBounds(shift(l.Check[:], l.ShadowShift), CheckWidth),
	}
	names := [2]string{"window-left", "window-right"}
	for i, w := range l.Windows {
		b[names[i]] = w.Frame
		b[names[i]+"-mullion"] = strokeBounds(append(w.Vertical[:], w.Horizontal[:]...), MullionWidth)
	}
	return b
}

func shift(pts []image.Point, d image.Point) []image.Point {
	out := make([]image.Point, len(pts))
	for i, p := range pts {
		out[i] = p.Add(d)
	}
	return out
}

// strokeBounds is the smallest rectangle holding every point's pixel plus
// width/2 pixels of stroke around it.
func strokeBounds(pts []image.Point, width int) image.Rectangle {
	var r image.Rectangle
	for i, p := range pts {
		pr := image.Rectangle{Min: p, Max: p.Add(image.Pt(1, 1))}
		if i == 0 {
			r = pr
			continue
		}
		r = r.Union(pr)
	}
	pad := (width + 1) / 2
	return r.Inset(-pad)
}
