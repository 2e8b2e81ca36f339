// path.go — sub-path builders feeding the rasterizer.
//
// The rasterizer accumulates signed coverage, so overlapping sub-paths of the
// same winding merge into a union while opposite windings cancel. Every
// builder here therefore emits a known winding.
package canvas

import (
	"image"
	"math"

	"golang.org/x/image/math/f32"
	"golang.org/x/image/vector"
)

// kappa places cubic control points for a quarter-circle approximation.
const kappa = 0.5522847498307936

func toVec(p image.Point) f32.Vec2 {
	x, y := centre(p)
	return f32.Vec2{x, y}
}

// addSegment adds the rectangle of half-width half around a→b.
func addSegment(z *vector.Rasterizer, a, b f32.Vec2, half float32) {
	dx, dy := b[0]-a[0], b[1]-a[1]
	l := float32(math.Hypot(float64(dx), float64(dy)))
	if l == 0 {
		return
	}
	nx, ny := -dy/l*half, dx/l*half

	addConvex(z, []f32.Vec2{
		{a[0] + nx, a[1] + ny},
		{b[0] + nx, b[1] + ny},
		{b[0] - nx, b[1] - ny},
		{a[0] - nx, a[1] - ny},
	})
}

// addEllipse adds an ellipse from four cubic arcs. The arc order used for
// positive winding runs right, bottom, left, top in image coordinates.
func addEllipse(z *vector.Rasterizer, cx, cy, rx, ry float32, positive bool) {
	ox, oy := rx*kappa, ry*kappa
	if !positive {
		oy, ry = -oy, -ry
	}
	z.MoveTo(cx+rx, cy)
	z.CubeTo(cx+rx, cy+oy, cx+ox, cy+ry, cx, cy+ry)
	z.CubeTo(cx-ox, cy+ry, cx-rx, cy+oy, cx-rx, cy)
	z.CubeTo(cx-rx, cy-oy, cx-ox, cy-ry, cx, cy-ry)
	z.CubeTo(cx+ox, cy-ry, cx+rx, cy-oy, cx+rx, cy)
	z.ClosePath()
}

// addConvex adds pts with positive winding regardless of input order.
func addConvex(z *vector.Rasterizer, pts []f32.Vec2) {
	if signedArea(pts) < 0 {
		reverse(pts)
	}
	addPolygon(z, pts)
}

func addPolygon(z *vector.Rasterizer, pts []f32.Vec2) {
	z.MoveTo(pts[0][0], pts[0][1])
	for _, p := range pts[1:] {
		z.LineTo(p[0], p[1])
	}
	z.ClosePath()
}

// signedArea is twice the shoelace area; positive for the winding the
// builders above emit.
func signedArea(pts []f32.Vec2) float32 {
	var s float32
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		s += p[0]*q[1] - q[0]*p[1]
	}
	return s
}

func reverse(pts []f32.Vec2) {
	for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
		pts[i], pts[j] = pts[j], pts[i]
	}
}

// inset returns pts, wound positively, with every edge moved d inward. It
// reports false when the polygon is too small to hold the inset.
func inset(pts []f32.Vec2, d float32) ([]f32.Vec2, bool) {
	n := len(pts)
	type edge struct{ p, dir f32.Vec2 }
	edges := make([]edge, n)
	for i, a := range pts {
		b := pts[(i+1)%n]
		dx, dy := b[0]-a[0], b[1]-a[1]
		l := float32(math.Hypot(float64(dx), float64(dy)))
		if l == 0 {
			return nil, false
		}
		// Interior lies on the left of a positively wound edge.
		nx, ny := -dy/l*d, dx/l*d
		edges[i] = edge{f32.Vec2{a[0] + nx, a[1] + ny}, f32.Vec2{dx, dy}}
	}

	out := make([]f32.Vec2, n)
	for i := range out {
		e0, e1 := edges[(i+n-1)%n], edges[i]
		den := cross(e1.dir, e0.dir)
		if den == 0 {
			out[i] = e1.p
			continue
		}
		t := cross(e1.dir, f32.Vec2{e1.p[0] - e0.p[0], e1.p[1] - e0.p[1]}) / den
		out[i] = f32.Vec2{e0.p[0] + t*e0.dir[0], e0.p[1] + t*e0.dir[1]}
	}
	if signedArea(out) <= 0 {
		return nil, false
	}
	return out, true
}

func cross(a, b f32.Vec2) float32 { return a[0]*b[1] - a[1]*b[0] }
