package icon

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/buyright/appicon/pkg/canvas"
)

func TestRenderDimensions(t *testing.T) {
	img := Render(Options{})
	if got := img.Bounds(); got != image.Rect(0, 0, 512, 512) {
		t.Fatalf("Bounds = %v, want 512x512", got)
	}
}

func TestRenderDeterministic(t *testing.T) {
	a := Render(Options{})
	b := Render(Options{})
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Fatal("two renders produced different pixels")
	}
}

func TestLayoutReference(t *testing.T) {
	l := NewLayout(Size)

	tests := []struct {
		name string
		got  image.Rectangle
		want image.Rectangle
	}{
		{"house", l.House, canvas.Box(128, 236, 384, 404)},
		{"door", l.Door, canvas.Box(236, 324, 276, 404)},
		{"handle", l.Handle, canvas.Box(261, 361, 267, 367)},
		{"window-left", l.Windows[0].Frame, canvas.Box(163, 276, 198, 311)},
		{"window-right", l.Windows[1].Frame, canvas.Box(314, 276, 349, 311)},
		{"chimney", l.Chimney, canvas.Box(334, 148, 359, 208)},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}

	if l.Roof[1] != image.Pt(256, 118) {
		t.Errorf("roof apex = %v, want (256,118)", l.Roof[1])
	}
	if l.Check != [3]image.Point{{389, 409}, {409, 429}, {454, 384}} {
		t.Errorf("check = %v", l.Check)
	}
	if l.Vignette != 64 {
		t.Errorf("Vignette = %d, want 64", l.Vignette)
	}
}

func TestLayoutWithinCanvas(t *testing.T) {
	l := NewLayout(Size)
	frame := image.Rect(0, 0, Size, Size)
	for name, r := range l.Bounds() {
		if r.Empty() {
			t.Errorf("%s: empty bounds", name)
		}
		if !r.In(frame) {
			t.Errorf("%s: %v outside %v", name, r, frame)
		}
	}
}

func TestRenderPixels(t *testing.T) {
	img := Render(Options{})

	tests := []struct {
		name string
		p    image.Point
		want color.RGBA
	}{
		{"open wall", image.Pt(256, 300), Brand},
		{"left wall", image.Pt(130, 300), Ink},
		{"base top", image.Pt(200, 240), Ink},
		{"roof stroke", image.Pt(180, 184), Ink},
		{"above roof", image.Pt(180, 177), Brand},
		{"door frame", image.Pt(237, 360), Ink},
		{"door inside", image.Pt(250, 360), Brand},
		{"handle", image.Pt(264, 364), Ink},
		{"mullion crossing", image.Pt(180, 293), Ink},
		{"mullion", image.Pt(170, 293), Ink},
		{"pane", image.Pt(170, 283), Brand},
		{"chimney frame", image.Pt(335, 178), Ink},
		{"chimney inside", image.Pt(346, 178), Brand},
		{"check clear of shadow", image.Pt(428, 404), Ink},
	}
	for _, tt := range tests {
		if got := img.RGBAAt(tt.p.X, tt.p.Y); got != tt.want {
			t.Errorf("%s %v = %v, want %v", tt.name, tt.p, got, tt.want)
		}
	}
}

func TestShadowDrawnOverCheck(t *testing.T) {
	img := Render(Options{})

	// On the long stroke's centreline and inside the shadow stroke.
	got := color.NRGBAModel.Convert(img.At(431, 407)).(color.NRGBA)
	if !near(got, Shadow, 2) {
		t.Errorf("overlap pixel = %v, want about %v", got, Shadow)
	}
}

func TestVignetteReplace(t *testing.T) {
	img := Render(Options{})

	if a := img.RGBAAt(0, 0).A; a != 0 {
		t.Errorf("corner alpha = %d, want 0", a)
	}
	if a := img.RGBAAt(10, 256).A; a != 3 {
		t.Errorf("ring 10 alpha = %d, want 3", a)
	}
	if a := img.RGBAAt(63, 256).A; a != 19 {
		t.Errorf("ring 63 alpha = %d, want 19", a)
	}
	if got := img.RGBAAt(64, 256); got != Brand {
		t.Errorf("inside vignette = %v, want %v", got, Brand)
	}
}

func TestBlendKeepsOpaque(t *testing.T) {
	img := Render(Options{Mode: canvas.Blend})

	if got := img.RGBAAt(0, 0); got != Brand {
		t.Errorf("corner = %v, want %v", got, Brand)
	}
	for _, p := range []image.Point{{10, 256}, {431, 407}, {63, 63}} {
		if a := img.RGBAAt(p.X, p.Y).A; a != 255 {
			t.Errorf("pixel %v alpha = %d, want 255", p, a)
		}
	}
	// Shadow over white lands between the two.
	got := img.RGBAAt(431, 407)
	if got == Ink || got.R < 150 || got.R > 175 {
		t.Errorf("blended overlap = %v", got)
	}
}

func near(a, b color.NRGBA, tol int) bool {
	d := func(x, y uint8) bool {
		v := int(x) - int(y)
		return v >= -tol && v <= tol
	}
	return d(a.R, b.R) && d(a.G, b.G) && d(a.B, b.B) && d(a.A, b.A)
}
