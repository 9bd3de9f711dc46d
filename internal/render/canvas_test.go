package render

import (
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/font/basicfont"
)

func TestNewCanvasIsTransparent(t *testing.T) {
	c := NewCanvas(64, 32)
	w, h := c.Size()
	if w != 64 || h != 32 {
		t.Fatalf("Size() = %dx%d, want 64x32", w, h)
	}
	for _, p := range []image.Point{{0, 0}, {63, 31}, {32, 16}} {
		if got := c.Image().RGBAAt(p.X, p.Y); got != (color.RGBA{}) {
			t.Errorf("pixel %v = %v, want transparent", p, got)
		}
	}
}

func TestFillRoundedRect(t *testing.T) {
	c := NewCanvas(100, 100)
	c.FillRoundedRect(image.Rect(10, 10, 90, 90), 20, Teal)
	img := c.Image()

	tests := []struct {
		name   string
		p      image.Point
		filled bool
	}{
		{"center", image.Pt(50, 50), true},
		{"top edge middle", image.Pt(50, 10), true},
		{"left edge middle", image.Pt(10, 50), true},
		{"corner cut", image.Pt(11, 11), false},
		{"outside", image.Pt(5, 50), false},
		{"past right edge", image.Pt(90, 50), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := img.RGBAAt(tt.p.X, tt.p.Y)
			if tt.filled && got != (color.RGBA{R: 34, G: 180, B: 120, A: 0xFF}) {
				t.Errorf("pixel %v = %v, want teal", tt.p, got)
			}
			if !tt.filled && got.A != 0 {
				t.Errorf("pixel %v = %v, want transparent", tt.p, got)
			}
		})
	}
}

func TestStrokeRoundedRect(t *testing.T) {
	c := NewCanvas(100, 100)
	c.StrokeRoundedRect(image.Rect(10, 10, 90, 90), 12, 6, White)
	img := c.Image()

	if got := img.RGBAAt(12, 50); got.A != 0xFF {
		t.Errorf("stroke pixel = %v, want opaque", got)
	}
	if got := img.RGBAAt(50, 87); got.A != 0xFF {
		t.Errorf("stroke pixel = %v, want opaque", got)
	}
	if got := img.RGBAAt(50, 50); got.A != 0 {
		t.Errorf("center pixel = %v, want transparent", got)
	}
	if got := img.RGBAAt(20, 50); got.A != 0 {
		t.Errorf("pixel inside stroke = %v, want transparent", got)
	}
}

func TestStrokeWiderThanRectFills(t *testing.T) {
	c := NewCanvas(40, 40)
	c.StrokeRoundedRect(image.Rect(10, 10, 20, 20), 2, 8, White)
	if got := c.Image().RGBAAt(15, 15); got.A != 0xFF {
		t.Errorf("center pixel = %v, want opaque", got)
	}
}

func TestPolyline(t *testing.T) {
	c := NewCanvas(100, 100)
	c.Polyline([]image.Point{{10, 50}, {50, 50}, {50, 10}}, 10, White)
	img := c.Image()

	for _, p := range []image.Point{{30, 50}, {50, 30}, {50, 50}, {52, 52}} {
		if got := img.RGBAAt(p.X, p.Y); got.A != 0xFF {
			t.Errorf("pixel %v = %v, want opaque", p, got)
		}
	}
	for _, p := range []image.Point{{30, 60}, {70, 50}, {5, 50}} {
		if got := img.RGBAAt(p.X, p.Y); got.A != 0 {
			t.Errorf("pixel %v = %v, want transparent", p, got)
		}
	}
}

func TestTranslucentOverlapIsNotDoubled(t *testing.T) {
	c := NewCanvas(100, 100)
	c.Polyline([]image.Point{{10, 50}, {50, 50}, {90, 50}}, 10, White30)
	joint := c.Image().RGBAAt(50, 50)
	span := c.Image().RGBAAt(30, 50)
	if joint != span {
		t.Errorf("joint %v != span %v", joint, span)
	}
}

func TestFillCircle(t *testing.T) {
	c := NewCanvas(50, 50)
	c.FillCircle(image.Pt(25, 25), 12, White)
	img := c.Image()
	if got := img.RGBAAt(25, 25); got.A != 0xFF {
		t.Errorf("center = %v, want opaque", got)
	}
	if got := img.RGBAAt(25, 40); got.A != 0 {
		t.Errorf("outside = %v, want transparent", got)
	}
}

func TestFillReplacesBackground(t *testing.T) {
	tests := []struct {
		name string
		col  color.NRGBA
		want color.RGBA
	}{
		{"30%", White30, color.RGBA{R: 77, G: 77, B: 77, A: 77}},
		{"70%", White70, color.RGBA{R: 178, G: 178, B: 178, A: 178}},
		{"opaque", White, color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCanvas(20, 20)
			c.FillRoundedRect(image.Rect(0, 0, 20, 20), 0, Teal)
			c.FillRoundedRect(image.Rect(5, 5, 15, 15), 0, tt.col)
			img := c.Image()
			if got := img.RGBAAt(10, 10); got != tt.want {
				t.Errorf("covered pixel = %v, want %v", got, tt.want)
			}
			if got := img.RGBAAt(2, 2); got != (color.RGBA{R: 34, G: 180, B: 120, A: 0xFF}) {
				t.Errorf("uncovered pixel = %v, want teal", got)
			}
		})
	}
}

func TestDrawTextReplacesBackground(t *testing.T) {
	c := NewCanvas(60, 30)
	c.FillRoundedRect(image.Rect(0, 0, 60, 30), 0, Teal)
	m := c.DrawText("md", image.Pt(5, 5), TextStyle{Color: White70, Face: basicfont.Face7x13})

	img := c.Image()
	teal := color.RGBA{R: 34, G: 180, B: 120, A: 0xFF}
	ink := color.RGBA{R: 178, G: 178, B: 178, A: 178}
	var inked int
	for y := 5; y < 5+m.Height; y++ {
		for x := 5; x < 5+m.Width; x++ {
			switch got := img.RGBAAt(x, y); got {
			case ink:
				inked++
			case teal:
			default:
				t.Fatalf("pixel (%d,%d) = %v, want ink or teal", x, y, got)
			}
		}
	}
	if inked == 0 {
		t.Error("no glyph pixels painted")
	}
	if got := img.RGBAAt(55, 25); got != teal {
		t.Errorf("pixel outside text = %v, want teal", got)
	}
}

func TestDrawText(t *testing.T) {
	c := NewCanvas(100, 40)
	m := c.DrawText("ToDo", image.Pt(5, 5), TextStyle{Color: White, Face: basicfont.Face7x13})
	if m.Width != 4*7 {
		t.Errorf("Width = %d, want %d", m.Width, 4*7)
	}
	if m.Ascent != 11 {
		t.Errorf("Ascent = %d, want 11", m.Ascent)
	}

	painted := false
	img := c.Image()
	for y := 5; y < 5+m.Height && !painted; y++ {
		for x := 5; x < 5+m.Width; x++ {
			if img.RGBAAt(x, y).A != 0 {
				painted = true
				break
			}
		}
	}
	if !painted {
		t.Error("no pixels painted inside the text box")
	}
	if got := img.RGBAAt(90, 35); got.A != 0 {
		t.Errorf("pixel outside text = %v, want transparent", got)
	}
}

func TestDrawTextNilFace(t *testing.T) {
	c := NewCanvas(40, 20)
	m := c.DrawText("a", image.Pt(0, 0), TextStyle{Color: White})
	if m.Width == 0 {
		t.Error("nil face should fall back to the built-in face")
	}
}
