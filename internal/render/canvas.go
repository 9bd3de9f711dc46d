package render

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

var _ Drawer = (*Canvas)(nil)

// Canvas rasterizes primitives onto an RGBA image, starting fully transparent.
// Primitives replace the pixels they cover with their color instead of
// blending over them, so a translucent fill leaves a translucent pixel.
type Canvas struct {
	img  *image.RGBA
	mask *image.Alpha
	z    vector.Rasterizer
}

func NewCanvas(width, height int) *Canvas {
	r := image.Rect(0, 0, width, height)
	return &Canvas{img: image.NewRGBA(r), mask: image.NewAlpha(r)}
}

// Image returns the backing image. It is shared, not copied.
func (c *Canvas) Image() *image.RGBA { return c.img }

func (c *Canvas) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

func (c *Canvas) FillRoundedRect(rect image.Rectangle, radius float64, col color.NRGBA) {
	c.fill(col, roundedRect(rect, radius))
}

func (c *Canvas) StrokeRoundedRect(rect image.Rectangle, radius, width float64, col color.NRGBA) {
	outer := roundedRect(rect, radius)
	w := int(width)
	if rect.Dx() <= 2*w || rect.Dy() <= 2*w {
		c.fill(col, outer)
		return
	}
	inner := roundedRect(rect.Inset(w), max(radius-width, 0))
	c.fill(col, outer, inner.reversed())
}

func (c *Canvas) Polyline(points []image.Point, width float64, col color.NRGBA) {
	var shapes []polygon
	for i := 1; i < len(points); i++ {
		a, b := toVec(points[i-1]), toVec(points[i])
		if s := segment(a, b, width); s != nil {
			shapes = append(shapes, s)
		}
	}
	// Round joins at interior vertices.
	for i := 1; i < len(points)-1; i++ {
		v := toVec(points[i])
		shapes = append(shapes, circle(v.X, v.Y, width/2))
	}
	c.fill(col, shapes...)
}

func (c *Canvas) FillCircle(center image.Point, radius float64, col color.NRGBA) {
	v := toVec(center)
	c.fill(col, circle(v.X, v.Y, radius))
}

func (c *Canvas) DrawText(text string, anchor image.Point, style TextStyle) TextMetrics {
	face := style.Face
	if face == nil {
		face = basicfont.Face7x13
	}
	m := Measure(text, face)
	clear(c.mask.Pix)
	drawer := &font.Drawer{
		Dst:  c.mask,
		Src:  image.Opaque,
		Face: face,
		Dot:  fixed.P(anchor.X, anchor.Y+m.Ascent),
	}
	drawer.DrawString(text)
	c.paint(style.Color)
	return m
}

// fill rasterizes the union of shapes in one pass so overlaps are not
// painted twice.
func (c *Canvas) fill(col color.NRGBA, shapes ...polygon) {
	b := c.img.Bounds()
	c.z.Reset(b.Dx(), b.Dy())
	// Src rewrites the whole mask, so no clear is needed.
	c.z.DrawOp = draw.Src
	for _, s := range shapes {
		s.addTo(&c.z)
	}
	c.z.Draw(c.mask, b, image.Opaque, image.Point{})
	c.paint(col)
}

// paint sets every pixel covered by the mask to col. Partially covered
// pixels are interpolated between the old pixel and col by coverage;
// uncovered pixels are left alone. draw.DrawMask with draw.Src can't be used
// here because it also clears the pixels the mask leaves uncovered.
func (c *Canvas) paint(col color.NRGBA) {
	s := color.RGBAModel.Convert(col).(color.RGBA)
	src := [4]uint32{uint32(s.R), uint32(s.G), uint32(s.B), uint32(s.A)}
	b := c.img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		mi := c.mask.PixOffset(b.Min.X, y)
		pi := c.img.PixOffset(b.Min.X, y)
		for x := b.Min.X; x < b.Max.X; x, mi, pi = x+1, mi+1, pi+4 {
			m := uint32(c.mask.Pix[mi])
			if m == 0 {
				continue
			}
			p := c.img.Pix[pi : pi+4 : pi+4]
			for i, v := range src {
				p[i] = uint8((v*m + uint32(p[i])*(0xff-m) + 0x7f) / 0xff)
			}
		}
	}
}

func toVec(p image.Point) vec { return vec{float64(p.X), float64(p.Y)} }
