package render

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
)

// ascentRatio is the ascender of DejaVu Sans as a fraction of the em size.
const ascentRatio = 1901.0 / 2048.0

var _ Drawer = (*SVGDrawer)(nil)

// SVGDrawer writes primitives as SVG elements. Coordinates are rounded to
// whole pixels.
type SVGDrawer struct {
	s             *svg.SVG
	width, height int
}

// NewSVGDrawer starts an SVG document of the given size on w. Close must be
// called to finish it.
func NewSVGDrawer(w io.Writer, width, height int) *SVGDrawer {
	s := svg.New(w)
	s.Start(width, height)
	return &SVGDrawer{s: s, width: width, height: height}
}

func (d *SVGDrawer) Close() { d.s.End() }

func (d *SVGDrawer) Size() (int, int) { return d.width, d.height }

func (d *SVGDrawer) FillRoundedRect(rect image.Rectangle, radius float64, c color.NRGBA) {
	r := clampRadius(rect, radius)
	d.s.Roundrect(rect.Min.X, rect.Min.Y, rect.Dx(), rect.Dy(), r, r, fillStyle(c))
}

func (d *SVGDrawer) StrokeRoundedRect(rect image.Rectangle, radius, width float64, c color.NRGBA) {
	// SVG strokes are centered on the path; move the path half a stroke inward.
	half := int(math.Round(width / 2))
	inner := rect.Inset(half)
	r := clampRadius(inner, radius-width/2)
	d.s.Roundrect(inner.Min.X, inner.Min.Y, inner.Dx(), inner.Dy(), r, r,
		"fill:none;"+strokeStyle(c, width))
}

func (d *SVGDrawer) Polyline(points []image.Point, width float64, c color.NRGBA) {
	xs := make([]int, len(points))
	ys := make([]int, len(points))
	for i, p := range points {
		xs[i], ys[i] = p.X, p.Y
	}
	d.s.Polyline(xs, ys, "fill:none;stroke-linejoin:round;"+strokeStyle(c, width))
}

func (d *SVGDrawer) FillCircle(center image.Point, radius float64, c color.NRGBA) {
	d.s.Circle(center.X, center.Y, int(math.Round(radius)), fillStyle(c))
}

func (d *SVGDrawer) DrawText(text string, anchor image.Point, style TextStyle) TextMetrics {
	ascent := int(math.Round(style.Size * ascentRatio))
	weight := "normal"
	if style.Bold {
		weight = "bold"
	}
	d.s.Text(anchor.X, anchor.Y+ascent, text,
		fmt.Sprintf("font-family:'DejaVu Sans',sans-serif;font-size:%gpx;font-weight:%s;%s", style.Size, weight, fillStyle(style.Color)))
	m := Measure(text, style.Face)
	m.Ascent = ascent
	return m
}

func clampRadius(rect image.Rectangle, radius float64) int {
	r := min(radius, float64(rect.Dx())/2, float64(rect.Dy())/2)
	return max(int(math.Round(r)), 0)
}

func hexColor(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func opacity(c color.NRGBA) string {
	return fmt.Sprintf("%.3f", float64(c.A)/0xFF)
}

func fillStyle(c color.NRGBA) string {
	return "fill:" + hexColor(c) + ";fill-opacity:" + opacity(c)
}

func strokeStyle(c color.NRGBA, width float64) string {
	return fmt.Sprintf("stroke:%s;stroke-opacity:%s;stroke-width:%g", hexColor(c), opacity(c), width)
}
