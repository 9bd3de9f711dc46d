package render

import (
	"image"
	"math"
	"slices"

	"golang.org/x/image/vector"
)

type vec struct{ X, Y float64 }

// polygon is a closed outline. Fill shapes are kept with positive signed area
// (clockwise on screen); holes are reversed so the rasterizer cancels them.
type polygon []vec

func (p polygon) area() float64 {
	var sum float64
	for i := range p {
		a, b := p[i], p[(i+1)%len(p)]
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum / 2
}

func (p polygon) clockwise() polygon {
	if p.area() < 0 {
		slices.Reverse(p)
	}
	return p
}

func (p polygon) reversed() polygon {
	out := slices.Clone(p)
	slices.Reverse(out)
	return out
}

func (p polygon) addTo(z *vector.Rasterizer) {
	if len(p) < 3 {
		return
	}
	z.MoveTo(float32(p[0].X), float32(p[0].Y))
	for _, v := range p[1:] {
		z.LineTo(float32(v.X), float32(v.Y))
	}
	z.ClosePath()
}

// arcSteps picks how many segments approximate a quarter circle of radius r.
func arcSteps(r float64) int {
	n := int(math.Ceil(r / 4))
	return max(4, min(n, 64))
}

// arc appends points on the circle (cx, cy, r) from angle a0 to a1, in radians.
// Angles grow clockwise on screen since y points down.
func arc(p polygon, cx, cy, r, a0, a1 float64) polygon {
	n := arcSteps(r) * int(math.Ceil(math.Abs(a1-a0)/(math.Pi/2)))
	for i := 0; i <= n; i++ {
		a := a0 + (a1-a0)*float64(i)/float64(n)
		p = append(p, vec{cx + r*math.Cos(a), cy + r*math.Sin(a)})
	}
	return p
}

func roundedRect(rect image.Rectangle, radius float64) polygon {
	x0, y0 := float64(rect.Min.X), float64(rect.Min.Y)
	x1, y1 := float64(rect.Max.X), float64(rect.Max.Y)
	radius = min(radius, (x1-x0)/2, (y1-y0)/2)
	if radius <= 0 {
		return polygon{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}}
	}
	var p polygon
	p = arc(p, x0+radius, y0+radius, radius, math.Pi, 1.5*math.Pi)
	p = arc(p, x1-radius, y0+radius, radius, 1.5*math.Pi, 2*math.Pi)
	p = arc(p, x1-radius, y1-radius, radius, 0, 0.5*math.Pi)
	p = arc(p, x0+radius, y1-radius, radius, 0.5*math.Pi, math.Pi)
	return p
}

func circle(cx, cy, r float64) polygon {
	return arc(nil, cx, cy, r, 0, 2*math.Pi)
}

// segment returns the rectangle covering a line of the given width from a to b.
func segment(a, b vec, width float64) polygon {
	dx, dy := b.X-a.X, b.Y-a.Y
	l := math.Hypot(dx, dy)
	if l == 0 {
		return nil
	}
	nx, ny := -dy/l*width/2, dx/l*width/2
	p := polygon{
		{a.X + nx, a.Y + ny},
		{b.X + nx, b.Y + ny},
		{b.X - nx, b.Y - ny},
		{a.X - nx, a.Y - ny},
	}
	return p.clockwise()
}
