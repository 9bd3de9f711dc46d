package layout

import "image"

// Box returns the half-open rectangle covering the inclusive pixel box
// [x0, y0, x1, y1], so that both edge pixels are painted.
func Box(x0, y0, x1, y1 int) image.Rectangle {
	return Normalize(image.Rect(x0, y0, x1+1, y1+1))
}

// Square returns the inclusive box of side size anchored at (x, y).
func Square(x, y, size int) image.Rectangle {
	return Box(x, y, x+size, y+size)
}

// Inset shrinks rect by paddingPx on all sides.
func Inset(rect image.Rectangle, paddingPx int) image.Rectangle {
	if paddingPx <= 0 {
		return rect
	}
	out := image.Rect(rect.Min.X+paddingPx, rect.Min.Y+paddingPx, rect.Max.X-paddingPx, rect.Max.Y-paddingPx)
	return Normalize(out)
}

// Normalize ensures Min is <= Max on both axes.
func Normalize(rect image.Rectangle) image.Rectangle {
	if rect.Min.X > rect.Max.X {
		rect.Min.X, rect.Max.X = rect.Max.X, rect.Min.X
	}
	if rect.Min.Y > rect.Max.Y {
		rect.Min.Y, rect.Max.Y = rect.Max.Y, rect.Min.Y
	}
	return rect
}

// CenteredY returns the inclusive box spanning x0..x1 whose vertical extent is
// halfHeightPx above and below y.
func CenteredY(x0, x1, y, halfHeightPx int) image.Rectangle {
	return Box(x0, y-halfHeightPx, x1, y+halfHeightPx)
}
