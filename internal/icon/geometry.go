package icon

import (
	"image"
	"image/color"
	"math"

	"github.com/sidarora28/todo-md/internal/render"
	"github.com/sidarora28/todo-md/internal/render/layout"
)

// Layout holds every geometry constant of the icon. Values are in pixels.
// It has no reference fields, so copies never share state.
type Layout struct {
	Size    int
	Padding int

	BoxOrigin image.Point
	BoxSize   int
	BoxRadius float64
	BoxStroke float64

	// CheckPoints are relative to BoxOrigin.
	CheckPoints    [3]image.Point
	CheckWidth     float64
	CheckDotRadius float64

	// TitleOffset is measured from the checkbox's top-right corner.
	TitleOffset    image.Point
	SubtitleOffset image.Point // from the title anchor

	DividerInset  int // horizontal inset from both canvas edges
	DividerTop    int
	DividerHeight int // inclusive extent below DividerTop
	DividerRadius float64

	RowStartY     int
	RowSpacing    int
	RowMarginX    int
	RowBoxSize    int
	RowBoxRadius  float64
	RowBoxStroke  float64
	RowLineStart  int // from RowMarginX
	RowLineEnd    int // from RowMarginX, before the ratio term
	RowLineHalf   int
	RowLineRadius float64
	RowRatios     [4]float64
	RowsDone      int
}

// DefaultLayout returns the ToDo.md icon geometry.
func DefaultLayout() Layout {
	return Layout{
		Size:    render.CanvasSize,
		Padding: 12,

		BoxOrigin: image.Pt(148, 150),
		BoxSize:   260,
		BoxRadius: 44,
		BoxStroke: 24,

		CheckPoints:    [3]image.Point{{58, 135}, {118, 200}, {212, 68}},
		CheckWidth:     28,
		CheckDotRadius: 12,

		TitleOffset:    image.Pt(28, 10),
		SubtitleOffset: image.Pt(8, 165),

		DividerInset:  148,
		DividerTop:    490,
		DividerHeight: 3,
		DividerRadius: 2,

		RowStartY:     545,
		RowSpacing:    85,
		RowMarginX:    172,
		RowBoxSize:    28,
		RowBoxRadius:  6,
		RowBoxStroke:  3,
		RowLineStart:  48,
		RowLineEnd:    52,
		RowLineHalf:   5,
		RowLineRadius: 5,
		RowRatios:     [4]float64{0.88, 0.65, 0.78, 0.50},
		RowsDone:      2,
	}
}

// BackgroundRadius is the corner radius of the base shape, truncated.
func (l Layout) BackgroundRadius() float64 {
	return float64(int(float64(l.Size) / 4.5))
}

// Background is the canvas inset by Padding, as an inclusive box.
func (l Layout) Background() image.Rectangle {
	return layout.Inset(layout.Box(0, 0, l.Size, l.Size), l.Padding)
}

func (l Layout) Checkbox() image.Rectangle {
	return layout.Square(l.BoxOrigin.X, l.BoxOrigin.Y, l.BoxSize)
}

// Checkmark returns the checkmark vertices in canvas coordinates.
func (l Layout) Checkmark() []image.Point {
	pts := make([]image.Point, len(l.CheckPoints))
	for i, p := range l.CheckPoints {
		pts[i] = l.BoxOrigin.Add(p)
	}
	return pts
}

func (l Layout) TitleAnchor() image.Point {
	return image.Pt(l.BoxOrigin.X+l.BoxSize, l.BoxOrigin.Y).Add(l.TitleOffset)
}

func (l Layout) SubtitleAnchor() image.Point {
	return l.TitleAnchor().Add(l.SubtitleOffset)
}

func (l Layout) Divider() image.Rectangle {
	return layout.Box(l.DividerInset, l.DividerTop, l.Size-l.DividerInset, l.DividerTop+l.DividerHeight)
}

func (l Layout) Rows() int { return len(l.RowRatios) }

// RowY is the vertical center of row i.
func (l Layout) RowY(i int) int {
	return l.RowStartY + i*l.RowSpacing
}

// RowColor is the outline and fill color of row i: the first RowsDone rows
// are brighter.
func (l Layout) RowColor(i int) color.NRGBA {
	if i < l.RowsDone {
		return render.White70
	}
	return render.White30
}

func (l Layout) RowBox(i int) image.Rectangle {
	y := l.RowY(i)
	half := l.RowBoxSize / 2
	return layout.Box(l.RowMarginX, y-half, l.RowMarginX+l.RowBoxSize, y+half)
}

// RowLineRight is the right edge of row i's text line. The ratio term is
// floored, not rounded.
func (l Layout) RowLineRight(i int) int {
	avail := l.Size - 2*l.RowMarginX - l.RowLineEnd
	return l.RowMarginX + l.RowLineEnd + int(math.Floor(float64(avail)*l.RowRatios[i]))
}

func (l Layout) RowLine(i int) image.Rectangle {
	return layout.CenteredY(l.RowMarginX+l.RowLineStart, l.RowLineRight(i), l.RowY(i), l.RowLineHalf)
}
