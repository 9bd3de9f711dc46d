package render

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
)

// Drawer is the set of primitives the icon is composed from. Every call
// paints on top of what was drawn before, so call order decides occlusion.
type Drawer interface {
	// Size returns the canvas size in pixels.
	Size() (width int, height int)

	// Rectangles are half-open; see layout.Box for the inclusive form.
	FillRoundedRect(rect image.Rectangle, radius float64, c color.NRGBA)
	// StrokeRoundedRect outlines rect with a stroke of the given width drawn
	// inward from the rectangle edge.
	StrokeRoundedRect(rect image.Rectangle, radius, width float64, c color.NRGBA)

	// Polyline draws connected segments with round joins.
	Polyline(points []image.Point, width float64, c color.NRGBA)
	FillCircle(center image.Point, radius float64, c color.NRGBA)

	// DrawText draws text with its glyph box top-left at anchor.
	DrawText(text string, anchor image.Point, style TextStyle) TextMetrics
}

// TextStyle describes how to render text.
type TextStyle struct {
	Color color.NRGBA
	Face  font.Face
	// Size and Bold describe the face for vector output.
	Size float64
	Bold bool
}

type TextMetrics struct {
	Width      int
	Height     int
	Ascent     int
	Descent    int
	LineHeight int
}

// Measure returns the metrics of text set in face.
func Measure(text string, face font.Face) TextMetrics {
	if face == nil {
		return TextMetrics{}
	}
	m := face.Metrics()
	return TextMetrics{
		Width:      font.MeasureString(face, text).Ceil(),
		Height:     (m.Ascent + m.Descent).Ceil(),
		Ascent:     m.Ascent.Ceil(),
		Descent:    m.Descent.Ceil(),
		LineHeight: m.Height.Ceil(),
	}
}
