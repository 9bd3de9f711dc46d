package render

import "image/color"

// Palette used by the icon. Values are non-premultiplied.
var (
	Teal    = color.NRGBA{R: 34, G: 180, B: 120, A: 0xFF}
	White   = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	White70 = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 178} // ~70%
	White30 = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 77}  // ~30%
)

// CanvasSize is the width and height of the icon in pixels.
const CanvasSize = 1024
