package output

import (
	"fmt"
	"image"
	"io"

	ico "github.com/sergeymakinen/go-ico"
	xdraw "golang.org/x/image/draw"
)

// MaxICOSize is the largest image an ICO entry can describe.
const MaxICOSize = 256

// Scale resamples src into a size x size image, preserving aspect ratio and
// centering it on a transparent background.
func Scale(src image.Image, size int) *image.NRGBA {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	nw, nh := size, size
	if w > h {
		nh = h * size / w
	} else if h > w {
		nw = w * size / h
	}
	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	offX, offY := (size-nw)/2, (size-nh)/2
	xdraw.CatmullRom.Scale(dst, image.Rect(offX, offY, offX+nw, offY+nh), src, b, xdraw.Over, nil)
	return dst
}

// WriteICO downscales img to size and writes it as a single-entry ICO file.
func WriteICO(path string, img image.Image, size int) error {
	if size <= 0 || size > MaxICOSize {
		return fmt.Errorf("ico size %d out of range 1-%d", size, MaxICOSize)
	}
	scaled := Scale(img, size)
	return WriteFile(path, func(w io.Writer) error {
		return ico.Encode(w, scaled)
	})
}
