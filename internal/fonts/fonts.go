// Package fonts loads the two faces used for the icon labels.
package fonts

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/freetype/truetype"
	"github.com/k1LoW/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

const (
	DefaultBoldPath    = "/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf"
	DefaultRegularPath = "/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf"

	BoldSize    = 160
	RegularSize = 96
)

// Spec names a font file and the pixel size to set it at.
type Spec struct {
	Path string
	Size float64
}

// Faces holds the title and subtitle faces.
type Faces struct {
	Bold    font.Face
	Regular font.Face
	// Fallback is true when the built-in face replaced both files.
	Fallback bool
}

// Fallback returns faces backed by the built-in bitmap font.
func Fallback() *Faces {
	return &Faces{Bold: basicfont.Face7x13, Regular: basicfont.Face7x13, Fallback: true}
}

// Load opens both faces. If either cannot be loaded, both are replaced with
// the built-in face; the failure is logged, never returned.
func Load(bold, regular Spec, logger *slog.Logger) *Faces {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	logger = logger.With(slog.String("component", "fonts"))

	b, err := LoadFace(bold)
	if err != nil {
		logger.Debug("font load failed, using basicfont", slog.String("path", bold.Path), slog.Any("error", err))
		return Fallback()
	}
	r, err := LoadFace(regular)
	if err != nil {
		_ = b.Close()
		logger.Debug("font load failed, using basicfont", slog.String("path", regular.Path), slog.Any("error", err))
		return Fallback()
	}
	logger.Debug("loaded fonts", slog.String("bold", bold.Path), slog.String("regular", regular.Path))
	return &Faces{Bold: b, Regular: r}
}

// LoadFace parses the font file at s.Path. TrueType files go through freetype;
// anything else (CFF-flavored OpenType) through x/image/font/opentype.
func LoadFace(s Spec) (_ font.Face, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, err
	}
	if strings.EqualFold(filepath.Ext(s.Path), ".ttf") {
		f, err := truetype.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("parse truetype %s: %w", s.Path, err)
		}
		return truetype.NewFace(f, &truetype.Options{Size: s.Size, DPI: 72, Hinting: font.HintingFull}), nil
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse opentype %s: %w", s.Path, err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: s.Size, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, fmt.Errorf("create face %s: %w", s.Path, err)
	}
	return face, nil
}

// Close releases loaded faces. The built-in face needs no release.
func (f *Faces) Close() error {
	if f == nil || f.Fallback {
		return nil
	}
	berr := f.Bold.Close()
	if rerr := f.Regular.Close(); rerr != nil {
		return rerr
	}
	return berr
}
