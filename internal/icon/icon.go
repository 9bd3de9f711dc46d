// Package icon draws the ToDo.md application icon.
package icon

import (
	"image"
	"io"
	"log/slog"

	"github.com/k1LoW/errors"
	"github.com/sidarora28/todo-md/internal/fonts"
	"github.com/sidarora28/todo-md/internal/output"
	"github.com/sidarora28/todo-md/internal/render"
)

const (
	Title    = "ToDo"
	Subtitle = ".md"
)

type Renderer struct {
	layout      Layout
	boldFont    string
	regularFont string
	logger      *slog.Logger
}

type Option func(*Renderer)

func WithLogger(logger *slog.Logger) Option {
	return func(r *Renderer) {
		r.logger = logger
	}
}

func WithLayout(l Layout) Option {
	return func(r *Renderer) {
		r.layout = l
	}
}

// WithFonts overrides the bold and regular font files.
func WithFonts(bold, regular string) Option {
	return func(r *Renderer) {
		r.boldFont = bold
		r.regularFont = regular
	}
}

func New(opts ...Option) *Renderer {
	r := &Renderer{
		layout:      DefaultLayout(),
		boldFont:    fonts.DefaultBoldPath,
		regularFont: fonts.DefaultRegularPath,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	r.logger = r.logger.With(slog.String("component", "icon"))
	return r
}

func (r *Renderer) Layout() Layout { return r.layout }

// LoadFaces loads the label faces, falling back to the built-in face.
func (r *Renderer) LoadFaces() *fonts.Faces {
	return fonts.Load(
		fonts.Spec{Path: r.boldFont, Size: fonts.BoldSize},
		fonts.Spec{Path: r.regularFont, Size: fonts.RegularSize},
		r.logger,
	)
}

// Render draws the icon on a fresh transparent canvas.
func (r *Renderer) Render() *image.RGBA {
	faces := r.LoadFaces()
	defer func() {
		if err := faces.Close(); err != nil {
			r.logger.Debug("close fonts", slog.Any("error", err))
		}
	}()
	c := render.NewCanvas(r.layout.Size, r.layout.Size)
	Draw(c, r.layout, faces)
	r.logger.Info("rendered icon", slog.Int("size", r.layout.Size), slog.Bool("font_fallback", faces.Fallback))
	return c.Image()
}

// WritePNG renders the icon and writes it to path, creating parent directories.
func (r *Renderer) WritePNG(path string) (err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	img := r.Render()
	if err := r.written(path, output.WritePNG(path, img)); err != nil {
		return err
	}
	r.logger.Info("wrote png", slog.String("path", path))
	return nil
}

// WriteICO renders the icon and writes it as a Windows icon of size px.
func (r *Renderer) WriteICO(path string, size int) (err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	img := r.Render()
	if err := r.written(path, output.WriteICO(path, img, size)); err != nil {
		return err
	}
	r.logger.Info("wrote ico", slog.String("path", path), slog.Int("size", size))
	return nil
}

// WriteSVG writes the vector rendition of the icon to path.
func (r *Renderer) WriteSVG(path string) (err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	faces := r.LoadFaces()
	defer func() { _ = faces.Close() }()
	err = output.WriteFile(path, func(w io.Writer) error {
		d := render.NewSVGDrawer(w, r.layout.Size, r.layout.Size)
		Draw(d, r.layout, faces)
		d.Close()
		return nil
	})
	if err := r.written(path, err); err != nil {
		return err
	}
	r.logger.Info("wrote svg", slog.String("path", path))
	return nil
}

// written drops a directory sync failure: the file is already in place, so
// it is logged rather than failing the run.
func (r *Renderer) written(path string, err error) error {
	if errors.Is(err, output.ErrDirSync) {
		r.logger.Warn("output directory not synced", slog.String("path", path), slog.Any("error", err))
		return nil
	}
	return err
}

// Draw issues the icon's draw calls in order. Later calls cover earlier ones.
func Draw(d render.Drawer, l Layout, faces *fonts.Faces) {
	d.FillRoundedRect(l.Background(), l.BackgroundRadius(), render.Teal)

	d.StrokeRoundedRect(l.Checkbox(), l.BoxRadius, l.BoxStroke, render.White)
	check := l.Checkmark()
	d.Polyline(check, l.CheckWidth, render.White)
	for _, p := range check {
		d.FillCircle(p, l.CheckDotRadius, render.White)
	}

	d.DrawText(Title, l.TitleAnchor(), render.TextStyle{
		Color: render.White,
		Face:  faces.Bold,
		Size:  fonts.BoldSize,
		Bold:  true,
	})
	d.DrawText(Subtitle, l.SubtitleAnchor(), render.TextStyle{
		Color: render.White70,
		Face:  faces.Regular,
		Size:  fonts.RegularSize,
	})

	d.FillRoundedRect(l.Divider(), l.DividerRadius, render.White30)

	for i := range l.Rows() {
		c := l.RowColor(i)
		d.StrokeRoundedRect(l.RowBox(i), l.RowBoxRadius, l.RowBoxStroke, c)
		d.FillRoundedRect(l.RowLine(i), l.RowLineRadius, c)
	}
}
