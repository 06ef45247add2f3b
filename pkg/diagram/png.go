package diagram

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"github.com/matzehuels/flowdoc/pkg/fonts"
	"github.com/matzehuels/flowdoc/pkg/geom"
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	fonts       *fonts.Set
	supersample int
}

// WithFonts sets the font set used for all text. By default [fonts.Load] is
// called with zero options.
func WithFonts(s *fonts.Set) PNGOption {
	return func(r *pngRenderer) { r.fonts = s }
}

// WithSupersample draws at n times the canvas size and downsamples the result
// with a Lanczos filter. Values below 2 disable supersampling.
func WithSupersample(n int) PNGOption {
	return func(r *pngRenderer) { r.supersample = n }
}

// RenderPNG renders d and encodes it as PNG.
func RenderPNG(d Diagram, opts ...PNGOption) ([]byte, error) {
	img := Rasterize(d, opts...)
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// Rasterize draws d into a new image of d.Width x d.Height pixels.
func Rasterize(d Diagram, opts ...PNGOption) image.Image {
	r := pngRenderer{supersample: 1}
	for _, opt := range opts {
		opt(&r)
	}
	if r.fonts == nil {
		r.fonts = fonts.Load(fonts.Options{})
	}

	scale := r.supersample
	if scale < 2 {
		scale = 1
	}

	dc := gg.NewContext(d.Width*scale, d.Height*scale)
	dc.Scale(float64(scale), float64(scale))

	dc.SetColor(d.Background)
	dc.Clear()

	r.drawText(dc, d.Title)
	for _, b := range d.Boxes {
		r.drawBox(dc, b)
	}
	for _, a := range d.Arrows {
		r.drawArrow(dc, a)
	}
	for _, e := range d.Legend {
		dc.DrawRectangle(e.Swatch.X, e.Swatch.Y, e.Swatch.W, e.Swatch.H)
		dc.SetColor(e.Fill)
		dc.Fill()
		r.drawText(dc, e.Label)
	}

	if scale == 1 {
		return dc.Image()
	}
	return imaging.Resize(dc.Image(), d.Width, d.Height, imaging.Lanczos)
}

func (r *pngRenderer) drawBox(dc *gg.Context, b Box) {
	dc.DrawRoundedRectangle(b.Rect.X, b.Rect.Y, b.Rect.W, b.Rect.H, BoxRadius)
	dc.SetColor(b.Fill)
	dc.FillPreserve()
	dc.SetColor(b.Border)
	dc.SetLineWidth(BorderWidth)
	dc.Stroke()

	face := r.fonts.Face(b.Role)
	ink := b.LabelColor()
	for _, ln := range geom.CenterLines(fonts.Measurer(face), b.Label, b.Rect) {
		drawString(dc, face, ln.Text, ln.Origin, ink)
	}
}

func (r *pngRenderer) drawArrow(dc *gg.Context, a Arrow) {
	dc.SetColor(a.Stroke)
	dc.SetLineWidth(a.Width)
	dc.DrawLine(a.From.X, a.From.Y, a.To.X, a.To.Y)
	dc.Stroke()

	head := a.Head()
	dc.MoveTo(head[0].X, head[0].Y)
	dc.LineTo(head[1].X, head[1].Y)
	dc.LineTo(head[2].X, head[2].Y)
	dc.ClosePath()
	dc.Fill()

	if a.Label == "" {
		return
	}
	face := r.fonts.Face(fonts.RoleSmall)
	at := a.LabelAt()
	plate := labelPlate(face, a.Label, at)
	dc.DrawRectangle(plate.X, plate.Y, plate.W, plate.H)
	dc.SetColor(ColorBackground)
	dc.FillPreserve()
	dc.SetColor(ColorLabelEdge)
	dc.SetLineWidth(1)
	dc.Stroke()

	drawString(dc, face, a.Label, at, a.Stroke)
}

func (r *pngRenderer) drawText(dc *gg.Context, t Text) {
	drawString(dc, r.fonts.Face(t.Role), t.Value, t.At, t.Color)
}

// labelPlate returns the padded ink box of s drawn with its top-left at at.
func labelPlate(face font.Face, s string, at geom.Point) geom.Rect {
	ink := fonts.Bounds(face, s)
	baseline := at.Y + fonts.Ascent(face)
	return geom.Rect{
		X: at.X + ink.X - labelPadX,
		Y: baseline + ink.Y - labelPadY,
		W: ink.W + 2*labelPadX,
		H: ink.H + 2*labelPadY,
	}
}

// drawString draws s with the top of the face's ascent at origin.Y.
func drawString(dc *gg.Context, face font.Face, s string, origin geom.Point, c color.Color) {
	dc.SetFontFace(face)
	dc.SetColor(c)
	dc.DrawString(fonts.Normalize(s), origin.X, origin.Y+fonts.Ascent(face))
}
