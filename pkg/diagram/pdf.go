package diagram

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/matzehuels/flowdoc/pkg/fonts"
	"github.com/matzehuels/flowdoc/pkg/geom"
)

// Unit conversions from diagram pixels (96 dpi) to canvas millimetres and
// font points.
const (
	pxToMM = 25.4 / 96
	pxToPt = 72.0 / 96
)

// PDFOption configures PDF rendering.
type PDFOption func(*pdfRenderer)

type pdfRenderer struct {
	fonts *fonts.Set
}

// WithPDFFonts sets the font files embedded in the PDF. Sets without font
// data (the bitmap fallback) are replaced by the embedded Go fonts.
func WithPDFFonts(s *fonts.Set) PDFOption {
	return func(r *pdfRenderer) { r.fonts = s }
}

// RenderPDF renders d as a single-page vector PDF.
func RenderPDF(d Diagram, opts ...PDFOption) ([]byte, error) {
	r := pdfRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	bold, regular := gobold.TTF, goregular.TTF
	if r.fonts != nil && r.fonts.Bold != nil && r.fonts.Regular != nil {
		bold, regular = r.fonts.Bold, r.fonts.Regular
	}
	family := canvas.NewFontFamily("flowdoc")
	if err := family.LoadFont(regular, 0, canvas.FontRegular); err != nil {
		return nil, fmt.Errorf("load regular font: %w", err)
	}
	if err := family.LoadFont(bold, 0, canvas.FontBold); err != nil {
		return nil, fmt.Errorf("load bold font: %w", err)
	}

	w, h := mm(float64(d.Width)), mm(float64(d.Height))
	c := canvas.New(w, h)
	ctx := canvas.NewContext(c)
	ctx.SetCoordSystem(canvas.CartesianIV)

	p := &pdfPainter{ctx: ctx, family: family}
	p.fillRect(geom.Rect{W: float64(d.Width), H: float64(d.Height)}, d.Background)
	p.text(d.Title)
	for _, b := range d.Boxes {
		p.box(b)
	}
	for _, a := range d.Arrows {
		p.arrow(a)
	}
	for _, e := range d.Legend {
		p.fillRect(e.Swatch, e.Fill)
		p.text(e.Label)
	}

	var buf bytes.Buffer
	writer := pdf.New(&buf, w, h, nil)
	c.RenderTo(writer)
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

type pdfPainter struct {
	ctx    *canvas.Context
	family *canvas.FontFamily
}

func (p *pdfPainter) face(role fonts.Role, col color.Color) *canvas.FontFace {
	switch role {
	case fonts.RoleTitle:
		return p.family.Face(fonts.TitleSize*pxToPt, col, canvas.FontBold, canvas.FontNormal)
	case fonts.RoleSmall:
		return p.family.Face(fonts.SmallSize*pxToPt, col, canvas.FontRegular, canvas.FontNormal)
	default:
		return p.family.Face(fonts.BoxSize*pxToPt, col, canvas.FontBold, canvas.FontNormal)
	}
}

// measurer reports canvas text extents back in diagram pixels.
func measurer(face *canvas.FontFace) geom.Measurer {
	m := face.Metrics()
	return geom.MeasureFunc(func(line string) geom.Size {
		return geom.Size{
			W: face.TextWidth(fonts.Normalize(line)) / pxToMM,
			H: (m.Ascent + m.Descent) / pxToMM,
		}
	})
}

func (p *pdfPainter) box(b Box) {
	p.ctx.SetFillColor(b.Fill)
	p.ctx.SetStrokeColor(b.Border)
	p.ctx.SetStrokeWidth(mm(BorderWidth))
	p.ctx.DrawPath(mm(b.Rect.X), mm(b.Rect.Y), canvas.RoundedRectangle(mm(b.Rect.W), mm(b.Rect.H), mm(BoxRadius)))

	face := p.face(b.Role, b.LabelColor())
	for _, ln := range geom.CenterLines(measurer(face), b.Label, b.Rect) {
		p.drawLine(face, ln.Text, ln.Origin)
	}
}

func (p *pdfPainter) arrow(a Arrow) {
	p.ctx.SetFillColor(canvas.Transparent)
	p.ctx.SetStrokeColor(a.Stroke)
	p.ctx.SetStrokeWidth(mm(a.Width))
	line := &canvas.Path{}
	line.MoveTo(0, 0)
	line.LineTo(mm(a.To.X-a.From.X), mm(a.To.Y-a.From.Y))
	p.ctx.DrawPath(mm(a.From.X), mm(a.From.Y), line)

	head := a.Head()
	tri := &canvas.Path{}
	tri.MoveTo(mm(head[0].X), mm(head[0].Y))
	tri.LineTo(mm(head[1].X), mm(head[1].Y))
	tri.LineTo(mm(head[2].X), mm(head[2].Y))
	tri.Close()
	p.ctx.SetFillColor(a.Stroke)
	p.ctx.SetStrokeColor(canvas.Transparent)
	p.ctx.DrawPath(0, 0, tri)

	if a.Label == "" {
		return
	}
	face := p.face(fonts.RoleSmall, a.Stroke)
	at := a.LabelAt()
	sz := measurer(face).Measure(a.Label)
	p.ctx.SetFillColor(ColorBackground)
	p.ctx.SetStrokeColor(ColorLabelEdge)
	p.ctx.SetStrokeWidth(mm(1))
	plate := geom.Rect{X: at.X - labelPadX, Y: at.Y - labelPadY, W: sz.W + 2*labelPadX, H: sz.H + 2*labelPadY}
	p.ctx.DrawPath(mm(plate.X), mm(plate.Y), canvas.Rectangle(mm(plate.W), mm(plate.H)))
	p.drawLine(face, a.Label, at)
}

func (p *pdfPainter) text(t Text) {
	p.drawLine(p.face(t.Role, t.Color), t.Value, t.At)
}

func (p *pdfPainter) fillRect(r geom.Rect, fill color.Color) {
	p.ctx.SetFillColor(fill)
	p.ctx.SetStrokeColor(canvas.Transparent)
	p.ctx.DrawPath(mm(r.X), mm(r.Y), canvas.Rectangle(mm(r.W), mm(r.H)))
}

// drawLine draws s with the top of its line box at origin.
func (p *pdfPainter) drawLine(face *canvas.FontFace, s string, origin geom.Point) {
	baseline := mm(origin.Y) + face.Metrics().Ascent
	p.ctx.DrawText(mm(origin.X), baseline, canvas.NewTextLine(face, fonts.Normalize(s), canvas.Left))
}

func mm(px float64) float64 {
	return px * pxToMM
}
