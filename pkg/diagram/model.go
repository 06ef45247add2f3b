package diagram

import (
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/flowdoc/pkg/fonts"
	"github.com/matzehuels/flowdoc/pkg/geom"
)

// Canvas size in pixels.
const (
	Width  = 1600
	Height = 800
)

// Box geometry shared by every box.
const (
	BoxWidth    = 350.0
	BoxHeight   = 100.0
	BoxRadius   = 12.0
	BorderWidth = 3.0
)

// Arrow styling.
const (
	ArrowWidth = 4.0

	// Arrow labels sit left of and above the arrow midpoint.
	labelOffsetX = 50.0
	labelOffsetY = 20.0

	// Padding of the white plate behind arrow labels.
	labelPadX = 3.0
	labelPadY = 2.0
)

// Legend row.
const (
	LegendY      = 650.0
	legendSwatch = 24.0
	legendGap    = 35.0
)

// Palette colors, as hex so the same values can be quoted in documents.
const (
	HexGestor      = "#0E52A0"
	HexERP         = "#367EDF"
	HexExpedientes = "#8EC77D"
	HexBorder      = "#143C64"
	HexInk         = "#0A0A0A"
	HexLabelEdge   = "#C8C8C8"
)

// Palette is the set of colors used by the diagram.
var (
	ColorGestor      = mustHex(HexGestor)
	ColorERP         = mustHex(HexERP)
	ColorExpedientes = mustHex(HexExpedientes)
	ColorBorder      = mustHex(HexBorder)
	ColorInk         = mustHex(HexInk)
	ColorLabelEdge   = mustHex(HexLabelEdge)
	ColorBackground  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// Box IDs.
const (
	BoxGestor          = "gestor"
	BoxPrimera         = "primera"
	BoxAmpliacion      = "ampliacion"
	BoxExpedientes     = "expedientes"
	BoxCrearExpediente = "crear-expediente"
	BoxMatricula       = "matricula-realizada"
)

// Text is a single string drawn with its top-left corner at At.
type Text struct {
	Value string
	At    geom.Point
	Role  fonts.Role
	Color color.Color
}

// Box is a rounded, labelled rectangle representing one system or endpoint.
type Box struct {
	ID     string
	Rect   geom.Rect
	Fill   color.Color
	Border color.Color
	Label  string
	Role   fonts.Role
}

// LabelColor returns the color box labels are drawn in.
func (b Box) LabelColor() color.Color {
	return LabelColor(b.Fill)
}

// Arrow is a directed call between two boxes.
type Arrow struct {
	Source, Target string // box IDs
	From, To       geom.Point
	Label          string
	Stroke         color.Color
	Width          float64
}

// Head returns the filled arrowhead triangle at To.
func (a Arrow) Head() [3]geom.Point {
	return geom.Arrowhead(a.From, a.To, geom.DefaultHeadLength)
}

// LabelAt returns the top-left origin of the arrow label.
func (a Arrow) LabelAt() geom.Point {
	return geom.Point{
		X: math.Floor((a.From.X+a.To.X)/2) - labelOffsetX,
		Y: math.Floor((a.From.Y+a.To.Y)/2) - labelOffsetY,
	}
}

// LegendEntry is a color swatch followed by its caption.
type LegendEntry struct {
	Swatch geom.Rect
	Fill   color.Color
	Label  Text
}

// Diagram is everything a sink needs to draw.
type Diagram struct {
	Width, Height int
	Background    color.Color
	Title         Text
	Boxes         []Box
	Arrows        []Arrow
	Legend        []LegendEntry
}

// Box returns the box with the given ID.
func (d Diagram) Box(id string) (Box, bool) {
	for _, b := range d.Boxes {
		if b.ID == id {
			return b, true
		}
	}
	return Box{}, false
}

// Default returns the fixed integration diagram.
func Default() Diagram {
	box := func(id string, x, y float64, fill color.Color, label string) Box {
		return Box{
			ID:     id,
			Rect:   geom.Rect{X: x, Y: y, W: BoxWidth, H: BoxHeight},
			Fill:   fill,
			Border: ColorBorder,
			Label:  fonts.Normalize(label),
			Role:   fonts.RoleBox,
		}
	}

	gestor := box(BoxGestor, 100, 250, ColorGestor, "GestorMapeos")
	primera := box(BoxPrimera, 550, 150, ColorERP,
		"API Primera Matrícula\nPOST /api/v1/migrar\nhttps://erpacademico.unir.net")
	ampliacion := box(BoxAmpliacion, 550, 470, ColorERP,
		"API Ampliación\nPOST /api/v1/migrar/ampliacion\nhttps://erpacademico.unir.net")
	expedientes := box(BoxExpedientes, 1050, 150, ColorExpedientes,
		"Expedientes\nhttps://expedientesacademico.unir.net")
	crear := box(BoxCrearExpediente, 1050, 280, ColorExpedientes,
		"POST /api/v1/expedientes-alumnos")
	matricula := box(BoxMatricula, 1050, 410, ColorExpedientes,
		"POST /api/v1/expedientes-alumnos/matricula-realizada")

	arrow := func(from Box, fromDY float64, to Box, label string) Arrow {
		return Arrow{
			Source: from.ID,
			Target: to.ID,
			From:   from.Rect.Right(fromDY),
			To:     to.Rect.Left(0),
			Label:  fonts.Normalize(label),
			Stroke: ColorInk,
			Width:  ArrowWidth,
		}
	}

	legend := func(x float64, fill color.Color, label string) LegendEntry {
		return LegendEntry{
			Swatch: geom.Rect{X: x, Y: LegendY, W: legendSwatch, H: legendSwatch},
			Fill:   fill,
			Label: Text{
				Value: fonts.Normalize(label),
				At:    geom.Point{X: x + legendGap, Y: LegendY},
				Role:  fonts.RoleSmall,
				Color: color.Black,
			},
		}
	}

	return Diagram{
		Width:      Width,
		Height:     Height,
		Background: ColorBackground,
		Title: Text{
			Value: fonts.Normalize("Flujos: GestorMapeos → ERP Académico → Expedientes"),
			At:    geom.Point{X: Width/2 - 220, Y: 20},
			Role:  fonts.RoleTitle,
			Color: ColorInk,
		},
		Boxes: []Box{gestor, primera, ampliacion, expedientes, crear, matricula},
		Arrows: []Arrow{
			// Flow 1: Primera Matrícula.
			arrow(gestor, 0, primera, "Primera Matrícula"),
			arrow(primera, 0, expedientes, "Crear/Actualizar"),
			arrow(primera, 10, crear, "Crear Expediente"),
			// Flow 2: Ampliación.
			arrow(gestor, 40, ampliacion, "Ampliación"),
			arrow(ampliacion, 0, matricula, "Matricula Realizada"),
		},
		Legend: []LegendEntry{
			legend(80, ColorGestor, "GestorMapeos"),
			legend(300, ColorERP, "ERP Académico"),
			legend(520, ColorExpedientes, "Expedientes"),
		},
	}
}

// LabelColor picks white text for dark fills and black text otherwise.
// A fill is dark when its 8-bit channels sum to less than 400.
func LabelColor(fill color.Color) color.Color {
	r, g, b, _ := fill.RGBA()
	if (r>>8)+(g>>8)+(b>>8) < 400 {
		return color.White
	}
	return color.Black
}

// Hex formats c as #rrggbb.
func Hex(c color.Color) string {
	cf, _ := colorful.MakeColor(c)
	return cf.Hex()
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(fmt.Sprintf("diagram: bad palette color %q: %v", s, err))
	}
	return c
}
