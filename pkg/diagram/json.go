package diagram

import (
	"encoding/json"
	"fmt"

	"github.com/matzehuels/flowdoc/pkg/fonts"
	"github.com/matzehuels/flowdoc/pkg/geom"
)

// Layout is the resolved geometry of a diagram, with label origins and
// arrowheads computed for a particular font set.
type Layout struct {
	Width      int            `json:"width"`
	Height     int            `json:"height"`
	FontSource fonts.Source   `json:"font_source"`
	Title      LayoutText     `json:"title"`
	Boxes      []LayoutBox    `json:"boxes"`
	Arrows     []LayoutArrow  `json:"arrows"`
	Legend     []LayoutLegend `json:"legend"`
}

// LayoutText is a positioned string.
type LayoutText struct {
	Text string     `json:"text"`
	X    float64    `json:"x"`
	Y    float64    `json:"y"`
	Size *geom.Size `json:"size,omitempty"`
}

// LayoutBox is a box with its centered label lines.
type LayoutBox struct {
	ID     string       `json:"id"`
	X      float64      `json:"x"`
	Y      float64      `json:"y"`
	Width  float64      `json:"width"`
	Height float64      `json:"height"`
	Fill   string       `json:"fill"`
	Ink    string       `json:"ink"`
	Lines  []LayoutText `json:"lines"`
}

// LayoutArrow is an arrow with its arrowhead triangle and label origin.
type LayoutArrow struct {
	Source string        `json:"source"`
	Target string        `json:"target"`
	From   geom.Point    `json:"from"`
	To     geom.Point    `json:"to"`
	Head   [3]geom.Point `json:"head"`
	Label  LayoutText    `json:"label"`
}

// LayoutLegend is a legend swatch and caption.
type LayoutLegend struct {
	Fill   string     `json:"fill"`
	Swatch geom.Rect  `json:"swatch"`
	Label  LayoutText `json:"label"`
}

// Export resolves the geometry of d using the faces in s.
func Export(d Diagram, s *fonts.Set) Layout {
	l := Layout{
		Width:      d.Width,
		Height:     d.Height,
		FontSource: s.Source,
		Title:      LayoutText{Text: d.Title.Value, X: d.Title.At.X, Y: d.Title.At.Y},
	}

	for _, b := range d.Boxes {
		lb := LayoutBox{
			ID:     b.ID,
			X:      b.Rect.X,
			Y:      b.Rect.Y,
			Width:  b.Rect.W,
			Height: b.Rect.H,
			Fill:   Hex(b.Fill),
			Ink:    Hex(b.LabelColor()),
		}
		for _, ln := range geom.CenterLines(fonts.Measurer(s.Face(b.Role)), b.Label, b.Rect) {
			sz := ln.Size
			lb.Lines = append(lb.Lines, LayoutText{Text: ln.Text, X: ln.Origin.X, Y: ln.Origin.Y, Size: &sz})
		}
		l.Boxes = append(l.Boxes, lb)
	}

	for _, a := range d.Arrows {
		at := a.LabelAt()
		l.Arrows = append(l.Arrows, LayoutArrow{
			Source: a.Source,
			Target: a.Target,
			From:   a.From,
			To:     a.To,
			Head:   a.Head(),
			Label:  LayoutText{Text: a.Label, X: at.X, Y: at.Y},
		})
	}

	for _, e := range d.Legend {
		l.Legend = append(l.Legend, LayoutLegend{
			Fill:   Hex(e.Fill),
			Swatch: e.Swatch,
			Label:  LayoutText{Text: e.Label.Value, X: e.Label.At.X, Y: e.Label.At.Y},
		})
	}
	return l
}

// MarshalLayout encodes l as indented JSON.
func MarshalLayout(l Layout) ([]byte, error) {
	data, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode layout: %w", err)
	}
	return data, nil
}
