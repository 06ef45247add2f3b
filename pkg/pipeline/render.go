package pipeline

import (
	"fmt"

	"github.com/matzehuels/flowdoc/pkg/diagram"
	errs "github.com/matzehuels/flowdoc/pkg/errors"
	"github.com/matzehuels/flowdoc/pkg/fonts"
)

// Render draws d in PNG and every extra format in opts.
func Render(d diagram.Diagram, set *fonts.Set, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte)

	for _, format := range opts.AllFormats() {
		var data []byte
		var err error

		switch format {
		case FormatPNG:
			data, err = diagram.RenderPNG(d,
				diagram.WithFonts(set),
				diagram.WithSupersample(opts.Supersample))
		case FormatPDF:
			data, err = diagram.RenderPDF(d, diagram.WithPDFFonts(set))
		case FormatSVG:
			data, err = diagram.RenderSVG(d)
		case FormatJSON:
			data, err = diagram.MarshalLayout(diagram.Export(d, set))
		default:
			return nil, errs.New(errs.ErrCodeInvalidFormat, "unsupported format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}
