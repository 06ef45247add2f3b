// Package pkg provides the libraries behind flowdoc.
//
// # Overview
//
// flowdoc draws a fixed integration diagram (GestorMapeos, ERP Académico and
// Expedientes) and embeds it, with a static description of the enrollment
// workflows, into a DOCX document. The pkg directory is organized as:
//
//  1. [geom] - Pure geometry (text centering, arrowheads)
//  2. [fonts] - Font loading with a fallback chain and text measurement
//  3. [diagram] - The fixed diagram model and its PNG/PDF/SVG/JSON sinks
//  4. [docx] - A minimal OOXML word-processing writer
//  5. [pipeline] - Orchestration (render, then assemble)
//  6. [errors], [observability], [buildinfo] - Shared infrastructure
//
// # Architecture
//
//	diagram.Default()
//	       ↓
//	[fonts] Load (file → system → embedded → basic)
//	       ↓
//	[diagram] RenderPNG / RenderPDF / RenderSVG / MarshalLayout
//	       ↓
//	[pipeline] BuildDocument → [docx] Save
//
// # Quick Start
//
//	runner := pipeline.NewRunner(logger)
//	res, err := runner.Generate(ctx, pipeline.Options{OutputDir: "output"})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.ImagePath, res.DocumentPath)
//
// [geom]: github.com/matzehuels/flowdoc/pkg/geom
// [fonts]: github.com/matzehuels/flowdoc/pkg/fonts
// [diagram]: github.com/matzehuels/flowdoc/pkg/diagram
// [docx]: github.com/matzehuels/flowdoc/pkg/docx
// [pipeline]: github.com/matzehuels/flowdoc/pkg/pipeline
// [errors]: github.com/matzehuels/flowdoc/pkg/errors
// [observability]: github.com/matzehuels/flowdoc/pkg/observability
// [buildinfo]: github.com/matzehuels/flowdoc/pkg/buildinfo
package pkg
