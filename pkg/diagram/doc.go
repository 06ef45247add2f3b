// Package diagram draws the GestorMapeos → ERP Académico → Expedientes
// integration diagram.
//
// # Model
//
// [Default] returns the fixed layout: six rounded boxes, five labelled
// arrows, a title and a three-entry legend on a 1600x800 canvas. The
// topology is not configurable; the types exist so that sinks and tests can
// inspect the geometry.
//
// # Sinks
//
// The same [Diagram] can be written in several formats:
//
//   - [RenderPNG]: raster image drawn with fogleman/gg (the document image)
//   - [RenderPDF]: vector page drawn with tdewolff/canvas
//   - [RenderSVG]: node-link view of the topology laid out by Graphviz
//   - [MarshalLayout]: JSON dump of the resolved geometry
//
// The PNG, PDF and JSON sinks center box labels with [geom.CenterLines] and
// take arrowheads from [geom.Arrowhead]. The SVG sink leaves placement to
// Graphviz.
package diagram
