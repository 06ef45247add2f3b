package pipeline

import (
	"github.com/matzehuels/flowdoc/pkg/docx"
)

// DocumentTitle is the top-level heading and the dc:title of the document.
const DocumentTitle = "Esquema de Flujos: GestorMapeos → ERP Académico → Expedientes"

// ImageWidthInches is the width of the embedded diagram.
const ImageWidthInches = 6.5

// PlantUML is the textual source of the diagram, embedded verbatim.
// The \n sequences inside labels are literal: PlantUML reads them as line
// breaks, so the block pastes into a .puml file unchanged.
const PlantUML = `
@startuml
skinparam rectangle {
  BackgroundColor<<Gestor>> #0E52A0
  BackgroundColor<<ERP>> #367EDF
  BackgroundColor<<Expedientes>> #8EC77D
  FontColor white
}
actor "GestorMapeos" as GM <<Gestor>>
rectangle "ERP Académico\nPOST /api/v1/migrar (primera)\nPOST /api/v1/migrar/ampliacion (no primera)" as ERP <<ERP>>
rectangle "Expedientes\nhttps://expedientesacademico.unir.net" as EXP <<Expedientes>>
GM --> ERP : POST /api/v1/migrar
ERP --> EXP : "Primera matrícula -> crear/actualizar expediente"
note right of ERP
    - Crear: POST /api/v1/expedientes-alumnos
    - Actualizar: PUT /api/v1/expedientes-alumnos/{id}/por-integracion
end note
GM --> ERP : POST /api/v1/migrar/ampliacion
ERP --> EXP : POST /api/v1/expedientes-alumnos/matricula-realizada
@enduml
`

// section is a level-2 heading followed by paragraphs.
type section struct {
	heading    string
	paragraphs []string
}

var (
	intro = "Diagrama con colores diferenciados por sistema y URLs completas. " +
		`Incluye los flujos de "Primera Matrícula" y "Ampliación".`

	urls = section{
		heading: "URLs usadas",
		paragraphs: []string{
			"• ERP - Primera migración (crear/actualizar expediente): https://erpacademico.unir.net/api/v1/migrar",
			"• ERP - Ampliación (no primera matrícula): https://erpacademico.unir.net/api/v1/migrar/ampliacion",
			"• Expedientes - crear expediente (POST): https://expedientesacademico.unir.net/api/v1/expedientes-alumnos",
			"• Expedientes - modificar por integración (PUT): https://expedientesacademico.unir.net/api/v1/expedientes-alumnos/{id}/por-integracion",
			"• Expedientes - matrícula realizada (POST): https://expedientesacademico.unir.net/api/v1/expedientes-alumnos/matricula-realizada",
		},
	}

	flows = section{
		heading: "Descripción de los flujos",
		paragraphs: []string{
			"Flujo 1 — Primera Matrícula:",
			"GestorMapeos -> POST https://erpacademico.unir.net/api/v1/migrar -> ERP guarda matrícula (objeto).",
			"  - Si es PRIMERA matrícula: el ERP puede CREAR o ACTUALIZAR el expediente en el servicio de Expedientes:",
			"    • Crear expediente: POST https://expedientesacademico.unir.net/api/v1/expedientes-alumnos",
			"    • Actualizar expediente existente: PUT https://expedientesacademico.unir.net/api/v1/expedientes-alumnos/{id}/por-integracion",
			"Flujo 2 — Ampliación:",
			"Si NO es la primera matrícula (ampliación): GestorMapeos -> POST https://erpacademico.unir.net/api/v1/migrar/ampliacion -> ERP guarda matrícula -> ERP llama a Expedientes para notificar matrícula realizada:",
			"  - Notificar matrícula realizada (Expedientes): POST https://expedientesacademico.unir.net/api/v1/expedientes-alumnos/matricula-realizada",
		},
	}

	colours = "\nColores:\n - GestorMapeos: azul oscuro\n - ERP Académico: azul medio\n - Expedientes: verde\n"
)

// BuildDocument returns the document describing both flows, with the image
// at imagePath embedded 6.5 inches wide.
func BuildDocument(imagePath string) (*docx.Document, error) {
	doc := docx.New()
	doc.SetTitle(DocumentTitle)

	doc.AddHeading(DocumentTitle, 1)
	doc.AddParagraph(intro)

	for _, s := range []section{urls, flows} {
		doc.AddHeading(s.heading, 2)
		for _, p := range s.paragraphs {
			doc.AddParagraph(p)
		}
	}

	doc.AddHeading("PlantUML (código)", 2)
	doc.AddParagraph(PlantUML)

	doc.AddHeading("Imagen del diagrama", 2)
	if err := doc.AddPicture(imagePath, docx.Inches(ImageWidthInches)); err != nil {
		return nil, err
	}

	doc.AddParagraph(colours)
	return doc, nil
}
