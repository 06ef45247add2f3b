package diagram_test

import (
	"fmt"

	"github.com/matzehuels/flowdoc/pkg/diagram"
)

func ExampleDefault() {
	d := diagram.Default()
	for _, a := range d.Arrows {
		fmt.Printf("%s -> %s: %s\n", a.Source, a.Target, a.Label)
	}
	// Output:
	// gestor -> primera: Primera Matrícula
	// primera -> expedientes: Crear/Actualizar
	// primera -> crear-expediente: Crear Expediente
	// gestor -> ampliacion: Ampliación
	// ampliacion -> matricula-realizada: Matricula Realizada
}

func ExampleLabelColor() {
	fmt.Println(diagram.Hex(diagram.LabelColor(diagram.ColorGestor)))
	fmt.Println(diagram.Hex(diagram.LabelColor(diagram.ColorExpedientes)))
	// Output:
	// #ffffff
	// #000000
}
