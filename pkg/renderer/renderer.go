// Package renderer turns the abstract graph model into presentation
// artifacts. The model carries only labels, roles, frequencies, sizes and
// edge weights; everything visual (colors, layout, file format) lives behind
// the Renderer interface so output styles stay pluggable.
package renderer

import (
	"fmt"

	"github.com/dtnitsch/vocab-graph/models"
)

// Renderer renders a graph model to a file. filename should be the desired
// file name without an extension; implementations append their own.
// Renderers never feed decisions back into the model.
type Renderer interface {
	RenderToFile(model *models.GraphModel, filename string) (string, error)
}

// New returns the renderer registered under name: "echarts" for the
// interactive HTML force graph, "json" for the machine-readable dump.
func New(name string) (Renderer, error) {
	switch name {
	case "echarts":
		return NewECharts(), nil
	case "json":
		return NewJSONGraph(), nil
	default:
		return nil, fmt.Errorf("unknown renderer: %s", name)
	}
}
