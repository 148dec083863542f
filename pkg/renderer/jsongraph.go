package renderer

import (
	"encoding/json"
	"os"

	"github.com/dtnitsch/vocab-graph/models"
)

// JSONGraph renders the graph model as an indented JSON file for downstream
// tooling. Node and edge order comes straight from the model, which is
// already deterministic, so output bytes are stable across runs.
type JSONGraph struct{}

var _ Renderer = (*JSONGraph)(nil)

func NewJSONGraph() *JSONGraph {
	return &JSONGraph{}
}

func (j *JSONGraph) RenderToFile(model *models.GraphModel, filename string) (string, error) {
	filename = filename + ".json"

	data, err := json.MarshalIndent(model, "", "  ")
	if err != nil {
		return "", err
	}

	file, err := os.Create(filename)
	if err != nil {
		return "", err
	}
	defer file.Close()

	if _, err := file.Write(data); err != nil {
		return "", err
	}

	return filename, nil
}
