package renderer

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/dtnitsch/vocab-graph/models"
	"github.com/dtnitsch/vocab-graph/pkg/graphmodel"
)

func TestJSONGraph_RenderToFile(t *testing.T) {
	model := graphmodel.Build(map[string]int{"token": 2, "embedding": 5}, graphmodel.DefaultOptions())

	base := filepath.Join(t.TempDir(), "graph")
	r := NewJSONGraph()

	path, err := r.RenderToFile(model, base)
	if err != nil {
		t.Fatalf("RenderToFile() error = %v", err)
	}
	if path != base+".json" {
		t.Errorf("RenderToFile() path = %q, want %q", path, base+".json")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading rendered file: %v", err)
	}

	var got models.GraphModel
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("rendered file is not valid JSON: %v", err)
	}

	if len(got.Nodes) != 3 {
		t.Errorf("rendered model has %d nodes, want 3", len(got.Nodes))
	}
	if len(got.Edges) != 2 {
		t.Errorf("rendered model has %d edges, want 2", len(got.Edges))
	}
	if got.Nodes[0].Role != models.RoleCenter {
		t.Errorf("first rendered node role = %q, want center", got.Nodes[0].Role)
	}
}

func TestNew_UnknownRenderer(t *testing.T) {
	if _, err := New("matplotlib"); err == nil {
		t.Error("New(\"matplotlib\") error = nil, want error")
	}
}

func TestNew_KnownRenderers(t *testing.T) {
	for _, name := range []string{"echarts", "json"} {
		if _, err := New(name); err != nil {
			t.Errorf("New(%q) error = %v", name, err)
		}
	}
}
