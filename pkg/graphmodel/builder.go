// Package graphmodel builds the abstract vocabulary graph from a frequency
// map: a center node plus one node per used term, star edges weighted by
// count, and the ordered top-k term list. The builder performs no rendering,
// no layout and no I/O; renderers consume the model as-is.
package graphmodel

import (
	"github.com/dtnitsch/vocab-graph/models"
)

// Options controls graph construction. The zero value is not useful; use
// DefaultOptions and override what you need.
type Options struct {
	CenterLabel string
	TopK        int
	// CenterSize must exceed any term node's size so the center reads as the
	// hub. Term node size = BaseSize + count*SizeScale, role-independent, so
	// sizing stays strictly monotonic in frequency.
	CenterSize float64
	BaseSize   float64
	SizeScale  float64
}

// DefaultOptions mirrors the models package defaults.
func DefaultOptions() Options {
	return Options{
		CenterLabel: models.DefaultCenterLabel,
		TopK:        models.DefaultTopK,
		CenterSize:  models.DefaultCenterSize,
		BaseSize:    models.DefaultBaseSize,
		SizeScale:   models.DefaultSizeScale,
	}
}

// Build constructs a GraphModel from a frequency map. Terms with a zero
// count get neither a node nor an edge. When no term is used at all the
// model still carries its center node and reports IsEmpty; the builder never
// fails. Nodes and edges are emitted center-first and then in (count desc,
// term asc) order so serializations of the same map are identical.
func Build(freq map[string]int, opts Options) *models.GraphModel {
	model := &models.GraphModel{
		Center: opts.CenterLabel,
		Nodes: []models.GraphNode{
			{
				Label:     opts.CenterLabel,
				Role:      models.RoleCenter,
				Frequency: 0,
				Size:      opts.CenterSize,
			},
		},
		Edges:    []models.GraphEdge{},
		TopTerms: []string{},
	}

	used := usedTerms(freq)
	if len(used) == 0 {
		return model
	}

	top := TopTerms(freq, opts.TopK)
	model.TopTerms = top

	topSet := make(map[string]bool, len(top))
	for _, term := range top {
		topSet[term] = true
	}

	for _, tc := range used {
		role := models.RoleNormal
		if topSet[tc.Term] {
			role = models.RoleTop
		}

		model.Nodes = append(model.Nodes, models.GraphNode{
			Label:     tc.Term,
			Role:      role,
			Frequency: tc.Count,
			Size:      opts.BaseSize + float64(tc.Count)*opts.SizeScale,
		})
		model.Edges = append(model.Edges, models.GraphEdge{
			From:   opts.CenterLabel,
			To:     tc.Term,
			Weight: tc.Count,
		})
	}

	return model
}
