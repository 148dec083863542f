package models

// Node roles. Exactly one center node exists per model; top is assigned to at
// most k term nodes, chosen only among terms with a positive frequency.
const (
	RoleCenter = "center"
	RoleTop    = "top"
	RoleNormal = "normal"
)

// GraphNode is a single node in the abstract vocabulary graph. Size is a
// presentation-neutral magnitude derived from frequency; renderers scale it
// however they like but must not reorder it.
type GraphNode struct {
	Label     string  `json:"label"`
	Role      string  `json:"role"`
	Frequency int     `json:"frequency"`
	Size      float64 `json:"size"`
}

// GraphEdge connects the center node to a used term. Weight is that term's
// frequency count.
type GraphEdge struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Weight int    `json:"weight"`
}

// GraphModel is the renderer-facing output of the pipeline: nodes, star edges
// from the center, and the ordered top-k term list. It is built once per run
// and never mutated afterward.
type GraphModel struct {
	Center   string      `json:"center"`
	Nodes    []GraphNode `json:"nodes"`
	Edges    []GraphEdge `json:"edges"`
	TopTerms []string    `json:"top_terms"`
}

// IsEmpty reports whether no vocabulary term was used in the research text.
// An empty model still carries its center node; renderers are expected to
// produce a "nothing to show" presentation for it.
func (m *GraphModel) IsEmpty() bool {
	return len(m.Edges) == 0
}
