package renderer

import (
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/dtnitsch/vocab-graph/models"
)

// Role colors. Light faces so the black labels stay readable.
const (
	centerColor = "#ffe89c"
	topColor    = "#ffd1d9"
	normalColor = "#d6ecff"
)

// symbolSizeDivisor converts abstract model sizes into echarts symbol sizes.
// Division preserves the model's size ordering.
const symbolSizeDivisor = 60.0

// ECharts renders the graph model as an interactive HTML force graph.
type ECharts struct{}

var _ Renderer = (*ECharts)(nil)

func NewECharts() *ECharts {
	return &ECharts{}
}

func (e *ECharts) RenderToFile(model *models.GraphModel, filename string) (string, error) {
	filename = filename + ".html"

	page := components.NewPage()
	page.AddCharts(graphChart(model))

	f, err := os.Create(filename)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := page.Render(f); err != nil {
		return "", err
	}
	return filename, nil
}

func graphChart(model *models.GraphModel) *charts.Graph {
	graph := charts.NewGraph()

	subtitle := ""
	if model.IsEmpty() {
		subtitle = "No vocabulary terms found in the research document"
	}

	graph.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "vocab-graph results",
			Height:    "100vh",
			Width:     "100vw",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    model.Center,
			Subtitle: subtitle,
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(false),
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show: opts.Bool(true),
		}),
	)

	graph.AddSeries(
		"graph",
		graphNodes(model),
		graphLinks(model),
		charts.WithGraphChartOpts(
			opts.GraphChart{
				Draggable: opts.Bool(true),
				Roam:      opts.Bool(true),
				Force:     &opts.GraphForce{Repulsion: 400},
			},
		),
		charts.WithLabelOpts(opts.Label{
			Show:     opts.Bool(true),
			Color:    "black",
			Position: "top",
		}),
	)

	return graph
}

func graphNodes(model *models.GraphModel) []opts.GraphNode {
	nodes := make([]opts.GraphNode, 0, len(model.Nodes))
	for _, node := range model.Nodes {
		color := normalColor
		switch node.Role {
		case models.RoleCenter:
			color = centerColor
		case models.RoleTop:
			color = topColor
		}

		nodes = append(nodes, opts.GraphNode{
			Name:       node.Label,
			Value:      float32(node.Frequency),
			SymbolSize: float32(node.Size / symbolSizeDivisor),
			ItemStyle:  &opts.ItemStyle{Color: color},
		})
	}
	return nodes
}

func graphLinks(model *models.GraphModel) []opts.GraphLink {
	links := make([]opts.GraphLink, 0, len(model.Edges))
	for _, edge := range model.Edges {
		links = append(links, opts.GraphLink{
			Source: edge.From,
			Target: edge.To,
			Value:  float32(edge.Weight),
		})
	}
	return links
}
