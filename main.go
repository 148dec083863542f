package main

import (
	"fmt"
	"log"
	"os"

	"github.com/dtnitsch/vocab-graph/internal/analyze"
	"github.com/dtnitsch/vocab-graph/internal/runs"
	"github.com/dtnitsch/vocab-graph/pkg/help"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "vocab-graph",
		Usage: "count vocabulary term usage in a research document and render it as a graph",
		Commands: []*cli.Command{
			{
				Name:   "analyze",
				Usage:  "run the full pipeline: count terms, write stats, render the graph",
				Action: analyze.AnalyzeAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "vocab",
						Usage: "path to the vocabulary markdown document",
					},
					&cli.StringFlag{
						Name:  "research",
						Usage: "path to the research document (markdown, plain text, or HTML)",
					},
					&cli.StringFlag{
						Name:  "config",
						Usage: "path to a YAML config file; flags override file values",
					},
					&cli.StringFlag{
						Name:  "output-dir",
						Usage: "directory for generated artifacts",
					},
					&cli.IntFlag{
						Name:  "top",
						Usage: "number of top terms to highlight",
					},
					&cli.StringFlag{
						Name:  "renderer",
						Usage: "graph renderer: echarts or json",
					},
					&cli.StringFlag{
						Name:  "center-label",
						Usage: "label for the center node",
					},
					&cli.StringFlag{
						Name:  "db",
						Usage: "path to the run history database (default: next to the binary)",
					},
					&cli.BoolFlag{
						Name:  "no-cache",
						Usage: "bypass the result cache and recount",
					},
					&cli.BoolFlag{
						Name:  "quiet",
						Usage: "only log errors",
					},
				},
			},
			{
				Name:   "stats",
				Usage:  "print per-term usage counts as JSON without writing artifacts",
				Action: analyze.StatsAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "vocab",
						Usage: "path to the vocabulary markdown document",
					},
					&cli.StringFlag{
						Name:  "research",
						Usage: "path to the research document",
					},
					&cli.StringFlag{
						Name:  "config",
						Usage: "path to a YAML config file; flags override file values",
					},
				},
			},
			{
				Name:   "runs",
				Usage:  "list past analyze runs from the history database",
				Action: runs.RunsAction,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "limit",
						Usage: "maximum number of runs to show",
						Value: 20,
					},
					&cli.StringFlag{
						Name:  "db",
						Usage: "path to the run history database (default: next to the binary)",
					},
				},
			},
			{
				Name:  "coldstart",
				Usage: "print a quick-start reference",
				Action: func(c *cli.Context) error {
					fmt.Print(help.ColdstartYAML)
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
