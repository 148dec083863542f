// Package runs implements the runs CLI verb: a table of past analyze runs
// from the history database.
package runs

import (
	"fmt"
	"strings"

	"github.com/dtnitsch/vocab-graph/internal/common"
	dbpkg "github.com/dtnitsch/vocab-graph/pkg/db"
	"github.com/urfave/cli/v2"
)

func RunsAction(c *cli.Context) error {
	var database *dbpkg.DB
	var err error
	if c.IsSet("db") {
		database, err = dbpkg.OpenAt(c.String("db"))
	} else {
		database, err = dbpkg.Open()
	}
	if err != nil {
		return fmt.Errorf("failed to open run history database: %w", err)
	}
	defer database.Close()

	runs, err := database.ListRuns(c.Int("limit"))
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	if len(runs) == 0 {
		fmt.Println("No runs found")
		return nil
	}

	// Print table header
	fmt.Printf("%-6s %-20s %-13s %-13s %-6s %-6s %-8s %-40s\n",
		"ID", "Created", "Vocab", "Research", "Terms", "Used", "Matches", "Top Terms")
	fmt.Println(strings.Repeat("-", 120))

	// Print each run
	for _, run := range runs {
		fmt.Printf("%-6d %-20s %-13s %-13s %-6d %-6d %-8d %-40s\n",
			run.RunID,
			run.CreatedAt.Format("2006-01-02 15:04:05"),
			common.ShortHash(run.VocabHash),
			common.ShortHash(run.ResearchHash),
			run.TermCount,
			run.UsedTermCount,
			run.TotalMatches,
			strings.Join(run.TopTerms, ", "),
		)
	}

	fmt.Printf("\nTotal: %d runs\n", len(runs))
	return nil
}
