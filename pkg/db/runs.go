package db

import (
	"fmt"
	"strings"
	"time"
)

// Run represents one recorded analyze run.
type Run struct {
	RunID         int64
	CreatedAt     time.Time
	VocabHash     string
	ResearchHash  string
	TermCount     int
	UsedTermCount int
	TotalMatches  int
	TopTerms      []string
	Language      string
	StatsPath     string
	GraphPath     string
}

// RecordRun inserts a run row and returns its ID.
func (db *DB) RecordRun(run Run) (int64, error) {
	result, err := db.Exec(`
		INSERT INTO runs (vocab_hash, research_hash, term_count, used_term_count,
			total_matches, top_terms, language, stats_path, graph_path)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.VocabHash,
		run.ResearchHash,
		run.TermCount,
		run.UsedTermCount,
		run.TotalMatches,
		strings.Join(run.TopTerms, ","),
		run.Language,
		run.StatsPath,
		run.GraphPath,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to record run: %w", err)
	}

	runID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get run ID: %w", err)
	}
	return runID, nil
}

// ListRuns returns the most recent runs, newest first. limit <= 0 means a
// default of 20.
func (db *DB) ListRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := db.Query(`
		SELECT run_id, created_at, vocab_hash, research_hash, term_count,
			used_term_count, total_matches, top_terms, language, stats_path, graph_path
		FROM runs
		ORDER BY created_at DESC, run_id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		var topTerms string
		if err := rows.Scan(
			&run.RunID,
			&run.CreatedAt,
			&run.VocabHash,
			&run.ResearchHash,
			&run.TermCount,
			&run.UsedTermCount,
			&run.TotalMatches,
			&topTerms,
			&run.Language,
			&run.StatsPath,
			&run.GraphPath,
		); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		if topTerms != "" {
			run.TopTerms = strings.Split(topTerms, ",")
		}
		runs = append(runs, run)
	}

	return runs, rows.Err()
}

// GetRunByID fetches a single run row.
func (db *DB) GetRunByID(runID int64) (*Run, error) {
	var run Run
	var topTerms string
	err := db.QueryRow(`
		SELECT run_id, created_at, vocab_hash, research_hash, term_count,
			used_term_count, total_matches, top_terms, language, stats_path, graph_path
		FROM runs WHERE run_id = ?`, runID).Scan(
		&run.RunID,
		&run.CreatedAt,
		&run.VocabHash,
		&run.ResearchHash,
		&run.TermCount,
		&run.UsedTermCount,
		&run.TotalMatches,
		&topTerms,
		&run.Language,
		&run.StatsPath,
		&run.GraphPath,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get run %d: %w", runID, err)
	}
	if topTerms != "" {
		run.TopTerms = strings.Split(topTerms, ",")
	}
	return &run, nil
}
