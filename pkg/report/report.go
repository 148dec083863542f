// Package report serializes run artifacts: the per-term usage statistics
// JSON and the run summary manifest. Output is key-ordered and stable so
// artifacts diff cleanly between runs.
package report

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dtnitsch/vocab-graph/pkg/storage"
)

// RunSummary is the structure of the summary JSON printed after an analyze
// run. It gives a lightweight overview without requiring readers to open the
// full artifacts.
type RunSummary struct {
	GeneratedAt      string   `json:"generated_at"`
	VocabHash        string   `json:"vocab_hash"`
	ResearchHash     string   `json:"research_hash"`
	Language         string   `json:"language,omitempty"`
	TermCount        int      `json:"term_count"`
	UsedTermCount    int      `json:"used_term_count"`
	TotalMatches     int      `json:"total_matches"`
	TopTerms         []string `json:"top_terms"`
	DocumentKeywords []string `json:"document_keywords,omitempty"`
	StatsPath        string   `json:"stats_path,omitempty"`
	GraphPath        string   `json:"graph_path,omitempty"`
	CacheHit         bool     `json:"cache_hit"`
}

// MarshalUsageStats renders the frequency map as indented JSON.
// encoding/json emits map keys in sorted order, which is exactly the stable,
// key-ordered format the stats artifact needs.
func MarshalUsageStats(freq map[string]int) ([]byte, error) {
	data, err := json.MarshalIndent(freq, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("error marshalling usage stats: %w", err)
	}
	return data, nil
}

// WriteUsageStats saves the usage statistics artifact and returns its path.
func WriteUsageStats(freq map[string]int, path string, s *storage.Storage) (string, error) {
	data, err := MarshalUsageStats(freq)
	if err != nil {
		return "", err
	}
	if err := s.SaveFile(path, data); err != nil {
		return "", fmt.Errorf("error saving usage stats: %w", err)
	}
	return path, nil
}

// NewRunSummary stamps a summary with the generation time and the aggregate
// counts derived from the frequency map.
func NewRunSummary(freq map[string]int) *RunSummary {
	summary := &RunSummary{
		GeneratedAt: time.Now().Format(time.RFC3339),
		TermCount:   len(freq),
		TopTerms:    []string{},
	}

	for _, count := range freq {
		if count > 0 {
			summary.UsedTermCount++
			summary.TotalMatches += count
		}
	}

	return summary
}

// Marshal renders the summary as indented JSON.
func (r *RunSummary) Marshal() ([]byte, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("error marshalling run summary: %w", err)
	}
	return data, nil
}
