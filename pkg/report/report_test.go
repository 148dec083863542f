package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dtnitsch/vocab-graph/pkg/storage"
)

func TestMarshalUsageStats_KeyOrdered(t *testing.T) {
	freq := map[string]int{
		"vector database":    1,
		"generative ai":      3,
		"prompt engineering": 1,
	}

	data, err := MarshalUsageStats(freq)
	if err != nil {
		t.Fatalf("MarshalUsageStats() error = %v", err)
	}

	want := "{\n    \"generative ai\": 3,\n    \"prompt engineering\": 1,\n    \"vector database\": 1\n}"
	if string(data) != want {
		t.Errorf("MarshalUsageStats() = %q, want %q", string(data), want)
	}

	// Same map, same bytes.
	again, err := MarshalUsageStats(freq)
	if err != nil {
		t.Fatalf("MarshalUsageStats() second call error = %v", err)
	}
	if string(again) != string(data) {
		t.Error("MarshalUsageStats() output is not stable across calls")
	}
}

func TestWriteUsageStats(t *testing.T) {
	s := &storage.Storage{}
	path := filepath.Join(t.TempDir(), "usage_stats.json")

	got, err := WriteUsageStats(map[string]int{"foo": 0}, path, s)
	if err != nil {
		t.Fatalf("WriteUsageStats() error = %v", err)
	}
	if got != path {
		t.Errorf("WriteUsageStats() path = %q, want %q", got, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading stats file: %v", err)
	}
	if string(data) != "{\n    \"foo\": 0\n}" {
		t.Errorf("stats file = %q", string(data))
	}
}

func TestNewRunSummary_Aggregates(t *testing.T) {
	summary := NewRunSummary(map[string]int{"a": 3, "b": 0, "c": 2})

	if summary.TermCount != 3 {
		t.Errorf("TermCount = %d, want 3", summary.TermCount)
	}
	if summary.UsedTermCount != 2 {
		t.Errorf("UsedTermCount = %d, want 2", summary.UsedTermCount)
	}
	if summary.TotalMatches != 5 {
		t.Errorf("TotalMatches = %d, want 5", summary.TotalMatches)
	}
	if summary.GeneratedAt == "" {
		t.Error("GeneratedAt is empty")
	}
}
