package models

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_MergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := "vocab: vocabulary.md\nresearch: research.md\ntop_k: 5\nsizing:\n  scale: 500\n"
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if config.VocabPath != "vocabulary.md" {
		t.Errorf("VocabPath = %q, want %q", config.VocabPath, "vocabulary.md")
	}
	if config.TopK != 5 {
		t.Errorf("TopK = %d, want 5", config.TopK)
	}
	if config.Sizing.Scale != 500 {
		t.Errorf("Sizing.Scale = %v, want 500", config.Sizing.Scale)
	}

	// Fields absent from the file keep their defaults.
	if config.CenterLabel != DefaultCenterLabel {
		t.Errorf("CenterLabel = %q, want default %q", config.CenterLabel, DefaultCenterLabel)
	}
	if config.Sizing.Base != DefaultBaseSize {
		t.Errorf("Sizing.Base = %v, want default %v", config.Sizing.Base, float64(DefaultBaseSize))
	}
	if config.Renderer != "echarts" {
		t.Errorf("Renderer = %q, want default echarts", config.Renderer)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("LoadConfig() error = nil, want error for missing file")
	}
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(":\n\t-"), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Error("LoadConfig() error = nil, want error for invalid YAML")
	}
}
