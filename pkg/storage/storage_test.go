package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestReadDocument_MissingFileIsResourceUnavailable(t *testing.T) {
	s := &Storage{}

	_, err := s.ReadDocument(filepath.Join(t.TempDir(), "missing.md"))
	if err == nil {
		t.Fatal("ReadDocument() error = nil, want error")
	}
	if !errors.Is(err, ErrResourceUnavailable) {
		t.Errorf("ReadDocument() error = %v, want ErrResourceUnavailable", err)
	}
}

func TestReadDocument(t *testing.T) {
	s := &Storage{}
	path := filepath.Join(t.TempDir(), "doc.md")
	if err := os.WriteFile(path, []byte("## 1. Term"), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	text, err := s.ReadDocument(path)
	if err != nil {
		t.Fatalf("ReadDocument() error = %v", err)
	}
	if text != "## 1. Term" {
		t.Errorf("ReadDocument() = %q", text)
	}
}

func TestSaveFile_CreatesParentDirs(t *testing.T) {
	s := &Storage{}
	path := filepath.Join(t.TempDir(), "results", "nested", "out.json")

	if err := s.SaveFile(path, []byte("{}")); err != nil {
		t.Fatalf("SaveFile() error = %v", err)
	}
	if !s.HasFile(path) {
		t.Error("SaveFile() did not create the file")
	}
}
