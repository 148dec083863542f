// Package storage is the file I/O layer for drivers. Core packages accept
// text in memory and never touch the filesystem; acquiring documents and
// writing artifacts happens here.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ErrResourceUnavailable marks a missing or unreadable input document. It is
// fatal for the run: the computation is deterministic, so there is nothing
// to retry. Drivers surface it to the user; the core never sees it.
var ErrResourceUnavailable = errors.New("resource unavailable")

type Storage struct{}

// FileStats holds metadata about a file without reading its contents.
type FileStats struct {
	SizeBytes int64
	ModTime   time.Time
}

// ReadDocument reads an input document fully into memory. Failures wrap
// ErrResourceUnavailable so callers can classify them.
func (s *Storage) ReadDocument(filePath string) (string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrResourceUnavailable, filePath, err)
	}
	return string(data), nil
}

// SaveFile writes an output artifact, creating parent directories as needed.
func (s *Storage) SaveFile(filePath string, content []byte) error {
	if dir := filepath.Dir(filePath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("error creating output directory: %w", err)
		}
	}
	if err := os.WriteFile(filePath, content, 0644); err != nil {
		return fmt.Errorf("error saving file: %w", err)
	}
	return nil
}

func (s *Storage) HasFile(fn string) bool {
	_, err := os.Stat(fn)
	return err == nil || !os.IsNotExist(err)
}

// GetFileStats returns metadata about a file using os.Stat.
func (s *Storage) GetFileStats(filePath string) (*FileStats, error) {
	info, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("error getting file stats: %w", err)
	}

	return &FileStats{
		SizeBytes: info.Size(),
		ModTime:   info.ModTime(),
	}, nil
}
