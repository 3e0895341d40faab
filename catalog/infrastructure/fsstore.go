// Package infrastructure provides the filesystem implementation of the
// catalog storage adapter. Resources are directories holding an index.md
// document with YAML front matter plus free-form auxiliary files; frozen
// snapshots nest under versioned/<version>/.
package infrastructure

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/XaaXaaX/sdk/catalog/application"
	"github.com/XaaXaaX/sdk/catalog/domain"
	"github.com/XaaXaaX/sdk/internal/log"
)

// DocumentFileName is the fixed metadata document name within a location.
const DocumentFileName = "index.md"

// FSStorage implements application.Storage over the local filesystem.
type FSStorage struct{}

// NewFSStorage creates a filesystem storage adapter.
func NewFSStorage() *FSStorage {
	return &FSStorage{}
}

// Ensure FSStorage implements application.Storage.
var _ application.Storage = (*FSStorage)(nil)

// Exists reports whether path exists as a file or directory.
func (s *FSStorage) Exists(_ context.Context, path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("stat %s: %w", path, err)
}

// ListChildren returns the immediate child entry names of a directory.
// A missing directory lists as empty.
func (s *FSStorage) ListChildren(_ context.Context, path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", path, err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names, nil
}

// ReadDocument reads and parses the index.md stored at a location.
// A missing document reads as (nil, nil).
func (s *FSStorage) ReadDocument(_ context.Context, path string) (*domain.Resource, error) {
	data, err := os.ReadFile(filepath.Join(path, DocumentFileName))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading document at %s: %w", path, err)
	}
	resource, err := ParseDocument(data)
	if err != nil {
		return nil, fmt.Errorf("parsing document at %s: %w", path, err)
	}
	return resource, nil
}

// WriteDocument serializes resource into <path>/index.md, creating the
// location if absent.
func (s *FSStorage) WriteDocument(_ context.Context, path string, resource *domain.Resource) error {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", path, err)
	}
	data, err := MarshalDocument(resource)
	if err != nil {
		return err
	}
	file := filepath.Join(path, DocumentFileName)
	log.Debug(log.CatFS, "Writing document", "path", file)
	if err := os.WriteFile(file, data, 0o644); err != nil {
		return fmt.Errorf("writing document %s: %w", file, err)
	}
	return nil
}

// CopyTree recursively copies a file or directory tree.
func (s *FSStorage) CopyTree(_ context.Context, source, destination string) error {
	info, err := os.Stat(source)
	if err != nil {
		return fmt.Errorf("stat %s: %w", source, err)
	}
	if !info.IsDir() {
		return copyFile(source, destination)
	}
	return filepath.WalkDir(source, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(source, path)
		if err != nil {
			return err
		}
		target := filepath.Join(destination, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		return copyFile(path, target)
	})
}

// RemoveTree removes a file or directory tree. Removing a missing path is
// not an error.
func (s *FSStorage) RemoveTree(_ context.Context, path string) error {
	if err := os.RemoveAll(path); err != nil {
		return fmt.Errorf("removing %s: %w", path, err)
	}
	return nil
}

// WriteFile writes an auxiliary file by literal name under a location.
func (s *FSStorage) WriteFile(_ context.Context, path, fileName string, content []byte) error {
	target := filepath.Join(path, fileName)
	log.Debug(log.CatFS, "Writing file", "path", target)
	if err := os.WriteFile(target, content, 0o644); err != nil {
		return fmt.Errorf("writing file %s: %w", target, err)
	}
	return nil
}

// copyFile copies a single file, creating the destination directory when
// needed.
func copyFile(source, destination string) error {
	if err := os.MkdirAll(filepath.Dir(destination), 0o755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", destination, err)
	}
	data, err := os.ReadFile(source)
	if err != nil {
		return fmt.Errorf("reading %s: %w", source, err)
	}
	if err := os.WriteFile(destination, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", destination, err)
	}
	return nil
}
