package application

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/XaaXaaX/sdk/catalog/domain"
)

// memoryStorage is an in-memory implementation of Storage for store tests.
// Documents are keyed by their location directory; auxiliary files by full
// path.
type memoryStorage struct {
	docs  map[string]*domain.Resource
	files map[string][]byte
	dirs  map[string]bool
}

func newMemoryStorage() *memoryStorage {
	return &memoryStorage{
		docs:  make(map[string]*domain.Resource),
		files: make(map[string][]byte),
		dirs:  make(map[string]bool),
	}
}

// Ensure memoryStorage implements Storage.
var _ Storage = (*memoryStorage)(nil)

const documentName = "index.md"

func (m *memoryStorage) Exists(_ context.Context, path string) (bool, error) {
	if m.docs[path] != nil || m.dirs[path] || m.files[path] != nil {
		return true, nil
	}
	return m.hasChildren(path), nil
}

func (m *memoryStorage) ListChildren(_ context.Context, path string) ([]string, error) {
	seen := make(map[string]bool)
	var names []string
	add := func(name string) {
		if name != "" && !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}

	if m.docs[path] != nil {
		add(documentName)
	}
	prefix := path + string(filepath.Separator)
	for k := range m.docs {
		if strings.HasPrefix(k, prefix) {
			add(firstSegment(strings.TrimPrefix(k, prefix)))
		}
	}
	for k := range m.files {
		if strings.HasPrefix(k, prefix) {
			add(firstSegment(strings.TrimPrefix(k, prefix)))
		}
	}
	for k := range m.dirs {
		if strings.HasPrefix(k, prefix) {
			add(firstSegment(strings.TrimPrefix(k, prefix)))
		}
	}
	return names, nil
}

func (m *memoryStorage) ReadDocument(_ context.Context, path string) (*domain.Resource, error) {
	return m.docs[path].Clone(), nil
}

func (m *memoryStorage) WriteDocument(_ context.Context, path string, resource *domain.Resource) error {
	m.docs[path] = resource.Clone()
	m.dirs[path] = true
	return nil
}

func (m *memoryStorage) CopyTree(_ context.Context, source, destination string) error {
	if content, ok := m.files[source]; ok {
		m.files[destination] = append([]byte(nil), content...)
		return nil
	}
	if filepath.Base(source) == documentName {
		if doc := m.docs[filepath.Dir(source)]; doc != nil {
			dir := filepath.Dir(destination)
			m.docs[dir] = doc.Clone()
			m.dirs[dir] = true
			return nil
		}
	}

	prefix := source + string(filepath.Separator)
	copied := false
	for k, v := range m.docs {
		if k == source || strings.HasPrefix(k, prefix) {
			m.docs[destination+strings.TrimPrefix(k, source)] = v.Clone()
			copied = true
		}
	}
	for k, v := range m.files {
		if strings.HasPrefix(k, prefix) {
			m.files[destination+strings.TrimPrefix(k, source)] = append([]byte(nil), v...)
			copied = true
		}
	}
	for k := range m.dirs {
		if k == source || strings.HasPrefix(k, prefix) {
			m.dirs[destination+strings.TrimPrefix(k, source)] = true
			copied = true
		}
	}
	if !copied {
		return &domain.NotFoundError{Path: source}
	}
	return nil
}

func (m *memoryStorage) RemoveTree(_ context.Context, path string) error {
	delete(m.files, path)
	if filepath.Base(path) == documentName {
		delete(m.docs, filepath.Dir(path))
	}
	prefix := path + string(filepath.Separator)
	for k := range m.docs {
		if k == path || strings.HasPrefix(k, prefix) {
			delete(m.docs, k)
		}
	}
	for k := range m.files {
		if strings.HasPrefix(k, prefix) {
			delete(m.files, k)
		}
	}
	for k := range m.dirs {
		if k == path || strings.HasPrefix(k, prefix) {
			delete(m.dirs, k)
		}
	}
	return nil
}

func (m *memoryStorage) WriteFile(_ context.Context, path, fileName string, content []byte) error {
	m.files[filepath.Join(path, fileName)] = append([]byte(nil), content...)
	m.dirs[path] = true
	return nil
}

func (m *memoryStorage) hasChildren(path string) bool {
	prefix := path + string(filepath.Separator)
	for k := range m.docs {
		if strings.HasPrefix(k, prefix) {
			return true
		}
	}
	for k := range m.files {
		if strings.HasPrefix(k, prefix) {
			return true
		}
	}
	for k := range m.dirs {
		if strings.HasPrefix(k, prefix) {
			return true
		}
	}
	return false
}

func firstSegment(rel string) string {
	if i := strings.IndexRune(rel, filepath.Separator); i >= 0 {
		return rel[:i]
	}
	return rel
}
