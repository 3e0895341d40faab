// Package application owns the resource lifecycle: version resolution,
// writes with duplicate detection, freezing current state into immutable
// snapshots, selective removal and file attachment. Physical data movement
// is delegated to a Storage adapter.
package application

import (
	"context"

	"github.com/XaaXaaX/sdk/catalog/domain"
)

// Storage is the adapter the store drives. Locations are directory paths;
// the adapter owns the fixed metadata document name within a location.
//
// Implementations report absence as (nil, nil) from ReadDocument and an
// empty list from ListChildren; I/O failures propagate as errors.
type Storage interface {
	// Exists reports whether a location or file exists.
	Exists(ctx context.Context, path string) (bool, error)

	// ListChildren returns the immediate child entry names of a directory,
	// files and directories alike. A missing directory lists as empty.
	ListChildren(ctx context.Context, path string) ([]string, error)

	// ReadDocument reads the metadata document stored at a location.
	ReadDocument(ctx context.Context, path string) (*domain.Resource, error)

	// WriteDocument writes the metadata document at a location, creating the
	// location if absent.
	WriteDocument(ctx context.Context, path string, resource *domain.Resource) error

	// CopyTree recursively copies a file or directory tree.
	CopyTree(ctx context.Context, source, destination string) error

	// RemoveTree removes a file or directory tree. Removing a missing path
	// is not an error.
	RemoveTree(ctx context.Context, path string) error

	// WriteFile writes an auxiliary file by literal name under a location.
	WriteFile(ctx context.Context, path, fileName string, content []byte) error
}
