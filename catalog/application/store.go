package application

import (
	"context"
	"fmt"
	"path/filepath"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/XaaXaaX/sdk/catalog/domain"
	"github.com/XaaXaaX/sdk/internal/log"
)

// VersionedDirName is the directory under a current location that holds
// frozen historical snapshots, keyed by version string.
const VersionedDirName = "versioned"

// Store owns the lifecycle of resources within one collection of a catalog.
// It is an explicit handle: the catalog root and collection are bound at
// construction and every operation goes through it.
type Store struct {
	storage    Storage
	root       string
	collection string
	tracer     trace.Tracer
}

// NewStore creates a store over the given adapter, rooted at
// <root>/<collection>.
func NewStore(storage Storage, root, collection string) *Store {
	return &Store{
		storage:    storage,
		root:       root,
		collection: collection,
		tracer:     otel.Tracer("catalog"),
	}
}

// Path returns the current location for a resource id, relative paths
// resolved against the store's collection directory.
func (s *Store) Path(id string) string {
	return filepath.Join(s.root, s.collection, id)
}

// Write persists resource at its default location derived from the id.
// It fails with DuplicateVersionError when the target already stores the
// same version, whether current or frozen.
func (s *Store) Write(ctx context.Context, resource *domain.Resource) error {
	return s.WriteAt(ctx, resource, resource.ID)
}

// WriteAt persists resource at an explicit path relative to the collection
// directory, overriding the id-derived default.
func (s *Store) WriteAt(ctx context.Context, resource *domain.Resource, path string) error {
	ctx, span := s.startSpan(ctx, "catalog.Write", resource.ID, resource.Version)
	defer span.End()

	loc := filepath.Join(s.root, s.collection, path)

	current, err := s.storage.ReadDocument(ctx, loc)
	if err != nil {
		return fmt.Errorf("reading current document: %w", err)
	}
	if current != nil && domain.CompareVersions(current.Version, resource.Version) == 0 {
		return &domain.DuplicateVersionError{ID: resource.ID, Version: resource.Version, Path: loc}
	}

	versions, err := s.historicalVersions(ctx, loc)
	if err != nil {
		return err
	}
	for _, v := range versions {
		if domain.CompareVersions(v, resource.Version) == 0 {
			return &domain.DuplicateVersionError{ID: resource.ID, Version: resource.Version, Path: loc}
		}
	}

	write := resource.Clone()
	write.Services = domain.MergeServiceRefs(write.Services)

	log.Debug(log.CatStore, "Writing resource", "id", resource.ID, "version", resource.Version, "path", loc)
	if err := s.storage.WriteDocument(ctx, loc, write); err != nil {
		return fmt.Errorf("writing document: %w", err)
	}
	return nil
}

// Get returns the resource for id at the requested version, or the current
// one when version is empty or "latest". Absence is a query outcome, not a
// failure: an unresolved version returns (nil, nil).
func (s *Store) Get(ctx context.Context, id, version string) (*domain.Resource, error) {
	ctx, span := s.startSpan(ctx, "catalog.Get", id, version)
	defer span.End()

	loc := s.Path(id)
	current, versions, err := s.locationState(ctx, loc)
	if err != nil {
		return nil, err
	}

	resolved, ok := Resolve(version, currentVersionOf(current), versions)
	if !ok {
		return nil, nil
	}
	if !resolved.Historical {
		return current, nil
	}
	doc, err := s.storage.ReadDocument(ctx, filepath.Join(loc, VersionedDirName, resolved.Version))
	if err != nil {
		return nil, fmt.Errorf("reading versioned document: %w", err)
	}
	return doc, nil
}

// Freeze moves the entire current location, document plus auxiliary files,
// into a historical snapshot keyed by the current version, then clears the
// current location. A failed copy removes the staged snapshot so no partial
// state is left readable. Fails with NotFoundError when no current document
// exists.
func (s *Store) Freeze(ctx context.Context, id string) error {
	ctx, span := s.startSpan(ctx, "catalog.Freeze", id, "")
	defer span.End()

	loc := s.Path(id)
	current, err := s.storage.ReadDocument(ctx, loc)
	if err != nil {
		return fmt.Errorf("reading current document: %w", err)
	}
	if current == nil {
		return &domain.NotFoundError{ID: id, Path: loc}
	}

	target := filepath.Join(loc, VersionedDirName, current.Version)
	if exists, err := s.storage.Exists(ctx, target); err != nil {
		return fmt.Errorf("checking snapshot target: %w", err)
	} else if exists {
		return &domain.DuplicateVersionError{ID: id, Version: current.Version, Path: target}
	}

	children, err := s.storage.ListChildren(ctx, loc)
	if err != nil {
		return fmt.Errorf("listing current location: %w", err)
	}

	// Copy everything except the versioned directory itself; only then
	// delete the originals, so a copy failure leaves current untouched.
	for _, name := range children {
		if name == VersionedDirName {
			continue
		}
		if err := s.storage.CopyTree(ctx, filepath.Join(loc, name), filepath.Join(target, name)); err != nil {
			_ = s.storage.RemoveTree(ctx, target)
			return fmt.Errorf("copying %s into snapshot: %w", name, err)
		}
	}
	for _, name := range children {
		if name == VersionedDirName {
			continue
		}
		if err := s.storage.RemoveTree(ctx, filepath.Join(loc, name)); err != nil {
			return fmt.Errorf("clearing current location: %w", err)
		}
	}

	log.Debug(log.CatStore, "Froze resource", "id", id, "version", current.Version)
	return nil
}

// Remove deletes a location by structural path, relative to the collection
// directory, regardless of resource id.
func (s *Store) Remove(ctx context.Context, path string) error {
	ctx, span := s.startSpan(ctx, "catalog.Remove", path, "")
	defer span.End()

	if err := s.storage.RemoveTree(ctx, filepath.Join(s.root, s.collection, path)); err != nil {
		return fmt.Errorf("removing %s: %w", path, err)
	}
	return nil
}

// RemoveByID deletes the current location when version is empty, leaving
// historical snapshots untouched. With a version it deletes exactly the
// resolved location: only current, or only that one snapshot. Fails with
// NotFoundError when the version does not resolve.
func (s *Store) RemoveByID(ctx context.Context, id, version string) error {
	ctx, span := s.startSpan(ctx, "catalog.RemoveByID", id, version)
	defer span.End()

	loc := s.Path(id)
	current, versions, err := s.locationState(ctx, loc)
	if err != nil {
		return err
	}

	resolved, ok := Resolve(version, currentVersionOf(current), versions)
	if !ok {
		return &domain.NotFoundError{ID: id, Version: version, Path: loc}
	}
	if resolved.Historical {
		return s.storage.RemoveTree(ctx, filepath.Join(loc, VersionedDirName, resolved.Version))
	}
	if len(versions) == 0 {
		return s.storage.RemoveTree(ctx, loc)
	}

	// Snapshots live nested under the current location, so clearing current
	// removes every child except the versioned directory.
	children, err := s.storage.ListChildren(ctx, loc)
	if err != nil {
		return fmt.Errorf("listing current location: %w", err)
	}
	for _, name := range children {
		if name == VersionedDirName {
			continue
		}
		if err := s.storage.RemoveTree(ctx, filepath.Join(loc, name)); err != nil {
			return fmt.Errorf("clearing current location: %w", err)
		}
	}
	return nil
}

// AttachFile writes file.Content under file.FileName at the resolved
// location: current by default, or the version-qualified snapshot. The
// location is checked for existence before any write is attempted.
func (s *Store) AttachFile(ctx context.Context, id string, file domain.File, version string) error {
	ctx, span := s.startSpan(ctx, "catalog.AttachFile", id, version)
	defer span.End()

	dir, err := s.resolveDir(ctx, id, version)
	if err != nil {
		return fmt.Errorf("cannot find directory to write file to: %w", err)
	}
	if err := s.storage.WriteFile(ctx, dir, file.FileName, file.Content); err != nil {
		return fmt.Errorf("writing file %s: %w", file.FileName, err)
	}
	return nil
}

// HasVersion reports whether the version token resolves for id, covering
// exact, range and "latest" tokens.
func (s *Store) HasVersion(ctx context.Context, id, version string) (bool, error) {
	ctx, span := s.startSpan(ctx, "catalog.HasVersion", id, version)
	defer span.End()

	loc := s.Path(id)
	current, versions, err := s.locationState(ctx, loc)
	if err != nil {
		return false, err
	}
	_, ok := Resolve(version, currentVersionOf(current), versions)
	return ok, nil
}

// AddService merges ref into the stored services list of the resolved
// document, add-if-absent against the full stored list. An already-present
// ref leaves the document untouched.
func (s *Store) AddService(ctx context.Context, id string, ref domain.ServiceRef, version string) error {
	ctx, span := s.startSpan(ctx, "catalog.AddService", id, version)
	defer span.End()

	dir, err := s.resolveDir(ctx, id, version)
	if err != nil {
		return err
	}
	doc, err := s.storage.ReadDocument(ctx, dir)
	if err != nil {
		return fmt.Errorf("reading document: %w", err)
	}
	if doc == nil {
		return &domain.NotFoundError{ID: id, Version: version, Path: dir}
	}

	merged := domain.AddServiceRef(doc.Services, ref)
	if len(merged) == len(doc.Services) {
		return nil
	}
	doc.Services = merged
	if err := s.storage.WriteDocument(ctx, dir, doc); err != nil {
		return fmt.Errorf("writing document: %w", err)
	}
	return nil
}

// resolveDir resolves a version token into the physical directory for id,
// verifying the directory exists. Returns NotFoundError when the token does
// not resolve or the directory is missing.
func (s *Store) resolveDir(ctx context.Context, id, version string) (string, error) {
	loc := s.Path(id)
	current, versions, err := s.locationState(ctx, loc)
	if err != nil {
		return "", err
	}
	resolved, ok := Resolve(version, currentVersionOf(current), versions)
	if !ok {
		return "", &domain.NotFoundError{ID: id, Version: version, Path: loc}
	}
	dir := loc
	if resolved.Historical {
		dir = filepath.Join(loc, VersionedDirName, resolved.Version)
	}
	exists, err := s.storage.Exists(ctx, dir)
	if err != nil {
		return "", fmt.Errorf("checking location: %w", err)
	}
	if !exists {
		return "", &domain.NotFoundError{ID: id, Version: version, Path: dir}
	}
	return dir, nil
}

// locationState reads the current document and enumerates historical
// versions for a location.
func (s *Store) locationState(ctx context.Context, loc string) (*domain.Resource, []string, error) {
	current, err := s.storage.ReadDocument(ctx, loc)
	if err != nil {
		return nil, nil, fmt.Errorf("reading current document: %w", err)
	}
	versions, err := s.historicalVersions(ctx, loc)
	if err != nil {
		return nil, nil, err
	}
	return current, versions, nil
}

func (s *Store) historicalVersions(ctx context.Context, loc string) ([]string, error) {
	versions, err := s.storage.ListChildren(ctx, filepath.Join(loc, VersionedDirName))
	if err != nil {
		return nil, fmt.Errorf("listing versioned snapshots: %w", err)
	}
	return versions, nil
}

func (s *Store) startSpan(ctx context.Context, name, id, version string) (context.Context, trace.Span) {
	return s.tracer.Start(ctx, name, trace.WithAttributes(
		attribute.String("resource.id", id),
		attribute.String("resource.version", version),
	))
}

func currentVersionOf(current *domain.Resource) string {
	if current == nil {
		return ""
	}
	return current.Version
}
