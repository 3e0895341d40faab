package domain

import "fmt"

// DuplicateVersionError indicates that a write targeted a version that
// already exists for the same resource id, either as the current document or
// as a frozen snapshot.
type DuplicateVersionError struct {
	ID      string
	Version string
	Path    string
}

// Error implements the error interface.
func (e *DuplicateVersionError) Error() string {
	return fmt.Sprintf("version already exists: id=%q version=%q path=%q", e.ID, e.Version, e.Path)
}

// NotFoundError indicates that an operation targeted a resource or location
// that does not exist. Reads represent absence as a nil result instead; this
// error is reserved for operations where the caller expected the location to
// be there (freeze, attach, remove).
type NotFoundError struct {
	ID      string
	Version string
	Path    string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	if e.Version != "" {
		return fmt.Sprintf("resource not found: id=%q version=%q", e.ID, e.Version)
	}
	if e.Path != "" {
		return fmt.Sprintf("resource not found: id=%q path=%q", e.ID, e.Path)
	}
	return fmt.Sprintf("resource not found: id=%q", e.ID)
}
