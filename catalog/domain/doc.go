// Package domain defines the catalog's core types: versioned resources,
// nested service references, attachment files, version comparison and the
// duplicate/not-found error conditions. It has no dependencies on storage.
package domain
