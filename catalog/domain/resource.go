package domain

// ServiceRef points at a service owned by a resource. Two refs are the same
// entry when both id and version match.
type ServiceRef struct {
	ID      string `yaml:"id" json:"id"`
	Version string `yaml:"version" json:"version"`
}

// Key returns the composite dedup key for the ref.
func (r ServiceRef) Key() string {
	return r.ID + "@" + r.Version
}

// Resource is a versioned catalog entity. A resource is uniquely identified
// by (ID, Version); ID is stable across versions.
//
// Extensions holds any front-matter fields the catalog does not recognize.
// They are preserved verbatim on round-trip.
type Resource struct {
	ID         string         `yaml:"id" json:"id"`
	Name       string         `yaml:"name" json:"name"`
	Version    string         `yaml:"version" json:"version"`
	Summary    string         `yaml:"summary,omitempty" json:"summary,omitempty"`
	Services   []ServiceRef   `yaml:"services,omitempty" json:"services,omitempty"`
	Extensions map[string]any `yaml:",inline" json:"-"`

	// Markdown is the free-form content body below the front matter.
	Markdown string `yaml:"-" json:"markdown,omitempty"`
}

// Clone returns a deep copy of the resource.
func (r *Resource) Clone() *Resource {
	if r == nil {
		return nil
	}
	out := *r
	if r.Services != nil {
		out.Services = make([]ServiceRef, len(r.Services))
		copy(out.Services, r.Services)
	}
	if r.Extensions != nil {
		out.Extensions = make(map[string]any, len(r.Extensions))
		for k, v := range r.Extensions {
			out.Extensions[k] = v
		}
	}
	return &out
}

// File is an auxiliary file attached to a resource location.
type File struct {
	FileName string `json:"fileName"`
	Content  []byte `json:"content"`
}
