package storageurl

import "strings"

// Resolver turns stored image references into fetchable URLs. Uploaded files
// are served from a different host than the API, so relative filenames are
// joined with the configured storage base URL.
type Resolver struct {
	base string
}

// New creates a resolver for the given storage base URL.
func New(base string) *Resolver {
	return &Resolver{base: strings.TrimRight(base, "/")}
}

// Resolve returns a displayable URL for a stored image reference. Values
// that already carry a scheme pass through verbatim; empty input stays empty.
func (r *Resolver) Resolve(stored string) string {
	stored = strings.TrimSpace(stored)
	if stored == "" {
		return ""
	}
	if strings.HasPrefix(stored, "http://") || strings.HasPrefix(stored, "https://") {
		return stored
	}
	if r.base == "" {
		return stored
	}
	return r.base + "/" + strings.TrimLeft(stored, "/")
}
