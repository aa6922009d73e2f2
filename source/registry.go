// Package source fetches ontology documents from the places a catalog
// entry can point at: local files (with glob patterns), http(s) URLs,
// and git repositories.
package source

import (
	"context"
	"fmt"
	"sync"

	"github.com/ontoforge/ontosnip/catalog"
)

// File is one fetched ontology document.
type File struct {
	// Name identifies the document in logs and reports (a path or URL).
	Name string

	// Data is the document content.
	Data []byte
}

// Fetcher retrieves the documents a catalog source names.
type Fetcher interface {
	// Fetch retrieves all documents for the source.
	Fetch(ctx context.Context, src catalog.Source) ([]File, error)

	// CanFetch returns true if this fetcher handles the given source.
	CanFetch(src catalog.Source) bool

	// Name returns the fetcher name for logs and errors.
	Name() string
}

// Registry manages fetchers.
type Registry struct {
	mu       sync.RWMutex
	fetchers []Fetcher
}

// NewRegistry creates a registry with the default fetchers.
func NewRegistry(cacheDir string) *Registry {
	r := &Registry{}
	r.Register(NewFileFetcher())
	r.Register(NewHTTPFetcher())
	r.Register(NewGitFetcher(cacheDir))
	return r
}

// Register adds a fetcher. Later registrations win ties, so callers can
// override the defaults.
func (r *Registry) Register(f Fetcher) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fetchers = append([]Fetcher{f}, r.fetchers...)
}

// For returns the fetcher handling the source.
func (r *Registry) For(src catalog.Source) (Fetcher, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, f := range r.fetchers {
		if f.CanFetch(src) {
			return f, nil
		}
	}
	return nil, fmt.Errorf("no fetcher for source (path=%q url=%q)", src.Path, src.URL)
}

// Fetch resolves and runs the fetcher for the source.
func (r *Registry) Fetch(ctx context.Context, src catalog.Source) ([]File, error) {
	f, err := r.For(src)
	if err != nil {
		return nil, err
	}
	files, err := f.Fetch(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("%s fetch: %w", f.Name(), err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%s fetch: source matched no documents", f.Name())
	}
	return files, nil
}
