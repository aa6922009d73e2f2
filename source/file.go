package source

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/ontoforge/ontosnip/catalog"
)

// FileFetcher reads ontology documents from the local filesystem.
type FileFetcher struct{}

// NewFileFetcher creates a local file fetcher.
func NewFileFetcher() *FileFetcher {
	return &FileFetcher{}
}

// Name returns the fetcher name.
func (f *FileFetcher) Name() string { return "file" }

// CanFetch handles any source with a local path.
func (f *FileFetcher) CanFetch(src catalog.Source) bool {
	return src.Path != ""
}

// Fetch reads the path, expanding doublestar globs. Matches are sorted
// so merged graphs are deterministic.
func (f *FileFetcher) Fetch(ctx context.Context, src catalog.Source) ([]File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	paths, err := expand(src.Path)
	if err != nil {
		return nil, err
	}

	files := make([]File, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", p, err)
		}
		files = append(files, File{Name: p, Data: data})
	}
	return files, nil
}

// expand resolves a path that may contain glob metacharacters.
func expand(pattern string) ([]string, error) {
	if !strings.ContainsAny(pattern, "*?[{") {
		return []string{pattern}, nil
	}

	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %q: %w", pattern, err)
	}
	sort.Strings(matches)
	return matches, nil
}
