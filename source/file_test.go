package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ontoforge/ontosnip/catalog"
)

func TestFileFetcherSinglePath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "onto.rdf")
	require.NoError(t, os.WriteFile(path, []byte("<rdf:RDF/>"), 0644))

	files, err := NewFileFetcher().Fetch(context.Background(), catalog.Source{Path: path})
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, path, files[0].Name)
	assert.Equal(t, []byte("<rdf:RDF/>"), files[0].Data)
}

func TestFileFetcherGlob(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0755))
	for _, name := range []string{"b.rdf", "a.rdf", filepath.Join("sub", "c.rdf"), "ignore.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(name), 0644))
	}

	files, err := NewFileFetcher().Fetch(context.Background(), catalog.Source{
		Path: filepath.Join(dir, "**", "*.rdf"),
	})
	require.NoError(t, err)

	names := make([]string, 0, len(files))
	for _, f := range files {
		rel, err := filepath.Rel(dir, f.Name)
		require.NoError(t, err)
		names = append(names, rel)
	}
	// Sorted, recursive, extension-filtered.
	assert.Equal(t, []string{"a.rdf", "b.rdf", filepath.Join("sub", "c.rdf")}, names)
}

func TestFileFetcherMissingFile(t *testing.T) {
	_, err := NewFileFetcher().Fetch(context.Background(), catalog.Source{
		Path: filepath.Join(t.TempDir(), "missing.rdf"),
	})
	assert.Error(t, err)
}

func TestFileFetcherCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewFileFetcher().Fetch(ctx, catalog.Source{Path: "x.rdf"})
	assert.ErrorIs(t, err, context.Canceled)
}
