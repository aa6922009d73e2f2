package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ontoforge/ontosnip/catalog"
)

func TestHTTPFetcherDownloads(t *testing.T) {
	var gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAccept = r.Header.Get("Accept")
		w.Header().Set("Content-Type", "application/rdf+xml")
		_, _ = w.Write([]byte("<rdf:RDF/>"))
	}))
	defer srv.Close()

	files, err := NewHTTPFetcher().Fetch(context.Background(), catalog.Source{URL: srv.URL})
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, srv.URL, files[0].Name)
	assert.Equal(t, []byte("<rdf:RDF/>"), files[0].Data)
	assert.Contains(t, gotAccept, "application/rdf+xml")
}

func TestHTTPFetcherNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := NewHTTPFetcher().Fetch(context.Background(), catalog.Source{URL: srv.URL})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status")
}

func TestHTTPFetcherCancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewHTTPFetcher().Fetch(ctx, catalog.Source{URL: srv.URL})
	assert.Error(t, err)
}

func TestHTTPFetcherCanFetch(t *testing.T) {
	f := NewHTTPFetcher()
	assert.True(t, f.CanFetch(catalog.Source{URL: "https://example.org/onto.rdf"}))
	assert.False(t, f.CanFetch(catalog.Source{URL: "https://example.org/onto.git"}))
	assert.False(t, f.CanFetch(catalog.Source{URL: "https://example.org/onto", RepoPath: "a.rdf"}))
	assert.False(t, f.CanFetch(catalog.Source{Path: "onto.rdf"}))
	assert.False(t, f.CanFetch(catalog.Source{URL: "git@github.com:a/b.git"}))
}
