package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ontoforge/ontosnip/catalog"
)

// maxDocumentSize caps a fetched ontology document at 64MB.
const maxDocumentSize = 64 << 20

// HTTPFetcher downloads ontology documents over http(s).
type HTTPFetcher struct {
	client *http.Client
}

// NewHTTPFetcher creates an HTTP fetcher with a 60s timeout.
func NewHTTPFetcher() *HTTPFetcher {
	return &HTTPFetcher{
		client: &http.Client{Timeout: 60 * time.Second},
	}
}

// Name returns the fetcher name.
func (f *HTTPFetcher) Name() string { return "http" }

// CanFetch handles http(s) URLs that are not git repositories.
func (f *HTTPFetcher) CanFetch(src catalog.Source) bool {
	if src.Path != "" || src.URL == "" {
		return false
	}
	if !strings.HasPrefix(src.URL, "http://") && !strings.HasPrefix(src.URL, "https://") {
		return false
	}
	return !isGitSource(src)
}

// Fetch downloads the document.
func (f *HTTPFetcher) Fetch(ctx context.Context, src catalog.Source) ([]File, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	// Ask for RDF/XML so content-negotiating ontology servers do not
	// hand back an HTML landing page.
	req.Header.Set("Accept", "application/rdf+xml, application/xml;q=0.9, */*;q=0.1")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", src.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("get %s: unexpected status %s", src.URL, resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", src.URL, err)
	}

	return []File{{Name: src.URL, Data: data}}, nil
}
