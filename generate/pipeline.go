// Package generate runs the build pipeline: fetch an ontology source,
// read its RDF/XML, extract terms, and write the espanso package tree.
package generate

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ontoforge/ontosnip/catalog"
	"github.com/ontoforge/ontosnip/config"
	"github.com/ontoforge/ontosnip/espanso"
	"github.com/ontoforge/ontosnip/extract"
	"github.com/ontoforge/ontosnip/graph"
	"github.com/ontoforge/ontosnip/prefixmap"
	"github.com/ontoforge/ontosnip/rdfxml"
	"github.com/ontoforge/ontosnip/source"
)

// Pipeline builds snippet packages from the configured catalog.
type Pipeline struct {
	cfg      *config.Config
	fetchers *source.Registry
	logger   *slog.Logger
}

// New creates a pipeline over cfg.
func New(cfg *config.Config, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		cfg:      cfg,
		fetchers: source.NewRegistry(cfg.CacheDir()),
		logger:   logger,
	}
}

// Fetchers exposes the registry so callers can override fetchers.
func (p *Pipeline) Fetchers() *source.Registry {
	return p.fetchers
}

// Run builds the named packages, or every catalog package when names is
// empty, then writes the repository index and a build report. The
// returned report covers what was built even when an error aborts the
// run partway.
func (p *Pipeline) Run(ctx context.Context, names []string) (*Report, error) {
	cat := p.cfg.Catalog()
	if err := cat.Validate(); err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}

	packages, err := selectPackages(cat, names)
	if err != nil {
		return nil, err
	}

	report := &Report{
		RunID:     uuid.New().String(),
		StartedAt: time.Now().UTC(),
	}
	started := time.Now()

	writer := espanso.NewWriter(p.cfg.Output.Dir)
	manifests := make([]espanso.Manifest, 0, len(packages))

	for _, pkg := range packages {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		pr, manifest, err := p.buildOne(ctx, writer, pkg)
		if err != nil {
			return report, fmt.Errorf("package %s: %w", pkg.Name, err)
		}
		report.Packages = append(report.Packages, pr)
		manifests = append(manifests, manifest)

		p.logger.Info("Built package",
			"package", pkg.Name,
			"version", pkg.Version,
			"terms", pr.Terms,
			"triples", pr.Triples)
	}

	if err := writer.WriteIndex(p.cfg.Repository.URL, manifests); err != nil {
		return report, err
	}

	report.Duration = time.Since(started).Round(time.Millisecond).String()
	if err := report.Save(p.cfg.Output.Dir); err != nil {
		return report, err
	}

	return report, nil
}

// BuildOne builds a single package without touching the index or the
// report; the watch loop uses it for incremental rebuilds.
func (p *Pipeline) BuildOne(ctx context.Context, pkg catalog.Package) (PackageReport, error) {
	writer := espanso.NewWriter(p.cfg.Output.Dir)
	pr, _, err := p.buildOne(ctx, writer, pkg)
	return pr, err
}

// Graph fetches and parses a package's ontology documents into a single
// merged graph. The export command uses it to dump what the reader saw.
func (p *Pipeline) Graph(ctx context.Context, pkg catalog.Package) (*graph.Graph, int, error) {
	files, err := p.fetchers.Fetch(ctx, pkg.Source)
	if err != nil {
		return nil, 0, err
	}

	g := graph.New()
	skipped := 0
	for _, f := range files {
		fg, stats, err := rdfxml.Parse(f.Data, rdfxml.Options{Base: pkg.OntologyURL})
		if err != nil {
			return nil, 0, fmt.Errorf("parse %s: %w", f.Name, err)
		}
		g.Merge(fg)
		skipped += stats.Skipped

		p.logger.Debug("Parsed ontology document",
			"package", pkg.Name,
			"document", f.Name,
			"triples", fg.Len(),
			"skipped", stats.Skipped)
	}
	return g, skipped, nil
}

func (p *Pipeline) buildOne(ctx context.Context, writer *espanso.Writer, pkg catalog.Package) (PackageReport, espanso.Manifest, error) {
	pr := PackageReport{Name: pkg.Name, Version: pkg.Version}

	g, skipped, err := p.Graph(ctx, pkg)
	if err != nil {
		return pr, espanso.Manifest{}, err
	}
	pr.Triples = g.Len()
	pr.Skipped = skipped

	pm, err := prefixmap.FromMap(pkg.Prefixes)
	if err != nil {
		return pr, espanso.Manifest{}, fmt.Errorf("prefixes: %w", err)
	}

	kinds, err := extract.ParseKinds(pkg.Extract.Kinds)
	if err != nil {
		return pr, espanso.Manifest{}, err
	}

	matches := extract.New(pm, extract.Options{
		Kinds:           kinds,
		TriggerPrefix:   pkg.Extract.TriggerPrefix,
		PreferLabels:    pkg.Extract.PreferLabels,
		IncludeComments: pkg.Extract.IncludeComments,
	}).Extract(g)
	if len(matches) == 0 {
		return pr, espanso.Manifest{}, fmt.Errorf("no terms extracted (wrong prefixes or kinds?)")
	}
	pr.Terms = len(matches)

	manifest := ManifestFor(pkg, p.cfg.Repository.Author)
	dir, err := writer.WritePackage(manifest, matches)
	if err != nil {
		return pr, espanso.Manifest{}, err
	}
	pr.Output = dir

	return pr, manifest, nil
}

// ManifestFor derives the espanso manifest for a catalog package.
func ManifestFor(pkg catalog.Package, author string) espanso.Manifest {
	return espanso.Manifest{
		Name:        pkg.Name,
		Title:       pkg.Label,
		Description: fmt.Sprintf("Text-expansion snippets for %s terms", pkg.Label),
		Version:     pkg.Version,
		Author:      author,
		Homepage:    pkg.OntologyURL,
	}
}

// selectPackages resolves requested names against the catalog,
// preserving catalog order.
func selectPackages(cat *catalog.Catalog, names []string) ([]catalog.Package, error) {
	if len(names) == 0 {
		return cat.Packages, nil
	}

	want := make(map[string]bool, len(names))
	for _, n := range names {
		if _, ok := cat.Find(n); !ok {
			return nil, fmt.Errorf("unknown package %q (catalog has: %v)", n, cat.Names())
		}
		want[n] = true
	}

	out := make([]catalog.Package, 0, len(want))
	for _, p := range cat.Packages {
		if want[p.Name] {
			out = append(out, p)
		}
	}
	return out, nil
}
