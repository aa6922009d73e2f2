// Package catalog defines the package records this repository ships:
// which ontologies become snippet packages, where their sources live,
// and how terms are extracted from them.
package catalog

import (
	"fmt"
	"net/url"
	"regexp"

	"github.com/ontoforge/ontosnip/vocabulary/iof"
)

// nameRe constrains package names to the identifier shape the installer
// accepts on its --external flag.
var nameRe = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

// Package is one installable snippet package derived from an ontology.
type Package struct {
	// Name is the short identifier used in the install command
	// (e.g. "iof-core"). Unique within a catalog.
	Name string `yaml:"name"`

	// Label is the human-readable ontology name.
	Label string `yaml:"label"`

	// Version is the package version; it names the version directory in
	// the published tree.
	Version string `yaml:"version"`

	// OntologyURL is the reference URL of the ontology specification.
	OntologyURL string `yaml:"ontology_url"`

	// Source says where the ontology document is fetched from.
	Source Source `yaml:"source"`

	// Prefixes is the prefix map terms are qualified against.
	Prefixes map[string]string `yaml:"prefixes,omitempty"`

	// Extract tunes term extraction for this package.
	Extract ExtractConfig `yaml:"extract,omitempty"`
}

// Source locates an ontology document. Exactly one of Path or URL is
// set; RepoPath selects a file inside a git source.
type Source struct {
	// Path is a local file path; doublestar glob patterns are allowed
	// and all matches merge into one graph.
	Path string `yaml:"path,omitempty"`

	// URL is an http(s) or git location.
	URL string `yaml:"url,omitempty"`

	// RepoPath is the file (or glob) within a git repository source.
	RepoPath string `yaml:"repo_path,omitempty"`
}

// ExtractConfig tunes which terms become matches.
type ExtractConfig struct {
	// Kinds lists the term kinds to extract. Empty means
	// object-properties only, matching the original generator.
	Kinds []string `yaml:"kinds,omitempty"`

	// TriggerPrefix is prepended to the qualified name to form the
	// trigger. Defaults to ":".
	TriggerPrefix string `yaml:"trigger_prefix,omitempty"`

	// PreferLabels replaces with rdfs:label/skos:prefLabel text instead
	// of the qualified name when a label exists.
	PreferLabels bool `yaml:"prefer_labels,omitempty"`

	// IncludeComments attaches term definitions as match labels.
	IncludeComments bool `yaml:"include_comments,omitempty"`
}

// Catalog is the ordered set of packages.
type Catalog struct {
	Packages []Package `yaml:"packages"`
}

// Validate checks the spec-level invariants: unique well-formed names,
// versions present, ontology URLs absolute, and a usable source.
func (c *Catalog) Validate() error {
	seen := make(map[string]bool, len(c.Packages))
	for _, p := range c.Packages {
		if !nameRe.MatchString(p.Name) {
			return fmt.Errorf("package name %q is not a valid identifier", p.Name)
		}
		if seen[p.Name] {
			return fmt.Errorf("duplicate package name %q", p.Name)
		}
		seen[p.Name] = true

		if p.Version == "" {
			return fmt.Errorf("package %q has no version", p.Name)
		}
		if p.Label == "" {
			return fmt.Errorf("package %q has no label", p.Name)
		}

		if err := validateURL(p.OntologyURL); err != nil {
			return fmt.Errorf("package %q: %w", p.Name, err)
		}

		if p.Source.Path == "" && p.Source.URL == "" {
			return fmt.Errorf("package %q has no source", p.Name)
		}
		if p.Source.Path != "" && p.Source.URL != "" {
			return fmt.Errorf("package %q has both path and URL sources", p.Name)
		}
	}
	return nil
}

func validateURL(raw string) error {
	if raw == "" {
		return fmt.Errorf("ontology URL is empty")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("ontology URL %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("ontology URL %q is not http(s)", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("ontology URL %q has no host", raw)
	}
	return nil
}

// Find returns the package with the given name.
func (c *Catalog) Find(name string) (*Package, bool) {
	for i := range c.Packages {
		if c.Packages[i].Name == name {
			return &c.Packages[i], true
		}
	}
	return nil, false
}

// Names returns the package names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.Packages))
	for _, p := range c.Packages {
		names = append(names, p.Name)
	}
	return names
}

// Default returns the shipped catalog: the IOF Core and BFO packages.
func Default() *Catalog {
	return &Catalog{
		Packages: []Package{
			{
				Name:        "iof-core",
				Label:       "Industrial Ontology Foundry Core",
				Version:     "0.1.0",
				OntologyURL: "https://spec.industrialontologies.org/ontology/core/Core/",
				Source: Source{
					URL: "https://spec.industrialontologies.org/ontology/core/Core/Core.rdf",
				},
				Prefixes: iof.CorePrefixes(),
				Extract: ExtractConfig{
					Kinds: []string{"object-properties"},
				},
			},
			{
				Name:        "bfo",
				Label:       "Basic Formal Ontology",
				Version:     "0.1.0",
				OntologyURL: "https://basic-formal-ontology.org/",
				Source: Source{
					URL: "http://purl.obolibrary.org/obo/bfo.owl",
				},
				Prefixes: iof.BFOPrefixes(),
				Extract: ExtractConfig{
					// BFO terms are opaque numeric IRIs, so snippets use
					// their labels.
					Kinds:        []string{"classes", "object-properties"},
					PreferLabels: true,
				},
			},
		},
	}
}
