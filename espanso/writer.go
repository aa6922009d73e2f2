package espanso

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// MatchFileName is the matches document inside a package version dir.
	MatchFileName = "package.yml"

	// ManifestFileName is the manifest document inside a package version dir.
	ManifestFileName = "_manifest.yml"

	// IndexFileName is the repository index at the tree root.
	IndexFileName = "README.md"
)

// Writer lays packages out under a repository root directory.
type Writer struct {
	root string
}

// NewWriter creates a writer rooted at dir.
func NewWriter(dir string) *Writer {
	return &Writer{root: dir}
}

// Root returns the repository root directory.
func (w *Writer) Root() string {
	return w.root
}

// WritePackage writes one package version: package.yml and _manifest.yml
// under <root>/<name>/<version>/. It returns the version directory.
func (w *Writer) WritePackage(m Manifest, matches []Match) (string, error) {
	if m.Name == "" || m.Version == "" {
		return "", fmt.Errorf("manifest needs name and version")
	}

	dir := filepath.Join(w.root, m.Name, m.Version)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create package dir: %w", err)
	}

	if err := writeYAML(filepath.Join(dir, MatchFileName), MatchFile{Matches: matches}); err != nil {
		return "", err
	}
	if err := writeYAML(filepath.Join(dir, ManifestFileName), m); err != nil {
		return "", err
	}

	return dir, nil
}

// WriteIndex writes the repository README enumerating the packages and
// the install command for each. repoURL is the published location of
// the tree; when unknown a placeholder keeps the command copyable.
func (w *Writer) WriteIndex(repoURL string, manifests []Manifest) error {
	if repoURL == "" {
		repoURL = "<repository-url>"
	}

	var sb strings.Builder
	sb.WriteString("# Ontology snippet packages\n\n")
	sb.WriteString("Text-expansion packages generated from OWL ontologies.\n\n")
	sb.WriteString("| Package | Ontology | Version | Reference |\n")
	sb.WriteString("|---------|----------|---------|----------|\n")
	for _, m := range manifests {
		sb.WriteString(fmt.Sprintf("| `%s` | %s | %s | <%s> |\n", m.Name, m.Title, m.Version, m.Homepage))
	}

	sb.WriteString("\n## Install\n\n")
	for _, m := range manifests {
		sb.WriteString(fmt.Sprintf("```\nespanso install --git %s --external %s\n```\n\n", repoURL, m.Name))
	}

	path := filepath.Join(w.root, IndexFileName)
	if err := os.MkdirAll(w.root, 0755); err != nil {
		return fmt.Errorf("create repository root: %w", err)
	}
	if err := os.WriteFile(path, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("write index: %w", err)
	}
	return nil
}

func writeYAML(path string, doc any) error {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}
