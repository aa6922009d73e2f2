package espanso

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Problem is one finding from tree verification.
type Problem struct {
	// Package is the package name the finding concerns, or "" for
	// tree-level findings.
	Package string

	// Message describes what is inconsistent.
	Message string
}

func (p Problem) String() string {
	if p.Package == "" {
		return p.Message
	}
	return p.Package + ": " + p.Message
}

// VerifyTree checks a published tree against the expected manifests:
// every expected package exists at <name>/<version> with a parseable,
// non-empty package.yml and a manifest agreeing on name and version,
// and no package directory exists that is not expected. The returned
// slice is empty when the tree is consistent.
func VerifyTree(root string, expected []Manifest) []Problem {
	var problems []Problem

	want := make(map[string]Manifest, len(expected))
	for _, m := range expected {
		want[m.Name] = m
	}

	for _, m := range expected {
		dir := filepath.Join(root, m.Name, m.Version)
		if _, err := os.Stat(dir); err != nil {
			problems = append(problems, Problem{m.Name, fmt.Sprintf("missing version directory %s/%s", m.Name, m.Version)})
			continue
		}

		var mf MatchFile
		if err := readYAML(filepath.Join(dir, MatchFileName), &mf); err != nil {
			problems = append(problems, Problem{m.Name, err.Error()})
		} else if len(mf.Matches) == 0 {
			problems = append(problems, Problem{m.Name, MatchFileName + " has no matches"})
		}

		var got Manifest
		if err := readYAML(filepath.Join(dir, ManifestFileName), &got); err != nil {
			problems = append(problems, Problem{m.Name, err.Error()})
			continue
		}
		if got.Name != m.Name {
			problems = append(problems, Problem{m.Name, fmt.Sprintf("manifest name %q does not match directory", got.Name)})
		}
		if got.Version != m.Version {
			problems = append(problems, Problem{m.Name, fmt.Sprintf("manifest version %q does not match directory %q", got.Version, m.Version)})
		}
	}

	// Orphan package directories make the index lie about what is
	// installable.
	entries, err := os.ReadDir(root)
	if err != nil {
		if !os.IsNotExist(err) {
			problems = append(problems, Problem{"", fmt.Sprintf("read tree root: %v", err)})
		}
		return problems
	}
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		if _, ok := want[e.Name()]; !ok {
			problems = append(problems, Problem{e.Name(), "directory is not in the catalog"})
		}
	}

	return problems
}

func readYAML(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %v", filepath.Base(path), err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse %s: %v", filepath.Base(path), err)
	}
	return nil
}
