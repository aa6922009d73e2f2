// Package espanso writes snippet packages in the layout the espanso
// package installer expects: a repository tree of
// <name>/<version>/package.yml plus _manifest.yml, with a README index
// documenting the install command. The layout is an external
// convention; this package only produces files conforming to it.
package espanso

// Match is one trigger/replace expansion rule.
type Match struct {
	Trigger string `yaml:"trigger"`
	Replace string `yaml:"replace"`

	// Label is shown in the expander's search UI.
	Label string `yaml:"label,omitempty"`

	// Word restricts expansion to word boundaries.
	Word bool `yaml:"word,omitempty"`
}

// MatchFile is the package.yml document: a flat list of matches.
type MatchFile struct {
	Matches []Match `yaml:"matches"`
}

// Manifest is the _manifest.yml document describing one package version.
type Manifest struct {
	Name        string `yaml:"name"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Version     string `yaml:"version"`
	Author      string `yaml:"author"`
	Homepage    string `yaml:"homepage,omitempty"`
}
