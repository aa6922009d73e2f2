package espanso

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleManifest() Manifest {
	return Manifest{
		Name:        "iof-core",
		Title:       "Industrial Ontology Foundry Core",
		Description: "Snippets for IOF Core terms",
		Version:     "0.1.0",
		Author:      "ontosnip",
		Homepage:    "https://spec.industrialontologies.org/ontology/core/Core/",
	}
}

func TestWritePackageLayout(t *testing.T) {
	root := t.TempDir()
	w := NewWriter(root)

	dir, err := w.WritePackage(sampleManifest(), []Match{
		{Trigger: ":Core:hasPart", Replace: "Core:hasPart"},
	})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "iof-core", "0.1.0"), dir)

	data, err := os.ReadFile(filepath.Join(dir, MatchFileName))
	require.NoError(t, err)

	var mf MatchFile
	require.NoError(t, yaml.Unmarshal(data, &mf))
	require.Len(t, mf.Matches, 1)
	assert.Equal(t, ":Core:hasPart", mf.Matches[0].Trigger)
	assert.Equal(t, "Core:hasPart", mf.Matches[0].Replace)

	data, err = os.ReadFile(filepath.Join(dir, ManifestFileName))
	require.NoError(t, err)

	var m Manifest
	require.NoError(t, yaml.Unmarshal(data, &m))
	assert.Equal(t, sampleManifest(), m)
}

func TestWritePackageRequiresNameAndVersion(t *testing.T) {
	w := NewWriter(t.TempDir())

	_, err := w.WritePackage(Manifest{Name: "x"}, nil)
	assert.Error(t, err)

	_, err = w.WritePackage(Manifest{Version: "0.1.0"}, nil)
	assert.Error(t, err)
}

func TestWriteIndex(t *testing.T) {
	root := t.TempDir()
	w := NewWriter(root)

	m := sampleManifest()
	require.NoError(t, w.WriteIndex("https://github.com/example/packages", []Manifest{m}))

	data, err := os.ReadFile(filepath.Join(root, IndexFileName))
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, "`iof-core`")
	assert.Contains(t, text, "Industrial Ontology Foundry Core")
	assert.Contains(t, text, "espanso install --git https://github.com/example/packages --external iof-core")
}

func TestWriteIndexPlaceholderURL(t *testing.T) {
	root := t.TempDir()
	w := NewWriter(root)
	require.NoError(t, w.WriteIndex("", []Manifest{sampleManifest()}))

	data, err := os.ReadFile(filepath.Join(root, IndexFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "--git <repository-url>")
}
