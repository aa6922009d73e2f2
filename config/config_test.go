package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ontoforge/ontosnip/catalog"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "packages", cfg.Output.Dir)
	assert.Equal(t, []string{"iof-core", "bfo"}, cfg.Catalog().Names())
}

func TestValidateRejectsBadLogLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Log.Level = "loud"
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsEmptyCatalog(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Packages = nil
	assert.Error(t, cfg.Validate())
}

func TestValidateDelegatesToCatalog(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Packages[0].Name = cfg.Packages[1].Name
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ontosnip.yaml")

	cfg := DefaultConfig()
	cfg.Output.Dir = "out"
	cfg.Repository.URL = "https://github.com/example/packages"
	require.NoError(t, cfg.SaveToFile(path))

	loaded, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "out", loaded.Output.Dir)
	assert.Equal(t, "https://github.com/example/packages", loaded.Repository.URL)
	assert.Equal(t, cfg.Catalog().Names(), loaded.Catalog().Names())
}

func TestLoadFromFilePartialKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ontosnip.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output:\n  dir: custom\n"), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "custom", cfg.Output.Dir)
	// Untouched sections keep their defaults.
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Len(t, cfg.Packages, 2)
}

func TestMergePrecedence(t *testing.T) {
	base := DefaultConfig()
	other := &Config{
		Output:     OutputConfig{Dir: "elsewhere"},
		Repository: RepositoryConfig{URL: "https://example.org/repo.git"},
		Log:        LogConfig{Level: "debug"},
	}

	base.Merge(other)
	assert.Equal(t, "elsewhere", base.Output.Dir)
	assert.Equal(t, "https://example.org/repo.git", base.Repository.URL)
	assert.Equal(t, "debug", base.Log.Level)
	// Author untouched by the zero value.
	assert.Equal(t, "ontosnip", base.Repository.Author)
	// Catalog untouched when other carries none.
	assert.Len(t, base.Packages, 2)
}

func TestMergeReplacesCatalogWholesale(t *testing.T) {
	base := DefaultConfig()
	other := &Config{
		Packages: []catalog.Package{{
			Name:        "custom",
			Label:       "Custom Ontology",
			Version:     "1.0.0",
			OntologyURL: "https://example.org/onto/",
			Source:      catalog.Source{Path: "onto.rdf"},
		}},
	}

	base.Merge(other)
	require.Len(t, base.Packages, 1)
	assert.Equal(t, "custom", base.Packages[0].Name)

	base.Merge(nil)
	assert.Len(t, base.Packages, 1)
}

func TestCacheDirFallback(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Cache.Dir = "/tmp/ontosnip-cache"
	assert.Equal(t, "/tmp/ontosnip-cache", cfg.CacheDir())

	cfg.Cache.Dir = ""
	assert.NotEmpty(t, cfg.CacheDir())
}

func TestLoaderExplicitPathMustLoad(t *testing.T) {
	l := NewLoader(nil)
	_, err := l.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestEnsureProjectConfig(t *testing.T) {
	dir := t.TempDir()
	l := NewLoader(nil)

	path, err := l.EnsureProjectConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ProjectConfigFile), path)

	// Second call is a no-op.
	path, err = l.EnsureProjectConfig(dir)
	require.NoError(t, err)
	assert.Empty(t, path)
}

func TestLoadUserSettingsSurviveProjectLayer(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	userDir := filepath.Join(home, UserConfigDir)
	require.NoError(t, os.MkdirAll(userDir, 0755))
	userYAML := "output:\n  dir: user-packages\nrepository:\n  author: someone\n"
	require.NoError(t, os.WriteFile(filepath.Join(userDir, UserConfigFile), []byte(userYAML), 0644))

	projectPath := filepath.Join(t.TempDir(), ProjectConfigFile)
	require.NoError(t, os.WriteFile(projectPath, []byte("log:\n  level: debug\n"), 0644))

	cfg, err := NewLoader(nil).Load(projectPath)
	require.NoError(t, err)

	// Keys the project file omits keep the user layer, not the defaults.
	assert.Equal(t, "user-packages", cfg.Output.Dir)
	assert.Equal(t, "someone", cfg.Repository.Author)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.NotEmpty(t, cfg.Packages)
}
