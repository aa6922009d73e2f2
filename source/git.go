package source

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	gogit "github.com/go-git/go-git/v5"

	"github.com/ontoforge/ontosnip/catalog"
)

// allowedProtocols defines the git URL protocols permitted for cloning.
var allowedProtocols = map[string]bool{
	"https": true,
	"git":   true,
	"ssh":   true,
}

// GitFetcher clones ontology repositories into a local cache and reads
// files out of the working tree.
type GitFetcher struct {
	cacheDir string
}

// NewGitFetcher creates a git fetcher caching clones under cacheDir.
func NewGitFetcher(cacheDir string) *GitFetcher {
	return &GitFetcher{cacheDir: cacheDir}
}

// Name returns the fetcher name.
func (f *GitFetcher) Name() string { return "git" }

// CanFetch handles git sources.
func (f *GitFetcher) CanFetch(src catalog.Source) bool {
	return src.Path == "" && src.URL != "" && isGitSource(src)
}

// isGitSource recognizes a URL as a git repository: a .git suffix, a
// git/ssh scheme, SSH shorthand, or an explicit repo_path.
func isGitSource(src catalog.Source) bool {
	if src.URL == "" {
		return false
	}
	if strings.HasSuffix(src.URL, ".git") || src.RepoPath != "" {
		return true
	}
	return strings.HasPrefix(src.URL, "git://") ||
		strings.HasPrefix(src.URL, "ssh://") ||
		strings.HasPrefix(src.URL, "git@")
}

// validateGitURL validates that a git URL uses an allowed protocol.
func validateGitURL(rawURL string) error {
	// SSH shorthand (git@github.com:owner/repo.git) is allowed.
	if strings.HasPrefix(rawURL, "git@") {
		return nil
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}

	scheme := strings.ToLower(parsed.Scheme)
	if !allowedProtocols[scheme] {
		return fmt.Errorf("protocol %q not allowed; must be https, git, or ssh", scheme)
	}

	return nil
}

// Fetch clones or updates the repository, then reads RepoPath (a file
// or glob) from the working tree.
func (f *GitFetcher) Fetch(ctx context.Context, src catalog.Source) ([]File, error) {
	if err := validateGitURL(src.URL); err != nil {
		return nil, err
	}
	if src.RepoPath == "" {
		return nil, fmt.Errorf("git source %s needs repo_path", src.URL)
	}
	if strings.Contains(src.RepoPath, "..") {
		return nil, fmt.Errorf("repo_path must stay inside the repository")
	}

	dir := filepath.Join(f.cacheDir, "repos", cacheKey(src.URL))
	if err := f.pullOrClone(ctx, src.URL, dir); err != nil {
		return nil, err
	}

	paths, err := expandInDir(dir, src.RepoPath)
	if err != nil {
		return nil, err
	}

	files := make([]File, 0, len(paths))
	for _, rel := range paths {
		data, err := os.ReadFile(filepath.Join(dir, rel))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", rel, err)
		}
		files = append(files, File{Name: src.URL + "#" + rel, Data: data})
	}
	return files, nil
}

// pullOrClone opens the cached clone and pulls, or clones fresh.
func (f *GitFetcher) pullOrClone(ctx context.Context, rawURL, dir string) error {
	repo, err := gogit.PlainOpen(dir)
	if errors.Is(err, gogit.ErrRepositoryNotExists) {
		if mkErr := os.MkdirAll(filepath.Dir(dir), 0755); mkErr != nil {
			return fmt.Errorf("create cache dir: %w", mkErr)
		}
		_, err = gogit.PlainCloneContext(ctx, dir, false, &gogit.CloneOptions{
			URL:   rawURL,
			Depth: 1,
		})
		if err != nil {
			return fmt.Errorf("clone %s: %w", rawURL, err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("open cached clone: %w", err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("worktree: %w", err)
	}
	err = wt.PullContext(ctx, &gogit.PullOptions{})
	if err != nil && !errors.Is(err, gogit.NoErrAlreadyUpToDate) {
		return fmt.Errorf("pull %s: %w", rawURL, err)
	}
	return nil
}

// expandInDir resolves a repo-relative path or glob to sorted relative paths.
func expandInDir(dir, pattern string) ([]string, error) {
	if !strings.ContainsAny(pattern, "*?[{") {
		return []string{pattern}, nil
	}

	matches, err := doublestar.FilepathGlob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, fmt.Errorf("glob %q: %w", pattern, err)
	}

	rels := make([]string, 0, len(matches))
	for _, m := range matches {
		rel, err := filepath.Rel(dir, m)
		if err != nil {
			continue
		}
		rels = append(rels, rel)
	}
	sort.Strings(rels)
	return rels, nil
}

// cacheKey derives a stable directory name from the repository URL.
func cacheKey(rawURL string) string {
	sum := sha256.Sum256([]byte(rawURL))
	return hex.EncodeToString(sum[:])[:16]
}
