package coralsense

import (
	"path"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
	"github.com/spf13/afero"
	"gitlab.com/tozd/go/errors"
)

// ScanStats tracks file scanning statistics
type ScanStats struct {
	FilesDiscovered int // Total files found by glob patterns
	FilesScanned    int // Files actually scanned (after filtering)
	FilesSkipped    int // Files skipped due to filtering
}

// scanner expands lint paths over a filesystem
type scanner struct {
	fs afero.Fs

	// gitignore caching
	gitIgnore     *ignore.GitIgnore
	gitIgnoreOnce sync.Once
}

func newScanner(fs afero.Fs) *scanner {
	return &scanner{fs: fs}
}

// isGenerated checks for bundled or vendored output that is never hand-edited
func isGenerated(p string) bool {
	slashed := filepath.ToSlash(p)
	return strings.Contains(path.Base(slashed), ".min.") ||
		strings.HasPrefix(slashed, "node_modules/") ||
		strings.Contains(slashed, "/node_modules/")
}

// loadGitIgnore loads .gitignore from the scanner's filesystem once
// Gracefully degrades if .gitignore doesn't exist
func (s *scanner) loadGitIgnore() *ignore.GitIgnore {
	s.gitIgnoreOnce.Do(func() {
		data, err := afero.ReadFile(s.fs, ".gitignore")
		if err != nil {
			return
		}
		s.gitIgnore = ignore.CompileIgnoreLines(strings.Split(string(data), "\n")...)
	})
	return s.gitIgnore
}

// shouldSkip determines if a file should be excluded from scanning
//
// Two-layer filtering:
// 1. Pattern check (fast): minified bundles and node_modules
// 2. Gitignore check: only for relative paths, absolute paths are outside the project
func (s *scanner) shouldSkip(p string) bool {
	if isGenerated(p) {
		return true
	}
	if !filepath.IsAbs(p) {
		if gi := s.loadGitIgnore(); gi != nil && gi.MatchesPath(filepath.ToSlash(p)) {
			return true
		}
	}
	return false
}

// glob expands one doublestar pattern. Absolute patterns are split into a
// base directory and a relative pattern because io/fs paths are unrooted.
func (s *scanner) glob(pattern string) ([]string, error) {
	pattern = filepath.ToSlash(pattern)
	pattern = strings.TrimPrefix(pattern, "./")

	base := ""
	fsys := s.fs
	if strings.HasPrefix(pattern, "/") {
		base, pattern = doublestar.SplitPattern(pattern)
		fsys = afero.NewBasePathFs(s.fs, base)
	}

	matches, err := doublestar.Glob(afero.NewIOFS(fsys), pattern)
	if err != nil {
		return nil, errors.Errorf("expanding %q: %w", pattern, err)
	}
	if base == "" {
		return matches, nil
	}
	for i, m := range matches {
		matches[i] = path.Join(base, m)
	}
	return matches, nil
}

// expandGlobPatternsWithStats expands globs into a deduplicated file list
// and tracks statistics
func (s *scanner) expandGlobPatternsWithStats(patterns []string) ([]string, ScanStats, error) {
	var allFiles []string
	seen := make(map[string]bool)
	stats := ScanStats{}

	for _, pattern := range patterns {
		matches, err := s.glob(pattern)
		if err != nil {
			return nil, stats, err
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			seen[match] = true

			info, err := s.fs.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			stats.FilesDiscovered++

			if s.shouldSkip(match) {
				stats.FilesSkipped++
				continue
			}
			allFiles = append(allFiles, match)
			stats.FilesScanned++
		}
	}

	return allFiles, stats, nil
}
