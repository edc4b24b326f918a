package watcher

import (
	"path/filepath"
	"strings"
)

// DefaultIgnorePatterns returns the default patterns for in-flight and
// temporary files that should never be organized mid-transfer.
func DefaultIgnorePatterns() []string {
	return []string{
		"*.tmp",
		"*.part",
		"*.partial",
		"*.download",
		"*.crdownload", // Chrome partial downloads
		".*",           // Hidden files
	}
}

// FileFilter filters files based on glob ignore patterns.
type FileFilter struct {
	patterns []string
}

// NewFileFilter creates a FileFilter with the given patterns, falling back
// to the defaults when none are provided.
func NewFileFilter(patterns []string) *FileFilter {
	if len(patterns) == 0 {
		patterns = DefaultIgnorePatterns()
	}
	return &FileFilter{patterns: patterns}
}

// ShouldIgnore checks if a path's base name matches any ignore pattern.
// Patterns use filepath.Match glob syntax; a bare ".ext" pattern also
// matches as a case-insensitive suffix.
func (f *FileFilter) ShouldIgnore(path string) bool {
	filename := filepath.Base(path)

	for _, pattern := range f.patterns {
		if matched, err := filepath.Match(pattern, filename); err == nil && matched {
			return true
		}
		if strings.HasPrefix(pattern, ".") && !strings.Contains(pattern, "*") {
			if strings.HasSuffix(strings.ToLower(filename), strings.ToLower(pattern)) {
				return true
			}
		}
	}
	return false
}

// Patterns returns a copy of the current ignore patterns.
func (f *FileFilter) Patterns() []string {
	out := make([]string, len(f.patterns))
	copy(out, f.patterns)
	return out
}
