// Package planner builds organization plans by bucketing files on their
// filename prefix.
package planner

import (
	"strings"
	"unicode"

	"github.com/esdraskololo/File-Organizer-Tool/internal/scanner"
)

// Sentinel category names for files that cannot be bucketed by prefix.
const (
	// NoSeparator collects files whose name does not contain the separator.
	NoSeparator = "NO_SEPARATOR"
	// UnnamedCategory collects files whose prefix sanitizes to the empty string.
	UnnamedCategory = "UNNAMED_CATEGORY"
)

// Plan maps categories to the files that belong to them. It is a pure
// snapshot of one scan: rebuilt on every call, never persisted.
type Plan struct {
	buckets map[string][]string
	order   []string // Category names in first-seen order
}

// Build scans the directory and groups its immediate regular files by
// prefix. The prefix is the portion of the filename before the first
// occurrence of separator, trimmed and sanitized into a directory-safe
// category name. Files without the separator land in the NoSeparator
// bucket; prefixes that sanitize to nothing land in UnnamedCategory.
func Build(directory, separator string) (*Plan, error) {
	files, err := scanner.Scan(directory)
	if err != nil {
		return nil, err
	}

	plan := &Plan{buckets: make(map[string][]string)}
	for _, file := range files {
		plan.add(CategoryFor(file.Name, separator), file.Name)
	}
	return plan, nil
}

// Single builds a one-file plan, used when organizing files as they
// arrive in watch mode.
func Single(filename, separator string) *Plan {
	plan := &Plan{buckets: make(map[string][]string)}
	plan.add(CategoryFor(filename, separator), filename)
	return plan
}

// CategoryFor returns the category a single filename belongs to.
func CategoryFor(filename, separator string) string {
	if separator == "" || !strings.Contains(filename, separator) {
		return NoSeparator
	}
	prefix := strings.TrimSpace(filename[:strings.Index(filename, separator)])
	prefix = SanitizePrefix(prefix)
	if prefix == "" {
		return UnnamedCategory
	}
	return prefix
}

// SanitizePrefix rewrites a raw prefix into a directory-safe category name.
// Letters, digits, spaces, underscores and hyphens pass through; every
// other rune becomes an underscore. The result is trimmed of surrounding
// whitespace and may be empty.
func SanitizePrefix(prefix string) string {
	var b strings.Builder
	b.Grow(len(prefix))
	for _, r := range prefix {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' || r == '_' || r == '-' {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}
	return strings.TrimSpace(b.String())
}

// IsSentinel reports whether category is one of the fixed sentinel buckets.
// Sentinel buckets never take part in prefix restoration during reversal.
func IsSentinel(category string) bool {
	return category == NoSeparator || category == UnnamedCategory
}

// StrippedName returns the filename with its prefix and separator removed,
// trimmed of surrounding whitespace. The second result is false when the
// separator is absent or the remainder is empty, in which case callers
// should keep the original filename.
func StrippedName(filename, separator string) (string, bool) {
	if separator == "" {
		return filename, false
	}
	idx := strings.Index(filename, separator)
	if idx < 0 {
		return filename, false
	}
	remainder := strings.TrimSpace(filename[idx+len(separator):])
	if remainder == "" {
		return filename, false
	}
	return remainder, true
}

// add appends a filename to a category, registering the category on first use.
func (p *Plan) add(category, filename string) {
	if _, ok := p.buckets[category]; !ok {
		p.order = append(p.order, category)
	}
	p.buckets[category] = append(p.buckets[category], filename)
}

// Categories returns the category names in first-seen order.
func (p *Plan) Categories() []string {
	return p.order
}

// Files returns the filenames in a category, in encounter order.
func (p *Plan) Files(category string) []string {
	return p.buckets[category]
}

// Len returns the number of categories in the plan.
func (p *Plan) Len() int {
	return len(p.order)
}

// TotalFiles returns the number of files across all categories.
func (p *Plan) TotalFiles() int {
	total := 0
	for _, files := range p.buckets {
		total += len(files)
	}
	return total
}

// Buckets returns a copy of the category-to-files mapping.
func (p *Plan) Buckets() map[string][]string {
	out := make(map[string][]string, len(p.buckets))
	for category, files := range p.buckets {
		out[category] = append([]string(nil), files...)
	}
	return out
}
