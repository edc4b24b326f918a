package organizer

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/esdraskololo/File-Organizer-Tool/internal/planner"
)

// ReverseResult contains the outcome of reversing an organization.
type ReverseResult struct {
	Moved       int      // Files moved back to the parent directory
	RemovedDirs int      // Emptied bucket subdirectories deleted
	Errors      []string // Human-readable errors, in encounter order
}

// Reverse moves bucketed files back into the parent directory and removes
// bucket subdirectories that end up empty. buckets maps an existing
// subdirectory name to the files currently inside it; buckets that no
// longer exist are skipped silently.
//
// When removePrefix indicates prefixes were stripped during the original
// organization, the candidate original name is reconstructed as
// bucket+separator+filename, except for the two sentinel buckets which
// never carried a prefix. The reconstruction is lossy when sanitization
// rewrote the original prefix during planning; the sanitized bucket name
// is all that is left to restore from.
//
// Like Apply this collects errors and continues: an existing destination
// skips one file, a failed directory removal is recorded but does not stop
// the remaining buckets.
func Reverse(directory string, buckets map[string][]string, removePrefix bool, separator string) ReverseResult {
	var result ReverseResult

	info, err := os.Stat(directory)
	if err != nil || !info.IsDir() {
		result.Errors = append(result.Errors,
			fmt.Sprintf("main directory not found: %s", directory))
		return result
	}

	// Sorted bucket order keeps the error list deterministic.
	names := make([]string, 0, len(buckets))
	for name := range buckets {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, bucket := range names {
		subdir := filepath.Join(directory, bucket)
		if info, err := os.Stat(subdir); err != nil || !info.IsDir() {
			continue
		}

		for _, filename := range buckets[bucket] {
			src := filepath.Join(subdir, filename)

			restored := filename
			if removePrefix && separator != "" && !planner.IsSentinel(bucket) {
				restored = bucket + separator + filename
			}

			dst := filepath.Join(directory, restored)
			if fileExists(dst) {
				result.Errors = append(result.Errors,
					fmt.Sprintf("conflict: %q already exists, skipping %q from %q", restored, filename, bucket))
				continue
			}

			if err := moveFile(src, dst); err != nil {
				result.Errors = append(result.Errors,
					fmt.Sprintf("error moving %q to %q: %v", src, dst, err))
				continue
			}
			result.Moved++
		}

		empty, err := isEmptyDir(subdir)
		if err != nil {
			result.Errors = append(result.Errors,
				fmt.Sprintf("error checking directory %q: %v", subdir, err))
			continue
		}
		if empty {
			if err := os.Remove(subdir); err != nil {
				result.Errors = append(result.Errors,
					fmt.Sprintf("error removing directory %q: %v", subdir, err))
				continue
			}
			result.RemovedDirs++
		}
	}

	return result
}

// isEmptyDir reports whether the directory contains no entries.
func isEmptyDir(path string) (bool, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return false, err
	}
	return len(entries) == 0, nil
}
