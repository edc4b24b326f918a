package organizer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/esdraskololo/File-Organizer-Tool/internal/planner"
)

// Result contains the outcome of applying a plan.
type Result struct {
	Moved      int      // Files successfully moved into category subdirectories
	Categories int      // Number of categories in the plan
	Errors     []string // Human-readable errors, in encounter order
}

// Apply creates one subdirectory per plan category under directory and
// moves each file into its category. When removePrefix is set, the prefix
// and separator are stripped from the destination filename.
//
// Individual failures never abort the batch: a category whose directory
// cannot be created is skipped whole, a file whose destination already
// exists is skipped, and every failure is recorded as an error string.
func Apply(directory string, plan *planner.Plan, removePrefix bool, separator string) Result {
	result := Result{Categories: plan.Len()}

	for _, category := range plan.Categories() {
		categoryDir := filepath.Join(directory, category)
		if err := os.MkdirAll(categoryDir, 0755); err != nil {
			result.Errors = append(result.Errors,
				fmt.Sprintf("could not create directory %q: %v", categoryDir, err))
			continue
		}

		for _, filename := range plan.Files(category) {
			src := filepath.Join(directory, filename)

			newName := filename
			if removePrefix && separator != "" && strings.Contains(filename, separator) {
				if stripped, ok := planner.StrippedName(filename, separator); ok {
					newName = stripped
				} else {
					// Prefix exists but the remainder is empty; keep the
					// original name and still move into the category.
					result.Errors = append(result.Errors,
						fmt.Sprintf("%q: filename becomes empty after prefix removal, keeping original name", filename))
				}
			}

			dst := filepath.Join(categoryDir, newName)
			if fileExists(dst) {
				result.Errors = append(result.Errors,
					fmt.Sprintf("%q -> %q: destination already exists", filename, newName))
				continue
			}

			if err := moveFile(src, dst); err != nil {
				result.Errors = append(result.Errors,
					fmt.Sprintf("error moving %q: %v", filename, err))
				continue
			}
			result.Moved++
		}
	}

	return result
}
