package organizer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/esdraskololo/File-Organizer-Tool/internal/planner"
)

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("content of "+name), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func mustPlan(t *testing.T, dir, separator string) *planner.Plan {
	t.Helper()
	plan, err := planner.Build(dir, separator)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return plan
}

func TestApplyMovesFilesIntoCategories(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "photos-img1.png", "photos-img2.png", "docs-a.txt", "readme.txt")

	result := Apply(dir, mustPlan(t, dir, "-"), false, "-")

	if result.Moved != 4 {
		t.Errorf("Moved = %d, want 4", result.Moved)
	}
	if result.Categories != 3 {
		t.Errorf("Categories = %d, want 3", result.Categories)
	}
	if len(result.Errors) != 0 {
		t.Errorf("unexpected errors: %v", result.Errors)
	}

	for _, path := range []string{
		"photos/photos-img1.png",
		"photos/photos-img2.png",
		"docs/docs-a.txt",
		planner.NoSeparator + "/readme.txt",
	} {
		if _, err := os.Stat(filepath.Join(dir, path)); err != nil {
			t.Errorf("expected %s to exist: %v", path, err)
		}
	}
}

func TestApplyRemovePrefix(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "photos-img1.png", "readme.txt")

	result := Apply(dir, mustPlan(t, dir, "-"), true, "-")

	if result.Moved != 2 {
		t.Errorf("Moved = %d, want 2", result.Moved)
	}
	if _, err := os.Stat(filepath.Join(dir, "photos", "img1.png")); err != nil {
		t.Errorf("expected stripped name photos/img1.png: %v", err)
	}
	// No separator means nothing to strip.
	if _, err := os.Stat(filepath.Join(dir, planner.NoSeparator, "readme.txt")); err != nil {
		t.Errorf("expected readme.txt unchanged in sentinel bucket: %v", err)
	}
}

func TestApplyEmptyAfterStripKeepsOriginalName(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "photos-")

	result := Apply(dir, mustPlan(t, dir, "-"), true, "-")

	if result.Moved != 1 {
		t.Fatalf("Moved = %d, want 1; errors: %v", result.Moved, result.Errors)
	}
	if _, err := os.Stat(filepath.Join(dir, "photos", "photos-")); err != nil {
		t.Errorf("expected original name kept: %v", err)
	}
	if len(result.Errors) != 1 || !strings.Contains(result.Errors[0], "empty after prefix removal") {
		t.Errorf("expected empty-name warning, got %v", result.Errors)
	}
}

func TestApplyConflictSkipsFile(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "photos-img1.png")

	// Pre-existing destination must never be overwritten.
	if err := os.Mkdir(filepath.Join(dir, "photos"), 0755); err != nil {
		t.Fatal(err)
	}
	existing := filepath.Join(dir, "photos", "img1.png")
	if err := os.WriteFile(existing, []byte("original"), 0644); err != nil {
		t.Fatal(err)
	}

	result := Apply(dir, mustPlan(t, dir, "-"), true, "-")

	if result.Moved != 0 {
		t.Errorf("Moved = %d, want 0", result.Moved)
	}
	if len(result.Errors) != 1 || !strings.Contains(result.Errors[0], "already exists") {
		t.Errorf("expected conflict error, got %v", result.Errors)
	}
	// Source stays in place, destination keeps its content.
	if _, err := os.Stat(filepath.Join(dir, "photos-img1.png")); err != nil {
		t.Errorf("source should not have moved: %v", err)
	}
	data, err := os.ReadFile(existing)
	if err != nil || string(data) != "original" {
		t.Errorf("destination content changed: %q, %v", data, err)
	}
}

func TestApplyContinuesPastFailures(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "a-1.txt", "a-2.txt", "b-1.txt")

	// Conflict for a-1 only; a-2 and b-1 still move.
	if err := os.Mkdir(filepath.Join(dir, "a"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "a", "a-1.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	result := Apply(dir, mustPlan(t, dir, "-"), false, "-")

	if result.Moved != 2 {
		t.Errorf("Moved = %d, want 2", result.Moved)
	}
	if len(result.Errors) != 1 {
		t.Errorf("Errors = %v, want exactly one", result.Errors)
	}
	if _, err := os.Stat(filepath.Join(dir, "b", "b-1.txt")); err != nil {
		t.Errorf("b-1.txt should have moved despite earlier conflict: %v", err)
	}
}
