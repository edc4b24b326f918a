package planner

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/esdraskololo/File-Organizer-Tool/internal/scanner"
)

func TestCategoryFor(t *testing.T) {
	tests := []struct {
		name      string
		filename  string
		separator string
		want      string
	}{
		{"simple prefix", "photos-img1.png", "-", "photos"},
		{"no separator", "readme.txt", "-", NoSeparator},
		{"empty separator", "photos-img1.png", "", NoSeparator},
		{"prefix is trimmed", "photos -img1.png", "-", "photos"},
		{"punctuation becomes underscore", "ph@tos-img1.png", "-", "ph_tos"},
		{"empty prefix", "-img1.png", "-", UnnamedCategory},
		{"whitespace-only prefix", "   -img1.png", "-", UnnamedCategory},
		{"multi-rune separator", "photos--img1.png", "--", "photos"},
		{"first occurrence wins", "a-b-c.txt", "-", "a"},
		{"unicode letters pass through", "fotoğraf-1.png", "-", "fotoğraf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CategoryFor(tt.filename, tt.separator); got != tt.want {
				t.Errorf("CategoryFor(%q, %q) = %q, want %q", tt.filename, tt.separator, got, tt.want)
			}
		})
	}
}

func TestSanitizePrefix(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
		want   string
	}{
		{"alphanumeric unchanged", "photos2024", "photos2024"},
		{"allowed punctuation kept", "my_set-a b", "my_set-a b"},
		{"dots replaced", "v1.2.3", "v1_2_3"},
		{"slashes replaced", "a/b", "a_b"},
		{"trimmed after replacement", "  abc  ", "abc"},
		{"empty stays empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizePrefix(tt.prefix); got != tt.want {
				t.Errorf("SanitizePrefix(%q) = %q, want %q", tt.prefix, got, tt.want)
			}
		})
	}
}

func TestStrippedName(t *testing.T) {
	tests := []struct {
		name      string
		filename  string
		separator string
		want      string
		wantOK    bool
	}{
		{"strips prefix", "photos-img1.png", "-", "img1.png", true},
		{"trims remainder", "photos- img1.png", "-", "img1.png", true},
		{"no separator keeps name", "readme.txt", "-", "readme.txt", false},
		{"empty remainder keeps name", "photos-", "-", "photos-", false},
		{"whitespace remainder keeps name", "photos-  ", "-", "photos-  ", false},
		{"empty separator keeps name", "photos-img1.png", "", "photos-img1.png", false},
		{"only first separator removed", "a-b-c.txt", "-", "b-c.txt", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := StrippedName(tt.filename, tt.separator)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("StrippedName(%q, %q) = (%q, %v), want (%q, %v)",
					tt.filename, tt.separator, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestBuildGroupsFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"photos-img1.png", "photos-img2.png", "docs-a.txt", "readme.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	// Subdirectories must not appear in the plan.
	if err := os.Mkdir(filepath.Join(dir, "existing"), 0755); err != nil {
		t.Fatal(err)
	}

	plan, err := Build(dir, "-")
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if plan.TotalFiles() != 4 {
		t.Errorf("TotalFiles = %d, want 4", plan.TotalFiles())
	}
	want := map[string][]string{
		"docs":      {"docs-a.txt"},
		"photos":    {"photos-img1.png", "photos-img2.png"},
		NoSeparator: {"readme.txt"},
	}
	if got := plan.Buckets(); !reflect.DeepEqual(got, want) {
		t.Errorf("Buckets = %v, want %v", got, want)
	}
}

func TestBuildPreservesEncounterOrder(t *testing.T) {
	dir := t.TempDir()
	// ReadDir returns lexical order, so encounter order is predictable.
	names := []string{"a-1.txt", "a-2.txt", "a-3.txt"}
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	plan, err := Build(dir, "-")
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if got := plan.Files("a"); !reflect.DeepEqual(got, names) {
		t.Errorf("Files(a) = %v, want %v", got, names)
	}
}

func TestBuildMissingDirectory(t *testing.T) {
	_, err := Build(filepath.Join(t.TempDir(), "does-not-exist"), "-")
	if err == nil {
		t.Fatal("expected error for missing directory")
	}
	if !scanner.IsNotFound(err) {
		t.Errorf("expected DirectoryNotFound, got %v", err)
	}
}

func TestSingle(t *testing.T) {
	plan := Single("photos-img1.png", "-")
	if plan.Len() != 1 || plan.TotalFiles() != 1 {
		t.Fatalf("Single plan has %d categories, %d files", plan.Len(), plan.TotalFiles())
	}
	if got := plan.Files("photos"); !reflect.DeepEqual(got, []string{"photos-img1.png"}) {
		t.Errorf("Files(photos) = %v", got)
	}
}

func TestIsSentinel(t *testing.T) {
	if !IsSentinel(NoSeparator) || !IsSentinel(UnnamedCategory) {
		t.Error("sentinel categories not recognized")
	}
	if IsSentinel("photos") {
		t.Error("photos should not be a sentinel")
	}
}
