package ui

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/esdraskololo/File-Organizer-Tool/internal/locale"
	"github.com/esdraskololo/File-Organizer-Tool/internal/output"
)

func runSession(t *testing.T, script string) (*bytes.Buffer, error) {
	t.Helper()
	var out bytes.Buffer
	loc := locale.New("en")
	report := output.New(output.Config{Writer: &out, ErrWriter: &out})
	session := New(strings.NewReader(script), &out, loc, report, nil)
	err := session.Run()
	return &out, err
}

func seedFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestSessionOrganizeAndReverse(t *testing.T) {
	dir := t.TempDir()
	seedFiles(t, dir, "photos-img1.png", "docs-a.txt")

	// organize: dir, default separator, confirm, no prefix removal;
	// then reverse the session's last apply; then quit.
	script := "o\n" + dir + "\n\ny\nn\nr\ny\nq\n"
	out, err := runSession(t, script)
	if err != nil {
		t.Fatalf("session error: %v", err)
	}

	if !strings.Contains(out.String(), "Found 2 files in 2 categories.") {
		t.Errorf("missing plan summary in output: %q", out.String())
	}
	if !strings.Contains(out.String(), "Organization complete!") {
		t.Errorf("missing completion message: %q", out.String())
	}
	// After the reversal the layout is flat again.
	for _, name := range []string{"photos-img1.png", "docs-a.txt"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("expected %s restored: %v", name, err)
		}
	}
	if _, err := os.Stat(filepath.Join(dir, "photos")); !os.IsNotExist(err) {
		t.Error("bucket photos should be gone after reversal")
	}
}

func TestSessionOrganizeWithPrefixRemoval(t *testing.T) {
	dir := t.TempDir()
	seedFiles(t, dir, "photos-img1.png")

	script := "o\n" + dir + "\n-\ny\ny\nq\n"
	if _, err := runSession(t, script); err != nil {
		t.Fatalf("session error: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "photos", "img1.png")); err != nil {
		t.Errorf("expected stripped file photos/img1.png: %v", err)
	}
}

func TestSessionDeclinedConfirmationCancels(t *testing.T) {
	dir := t.TempDir()
	seedFiles(t, dir, "photos-img1.png")

	script := "o\n" + dir + "\n\nn\nq\n"
	out, err := runSession(t, script)
	if err != nil {
		t.Fatalf("session error: %v", err)
	}

	if !strings.Contains(out.String(), "Operation cancelled.") {
		t.Errorf("missing cancellation message: %q", out.String())
	}
	if _, err := os.Stat(filepath.Join(dir, "photos-img1.png")); err != nil {
		t.Errorf("file should not have moved: %v", err)
	}
}

func TestSessionReverseWithoutApply(t *testing.T) {
	out, err := runSession(t, "r\nq\n")
	if err != nil {
		t.Fatalf("session error: %v", err)
	}
	if !strings.Contains(out.String(), "no organization has been applied") {
		t.Errorf("missing nothing-to-reverse message: %q", out.String())
	}
}

func TestSessionInvalidDirectory(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing")
	script := "o\n" + missing + "\n\nq\n"
	out, err := runSession(t, script)
	if err != nil {
		t.Fatalf("session error: %v", err)
	}
	if !strings.Contains(out.String(), "Invalid directory path") {
		t.Errorf("missing invalid-directory message: %q", out.String())
	}
}

func TestSessionEndsOnEOF(t *testing.T) {
	if _, err := runSession(t, ""); err != nil {
		t.Fatalf("EOF should end the session cleanly, got %v", err)
	}
}
