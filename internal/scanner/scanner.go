// Package scanner handles directory enumeration for the organizer.
package scanner

import (
	"errors"
	"os"
	"path/filepath"
)

// ScanErrorType represents the type of scanning error.
type ScanErrorType string

const (
	// DirectoryNotFound indicates the directory does not exist or is not a directory.
	DirectoryNotFound ScanErrorType = "DIRECTORY_NOT_FOUND"
	// PermissionDenied indicates insufficient permissions to read the directory.
	PermissionDenied ScanErrorType = "PERMISSION_DENIED"
)

// ScanError represents an error that occurred during directory scanning.
type ScanError struct {
	Type ScanErrorType
	Path string
	Err  error
}

func (e *ScanError) Error() string {
	return string(e.Type) + ": " + e.Path
}

func (e *ScanError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err is a ScanError of kind DirectoryNotFound.
func IsNotFound(err error) bool {
	var se *ScanError
	return errors.As(err, &se) && se.Type == DirectoryNotFound
}

// FileEntry represents a file found during scanning.
type FileEntry struct {
	Name     string // Filename only
	FullPath string // Absolute path
}

// Scan enumerates the regular files directly under the given directory,
// in directory-listing order. Subdirectories and symlinks are excluded;
// the scan never recurses.
func Scan(directory string) ([]FileEntry, error) {
	entries, err := readDir(directory)
	if err != nil {
		return nil, err
	}

	files := make([]FileEntry, 0, len(entries))
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		fullPath := filepath.Join(directory, entry.Name())
		absPath, err := filepath.Abs(fullPath)
		if err != nil {
			absPath = fullPath
		}
		files = append(files, FileEntry{
			Name:     entry.Name(),
			FullPath: absPath,
		})
	}

	return files, nil
}

// ScanBuckets enumerates the immediate subdirectories of the given directory
// and the regular files inside each. Subdirectories containing no regular
// files are omitted. The result is the bucket mapping consumed by a reversal.
func ScanBuckets(directory string) (map[string][]string, error) {
	entries, err := readDir(directory)
	if err != nil {
		return nil, err
	}

	buckets := make(map[string][]string)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		subdir := filepath.Join(directory, entry.Name())
		subEntries, err := os.ReadDir(subdir)
		if err != nil {
			continue // Skip subdirectories we can't read
		}
		var files []string
		for _, sub := range subEntries {
			if sub.Type().IsRegular() {
				files = append(files, sub.Name())
			}
		}
		if len(files) > 0 {
			buckets[entry.Name()] = files
		}
	}

	return buckets, nil
}

// readDir reads directory entries, mapping filesystem failures to ScanError.
func readDir(directory string) ([]os.DirEntry, error) {
	info, err := os.Stat(directory)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &ScanError{Type: DirectoryNotFound, Path: directory, Err: err}
		}
		if os.IsPermission(err) {
			return nil, &ScanError{Type: PermissionDenied, Path: directory, Err: err}
		}
		return nil, err
	}
	if !info.IsDir() {
		return nil, &ScanError{
			Type: DirectoryNotFound,
			Path: directory,
			Err:  errors.New("path is not a directory"),
		}
	}

	entries, err := os.ReadDir(directory)
	if err != nil {
		if os.IsPermission(err) {
			return nil, &ScanError{Type: PermissionDenied, Path: directory, Err: err}
		}
		return nil, err
	}
	return entries, nil
}
