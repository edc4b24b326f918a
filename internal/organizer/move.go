// Package organizer executes and reverses organization plans by moving
// files between a directory and its category subdirectories.
package organizer

import (
	"fmt"
	"os"
)

// MoveErrorType represents the type of move error.
type MoveErrorType string

const (
	// SourceNotFound indicates the source file does not exist.
	SourceNotFound MoveErrorType = "SOURCE_NOT_FOUND"
	// DestinationExists indicates a file already exists at the destination.
	DestinationExists MoveErrorType = "DESTINATION_EXISTS"
	// PermissionDenied indicates insufficient permissions for the operation.
	PermissionDenied MoveErrorType = "PERMISSION_DENIED"
)

// MoveError represents an error that occurred while moving a single file.
type MoveError struct {
	Type MoveErrorType
	Path string
	Err  error
}

func (e *MoveError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Type, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Path)
}

func (e *MoveError) Unwrap() error {
	return e.Err
}

// fileExists checks if a file exists at the given path.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// moveFile renames src to dst, falling back to copy+delete when the rename
// fails (e.g. cross-device moves). An existing destination is an error;
// os.Rename would overwrite it silently.
func moveFile(src, dst string) error {
	if fileExists(dst) {
		return &MoveError{Type: DestinationExists, Path: dst}
	}
	if err := os.Rename(src, dst); err == nil {
		return nil
	} else if os.IsPermission(err) {
		return &MoveError{Type: PermissionDenied, Path: src, Err: err}
	}
	return copyAndDelete(src, dst)
}

// copyAndDelete copies a file to a new location and deletes the original.
func copyAndDelete(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		if os.IsNotExist(err) {
			return &MoveError{Type: SourceNotFound, Path: src, Err: err}
		}
		if os.IsPermission(err) {
			return &MoveError{Type: PermissionDenied, Path: src, Err: err}
		}
		return err
	}

	srcInfo, err := os.Stat(src)
	if err != nil {
		return err
	}

	if err := os.WriteFile(dst, data, srcInfo.Mode()); err != nil {
		if os.IsPermission(err) {
			return &MoveError{Type: PermissionDenied, Path: dst, Err: err}
		}
		return err
	}

	if err := os.Remove(src); err != nil {
		// Couldn't delete the source; clean up the copy so the move
		// doesn't leave two files behind.
		os.Remove(dst)
		if os.IsPermission(err) {
			return &MoveError{Type: PermissionDenied, Path: src, Err: err}
		}
		return err
	}

	return nil
}
