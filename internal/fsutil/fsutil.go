// Package fsutil provides file system utility functions for the
// generated-sources output directory. All operations run against an afero.Fs
// so callers can substitute an in-memory file system in tests.
package fsutil

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// ResolveOutputDir validates and normalizes the output directory path. The
// path must be non-empty and must not point at an existing regular file.
// Resolution performs no writes; directory creation belongs to the init task.
func ResolveOutputDir(fsys afero.Fs, path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("output directory path is empty")
	}

	resolved := filepath.Clean(path)

	info, err := fsys.Stat(resolved)
	switch {
	case err == nil:
		if !info.IsDir() {
			return "", fmt.Errorf("output directory path %s exists and is not a directory", resolved)
		}
	case os.IsNotExist(err):
		// Fine: the init task creates it at execution time.
	default:
		return "", fmt.Errorf("cannot stat output directory path %s: %w", resolved, err)
	}

	return resolved, nil
}

// EnsureDir creates the directory and any missing parents.
func EnsureDir(fsys afero.Fs, path string) error {
	if err := fsys.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", path, err)
	}
	return nil
}

// RemoveDir removes the directory and everything beneath it. Removing a
// directory that does not exist is not an error.
func RemoveDir(fsys afero.Fs, path string) error {
	if err := fsys.RemoveAll(path); err != nil {
		return fmt.Errorf("failed to remove directory %s: %w", path, err)
	}
	return nil
}
