package platform

import (
	"fmt"
	"os"
	"runtime"
)

// Chmod sets file permissions. On Windows this is a no-op because Windows
// does not support Unix-style permission bits.
func Chmod(path string, mode os.FileMode) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	return os.Chmod(path, mode)
}

// CopyMetadata applies the permission bits and modification time recorded in
// src to the file at dst. The access time is set to the same instant.
func CopyMetadata(dst string, src os.FileInfo) error {
	if err := Chmod(dst, src.Mode().Perm()); err != nil {
		return fmt.Errorf("setting permissions on %s: %w", dst, err)
	}
	mtime := src.ModTime()
	if err := os.Chtimes(dst, mtime, mtime); err != nil {
		return fmt.Errorf("setting timestamps on %s: %w", dst, err)
	}
	return nil
}
