package utils

import (
	"os"
	"path/filepath"
)

// EnsureDir creates a directory and any missing parents
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0o755)
}

// PathExists reports whether a path exists (file or directory)
func PathExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// FileExists reports whether a regular file exists at path
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// WriteFile writes content to path, creating parent directories as needed
func WriteFile(path, content string) error {
	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), 0o644)
}
