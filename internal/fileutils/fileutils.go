// Package fileutils provides common file operations used by the commands.
package fileutils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileExists checks if a file exists and is not a directory
func FileExists(filePath string) bool {
	info, err := os.Stat(filePath)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// EnsureDirectoryExists creates a directory if it doesn't exist
func EnsureDirectoryExists(dirPath string) error {
	if err := os.MkdirAll(dirPath, 0750); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	return nil
}

// ListFilesByExtension returns the files in dir whose name ends with ext
// (case-insensitive), as full paths in directory order.
func ListFilesByExtension(dir, ext string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(strings.ToLower(entry.Name()), strings.ToLower(ext)) {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	return files, nil
}

// ReplaceExtension swaps the extension of a file name.
func ReplaceExtension(fileName, newExt string) string {
	return strings.TrimSuffix(fileName, filepath.Ext(fileName)) + newExt
}
