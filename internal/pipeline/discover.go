package pipeline

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// Recognized video container extensions (lowercase, with leading dot).
var mediaExtensions = map[string]bool{
	".mkv":  true,
	".mp4":  true,
	".mov":  true,
	".avi":  true,
	".m4v":  true,
	".ts":   true,
	".webm": true,
}

// Discover walks root recursively, collects files with a recognized video
// extension (case-insensitive), and returns the paths sorted
// lexicographically for deterministic processing order.
func Discover(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if mediaExtensions[ext] {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}
