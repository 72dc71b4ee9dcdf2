package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// sourceExtensions are the file types the runner can execute
var sourceExtensions = map[string]bool{
	".js":  true,
	".jsx": true,
	".mjs": true,
	".cjs": true,
	".ts":  true,
	".tsx": true,
}

// IsSourceFile reports whether path is a JavaScript or TypeScript source file
func IsSourceFile(path string) bool {
	if strings.HasSuffix(path, ".d.ts") {
		return false
	}
	return sourceExtensions[strings.ToLower(filepath.Ext(path))]
}

// Scanner scans for test source files in a directory
type Scanner struct {
	skipDirs map[string]bool
}

// NewScanner creates a new Scanner with the given directories to skip
func NewScanner(skipDirs []string) *Scanner {
	skipMap := make(map[string]bool)
	for _, dir := range skipDirs {
		skipMap[dir] = true
	}
	return &Scanner{skipDirs: skipMap}
}

// Scan finds all JavaScript and TypeScript files under root
func (s *Scanner) Scan(root string) ([]string, error) {
	var files []string

	root = filepath.Clean(root)
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("test path does not exist: %s", root)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("test path is not a directory: %s", root)
	}

	err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			name := d.Name()
			if path != root && strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			if s.skipDirs[name] {
				return filepath.SkipDir
			}
			return nil
		}

		if IsSourceFile(path) {
			files = append(files, path)
		}
		return nil
	})

	return files, err
}
