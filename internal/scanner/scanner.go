// Package scanner enumerates candidate game folders under the scan root.
//
// A folder qualifies when it contains at least one XML file that is not a
// previously generated gamelist. System folders, the shared images folder,
// and anything dot-prefixed never qualify.
package scanner

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Folder is a qualifying game folder paired with its metadata XML.
type Folder struct {
	Path        string
	MetadataXML string
}

// Discover returns the immediate subdirectories of root that qualify as game
// folders, in directory listing order. excludedDirs are matched by exact
// name; outputName marks generated gamelists that must not count as input.
func Discover(root string, excludedDirs []string, outputName string) ([]Folder, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("read scan root: %w", err)
	}

	excluded := make(map[string]struct{}, len(excludedDirs))
	for _, dir := range excludedDirs {
		excluded[dir] = struct{}{}
	}

	var folders []Folder
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		if _, skip := excluded[name]; skip {
			continue
		}
		path := filepath.Join(root, name)
		if xmlPath := MetadataXML(path, outputName); xmlPath != "" {
			folders = append(folders, Folder{Path: path, MetadataXML: xmlPath})
		}
	}
	return folders, nil
}

// MetadataXML returns the first XML file in dir whose name does not end in
// the reserved output name, comparing case-insensitively. Returns "" when
// the directory is unreadable or holds no such file.
func MetadataXML(dir, outputName string) string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return ""
	}
	reserved := strings.ToLower(outputName)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		lower := strings.ToLower(entry.Name())
		if !strings.HasSuffix(lower, ".xml") {
			continue
		}
		if strings.HasSuffix(lower, reserved) {
			continue
		}
		return filepath.Join(dir, entry.Name())
	}
	return ""
}
