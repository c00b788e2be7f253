package artwork

import (
	"io/fs"
	"path/filepath"
	"strings"

	"tamscraper/internal/fileutil"
	"tamscraper/internal/textutil"
)

// imageExtensions are the accepted source artwork formats.
var imageExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".gif":  {},
}

// Candidates returns the filename stems accepted for a game's artwork, in
// priority order: scraped title with index suffix, bare title, ROM filename
// with index suffix, and the title with underscores restored to spaces.
func Candidates(sanitizedTitle, romBase string) []string {
	return []string{
		sanitizedTitle + "-01",
		sanitizedTitle,
		romBase + "-01",
		strings.ReplaceAll(sanitizedTitle, "_", " "),
	}
}

// Locate walks the category subfolder under baseDir and returns the first
// image file whose stem exactly matches any candidate. The walk is lexical,
// so the result is deterministic for a given directory listing; which
// candidate wins across subdirectories is implementation-defined. Returns ""
// when the category folder is absent or nothing matches.
func Locate(baseDir, categoryDir, sanitizedTitle, romBase string) string {
	root := filepath.Join(baseDir, categoryDir)
	if !fileutil.DirExists(root) {
		return ""
	}

	want := make(map[string]struct{}, 4)
	for _, candidate := range Candidates(sanitizedTitle, romBase) {
		want[textutil.NormalizeName(candidate)] = struct{}{}
	}

	var found string
	_ = filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable subtree: keep looking elsewhere.
			return nil
		}
		if entry.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if _, ok := imageExtensions[ext]; !ok {
			return nil
		}
		stem := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		if _, ok := want[textutil.NormalizeName(stem)]; ok {
			found = path
			return fs.SkipAll
		}
		return nil
	})
	return found
}
