// Package launchbox parses LaunchBox platform XML exports into metadata
// records keyed by ROM filename.
package launchbox

import (
	"encoding/xml"
	"fmt"
	"os"
	"path"
	"strings"
)

// Game is one Game element of a LaunchBox export. All fields are optional in
// the source document.
type Game struct {
	ApplicationPath string `xml:"ApplicationPath"`
	Title           string `xml:"Title"`
	Notes           string `xml:"Notes"`
	Developer       string `xml:"Developer"`
	Publisher       string `xml:"Publisher"`
	Genre           string `xml:"Genre"`
	MaxPlayers      string `xml:"MaxPlayers"`
	ReleaseDate     string `xml:"ReleaseDate"`
}

// document accepts any root element name; only Game children matter.
type document struct {
	Games []Game `xml:"Game"`
}

// Load parses the export at path into a map keyed by the basename of each
// game's ApplicationPath. Games without an ApplicationPath are dropped: the
// ROM filename is the only reliable join key. Keys are case-sensitive.
func Load(path string) (map[string]Game, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read metadata: %w", err)
	}

	var doc document
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse metadata: %w", err)
	}

	records := make(map[string]Game, len(doc.Games))
	for _, game := range doc.Games {
		key := baseName(game.ApplicationPath)
		if key == "" {
			continue
		}
		records[key] = game
	}
	return records, nil
}

// baseName extracts the final path element of an ApplicationPath. Exports
// written on Windows use backslash separators regardless of where this tool
// runs, so both separators split.
func baseName(applicationPath string) string {
	trimmed := strings.TrimSpace(applicationPath)
	if trimmed == "" {
		return ""
	}
	normalized := strings.ReplaceAll(trimmed, "\\", "/")
	base := path.Base(normalized)
	if base == "." || base == "/" {
		return ""
	}
	return base
}

// releaseDateSuffix pins converted release dates to midnight, the convention
// gamelist consumers expect for date-only values.
const releaseDateSuffix = "T000000"

// FormatReleaseDate converts an ISO-prefixed date string (YYYY-MM-DD...) to
// the compact YYYYMMDDT000000 form. Reports false when the source is too
// short to contain a full date.
func FormatReleaseDate(value string) (string, bool) {
	if len(value) < 10 {
		return "", false
	}
	return strings.ReplaceAll(value[:10], "-", "") + releaseDateSuffix, true
}
