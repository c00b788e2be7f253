package textutil

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// titleReplacer maps the characters LaunchBox refuses in artwork filenames to
// underscores, matching the names it writes to disk when scraping.
var titleReplacer = strings.NewReplacer(
	"<", "_",
	">", "_",
	":", "_",
	"\"", "_",
	"/", "_",
	"\\", "_",
	"|", "_",
	"?", "_",
	"*", "_",
	"'", "_",
	"`", "_",
)

// SanitizeTitle replaces filesystem-unsafe characters in a game title with
// underscores so it lines up with LaunchBox's own artwork filenames.
func SanitizeTitle(title string) string {
	if title == "" {
		return ""
	}
	return titleReplacer.Replace(title)
}

// NormalizeName returns the NFC form of a filename stem. Filesystems that
// list names in decomposed form (macOS) would otherwise never compare equal
// to titles read from XML.
func NormalizeName(name string) string {
	return norm.NFC.String(name)
}
