package testsupport

import (
	"encoding/xml"
	"os"
	"path/filepath"
	"testing"
)

// ExportGame is one Game element of a synthetic LaunchBox export.
type ExportGame struct {
	ApplicationPath string `xml:"ApplicationPath,omitempty"`
	Title           string `xml:"Title,omitempty"`
	Notes           string `xml:"Notes,omitempty"`
	Developer       string `xml:"Developer,omitempty"`
	Publisher       string `xml:"Publisher,omitempty"`
	Genre           string `xml:"Genre,omitempty"`
	MaxPlayers      string `xml:"MaxPlayers,omitempty"`
	ReleaseDate     string `xml:"ReleaseDate,omitempty"`
}

type export struct {
	XMLName xml.Name     `xml:"LaunchBox"`
	Games   []ExportGame `xml:"Game"`
}

// WriteLaunchBoxExport writes a LaunchBox platform XML containing the given
// games, creating parent directories as needed.
func WriteLaunchBoxExport(t testing.TB, path string, games ...ExportGame) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	body, err := xml.MarshalIndent(export{Games: games}, "", "  ")
	if err != nil {
		t.Fatalf("marshal export: %v", err)
	}
	data := append([]byte(xml.Header), body...)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
