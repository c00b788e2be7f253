// Package gamelist models and serializes the simplified gamelist document
// written into each game folder.
package gamelist

import (
	"encoding/xml"
	"fmt"
	"os"
)

// Entry is one game element of the output document. Path and Name are always
// present; everything else is omitted when empty. Image paths are
// folder-local, ./-prefixed.
type Entry struct {
	XMLName     xml.Name `xml:"game"`
	Path        string   `xml:"path"`
	Name        string   `xml:"name"`
	Description string   `xml:"desc,omitempty"`
	Developer   string   `xml:"developer,omitempty"`
	Publisher   string   `xml:"publisher,omitempty"`
	Genre       string   `xml:"genre,omitempty"`
	MaxPlayers  string   `xml:"maxplayers,omitempty"`
	ReleaseDate string   `xml:"releasedate,omitempty"`
	Image       string   `xml:"image,omitempty"`
	Fanart      string   `xml:"fanart,omitempty"`
	Marquee     string   `xml:"marquee,omitempty"`
}

// Document is the gamelist root.
type Document struct {
	XMLName xml.Name `xml:"gameList"`
	Games   []Entry  `xml:"game"`
}

// Write serializes doc to path with an XML declaration and two-space
// indentation, replacing any existing file.
func Write(path string, doc *Document) error {
	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal gamelist: %w", err)
	}

	data := make([]byte, 0, len(xml.Header)+len(body)+1)
	data = append(data, xml.Header...)
	data = append(data, body...)
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write gamelist: %w", err)
	}
	return nil
}
