package scanner_test

import (
	"os"
	"path/filepath"
	"testing"

	"tamscraper/internal/scanner"
	"tamscraper/internal/testsupport"
)

func makeFolder(t *testing.T, root, name string, files ...string) string {
	t.Helper()
	dir := filepath.Join(root, name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	for _, file := range files {
		testsupport.WriteFile(t, filepath.Join(dir, file), 16)
	}
	return dir
}

func TestDiscoverQualifyingFolders(t *testing.T) {
	root := t.TempDir()
	makeFolder(t, root, "Dreamcast", "Sega Dreamcast.xml", "Sonic Adventure.chd")
	makeFolder(t, root, "No Metadata", "game.iso")
	makeFolder(t, root, "Empty")

	folders, err := scanner.Discover(root, nil, "gamelist.xml")
	if err != nil {
		t.Fatalf("Discover returned error: %v", err)
	}
	if len(folders) != 1 {
		t.Fatalf("expected 1 qualifying folder, got %d", len(folders))
	}
	if folders[0].Path != filepath.Join(root, "Dreamcast") {
		t.Fatalf("unexpected folder: %q", folders[0].Path)
	}
	if filepath.Base(folders[0].MetadataXML) != "Sega Dreamcast.xml" {
		t.Fatalf("unexpected metadata file: %q", folders[0].MetadataXML)
	}
}

func TestDiscoverSkipsExcludedAndDotFolders(t *testing.T) {
	root := t.TempDir()
	makeFolder(t, root, "Config", "platform.xml")
	makeFolder(t, root, "$RECYCLE.BIN", "deleted.xml")
	makeFolder(t, root, ".staging", "pending.xml")
	makeFolder(t, root, "PSX", "PSX.xml")

	excluded := []string{"System Volume Information", "$RECYCLE.BIN", "images", "Config"}
	folders, err := scanner.Discover(root, excluded, "gamelist.xml")
	if err != nil {
		t.Fatal(err)
	}
	if len(folders) != 1 || filepath.Base(folders[0].Path) != "PSX" {
		t.Fatalf("unexpected folders: %+v", folders)
	}
}

func TestDiscoverIgnoresLooseFiles(t *testing.T) {
	root := t.TempDir()
	testsupport.WriteFile(t, filepath.Join(root, "stray.xml"), 16)

	folders, err := scanner.Discover(root, nil, "gamelist.xml")
	if err != nil {
		t.Fatal(err)
	}
	if len(folders) != 0 {
		t.Fatalf("expected no folders, got %+v", folders)
	}
}

func TestMetadataXMLSkipsReservedOutputName(t *testing.T) {
	root := t.TempDir()
	dir := makeFolder(t, root, "Dreamcast", "GAMELIST.XML")

	if got := scanner.MetadataXML(dir, "gamelist.xml"); got != "" {
		t.Fatalf("generated gamelist treated as metadata: %q", got)
	}

	testsupport.WriteFile(t, filepath.Join(dir, "Sega Dreamcast.xml"), 16)
	if got := scanner.MetadataXML(dir, "gamelist.xml"); filepath.Base(got) != "Sega Dreamcast.xml" {
		t.Fatalf("unexpected metadata file: %q", got)
	}
}

func TestMetadataXMLCaseInsensitiveExtension(t *testing.T) {
	root := t.TempDir()
	dir := makeFolder(t, root, "N64", "Nintendo 64.XML")

	if got := scanner.MetadataXML(dir, "gamelist.xml"); filepath.Base(got) != "Nintendo 64.XML" {
		t.Fatalf("uppercase extension not recognized: %q", got)
	}
}

func TestMetadataXMLMissingDir(t *testing.T) {
	if got := scanner.MetadataXML(filepath.Join(t.TempDir(), "absent"), "gamelist.xml"); got != "" {
		t.Fatalf("expected empty result, got %q", got)
	}
}
