package pipeline_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/disintegration/imaging"

	"tamscraper/internal/config"
	"tamscraper/internal/logging"
	"tamscraper/internal/pipeline"
	"tamscraper/internal/testsupport"
)

func newRunner() *pipeline.Runner {
	cfg := config.Default()
	return pipeline.New(&cfg, logging.NewNop())
}

func readGamelist(t *testing.T, dir string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, "gamelist.xml"))
	if err != nil {
		t.Fatalf("read gamelist: %v", err)
	}
	return string(data)
}

func TestRunConvertsFolderWithArtwork(t *testing.T) {
	root := t.TempDir()
	dc := filepath.Join(root, "Sega Dreamcast")

	testsupport.WriteLaunchBoxExport(t, filepath.Join(dc, "Sega Dreamcast.xml"), testsupport.ExportGame{
		ApplicationPath: ".\\Sega Dreamcast\\Sonic.bin",
		Title:           "Sonic the Hedgehog",
		Notes:           "Gotta go fast.",
		Developer:       "Sonic Team",
		Publisher:       "Sega",
		Genre:           "Platform",
		MaxPlayers:      "1",
		ReleaseDate:     "1991-06-23T00:00:00-05:00",
	})
	testsupport.WriteFile(t, filepath.Join(dc, "Sonic.bin"), 64)
	testsupport.WriteJPEG(t, filepath.Join(dc, "Front", "Sonic the Hedgehog-01.jpg"), 800, 1100)
	testsupport.WriteJPEG(t, filepath.Join(dc, "Screenshot", "Sonic the Hedgehog.jpg"), 1920, 1080)
	testsupport.WriteTransparentPNG(t, filepath.Join(dc, "Clear Logo", "Sonic-01.png"), 700, 260)

	stats, err := newRunner().Run(root)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if stats.Folders != 1 || stats.Games != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	if stats.Covers != 1 || stats.Fanart != 1 || stats.Marquees != 1 || stats.ArtworkErrors != 0 {
		t.Fatalf("unexpected artwork stats: %+v", stats)
	}

	text := readGamelist(t, dc)
	for _, want := range []string{
		"<path>./Sonic.bin</path>",
		"<name>Sonic the Hedgehog</name>",
		"<desc>Gotta go fast.</desc>",
		"<developer>Sonic Team</developer>",
		"<publisher>Sega</publisher>",
		"<genre>Platform</genre>",
		"<maxplayers>1</maxplayers>",
		"<releasedate>19910623T000000</releasedate>",
		"<image>./images/covers/Sonic.jpg</image>",
		"<fanart>./images/fanart/Sonic.jpg</fanart>",
		"<marquee>./images/marquees/Sonic.png</marquee>",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("gamelist missing %s:\n%s", want, text)
		}
	}

	fanart, err := imaging.Open(filepath.Join(dc, "images", "fanart", "Sonic.jpg"))
	if err != nil {
		t.Fatalf("open fanart: %v", err)
	}
	if b := fanart.Bounds(); b.Dx() != 1280 || b.Dy() != 720 {
		t.Fatalf("fanart is %dx%d, want 1280x720", b.Dx(), b.Dy())
	}
	cover, err := imaging.Open(filepath.Join(dc, "images", "covers", "Sonic.jpg"))
	if err != nil {
		t.Fatalf("open cover: %v", err)
	}
	if b := cover.Bounds(); b.Dx() > 512 || b.Dy() > 512 {
		t.Fatalf("cover exceeds bounds: %dx%d", b.Dx(), b.Dy())
	}
}

func TestRunEmitsMinimalEntryWithoutMetadata(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "PSX")

	testsupport.WriteLaunchBoxExport(t, filepath.Join(dir, "PSX.xml"), testsupport.ExportGame{
		ApplicationPath: "Other Game.cue",
		Title:           "Other Game",
	})
	testsupport.WriteFile(t, filepath.Join(dir, "Mystery Game.iso"), 64)
	// Artwork exists but must be ignored: no metadata record, no lookup.
	testsupport.WritePNG(t, filepath.Join(dir, "Front", "Mystery Game-01.png"), 50, 50)

	stats, err := newRunner().Run(root)
	if err != nil {
		t.Fatal(err)
	}
	if stats.Games != 1 || stats.Covers != 0 {
		t.Fatalf("unexpected stats: %+v", stats)
	}

	text := readGamelist(t, dir)
	if !strings.Contains(text, "<path>./Mystery Game.iso</path>") {
		t.Fatalf("missing path:\n%s", text)
	}
	if !strings.Contains(text, "<name>Mystery Game</name>") {
		t.Fatalf("missing filename-derived name:\n%s", text)
	}
	if strings.Contains(text, "<image>") || strings.Contains(text, "<desc>") {
		t.Fatalf("minimal entry carries extra fields:\n%s", text)
	}
}

func TestRunSkipsFolderOnMalformedXML(t *testing.T) {
	root := t.TempDir()
	bad := filepath.Join(root, "Broken")
	good := filepath.Join(root, "Good")

	if err := os.MkdirAll(bad, 0o755); err != nil {
		t.Fatal(err)
	}
	testsupport.WriteFile(t, filepath.Join(bad, "Broken.xml"), 32) // not XML
	testsupport.WriteFile(t, filepath.Join(bad, "game.iso"), 64)

	testsupport.WriteLaunchBoxExport(t, filepath.Join(good, "Good.xml"), testsupport.ExportGame{
		ApplicationPath: "game.iso",
		Title:           "Good Game",
	})
	testsupport.WriteFile(t, filepath.Join(good, "game.iso"), 64)

	stats, err := newRunner().Run(root)
	if err != nil {
		t.Fatal(err)
	}
	if stats.FoldersSkipped != 1 || stats.Folders != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	if _, err := os.Stat(filepath.Join(bad, "gamelist.xml")); !os.IsNotExist(err) {
		t.Fatal("skipped folder should not get a gamelist")
	}
	if !strings.Contains(readGamelist(t, good), "<name>Good Game</name>") {
		t.Fatal("sibling folder was not processed")
	}
}

func TestRunArtworkFailureOmitsFieldOnly(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "MD")

	testsupport.WriteLaunchBoxExport(t, filepath.Join(dir, "MD.xml"), testsupport.ExportGame{
		ApplicationPath: "Sonic.bin",
		Title:           "Sonic",
	})
	testsupport.WriteFile(t, filepath.Join(dir, "Sonic.bin"), 64)
	// Right name, not an image.
	testsupport.WriteFile(t, filepath.Join(dir, "Front", "Sonic-01.jpg"), 64)

	stats, err := newRunner().Run(root)
	if err != nil {
		t.Fatal(err)
	}
	if stats.ArtworkErrors != 1 || stats.Covers != 0 {
		t.Fatalf("unexpected stats: %+v", stats)
	}

	text := readGamelist(t, dir)
	if strings.Contains(text, "<image>") {
		t.Fatalf("failed cover should be omitted:\n%s", text)
	}
	if !strings.Contains(text, "<name>Sonic</name>") {
		t.Fatalf("entry missing despite artwork failure:\n%s", text)
	}
}

func TestRunNoQualifyingFolders(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "Empty"), 0o755); err != nil {
		t.Fatal(err)
	}

	stats, err := newRunner().Run(root)
	if err != nil {
		t.Fatal(err)
	}
	if stats.Folders != 0 || stats.Games != 0 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestRunROMsSortedAndFiltered(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "MD")

	testsupport.WriteLaunchBoxExport(t, filepath.Join(dir, "MD.xml"))
	testsupport.WriteFile(t, filepath.Join(dir, "b.bin"), 16)
	testsupport.WriteFile(t, filepath.Join(dir, "a.BIN"), 16)
	testsupport.WriteFile(t, filepath.Join(dir, "notes.txt"), 16)

	stats, err := newRunner().Run(root)
	if err != nil {
		t.Fatal(err)
	}
	if stats.Games != 2 {
		t.Fatalf("expected 2 games, got %+v", stats)
	}

	text := readGamelist(t, dir)
	if strings.Contains(text, "notes.txt") {
		t.Fatalf("allow-list leak:\n%s", text)
	}
	if strings.Index(text, "a.BIN") > strings.Index(text, "b.bin") {
		t.Fatalf("entries not sorted by filename:\n%s", text)
	}
}

func TestAcquireLockExclusive(t *testing.T) {
	root := t.TempDir()

	lock, err := pipeline.AcquireLock(root)
	if err != nil {
		t.Fatalf("first lock failed: %v", err)
	}

	if _, err := pipeline.AcquireLock(root); err == nil {
		t.Fatal("second lock should fail while the first is held")
	}

	if err := lock.Unlock(); err != nil {
		t.Fatalf("unlock failed: %v", err)
	}
	relock, err := pipeline.AcquireLock(root)
	if err != nil {
		t.Fatalf("relock after unlock failed: %v", err)
	}
	_ = relock.Unlock()
}
