package artwork_test

import (
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"

	"tamscraper/internal/artwork"
	"tamscraper/internal/testsupport"
)

func decodeDims(t *testing.T, path string) (int, int) {
	t.Helper()
	img, err := imaging.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	b := img.Bounds()
	return b.Dx(), b.Dy()
}

func TestNormalizeCoverBoundsLargeImage(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.jpg")
	dst := filepath.Join(dir, "images", "covers", "game.jpg")
	testsupport.WriteJPEG(t, src, 1000, 1400)

	if err := artwork.NormalizeCover(src, dst, artwork.Bounds{MaxWidth: 512, MaxHeight: 512}, 80); err != nil {
		t.Fatalf("NormalizeCover: %v", err)
	}

	w, h := decodeDims(t, dst)
	if w > 512 || h > 512 {
		t.Fatalf("cover exceeds bounds: %dx%d", w, h)
	}
	if h != 512 {
		t.Fatalf("longer dimension should hit the bound, got %dx%d", w, h)
	}
}

func TestNormalizeCoverNeverUpscales(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "small.png")
	dst := filepath.Join(dir, "out.jpg")
	testsupport.WritePNG(t, src, 200, 150)

	if err := artwork.NormalizeCover(src, dst, artwork.Bounds{MaxWidth: 512, MaxHeight: 512}, 80); err != nil {
		t.Fatal(err)
	}
	if w, h := decodeDims(t, dst); w != 200 || h != 150 {
		t.Fatalf("small cover was resized to %dx%d", w, h)
	}
}

func TestNormalizeFanartExactSize(t *testing.T) {
	cases := []struct {
		name string
		w, h int
	}{
		{"wider than 16:9", 2000, 800},
		{"taller than 16:9", 800, 1200},
		{"exact ratio", 1920, 1080},
		{"smaller than target", 640, 480},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			src := filepath.Join(dir, "src.jpg")
			dst := filepath.Join(dir, "images", "fanart", "game.jpg")
			testsupport.WriteJPEG(t, src, tc.w, tc.h)

			if err := artwork.NormalizeFanart(src, dst, artwork.Crop{Width: 1280, Height: 720}, 80); err != nil {
				t.Fatalf("NormalizeFanart: %v", err)
			}
			if w, h := decodeDims(t, dst); w != 1280 || h != 720 {
				t.Fatalf("fanart is %dx%d, want exactly 1280x720", w, h)
			}
		})
	}
}

func TestNormalizeMarqueeKeepsTransparency(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "logo.png")
	dst := filepath.Join(dir, "images", "marquees", "game.png")
	testsupport.WriteTransparentPNG(t, src, 800, 300)

	if err := artwork.NormalizeMarquee(src, dst, artwork.Bounds{MaxWidth: 512, MaxHeight: 256}); err != nil {
		t.Fatalf("NormalizeMarquee: %v", err)
	}

	f, err := os.Open(dst)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, format, err := image.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if format != "png" {
		t.Fatalf("marquee encoded as %s, want png", format)
	}
	b := img.Bounds()
	if b.Dx() > 512 || b.Dy() > 256 {
		t.Fatalf("marquee exceeds bounds: %dx%d", b.Dx(), b.Dy())
	}
	if _, _, _, a := img.At(0, 0).RGBA(); a != 0 {
		t.Fatalf("transparent corner lost, alpha = %d", a)
	}
}

func TestNormalizeMarqueeNeverUpscales(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "logo.png")
	dst := filepath.Join(dir, "out.png")
	testsupport.WritePNG(t, src, 100, 40)

	if err := artwork.NormalizeMarquee(src, dst, artwork.Bounds{MaxWidth: 512, MaxHeight: 256}); err != nil {
		t.Fatal(err)
	}
	if w, h := decodeDims(t, dst); w != 100 || h != 40 {
		t.Fatalf("small marquee was resized to %dx%d", w, h)
	}
}

func TestNormalizeCoverRejectsCorruptSource(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "corrupt.jpg")
	testsupport.WriteFile(t, src, 64)

	err := artwork.NormalizeCover(src, filepath.Join(dir, "out.jpg"), artwork.Bounds{MaxWidth: 512, MaxHeight: 512}, 80)
	if err == nil {
		t.Fatal("expected decode error for corrupt source")
	}
}

func TestNormalizeFanartMissingSource(t *testing.T) {
	dir := t.TempDir()
	err := artwork.NormalizeFanart(filepath.Join(dir, "absent.png"), filepath.Join(dir, "out.jpg"), artwork.Crop{Width: 1280, Height: 720}, 80)
	if err == nil {
		t.Fatal("expected error for missing source")
	}
}
