package testsupport

import (
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// testImage builds a simple two-tone image so resized output is non-trivial.
func testImage(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := color.NRGBA{R: 40, G: 90, B: 200, A: 255}
			if (x/8+y/8)%2 == 0 {
				c = color.NRGBA{R: 220, G: 180, B: 40, A: 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func ensureParent(t testing.TB, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
}

// WritePNG writes a synthetic PNG image of the given size, creating parent
// directories as needed.
func WritePNG(t testing.TB, path string, width, height int) {
	t.Helper()
	ensureParent(t, path)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, testImage(width, height)); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
}

// WriteTransparentPNG writes a PNG whose top-left quarter is fully
// transparent, so transparency survives resampling in a testable way.
func WriteTransparentPNG(t testing.TB, path string, width, height int) {
	t.Helper()
	ensureParent(t, path)
	img := testImage(width, height)
	for y := 0; y < height/2; y++ {
		for x := 0; x < width/2; x++ {
			img.SetNRGBA(x, y, color.NRGBA{})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
}

// WriteJPEG writes a synthetic JPEG image of the given size, creating parent
// directories as needed.
func WriteJPEG(t testing.TB, path string, width, height int) {
	t.Helper()
	ensureParent(t, path)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := jpeg.Encode(f, testImage(width, height), &jpeg.Options{Quality: 90}); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
}
