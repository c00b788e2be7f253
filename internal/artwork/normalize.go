package artwork

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"tamscraper/internal/fileutil"
)

// Bounds parameterizes a bounded-thumbnail transform: the image is scaled
// down, preserving aspect ratio, so neither dimension exceeds the maxima.
// Images already inside the box pass through at their original size.
type Bounds struct {
	MaxWidth  int
	MaxHeight int
}

// Crop parameterizes a fill-and-crop transform: the image is scaled to cover
// Width x Height, then the overflow is cropped from the center.
type Crop struct {
	Width  int
	Height int
}

// NormalizeCover produces cover art: EXIF orientation applied, bounded
// thumbnail, JPEG at the given quality.
func NormalizeCover(src, dst string, bounds Bounds, quality int) error {
	img, err := imaging.Open(src, imaging.AutoOrientation(true))
	if err != nil {
		return fmt.Errorf("decode cover %s: %w", src, err)
	}
	img = imaging.Fit(img, bounds.MaxWidth, bounds.MaxHeight, imaging.Lanczos)
	return save(dst, img, imaging.JPEGQuality(quality))
}

// NormalizeFanart produces background art: EXIF orientation applied, scaled
// and center-cropped to exactly the crop size, JPEG at the given quality. No
// letterboxing remains regardless of the source aspect ratio.
func NormalizeFanart(src, dst string, crop Crop, quality int) error {
	img, err := imaging.Open(src, imaging.AutoOrientation(true))
	if err != nil {
		return fmt.Errorf("decode fanart %s: %w", src, err)
	}
	img = imaging.Fill(img, crop.Width, crop.Height, imaging.Center, imaging.Lanczos)
	return save(dst, img, imaging.JPEGQuality(quality))
}

// NormalizeMarquee produces logo art: bounded thumbnail encoded as PNG so
// transparency survives. Logos carry no camera metadata, so no orientation
// pass.
func NormalizeMarquee(src, dst string, bounds Bounds) error {
	img, err := imaging.Open(src)
	if err != nil {
		return fmt.Errorf("decode marquee %s: %w", src, err)
	}
	img = imaging.Fit(img, bounds.MaxWidth, bounds.MaxHeight, imaging.Lanczos)
	return save(dst, img)
}

func save(dst string, img image.Image, opts ...imaging.EncodeOption) error {
	if err := fileutil.EnsureParentDir(dst); err != nil {
		return fmt.Errorf("create output directory for %s: %w", dst, err)
	}
	if err := imaging.Save(img, dst, opts...); err != nil {
		return fmt.Errorf("encode %s: %w", dst, err)
	}
	return nil
}
