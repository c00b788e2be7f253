package config

import (
	"errors"
	"fmt"
	"path"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateScan(); err != nil {
		return err
	}
	if err := c.validateArtwork(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateScan() error {
	if len(c.Scan.ROMExtensions) == 0 {
		return errors.New("scan.rom_extensions must include at least one extension")
	}
	if !strings.HasSuffix(strings.ToLower(c.Scan.OutputName), ".xml") {
		return fmt.Errorf("scan.output_name must end in .xml, got %q", c.Scan.OutputName)
	}
	return nil
}

func (c *Config) validateArtwork() error {
	if err := ensurePositiveMap(map[string]int{
		"artwork.cover_max_width":    c.Artwork.CoverMaxWidth,
		"artwork.cover_max_height":   c.Artwork.CoverMaxHeight,
		"artwork.fanart_width":       c.Artwork.FanartWidth,
		"artwork.fanart_height":      c.Artwork.FanartHeight,
		"artwork.marquee_max_width":  c.Artwork.MarqueeMaxWidth,
		"artwork.marquee_max_height": c.Artwork.MarqueeMaxHeight,
	}); err != nil {
		return err
	}
	if c.Artwork.JPEGQuality < 1 || c.Artwork.JPEGQuality > 100 {
		return errors.New("artwork.jpeg_quality must be between 1 and 100")
	}
	for key, dir := range map[string]string{
		"artwork.covers_dir":   c.Artwork.CoversDir,
		"artwork.fanart_dir":   c.Artwork.FanartDir,
		"artwork.marquees_dir": c.Artwork.MarqueesDir,
	} {
		if dir == "" || dir == "." {
			return fmt.Errorf("%s must be set", key)
		}
		if path.IsAbs(dir) || strings.HasPrefix(dir, "..") {
			return fmt.Errorf("%s must stay inside the game folder, got %q", key, dir)
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	return nil
}

func ensurePositiveMap(values map[string]int) error {
	for key, value := range values {
		if value <= 0 {
			return fmt.Errorf("%s must be positive", key)
		}
	}
	return nil
}
