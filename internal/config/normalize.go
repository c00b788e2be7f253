package config

import (
	"path"
	"strings"
)

func (c *Config) normalize() {
	c.normalizeScan()
	c.normalizeArtwork()
	c.normalizeLogging()
}

func (c *Config) normalizeScan() {
	exts := make([]string, 0, len(c.Scan.ROMExtensions))
	seen := make(map[string]struct{}, len(c.Scan.ROMExtensions))
	for _, ext := range c.Scan.ROMExtensions {
		normalized := strings.ToLower(strings.TrimSpace(ext))
		if normalized == "" {
			continue
		}
		if !strings.HasPrefix(normalized, ".") {
			normalized = "." + normalized
		}
		if _, exists := seen[normalized]; exists {
			continue
		}
		seen[normalized] = struct{}{}
		exts = append(exts, normalized)
	}
	c.Scan.ROMExtensions = exts

	dirs := make([]string, 0, len(c.Scan.ExcludedDirs))
	for _, dir := range c.Scan.ExcludedDirs {
		if trimmed := strings.TrimSpace(dir); trimmed != "" {
			dirs = append(dirs, trimmed)
		}
	}
	c.Scan.ExcludedDirs = dirs

	c.Scan.OutputName = strings.TrimSpace(c.Scan.OutputName)
	if c.Scan.OutputName == "" {
		c.Scan.OutputName = defaultOutputName
	}
}

func (c *Config) normalizeArtwork() {
	a := &c.Artwork
	a.FrontDir = defaultIfEmpty(a.FrontDir, defaultFrontDir)
	a.ScreenshotDir = defaultIfEmpty(a.ScreenshotDir, defaultScreenshotDir)
	a.LogoDir = defaultIfEmpty(a.LogoDir, defaultLogoDir)
	a.CoversDir = cleanRelDir(defaultIfEmpty(a.CoversDir, defaultCoversDir))
	a.FanartDir = cleanRelDir(defaultIfEmpty(a.FanartDir, defaultFanartDir))
	a.MarqueesDir = cleanRelDir(defaultIfEmpty(a.MarqueesDir, defaultMarqueesDir))
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

func defaultIfEmpty(value, fallback string) string {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		return trimmed
	}
	return fallback
}

// cleanRelDir keeps output directories folder-local, slash-separated paths.
func cleanRelDir(value string) string {
	cleaned := path.Clean(strings.ReplaceAll(value, "\\", "/"))
	return strings.TrimPrefix(cleaned, "./")
}
