package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Scan controls folder discovery and game enumeration.
type Scan struct {
	ROMExtensions []string `toml:"rom_extensions"`
	ExcludedDirs  []string `toml:"excluded_dirs"`
	OutputName    string   `toml:"output_name"`
	Pause         bool     `toml:"pause"`
}

// Artwork controls artwork lookup folders, output folders, and the image
// normalization parameters. Dimensions and quality are explicit here so each
// transform receives named parameters instead of ambient constants.
type Artwork struct {
	FrontDir      string `toml:"front_dir"`
	ScreenshotDir string `toml:"screenshot_dir"`
	LogoDir       string `toml:"logo_dir"`

	CoversDir   string `toml:"covers_dir"`
	FanartDir   string `toml:"fanart_dir"`
	MarqueesDir string `toml:"marquees_dir"`

	CoverMaxWidth    int `toml:"cover_max_width"`
	CoverMaxHeight   int `toml:"cover_max_height"`
	FanartWidth      int `toml:"fanart_width"`
	FanartHeight     int `toml:"fanart_height"`
	MarqueeMaxWidth  int `toml:"marquee_max_width"`
	MarqueeMaxHeight int `toml:"marquee_max_height"`
	JPEGQuality      int `toml:"jpeg_quality"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for tamscraper.
type Config struct {
	Scan    Scan    `toml:"scan"`
	Artwork Artwork `toml:"artwork"`
	Logging Logging `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/tamscraper/config.toml")
}

// Load locates, parses, and validates a configuration file. The search order
// is: the explicit path, a tamscraper.toml inside the scan root, then the
// user default location. A missing file yields repository defaults.
func Load(path, root string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path, root)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path, root string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	if strings.TrimSpace(root) != "" {
		rootPath := filepath.Join(root, "tamscraper.toml")
		if info, err := os.Stat(rootPath); err == nil && !info.IsDir() {
			return rootPath, true, nil
		}
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}
	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	return defaultPath, false, nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
