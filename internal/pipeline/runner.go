package pipeline

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"tamscraper/internal/artwork"
	"tamscraper/internal/config"
	"tamscraper/internal/fileutil"
	"tamscraper/internal/gamelist"
	"tamscraper/internal/launchbox"
	"tamscraper/internal/logging"
	"tamscraper/internal/scanner"
	"tamscraper/internal/textutil"
)

// Runner executes conversion runs with a fixed configuration.
type Runner struct {
	cfg    *config.Config
	logger *slog.Logger
}

// New constructs a Runner. A nil logger discards output.
func New(cfg *config.Config, logger *slog.Logger) *Runner {
	return &Runner{
		cfg:    cfg,
		logger: logging.NewComponentLogger(logger, "pipeline"),
	}
}

// Run processes every qualifying folder under root and returns the
// accumulated stats. Folder- and game-level failures are logged and counted,
// never propagated; only an unreadable scan root is an error.
func (r *Runner) Run(root string) (*Stats, error) {
	stats := &Stats{}

	folders, err := scanner.Discover(root, r.cfg.Scan.ExcludedDirs, r.cfg.Scan.OutputName)
	if err != nil {
		return nil, err
	}
	if len(folders) == 0 {
		r.logger.Info("no folders with metadata XML found", logging.String("root", root))
		return stats, nil
	}

	for _, folder := range folders {
		r.processFolder(folder, stats)
	}
	return stats, nil
}

func (r *Runner) processFolder(folder scanner.Folder, stats *Stats) {
	logger := r.logger.With(logging.String(logging.FieldFolder, filepath.Base(folder.Path)))
	logger.Info("processing folder", logging.String("metadata", filepath.Base(folder.MetadataXML)))

	records, err := launchbox.Load(folder.MetadataXML)
	if err != nil {
		logger.Error("skipping folder: metadata XML unusable", logging.Error(err))
		stats.FoldersSkipped++
		return
	}

	roms, err := r.listROMs(folder.Path)
	if err != nil {
		logger.Error("skipping folder: cannot list files", logging.Error(err))
		stats.FoldersSkipped++
		return
	}

	doc := &gamelist.Document{}
	for _, rom := range roms {
		entry := r.processGame(folder.Path, rom, records, stats, logger)
		doc.Games = append(doc.Games, entry)
	}

	outputPath := filepath.Join(folder.Path, r.cfg.Scan.OutputName)
	if err := gamelist.Write(outputPath, doc); err != nil {
		logger.Error("skipping folder: gamelist not written", logging.Error(err))
		stats.FoldersSkipped++
		return
	}

	stats.Folders++
	stats.Games += len(doc.Games)
	logger.Info("generated gamelist",
		logging.String("output", r.cfg.Scan.OutputName),
		logging.Int("games", len(doc.Games)),
	)
}

// listROMs returns the folder's ROM filenames, filtered by the extension
// allow-list and sorted by name (os.ReadDir order).
func (r *Runner) listROMs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	allowed := make(map[string]struct{}, len(r.cfg.Scan.ROMExtensions))
	for _, ext := range r.cfg.Scan.ROMExtensions {
		allowed[ext] = struct{}{}
	}

	var roms []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if _, ok := allowed[ext]; ok {
			roms = append(roms, entry.Name())
		}
	}
	return roms, nil
}

func (r *Runner) processGame(dir, rom string, records map[string]launchbox.Game, stats *Stats, logger *slog.Logger) gamelist.Entry {
	romBase := fileutil.Stem(rom)
	entry := gamelist.Entry{
		Path: "./" + rom,
		Name: romBase,
	}

	record, ok := records[rom]
	if !ok {
		// Minimal entry: nothing but path and a name derived from the file.
		logger.Debug("no metadata record", logging.String(logging.FieldGame, romBase))
		return entry
	}

	if title := strings.TrimSpace(record.Title); title != "" {
		entry.Name = title
	}
	entry.Description = record.Notes
	entry.Developer = record.Developer
	entry.Publisher = record.Publisher
	entry.Genre = record.Genre
	entry.MaxPlayers = record.MaxPlayers
	if formatted, ok := launchbox.FormatReleaseDate(record.ReleaseDate); ok {
		entry.ReleaseDate = formatted
	}

	logger.Debug("processing game", logging.String(logging.FieldGame, romBase))
	r.attachArtwork(dir, romBase, &entry, stats, logger)
	return entry
}

// attachArtwork locates and normalizes each artwork category, filling the
// entry's image fields only for assets that were found and converted.
func (r *Runner) attachArtwork(dir, romBase string, entry *gamelist.Entry, stats *Stats, logger *slog.Logger) {
	art := r.cfg.Artwork
	title := textutil.SanitizeTitle(entry.Name)

	if src := artwork.Locate(dir, art.FrontDir, title, romBase); src != "" {
		rel := relImagePath(art.CoversDir, romBase, ".jpg")
		dst := absImagePath(dir, art.CoversDir, romBase, ".jpg")
		bounds := artwork.Bounds{MaxWidth: art.CoverMaxWidth, MaxHeight: art.CoverMaxHeight}
		if err := artwork.NormalizeCover(src, dst, bounds, art.JPEGQuality); err != nil {
			logger.Warn("cover conversion failed",
				logging.String(logging.FieldGame, romBase),
				logging.String("source", src),
				logging.Error(err),
			)
			stats.ArtworkErrors++
		} else {
			entry.Image = rel
			stats.Covers++
		}
	}

	if src := artwork.Locate(dir, art.ScreenshotDir, title, romBase); src != "" {
		rel := relImagePath(art.FanartDir, romBase, ".jpg")
		dst := absImagePath(dir, art.FanartDir, romBase, ".jpg")
		crop := artwork.Crop{Width: art.FanartWidth, Height: art.FanartHeight}
		if err := artwork.NormalizeFanart(src, dst, crop, art.JPEGQuality); err != nil {
			logger.Warn("fanart conversion failed",
				logging.String(logging.FieldGame, romBase),
				logging.String("source", src),
				logging.Error(err),
			)
			stats.ArtworkErrors++
		} else {
			entry.Fanart = rel
			stats.Fanart++
		}
	}

	if src := artwork.Locate(dir, art.LogoDir, title, romBase); src != "" {
		rel := relImagePath(art.MarqueesDir, romBase, ".png")
		dst := absImagePath(dir, art.MarqueesDir, romBase, ".png")
		bounds := artwork.Bounds{MaxWidth: art.MarqueeMaxWidth, MaxHeight: art.MarqueeMaxHeight}
		if err := artwork.NormalizeMarquee(src, dst, bounds); err != nil {
			logger.Warn("marquee conversion failed",
				logging.String(logging.FieldGame, romBase),
				logging.String("source", src),
				logging.Error(err),
			)
			stats.ArtworkErrors++
		} else {
			entry.Marquee = rel
			stats.Marquees++
		}
	}
}

// relImagePath builds the folder-local ./-prefixed path written into the
// gamelist; always slash-separated.
func relImagePath(outDir, romBase, ext string) string {
	return "./" + outDir + "/" + romBase + ext
}

func absImagePath(dir, outDir, romBase, ext string) string {
	return filepath.Join(dir, filepath.FromSlash(outDir), romBase+ext)
}
