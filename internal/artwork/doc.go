// Package artwork locates scraped source images for a game and normalizes
// them into the fixed output resolutions the gamelist frontend expects.
//
// Locating is a filename heuristic: LaunchBox names artwork after the game
// title (optionally suffixed with a region/index marker like "-01") or after
// the ROM file, anywhere inside a category subfolder. Normalizing applies a
// category-specific transform: bounded thumbnails for covers and marquees,
// fill-and-crop for fanart.
package artwork
