// Package config loads, normalizes, and validates tamscraper configuration.
//
// It supplies repository defaults that reproduce the classic TamScraper
// behavior, expands user paths (including tilde shortcuts), and reads TOML
// files. Image target resolutions and encoding quality live here so the
// artwork transforms receive explicit parameters.
package config
