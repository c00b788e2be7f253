// Package textutil provides string helpers for matching game titles against
// artwork filenames: LaunchBox-style sanitization and Unicode normalization.
package textutil
