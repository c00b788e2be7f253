// Package pipeline drives a full conversion run: discover game folders,
// pair ROM files with metadata, normalize artwork, and write one gamelist
// per folder. Processing is strictly sequential; a folder's failure never
// stops its siblings.
package pipeline
