// Package main hosts the tamscraper CLI entrypoint and command graph.
//
// The root command performs a full conversion run over a scan root; the
// config subcommands scaffold and inspect the TOML configuration. The CLI
// stays thin: discovery, metadata parsing, artwork normalization, and
// gamelist writing all live in the internal packages.
package main
