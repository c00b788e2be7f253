// Package logging builds the slog loggers used across tamscraper.
//
// The console format renders one line per record: RFC3339 timestamp, level,
// optional component prefix, message, then flattened key=value attributes.
// A JSON format is available for machine consumption. Helpers supply
// standardized attribute keys and component-scoped loggers so folder and game
// identifiers appear consistently in every record.
package logging
