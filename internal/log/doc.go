// Package log provides structured logging for macroscan, built on top of
// the standard slog package.
//
// This package extends slog to provide:
//   - Configurable log levels with verbose mode support
//   - Text and JSON output with the same options
//   - PathHandler, which shortens document paths relative to the scan root
//
// # Usage
//
//	// Create a logger on stderr
//	logger := log.NewLogger(os.Stderr, true) // verbose=true
//
//	// Shorten paths under the scan root
//	logger = log.WithRoot(logger, "/srv/content")
//	logger.Debug("document read", "path", "/srv/content/web/css/index.md")
//	// path=web/css/index.md
//
//	// Set as default logger
//	slog.SetDefault(logger)
package log
