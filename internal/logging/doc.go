// Package logging configures the log/slog loggers used across patterns.
//
// Components accept a *slog.Logger through an option and fall back to
// Nop() when none is given:
//
//	logger := logging.New(logging.Config{
//	    Level:  logging.LevelDebug,
//	    Format: logging.FormatText,
//	})
//	logger.Debug("checkpoint taken", "identifier", "doc.txt", "history", 2)
//
// Two output formats are supported: text for terminals and json for
// machine consumption.
package logging
