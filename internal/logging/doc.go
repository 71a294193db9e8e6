// Package logging provides structured logging for the display library.
//
// This package wraps zap logger with convenience functions for the logging
// patterns used across the navigation controller, the frame server, and the
// CLI. Logging is silent by default so interactive output stays clean; set
// LCDNAV_LOG_LEVEL (or pass --log-level) to enable it.
//
// # Log Levels
//
// The package supports standard log levels:
//   - Debug: Detailed debugging info (dispatched commands, rendered frames)
//   - Info: Normal operations (spectator connections, server lifecycle)
//   - Warn: Non-fatal issues (render failures, dropped spectators)
//   - Error: Fatal issues (startup failures)
//
// # Structured Logging
//
// All log functions use structured fields for queryability:
//
//	logging.Info("Frame server listening",
//	    zap.String("addr", ":8418"),
//	    zap.Bool("announce", true),
//	)
//
// # Domain Helpers
//
// The package provides domain-specific logging functions:
//
//	logging.LogCommand("down", true)
//	logging.LogFrame(seq, rows, columns)
//	logging.LogConnection(remoteAddr, "spectator_connected")
//
// # Output
//
// Logs go to stderr in console format so they never interleave with the
// rendered display on stdout.
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The underlying zap
// logger handles synchronization automatically.
package logging
