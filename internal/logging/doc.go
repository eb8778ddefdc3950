// Package logging provides structured logging for laptop-advisor.
//
// This package wraps a global zap logger with convenience functions. Logging is
// silent by default so the interactive form and CLI output stay clean; set
// LAPTOP_ADVISOR_LOG_LEVEL (or pass --log-level) to "debug", "info", "warn" or
// "error" to enable it. Output goes to stderr.
//
// # Log Levels
//
//   - Debug: HTTP exchanges with the recommendation service
//   - Info: submissions issued, results applied, options loaded
//   - Warn: stale results discarded
//   - Error: failed option loads and failed submissions (the diagnostic channel)
//
// # Structured Logging
//
//	logging.Error("Recommendation request failed",
//	    zap.Uint64("seq", 3),
//	    zap.Error(err),
//	)
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. Initialize and SetLogger
// must be called before other goroutines start logging.
package logging
