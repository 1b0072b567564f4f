// Package logging provides structured logging for travelist.
//
// This package wraps a zap logger with package-level helpers so that every
// component (state holder, stream server, terminal UI) logs through the same
// sink with the same field names.
//
// # Log Levels
//
//   - Debug: every dispatched action and state emission
//   - Info: startup, connections, configuration
//   - Warn: faults that were absorbed (unknown country, action before ready)
//   - Error: failures that stop a component
//
// # Structured Logging
//
//	logging.Info("Stream server listening",
//	    zap.String("addr", ":8765"),
//	)
//
// Domain helpers keep the field names stable:
//
//	logging.LogAction(sessionID, action)
//	logging.LogTransition(sessionID, from, to)
//	logging.LogFault(sessionID, action, err)
//
// # Configuration
//
// Logging is silent unless a level is given or TRAVELIST_LOG_LEVEL is set:
//
//	if err := logging.Initialize("debug"); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// The terminal UI owns stdout, so browse sessions log to a file:
//
//	logging.InitializeWithOutput("debug", "/tmp/travelist.log")
//
// # Thread Safety
//
// All logging functions are safe for concurrent use.
package logging
