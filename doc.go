// Package logger provides a process-wide structured logger with console and
// timestamped file output, retention-based cleanup of old log files, and
// runtime-adjustable verbosity.
//
// Features:
//   - Single shared registry of named logger handles
//   - Console and file sinks, independently toggled
//   - Deterministic {module}_{YYYYMMDD_HHMM}.log file naming
//   - Age-based retention sweep of the log directory
//   - Runtime log level changes affecting all existing handles
//   - Ordered extra fields per configuration and per call
//   - Optional size-based file rotation
//   - Config loading from files and environment
//   - slog.Handler bridge
//   - Thread-safe operations
package logger
