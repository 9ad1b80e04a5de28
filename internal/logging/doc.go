// Package logging provides a simple leveled logging interface for the
// playlist converter.
//
// It supports the following log levels:
//   - DEBUG: Verbose debugging information
//   - INFO: General operational messages
//   - WARN: Warning conditions
//   - ERROR: Error conditions
//
// The log level is configured via the LOG_LEVEL environment variable, or
// forced to debug with DEBUG=true.
//
// Log lines go to standard error so that standard output stays reserved for
// the converter's own result and usage text. When standard error is a
// terminal the classic "[LEVEL] message" format is used; otherwise each line
// is a JSON object produced by log/slog. LOG_FORMAT=text or LOG_FORMAT=json
// overrides the detection.
package logging
