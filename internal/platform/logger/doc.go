// Package logger provides structured logging functionality for the application.
//
// It utilizes Go's standard library log/slog package to implement structured
// logging with configurable log levels: JSON output in production, friendlier
// text output in development.
package logger
