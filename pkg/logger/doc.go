// Package logger builds configured log/slog loggers and provides attribute
// helpers that keep log keys consistent across the service.
package logger
