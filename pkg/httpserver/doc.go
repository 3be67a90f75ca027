// Package httpserver wraps net/http with graceful shutdown, configurable
// timeouts, and health-check handlers. Construction goes through New or
// NewFromConfig with functional options; Run blocks until the context is
// cancelled, an interrupt/TERM signal arrives, or the listener fails.
package httpserver
