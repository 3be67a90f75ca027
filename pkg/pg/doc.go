// Package pg provides PostgreSQL connection helpers: pgx pool construction
// with retry, a readiness healthcheck, and goose-based schema migrations.
package pg
