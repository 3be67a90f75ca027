// Package redis wraps go-redis with retrying connection setup and a
// readiness healthcheck. The service uses Redis only for the optional
// notification bucket log.
package redis
