// Package handler exposes the service's HTTP surface: the bearer-protected
// trial lifecycle trigger intended for an external scheduler, and a health
// probe. Authorization is checked before the subscription store is touched.
package handler
