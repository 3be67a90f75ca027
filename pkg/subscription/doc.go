// Package subscription models the subscription records the trial lifecycle
// batch reads and the one status transition it performs.
//
// The package owns the Status enum, calendar-day expiry arithmetic, and the
// Store interface with Postgres (PGStore) and in-memory (MemStore)
// implementations. All other subscription mutations belong to the billing
// system of record; TrialEndsAt in particular is never written here.
package subscription
