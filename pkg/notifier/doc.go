// Package notifier implements the trial lifecycle batch.
//
// One invocation scans every trialing subscription, classifies it by the
// calendar-day ceiling of time left until its trial ends, and performs at
// most one action per subscription: a reminder email at the 7, 3, and 1 day
// thresholds, or on expiry the trial-expired email followed by the
// trialing → expired status transition. The transition happens even when the
// email fails; billing-status correctness never waits on email delivery.
//
// Per-subscription failures are collected into Results.Errors and the batch
// continues. Only authorization (handled by the HTTP layer) and the initial
// listing query can fail an invocation outright.
//
// The notifier keeps no state between invocations. Warning sends are
// therefore at-least-once by default; an optional BucketLog (see
// NewRedisBucketLog) deduplicates warnings per subscription, bucket, and
// trial window for deployments whose scheduler may fire more than once a day.
package notifier
