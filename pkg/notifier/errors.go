package notifier

import "errors"

var (
	ErrListingFailed        = errors.New("notifier: failed to list trialing subscriptions")
	ErrBucketLogUnavailable = errors.New("notifier: bucket log unavailable")
)
