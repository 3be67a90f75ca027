package subscription

import "errors"

var (
	ErrSubscriptionNotFound = errors.New("subscription not found")
	ErrFailedToList         = errors.New("failed to list trialing subscriptions")
	ErrFailedToMarkExpired  = errors.New("failed to mark subscription expired")
)
