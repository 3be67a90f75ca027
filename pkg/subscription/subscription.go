package subscription

import (
	"time"

	"github.com/google/uuid"
)

// Status represents the current state of a subscription.
type Status string

const (
	StatusTrialing  Status = "trialing"
	StatusActive    Status = "active"
	StatusPastDue   Status = "past_due"
	StatusCancelled Status = "cancelled"
	StatusExpired   Status = "expired"
)

// Subscription represents an organization's subscription to a plan.
// Each organization has exactly one subscription at a time.
type Subscription struct {
	ID             uuid.UUID
	OrganizationID uuid.UUID
	PlanID         string
	Status         Status
	TrialEndsAt    *time.Time // set at trial creation, never modified afterwards
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Owner is the organization's owning user, the recipient of all trial
// lifecycle notifications.
type Owner struct {
	Name  string
	Email string
}

// OwnedSubscription pairs a subscription with its organization's owner as
// returned by the trialing listing query.
type OwnedSubscription struct {
	Subscription Subscription
	Owner        Owner
}

func (s *Subscription) IsTrialing() bool {
	return s.Status == StatusTrialing
}

func (s *Subscription) IsActive() bool {
	return s.Status == StatusActive
}

func (s *Subscription) IsExpired() bool {
	return s.Status == StatusExpired
}

// TrialDaysUntilExpiryAt returns the calendar-day ceiling of the time left
// until the trial ends: a trial ending 30 minutes from now yields 1, a trial
// that ended earlier today yields 0 or less. Returns 0 if TrialEndsAt is nil.
// Integer arithmetic avoids float rounding at exact day boundaries.
func (s *Subscription) TrialDaysUntilExpiryAt(now time.Time) int {
	if s.TrialEndsAt == nil {
		return 0
	}
	remaining := s.TrialEndsAt.Sub(now)
	if remaining <= 0 {
		return -int(-remaining / (24 * time.Hour))
	}
	return int((remaining + 24*time.Hour - 1) / (24 * time.Hour))
}

// TrialDaysRemaining returns days left in the trial for display purposes,
// clamped at zero once the trial has lapsed.
func (s *Subscription) TrialDaysRemaining() int {
	return s.TrialDaysRemainingAt(time.Now().UTC())
}

// TrialDaysRemainingAt is the testable variant of TrialDaysRemaining.
func (s *Subscription) TrialDaysRemainingAt(now time.Time) int {
	if !s.IsTrialing() {
		return 0
	}
	days := s.TrialDaysUntilExpiryAt(now)
	if days < 0 {
		return 0
	}
	return days
}
