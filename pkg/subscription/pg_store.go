package subscription

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PGStore implements Store on top of a pgx connection pool.
type PGStore struct {
	pool *pgxpool.Pool
}

// NewPGStore creates a Postgres-backed subscription store.
// Panics on a nil pool to fail fast during initialization.
func NewPGStore(pool *pgxpool.Pool) *PGStore {
	if pool == nil {
		panic("subscription: pgxpool is required")
	}
	return &PGStore{pool: pool}
}

const listTrialingQuery = `
SELECT s.id, s.organization_id, s.plan_id, s.status, s.trial_ends_at, s.created_at, s.updated_at,
       u.display_name, u.email
FROM subscriptions s
JOIN organizations o ON o.id = s.organization_id
JOIN users u ON u.id = o.owner_id
WHERE s.status = 'trialing'`

// ListTrialingWithOwner returns trialing subscriptions joined with their
// organization owner. Rows are filtered by status in the query itself, so
// non-trialing subscriptions are never read by the batch.
func (s *PGStore) ListTrialingWithOwner(ctx context.Context) ([]OwnedSubscription, error) {
	rows, err := s.pool.Query(ctx, listTrialingQuery)
	if err != nil {
		return nil, errors.Join(ErrFailedToList, err)
	}
	defer rows.Close()

	var result []OwnedSubscription
	for rows.Next() {
		var (
			sub         Subscription
			owner       Owner
			trialEndsAt *time.Time
		)
		if err := rows.Scan(
			&sub.ID, &sub.OrganizationID, &sub.PlanID, &sub.Status,
			&trialEndsAt, &sub.CreatedAt, &sub.UpdatedAt,
			&owner.Name, &owner.Email,
		); err != nil {
			return nil, errors.Join(ErrFailedToList, err)
		}
		sub.TrialEndsAt = trialEndsAt
		result = append(result, OwnedSubscription{Subscription: sub, Owner: owner})
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Join(ErrFailedToList, err)
	}

	return result, nil
}

// MarkExpired flips status to expired only while the subscription is still
// trialing. Zero affected rows means another writer already moved the
// subscription out of trialing, which is the desired outcome, not an error.
func (s *PGStore) MarkExpired(ctx context.Context, id uuid.UUID) error {
	_, err := s.pool.Exec(ctx,
		`UPDATE subscriptions SET status = 'expired', updated_at = now() WHERE id = $1 AND status = 'trialing'`,
		id,
	)
	if err != nil {
		return errors.Join(ErrFailedToMarkExpired, err)
	}
	return nil
}
