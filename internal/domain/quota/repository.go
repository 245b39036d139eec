package quota

import "context"

type Repository interface {
	Create(ctx context.Context, q *UserQuota) error
	GetByUserID(ctx context.Context, userID string) (*UserQuota, error)
	// GetByUserIDForUpdate locks the row so concurrent lookups by the same
	// user serialize on the last remaining credit.
	GetByUserIDForUpdate(ctx context.Context, userID string) (*UserQuota, error)
	Save(ctx context.Context, q *UserQuota) error
}
