package quote

import "context"

type Repository interface {
	Create(ctx context.Context, q *Quote) error
	GetByQuoteID(ctx context.Context, quoteID string) (*Quote, error)
	// GetByQuoteIDForUpdate locks the row for the span of the surrounding tx.
	GetByQuoteIDForUpdate(ctx context.Context, quoteID string) (*Quote, error)
	// FindActiveByUserAndRegistration returns the live quote for the pair,
	// or gorm.ErrRecordNotFound when every prior quote is terminal.
	FindActiveByUserAndRegistration(ctx context.Context, userID, registration string) (*Quote, error)
	// FindActiveByUserAndRegistrationForUpdate is the locking variant. A
	// plain SELECT reads a tx snapshot; the duplicate re-check inside the
	// submit tx needs a current read or it misses a quote committed while
	// this tx waited on the quota lock.
	FindActiveByUserAndRegistrationForUpdate(ctx context.Context, userID, registration string) (*Quote, error)
	// FindLatestByUserAndRegistration returns the newest quote for the pair
	// regardless of status, so callers can report "already collected".
	FindLatestByUserAndRegistration(ctx context.Context, userID, registration string) (*Quote, error)
	ListByStatus(ctx context.Context, statuses ...Status) ([]Quote, error)
	Save(ctx context.Context, q *Quote) error
	// Delete is a hard delete.
	Delete(ctx context.Context, q *Quote) error
}
