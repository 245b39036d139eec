package collection

import "context"

type Repository interface {
	// Create a new collection record (DB uniqueness ensures at most one per quote)
	Create(ctx context.Context, c *Collection) error

	// Get collection by numeric quote ID
	GetByQuoteID(ctx context.Context, quoteID uint64) (*Collection, error)

	Save(ctx context.Context, c *Collection) error

	// DeleteByQuoteID removes the row when its quote is hard-deleted.
	DeleteByQuoteID(ctx context.Context, quoteID uint64) error
}
