package collectionmock

import (
	"context"

	domain "scrapcar-backend/internal/domain/collection"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn          func(ctx context.Context, c *domain.Collection) error
	GetByQuoteIDFn    func(ctx context.Context, quoteID uint64) (*domain.Collection, error)
	SaveFn            func(ctx context.Context, c *domain.Collection) error
	DeleteByQuoteIDFn func(ctx context.Context, quoteID uint64) error
}

func (m *Repo) Create(ctx context.Context, c *domain.Collection) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, c)
	}
	return nil
}

func (m *Repo) GetByQuoteID(ctx context.Context, quoteID uint64) (*domain.Collection, error) {
	if m.GetByQuoteIDFn != nil {
		return m.GetByQuoteIDFn(ctx, quoteID)
	}
	return nil, context.Canceled
}

func (m *Repo) Save(ctx context.Context, c *domain.Collection) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, c)
	}
	return nil
}

func (m *Repo) DeleteByQuoteID(ctx context.Context, quoteID uint64) error {
	if m.DeleteByQuoteIDFn != nil {
		return m.DeleteByQuoteIDFn(ctx, quoteID)
	}
	return nil
}
