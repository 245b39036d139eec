package uow

import (
	"context"

	"scrapcar-backend/internal/domain/collection"
	"scrapcar-backend/internal/domain/quota"
	"scrapcar-backend/internal/domain/quote"
)

type Repos struct {
	Quotes      quote.Repository
	Collections collection.Repository
	Quotas      quota.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the quote row first, then pass it in
	WithinQuoteTx(ctx context.Context, quoteID string, fn func(r Repos, q *quote.Quote) error) error
}
