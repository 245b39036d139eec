package mysql

import (
	"context"

	"scrapcar-backend/internal/domain/quote"
	"scrapcar-backend/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func repos(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Quotes:      &QuoteRepository{db: tx},
		Collections: &CollectionRepository{db: tx},
		Quotas:      &QuotaRepository{db: tx},
	}
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(repos(tx))
	})
}

func (u *GormUoW) WithinQuoteTx(ctx context.Context, quoteID string, fn func(r uow.Repos, q *quote.Quote) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := repos(tx)
		// lock the quote row up-front so guard checks and the state write
		// observe the same version
		q, err := r.Quotes.GetByQuoteIDForUpdate(ctx, quoteID)
		if err != nil {
			return err
		}
		return fn(r, q)
	})
}
