package uowmock

import (
	"context"
	"errors"

	"scrapcar-backend/internal/domain/quote"
	"scrapcar-backend/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork.
// Fill in the function fields you need in a test; unfilled ones return errUnimplemented.
type UoW struct {
	WithinTxFn      func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinQuoteTxFn func(ctx context.Context, quoteID string, fn func(r uow.Repos, q *quote.Quote) error) error
}

func New() *UoW { return &UoW{} }

// Passthrough returns a UoW whose transactions simply run the callback
// against the given repos, which is what most usecase tests want.
func Passthrough(r uow.Repos) *UoW {
	return &UoW{
		WithinTxFn: func(ctx context.Context, fn func(r uow.Repos) error) error {
			return fn(r)
		},
		WithinQuoteTxFn: func(ctx context.Context, quoteID string, fn func(r uow.Repos, q *quote.Quote) error) error {
			q, err := r.Quotes.GetByQuoteIDForUpdate(ctx, quoteID)
			if err != nil {
				return err
			}
			return fn(r, q)
		},
	}
}

func (m *UoW) Reset() { *m = UoW{} }

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}

func (m *UoW) WithinQuoteTx(ctx context.Context, quoteID string, fn func(r uow.Repos, q *quote.Quote) error) error {
	if m.WithinQuoteTxFn != nil {
		return m.WithinQuoteTxFn(ctx, quoteID, fn)
	}
	return errUnimplemented
}
