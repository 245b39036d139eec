package quotemock

import (
	"context"

	domain "scrapcar-backend/internal/domain/quote"
)

// Repo is a function-backed mock that satisfies domain.Repository.
// Fill in only the methods a test needs; the rest return zero values.
type Repo struct {
	CreateFn                                   func(ctx context.Context, q *domain.Quote) error
	GetByQuoteIDFn                             func(ctx context.Context, quoteID string) (*domain.Quote, error)
	GetByQuoteIDForUpdateFn                    func(ctx context.Context, quoteID string) (*domain.Quote, error)
	FindActiveByUserAndRegistrationFn          func(ctx context.Context, userID, registration string) (*domain.Quote, error)
	FindActiveByUserAndRegistrationForUpdateFn func(ctx context.Context, userID, registration string) (*domain.Quote, error)
	FindLatestByUserAndRegistrationFn          func(ctx context.Context, userID, registration string) (*domain.Quote, error)
	ListByStatusFn                             func(ctx context.Context, statuses ...domain.Status) ([]domain.Quote, error)
	SaveFn                                     func(ctx context.Context, q *domain.Quote) error
	DeleteFn                                   func(ctx context.Context, q *domain.Quote) error
}

func (m *Repo) Create(ctx context.Context, q *domain.Quote) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, q)
	}
	return nil
}

func (m *Repo) GetByQuoteID(ctx context.Context, quoteID string) (*domain.Quote, error) {
	if m.GetByQuoteIDFn != nil {
		return m.GetByQuoteIDFn(ctx, quoteID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByQuoteIDForUpdate(ctx context.Context, quoteID string) (*domain.Quote, error) {
	if m.GetByQuoteIDForUpdateFn != nil {
		return m.GetByQuoteIDForUpdateFn(ctx, quoteID)
	}
	return nil, context.Canceled
}

func (m *Repo) FindActiveByUserAndRegistration(ctx context.Context, userID, registration string) (*domain.Quote, error) {
	if m.FindActiveByUserAndRegistrationFn != nil {
		return m.FindActiveByUserAndRegistrationFn(ctx, userID, registration)
	}
	return nil, context.Canceled
}

func (m *Repo) FindActiveByUserAndRegistrationForUpdate(ctx context.Context, userID, registration string) (*domain.Quote, error) {
	if m.FindActiveByUserAndRegistrationForUpdateFn != nil {
		return m.FindActiveByUserAndRegistrationForUpdateFn(ctx, userID, registration)
	}
	return nil, context.Canceled
}

func (m *Repo) FindLatestByUserAndRegistration(ctx context.Context, userID, registration string) (*domain.Quote, error) {
	if m.FindLatestByUserAndRegistrationFn != nil {
		return m.FindLatestByUserAndRegistrationFn(ctx, userID, registration)
	}
	return nil, context.Canceled
}

func (m *Repo) ListByStatus(ctx context.Context, statuses ...domain.Status) ([]domain.Quote, error) {
	if m.ListByStatusFn != nil {
		return m.ListByStatusFn(ctx, statuses...)
	}
	return nil, context.Canceled
}

func (m *Repo) Save(ctx context.Context, q *domain.Quote) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, q)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, q *domain.Quote) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, q)
	}
	return nil
}
