package quotamock

import (
	"context"

	domain "scrapcar-backend/internal/domain/quota"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn               func(ctx context.Context, q *domain.UserQuota) error
	GetByUserIDFn          func(ctx context.Context, userID string) (*domain.UserQuota, error)
	GetByUserIDForUpdateFn func(ctx context.Context, userID string) (*domain.UserQuota, error)
	SaveFn                 func(ctx context.Context, q *domain.UserQuota) error
}

func (m *Repo) Create(ctx context.Context, q *domain.UserQuota) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, q)
	}
	return nil
}

func (m *Repo) GetByUserID(ctx context.Context, userID string) (*domain.UserQuota, error) {
	if m.GetByUserIDFn != nil {
		return m.GetByUserIDFn(ctx, userID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByUserIDForUpdate(ctx context.Context, userID string) (*domain.UserQuota, error) {
	if m.GetByUserIDForUpdateFn != nil {
		return m.GetByUserIDForUpdateFn(ctx, userID)
	}
	return nil, context.Canceled
}

func (m *Repo) Save(ctx context.Context, q *domain.UserQuota) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, q)
	}
	return nil
}
