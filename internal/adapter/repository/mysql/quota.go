package mysql

import (
	"context"

	quotaDomain "scrapcar-backend/internal/domain/quota"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type QuotaRepository struct{ db *gorm.DB }

func NewQuotaRepository(db *gorm.DB) *QuotaRepository { return &QuotaRepository{db: db} }

func (r *QuotaRepository) Create(ctx context.Context, q *quotaDomain.UserQuota) error {
	return r.db.WithContext(ctx).Create(q).Error
}

func (r *QuotaRepository) Save(ctx context.Context, q *quotaDomain.UserQuota) error {
	return r.db.WithContext(ctx).Save(q).Error
}

func (r *QuotaRepository) GetByUserID(ctx context.Context, userID string) (*quotaDomain.UserQuota, error) {
	var out quotaDomain.UserQuota
	res := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&out)
	return &out, res.Error
}

func (r *QuotaRepository) GetByUserIDForUpdate(ctx context.Context, userID string) (*quotaDomain.UserQuota, error) {
	var out quotaDomain.UserQuota
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ?", userID).
		First(&out)
	return &out, res.Error
}
