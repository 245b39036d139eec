package mysql

import (
	"context"

	quoteDomain "scrapcar-backend/internal/domain/quote"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type QuoteRepository struct{ db *gorm.DB }

func NewQuoteRepository(db *gorm.DB) *QuoteRepository { return &QuoteRepository{db: db} }

func (r *QuoteRepository) Create(ctx context.Context, q *quoteDomain.Quote) error {
	return r.db.WithContext(ctx).Create(q).Error
}

func (r *QuoteRepository) Save(ctx context.Context, q *quoteDomain.Quote) error {
	return r.db.WithContext(ctx).Save(q).Error
}

func (r *QuoteRepository) Delete(ctx context.Context, q *quoteDomain.Quote) error {
	return r.db.WithContext(ctx).Delete(q).Error
}

func (r *QuoteRepository) GetByQuoteID(ctx context.Context, quoteID string) (*quoteDomain.Quote, error) {
	var out quoteDomain.Quote
	res := r.db.WithContext(ctx).Where("quote_id = ?", quoteID).First(&out)
	return &out, res.Error
}

func (r *QuoteRepository) GetByQuoteIDForUpdate(ctx context.Context, quoteID string) (*quoteDomain.Quote, error) {
	var out quoteDomain.Quote
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("quote_id = ?", quoteID).
		First(&out)
	return &out, res.Error
}

func (r *QuoteRepository) FindActiveByUserAndRegistration(ctx context.Context, userID, registration string) (*quoteDomain.Quote, error) {
	var out quoteDomain.Quote
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND registration = ? AND status NOT IN ?",
			userID, registration,
			[]quoteDomain.Status{quoteDomain.StatusAcceptedCollected, quoteDomain.StatusRejected}).
		Order("status_updated_at DESC, id DESC").
		First(&out)
	return &out, res.Error
}

func (r *QuoteRepository) FindActiveByUserAndRegistrationForUpdate(ctx context.Context, userID, registration string) (*quoteDomain.Quote, error) {
	var out quoteDomain.Quote
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ? AND registration = ? AND status NOT IN ?",
			userID, registration,
			[]quoteDomain.Status{quoteDomain.StatusAcceptedCollected, quoteDomain.StatusRejected}).
		Order("status_updated_at DESC, id DESC").
		First(&out)
	return &out, res.Error
}

func (r *QuoteRepository) FindLatestByUserAndRegistration(ctx context.Context, userID, registration string) (*quoteDomain.Quote, error) {
	var out quoteDomain.Quote
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND registration = ?", userID, registration).
		Order("id DESC").
		First(&out)
	return &out, res.Error
}

func (r *QuoteRepository) ListByStatus(ctx context.Context, statuses ...quoteDomain.Status) ([]quoteDomain.Quote, error) {
	var out []quoteDomain.Quote
	res := r.db.WithContext(ctx).
		Where("status IN ?", statuses).
		Order("status_updated_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}
