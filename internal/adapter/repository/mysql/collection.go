package mysql

import (
	"context"

	collectionDomain "scrapcar-backend/internal/domain/collection"

	"gorm.io/gorm"
)

type CollectionRepository struct{ db *gorm.DB }

func NewCollectionRepository(db *gorm.DB) *CollectionRepository {
	return &CollectionRepository{db: db}
}

func (r *CollectionRepository) Create(ctx context.Context, c *collectionDomain.Collection) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CollectionRepository) Save(ctx context.Context, c *collectionDomain.Collection) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *CollectionRepository) GetByQuoteID(ctx context.Context, quoteNumericID uint64) (*collectionDomain.Collection, error) {
	var out collectionDomain.Collection
	res := r.db.WithContext(ctx).
		Where("quote_id = ?", quoteNumericID).
		First(&out)
	return &out, res.Error
}

func (r *CollectionRepository) DeleteByQuoteID(ctx context.Context, quoteNumericID uint64) error {
	return r.db.WithContext(ctx).
		Where("quote_id = ?", quoteNumericID).
		Delete(&collectionDomain.Collection{}).Error
}
