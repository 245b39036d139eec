package review

import (
	"context"
	"errors"
	"fmt"
	"time"

	quoteDomain "scrapcar-backend/internal/domain/quote"
	"scrapcar-backend/internal/domain/uow"
	quoteUC "scrapcar-backend/internal/usecase/quote"

	"gorm.io/gorm"
)

// Usecase is the manual review queue: quotes waiting on an admin price.
type Usecase struct {
	repo quoteDomain.Repository
	uow  uow.UnitOfWork
}

func NewUsecase(repo quoteDomain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{repo: repo, uow: tx}
}

type ReviewInput struct {
	OfferPrice float64 `json:"offer_price"`
	Message    string  `json:"message,omitempty"`
}

// Review sets the admin offer on a pending manual quote. It is a one-time
// operation: a quote that already carries an offer cannot be re-reviewed.
func (u *Usecase) Review(ctx context.Context, quoteID string, in ReviewInput) (*quoteUC.QuoteDTO, error) {
	if in.OfferPrice <= 0 {
		return nil, fmt.Errorf("%w: offer price must be positive", quoteDomain.ErrValidation)
	}

	var dto *quoteUC.QuoteDTO
	err := u.uow.WithinQuoteTx(ctx, quoteID, func(r uow.Repos, q *quoteDomain.Quote) error {
		if q.OfferPrice != nil {
			return quoteDomain.ErrAlreadyReviewed
		}
		if q.Status != quoteDomain.StatusManualPendingReview {
			return quoteDomain.ErrInvalidTransition
		}

		now := time.Now().UTC()
		price := in.OfferPrice
		q.OfferPrice = &price
		q.OfferMessage = in.Message
		q.ReviewedAt = &now
		q.SetStatus(quoteDomain.StatusManualReviewed, now)
		if err := r.Quotes.Save(ctx, q); err != nil {
			return err
		}
		dto = quoteUC.ToDTO(q, nil)
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, quoteDomain.ErrNotFound
		}
		return nil, err
	}
	return dto, nil
}

// PendingManual lists the queue awaiting an admin price.
func (u *Usecase) PendingManual(ctx context.Context) ([]quoteUC.QuoteDTO, error) {
	quotes, err := u.repo.ListByStatus(ctx, quoteDomain.StatusManualPendingReview)
	if err != nil {
		return nil, err
	}
	out := make([]quoteUC.QuoteDTO, 0, len(quotes))
	for i := range quotes {
		out = append(out, *quoteUC.ToDTO(&quotes[i], nil))
	}
	return out, nil
}
