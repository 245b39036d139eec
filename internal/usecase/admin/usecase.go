package admin

import (
	"context"
	"errors"
	"fmt"
	"time"

	collectionDomain "scrapcar-backend/internal/domain/collection"
	quotaDomain "scrapcar-backend/internal/domain/quota"
	quoteDomain "scrapcar-backend/internal/domain/quote"
	"scrapcar-backend/internal/domain/uow"
	quoteUC "scrapcar-backend/internal/usecase/quote"

	"gorm.io/gorm"
)

// Directory views backing the admin quote-list pages. All are projections of
// quote status over the single quotes table.
const (
	ViewPendingAuto   = "pending-auto"
	ViewPendingManual = "pending-manual"
	ViewAccepted      = "accepted"
	ViewCollected     = "collected"
	ViewRejected      = "rejected"
)

var viewStatuses = map[string][]quoteDomain.Status{
	ViewPendingAuto:   {quoteDomain.StatusNewGenerated},
	ViewPendingManual: {quoteDomain.StatusManualPendingReview, quoteDomain.StatusManualReviewed},
	ViewAccepted:      {quoteDomain.StatusAcceptedPendingCollection},
	ViewCollected:     {quoteDomain.StatusAcceptedCollected},
	ViewRejected:      {quoteDomain.StatusRejected, quoteDomain.StatusManualPreviouslyRejected},
}

type Usecase struct {
	repo        quoteDomain.Repository
	collections collectionDomain.Repository
	quotas      quotaDomain.Repository
	uow         uow.UnitOfWork
}

func NewUsecase(repo quoteDomain.Repository, collections collectionDomain.Repository, quotas quotaDomain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{repo: repo, collections: collections, quotas: quotas, uow: tx}
}

// MarkCollected records the physical pickup. Deliberately not idempotent:
// the second call fails instead of silently succeeding, because collected_at
// timestamps a real-world event.
func (u *Usecase) MarkCollected(ctx context.Context, quoteID string) (*quoteUC.QuoteDTO, error) {
	var dto *quoteUC.QuoteDTO
	err := u.uow.WithinQuoteTx(ctx, quoteID, func(r uow.Repos, q *quoteDomain.Quote) error {
		if q.Status == quoteDomain.StatusAcceptedCollected {
			return quoteDomain.ErrAlreadyCollected
		}
		if q.Status != quoteDomain.StatusAcceptedPendingCollection {
			return quoteDomain.ErrInvalidTransition
		}

		c, err := r.Collections.GetByQuoteID(ctx, q.ID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return collectionDomain.ErrNotFound
			}
			return err
		}
		if c.Collected {
			return quoteDomain.ErrAlreadyCollected
		}

		now := time.Now().UTC()
		c.Collected = true
		c.CollectedAt = &now
		if err := r.Collections.Save(ctx, c); err != nil {
			return err
		}
		q.SetStatus(quoteDomain.StatusAcceptedCollected, now)
		if err := r.Quotes.Save(ctx, q); err != nil {
			return err
		}
		dto = quoteUC.ToDTO(q, c)
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

// Delete hard-removes a quote and its collection row. Permitted from any
// status; which lists expose it is the calling page's policy.
func (u *Usecase) Delete(ctx context.Context, quoteID string) error {
	err := u.uow.WithinQuoteTx(ctx, quoteID, func(r uow.Repos, q *quoteDomain.Quote) error {
		if err := r.Collections.DeleteByQuoteID(ctx, q.ID); err != nil {
			return err
		}
		return r.Quotes.Delete(ctx, q)
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return quoteDomain.ErrNotFound
	}
	return err
}

type RefillResult struct {
	UserID     string `json:"user_id"`
	ChecksLeft int    `json:"checks_left"`
}

// RefillQuota tops a user's checks back up. The original allowance is a hard
// ceiling: exceeding it is an error, never a clamp.
func (u *Usecase) RefillQuota(ctx context.Context, userID string, amount int) (*RefillResult, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: refill amount must be positive", quoteDomain.ErrValidation)
	}

	var out *RefillResult
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		uq, err := r.Quotas.GetByUserIDForUpdate(ctx, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return quotaDomain.ErrNotFound
			}
			return err
		}
		if err := uq.Refill(amount); err != nil {
			return fmt.Errorf("%w: %v", quoteDomain.ErrValidation, err)
		}
		if err := r.Quotas.Save(ctx, uq); err != nil {
			return err
		}
		out = &RefillResult{UserID: uq.UserID, ChecksLeft: uq.ChecksLeft}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// List returns one admin directory view.
func (u *Usecase) List(ctx context.Context, view string) ([]quoteUC.QuoteDTO, error) {
	statuses, ok := viewStatuses[view]
	if !ok {
		return nil, fmt.Errorf("%w: unknown view %q", quoteDomain.ErrValidation, view)
	}
	quotes, err := u.repo.ListByStatus(ctx, statuses...)
	if err != nil {
		return nil, err
	}

	withCollections := view == ViewAccepted || view == ViewCollected
	out := make([]quoteUC.QuoteDTO, 0, len(quotes))
	for i := range quotes {
		var c *collectionDomain.Collection
		if withCollections {
			if got, err := u.collections.GetByQuoteID(ctx, quotes[i].ID); err == nil {
				c = got
			}
		}
		out = append(out, *quoteUC.ToDTO(&quotes[i], c))
	}
	return out, nil
}
