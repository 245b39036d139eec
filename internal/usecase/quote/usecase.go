package quote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	collectionDomain "scrapcar-backend/internal/domain/collection"
	quotaDomain "scrapcar-backend/internal/domain/quota"
	quoteDomain "scrapcar-backend/internal/domain/quote"
	"scrapcar-backend/internal/domain/uow"
	"scrapcar-backend/internal/domain/vehicle"
	"scrapcar-backend/pkg/id"
	"scrapcar-backend/pkg/pricing"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// minPickupLeadDays: collections must be booked at least this many whole
// days after acceptance.
const minPickupLeadDays = 2

// minRejectionReasonLen mirrors the form-side rule: a rejection must say why.
const minRejectionReasonLen = 10

type Usecase struct {
	repo        quoteDomain.Repository
	collections collectionDomain.Repository
	registry    vehicle.Registry
	uow         uow.UnitOfWork

	// rate per kg is an externally-owned setting, injected from config
	ratePerKg float64
	// original_checks given to users seen for the first time
	defaultChecks int
}

func NewUsecase(repo quoteDomain.Repository, collections collectionDomain.Repository, registry vehicle.Registry, tx uow.UnitOfWork, ratePerKg float64, defaultChecks int) *Usecase {
	return &Usecase{
		repo:          repo,
		collections:   collections,
		registry:      registry,
		uow:           tx,
		ratePerKg:     ratePerKg,
		defaultChecks: defaultChecks,
	}
}

// Submit runs the hero-form lookup: cache gate, registry fetch, then an
// atomic consume-quota-and-create step. The registry call happens before
// any lock is taken. Inside the tx the quota row lock comes first and the
// duplicate re-check is a locking read under it: when two submissions race
// on a never-seen registration, the loser parks on the winner's quota lock
// and must then see the winner's committed quote, not its own tx snapshot.
// The loser becomes a cache hit and its fetched registry data is discarded.
func (u *Usecase) Submit(ctx context.Context, in SubmitInput) (*SubmitResult, error) {
	if len(in.UserID) != 32 {
		return nil, fmt.Errorf("%w: invalid user id", quoteDomain.ErrValidation)
	}
	reg := quoteDomain.NormalizeRegistration(in.Registration)
	if reg == "" {
		return nil, fmt.Errorf("%w: registration is required", quoteDomain.ErrValidation)
	}

	// Fast path: an active quote for this pair short-circuits quota and
	// pricing entirely.
	if q, err := u.repo.FindActiveByUserAndRegistration(ctx, in.UserID, reg); err == nil {
		return &SubmitResult{Status: ResultCachedQuote, Quote: u.dto(ctx, q)}, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	// Blocking external lookup. Any failure here is a definitive "cannot
	// auto-price", not a transient error: the quote still gets created and
	// goes to manual review.
	attrs, lookupErr := u.registry.Lookup(ctx, reg)

	var result *SubmitResult
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		// Serialize per user on the quota row before anything else.
		uq, err := r.Quotas.GetByUserIDForUpdate(ctx, in.UserID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			uq = &quotaDomain.UserQuota{UserID: in.UserID, OriginalChecks: u.defaultChecks, ChecksLeft: u.defaultChecks}
			if err := r.Quotas.Create(ctx, uq); err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		// Re-check under the lock: a concurrent submit may have won the
		// race while we waited. Must be a current read, not a snapshot.
		if q, err := r.Quotes.FindActiveByUserAndRegistrationForUpdate(ctx, in.UserID, reg); err == nil {
			result = &SubmitResult{Status: ResultCachedQuote, Quote: u.dtoTx(ctx, r, q)}
			return nil
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if uq.ChecksLeft <= 0 {
			// Refused request: nothing is persisted, checks_left untouched.
			result = &SubmitResult{Status: ResultChecksExhausted}
			return nil
		}

		now := time.Now().UTC()
		q := &quoteDomain.Quote{
			QuoteID:         id.NewID32(),
			UserID:          in.UserID,
			Registration:    reg,
			CreatedAt:       now,
			StatusUpdatedAt: now,
		}
		if lookupErr == nil {
			q.Make, q.Model, q.Colour = attrs.Make, attrs.Model, attrs.Colour
			q.FuelType, q.Year, q.WeightKg = attrs.FuelType, attrs.Year, attrs.WeightKg
		}
		if price, ok := priceable(attrs, lookupErr, u.ratePerKg); ok {
			q.Origin = quoteDomain.OriginAuto
			q.Status = quoteDomain.StatusNewGenerated
			q.EstimatedPrice = &price
		} else {
			q.Origin = quoteDomain.OriginManual
			q.Status = quoteDomain.StatusManualPendingReview
		}

		if err := uq.Consume(); err != nil {
			return err
		}
		if err := r.Quotas.Save(ctx, uq); err != nil {
			return err
		}
		if err := r.Quotes.Create(ctx, q); err != nil {
			return err
		}
		result = &SubmitResult{Status: string(q.Status), Quote: toDTO(q, nil)}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func priceable(attrs *vehicle.Attributes, lookupErr error, ratePerKg float64) (float64, bool) {
	if lookupErr != nil || attrs == nil {
		return 0, false
	}
	return pricing.Price(attrs.WeightKg, ratePerKg)
}

// SubmitManual handles the manual-valuation form. The client supplies the
// vehicle details, so no registry lookup happens and no check is charged.
// When an active quote already exists the result reports where it sits in
// the manual flow instead of creating a duplicate.
func (u *Usecase) SubmitManual(ctx context.Context, in SubmitManualInput) (*SubmitResult, error) {
	if len(in.UserID) != 32 {
		return nil, fmt.Errorf("%w: invalid user id", quoteDomain.ErrValidation)
	}
	reg := quoteDomain.NormalizeRegistration(in.Registration)
	if reg == "" {
		return nil, fmt.Errorf("%w: registration is required", quoteDomain.ErrValidation)
	}
	if in.UserEstimatedPrice != nil && *in.UserEstimatedPrice <= 0 {
		return nil, fmt.Errorf("%w: user estimated price must be positive", quoteDomain.ErrValidation)
	}

	var result *SubmitResult
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		existing, err := r.Quotes.FindActiveByUserAndRegistration(ctx, in.UserID, reg)
		switch {
		case err == nil:
			return u.resolveExistingManual(ctx, r, existing, in, &result)
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}

		// No active quote. A collected prior quote is reported as such so
		// the page can direct the client to a fresh lookup.
		if latest, err := r.Quotes.FindLatestByUserAndRegistration(ctx, in.UserID, reg); err == nil {
			if latest.Status == quoteDomain.StatusAcceptedCollected {
				result = &SubmitResult{Status: ResultManualAcceptedCollected, Quote: u.dtoTx(ctx, r, latest)}
				return nil
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		now := time.Now().UTC()
		q := &quoteDomain.Quote{
			QuoteID:         id.NewID32(),
			UserID:          in.UserID,
			Registration:    reg,
			Origin:          quoteDomain.OriginManual,
			Status:          quoteDomain.StatusManualPendingReview,
			CreatedAt:       now,
			StatusUpdatedAt: now,
		}
		applyManualRequest(q, in)
		if err := r.Quotes.Create(ctx, q); err != nil {
			return err
		}
		result = &SubmitResult{Status: ResultManualSubmitted, Quote: toDTO(q, nil)}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (u *Usecase) resolveExistingManual(ctx context.Context, r uow.Repos, q *quoteDomain.Quote, in SubmitManualInput, result **SubmitResult) error {
	switch q.Status {
	case quoteDomain.StatusNewGenerated:
		// Price dispute: the auto quote is converted in place rather than
		// spawning a second live quote for the pair.
		q.Origin = quoteDomain.OriginManual
		applyManualRequest(q, in)
		q.SetStatus(quoteDomain.StatusManualPendingReview, time.Now().UTC())
		if err := r.Quotes.Save(ctx, q); err != nil {
			return err
		}
		*result = &SubmitResult{Status: ResultManualSubmitted, Quote: toDTO(q, nil)}
	case quoteDomain.StatusManualPendingReview:
		*result = &SubmitResult{Status: ResultManualPendingReview, Quote: toDTO(q, nil)}
	case quoteDomain.StatusManualReviewed, quoteDomain.StatusManualPreviouslyRejected:
		// The standing offer (possibly reopened) is what the client should see.
		*result = &SubmitResult{Status: ResultManualReviewed, Quote: toDTO(q, nil)}
	case quoteDomain.StatusAcceptedPendingCollection:
		*result = &SubmitResult{Status: ResultManualAcceptedPendingCollection, Quote: u.dtoTx(ctx, r, q)}
	default:
		return quoteDomain.ErrInvalidTransition
	}
	return nil
}

func applyManualRequest(q *quoteDomain.Quote, in SubmitManualInput) {
	if in.Vehicle.Make != "" {
		q.Make, q.Model, q.Colour = in.Vehicle.Make, in.Vehicle.Model, in.Vehicle.Colour
		q.FuelType, q.Year, q.WeightKg = in.Vehicle.FuelType, in.Vehicle.Year, in.Vehicle.WeightKg
	}
	q.UserEstimatedPrice = in.UserEstimatedPrice
	q.ManualReason = in.Reason
	q.ManualMessage = in.Message
	if len(in.Photos) > 0 {
		if b, err := json.Marshal(in.Photos); err == nil {
			q.Photos = datatypes.JSON(b)
		}
	}
}

// Confirm accepts the standing price and books the collection. Valid from
// new_generated, manual_reviewed and the reopened manual_previously_rejected
// path; acceptance on the reopened path overwrites the earlier rejection.
func (u *Usecase) Confirm(ctx context.Context, quoteID string, in ConfirmInput) (*QuoteDTO, error) {
	if strings.TrimSpace(in.ContactNumber) == "" {
		return nil, fmt.Errorf("%w: contact number is required", quoteDomain.ErrValidation)
	}
	if strings.TrimSpace(in.Address) == "" {
		return nil, fmt.Errorf("%w: address is required", quoteDomain.ErrValidation)
	}

	var dto *QuoteDTO
	err := u.uow.WithinQuoteTx(ctx, quoteID, func(r uow.Repos, q *quoteDomain.Quote) error {
		if !q.Decidable() {
			return quoteDomain.ErrInvalidTransition
		}
		now := time.Now().UTC()
		if err := validatePickupDate(in.PickupDate, now); err != nil {
			return err
		}

		c := &collectionDomain.Collection{
			CollectionID:  id.NewID32(),
			QuoteID:       q.ID,
			PickupDate:    dateOnly(in.PickupDate),
			ContactNumber: strings.TrimSpace(in.ContactNumber),
			Address:       strings.TrimSpace(in.Address),
		}
		if err := r.Collections.Create(ctx, c); err != nil {
			return err
		}

		d := quoteDomain.DecisionAccepted
		q.Decision = &d
		q.SetStatus(quoteDomain.StatusAcceptedPendingCollection, now)
		if err := r.Quotes.Save(ctx, q); err != nil {
			return err
		}
		dto = toDTO(q, c)
		return nil
	})
	if err != nil {
		return nil, translateNotFound(err)
	}
	return dto, nil
}

// Reject declines the standing price. Only manual quotes holding an admin
// offer stay reopenable; an auto-priced rejection is terminal.
func (u *Usecase) Reject(ctx context.Context, quoteID, reason string) (*QuoteDTO, error) {
	reason = strings.TrimSpace(reason)
	if len(reason) < minRejectionReasonLen {
		return nil, fmt.Errorf("%w: rejection reason must be at least %d characters", quoteDomain.ErrValidation, minRejectionReasonLen)
	}

	var dto *QuoteDTO
	err := u.uow.WithinQuoteTx(ctx, quoteID, func(r uow.Repos, q *quoteDomain.Quote) error {
		if !q.Rejectable() {
			return quoteDomain.ErrInvalidTransition
		}
		d := quoteDomain.DecisionRejected
		q.Decision = &d
		q.RejectionReason = reason
		next := quoteDomain.StatusRejected
		if q.Origin == quoteDomain.OriginManual && q.OfferPrice != nil {
			next = quoteDomain.StatusManualPreviouslyRejected
		}
		q.SetStatus(next, time.Now().UTC())
		if err := r.Quotes.Save(ctx, q); err != nil {
			return err
		}
		dto = toDTO(q, nil)
		return nil
	})
	if err != nil {
		return nil, translateNotFound(err)
	}
	return dto, nil
}

func (u *Usecase) Get(ctx context.Context, quoteID string) (*QuoteDTO, error) {
	q, err := u.repo.GetByQuoteID(ctx, quoteID)
	if err != nil {
		return nil, translateNotFound(err)
	}
	return u.dto(ctx, q), nil
}

func validatePickupDate(pickup, now time.Time) error {
	earliest := dateOnly(now).AddDate(0, 0, minPickupLeadDays)
	if dateOnly(pickup).Before(earliest) {
		return fmt.Errorf("%w: pickup date must be at least %d days from today", quoteDomain.ErrValidation, minPickupLeadDays)
	}
	return nil
}

func dateOnly(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func translateNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return quoteDomain.ErrNotFound
	}
	return err
}

// dto loads the collection (if any) alongside the quote.
func (u *Usecase) dto(ctx context.Context, q *quoteDomain.Quote) *QuoteDTO {
	var c *collectionDomain.Collection
	if got, err := u.collections.GetByQuoteID(ctx, q.ID); err == nil {
		c = got
	}
	return toDTO(q, c)
}

func (u *Usecase) dtoTx(ctx context.Context, r uow.Repos, q *quoteDomain.Quote) *QuoteDTO {
	var c *collectionDomain.Collection
	if got, err := r.Collections.GetByQuoteID(ctx, q.ID); err == nil {
		c = got
	}
	return toDTO(q, c)
}

// ToDTO maps a quote (plus optional collection) to its wire shape. Shared
// with the review and admin usecases so every surface renders quotes the
// same way.
func ToDTO(q *quoteDomain.Quote, c *collectionDomain.Collection) *QuoteDTO { return toDTO(q, c) }

func toDTO(q *quoteDomain.Quote, c *collectionDomain.Collection) *QuoteDTO {
	dto := &QuoteDTO{
		QuoteID:            q.QuoteID,
		UserID:             q.UserID,
		Registration:       q.Registration,
		Origin:             string(q.Origin),
		Status:             string(q.Status),
		Make:               q.Make,
		Model:              q.Model,
		Colour:             q.Colour,
		FuelType:           q.FuelType,
		Year:               q.Year,
		WeightKg:           q.WeightKg,
		EstimatedPrice:     q.EstimatedPrice,
		UserEstimatedPrice: q.UserEstimatedPrice,
		ManualReason:       q.ManualReason,
		ManualMessage:      q.ManualMessage,
		OfferPrice:         q.OfferPrice,
		OfferMessage:       q.OfferMessage,
		RejectionReason:    q.RejectionReason,
		Collection:         toCollectionDTO(c),
		CreatedAt:          q.CreatedAt,
		StatusUpdatedAt:    q.StatusUpdatedAt,
	}
	if q.Decision != nil {
		dto.Decision = string(*q.Decision)
	}
	if len(q.Photos) > 0 {
		_ = json.Unmarshal(q.Photos, &dto.Photos)
	}
	return dto
}
