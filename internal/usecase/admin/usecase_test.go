package admin

import (
	"context"
	"errors"
	"testing"
	"time"

	collectionDomain "scrapcar-backend/internal/domain/collection"
	quotaDomain "scrapcar-backend/internal/domain/quota"
	quoteDomain "scrapcar-backend/internal/domain/quote"
	"scrapcar-backend/internal/domain/uow"
	"scrapcar-backend/internal/testutil/collectionmock"
	"scrapcar-backend/internal/testutil/quotamock"
	"scrapcar-backend/internal/testutil/quotemock"
	"scrapcar-backend/internal/testutil/uowmock"

	"gorm.io/gorm"
)

const (
	quoteID = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	userID  = "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"
)

func newUsecase(quotes *quotemock.Repo, collections *collectionmock.Repo, quotas *quotamock.Repo) *Usecase {
	tx := uowmock.Passthrough(uow.Repos{Quotes: quotes, Collections: collections, Quotas: quotas})
	return NewUsecase(quotes, collections, quotas, tx)
}

func TestMarkCollected(t *testing.T) {
	q := &quoteDomain.Quote{ID: 7, QuoteID: quoteID, Status: quoteDomain.StatusAcceptedPendingCollection}
	c := &collectionDomain.Collection{ID: 1, QuoteID: 7, PickupDate: time.Now().UTC().AddDate(0, 0, 3)}

	quotes := &quotemock.Repo{
		GetByQuoteIDForUpdateFn: func(ctx context.Context, id string) (*quoteDomain.Quote, error) {
			return q, nil
		},
	}
	collections := &collectionmock.Repo{
		GetByQuoteIDFn: func(ctx context.Context, id uint64) (*collectionDomain.Collection, error) {
			return c, nil
		},
	}

	uc := newUsecase(quotes, collections, &quotamock.Repo{})
	dto, err := uc.MarkCollected(context.Background(), quoteID)
	if err != nil {
		t.Fatalf("MarkCollected: %v", err)
	}
	if dto.Status != string(quoteDomain.StatusAcceptedCollected) {
		t.Fatalf("status=%s", dto.Status)
	}
	if !c.Collected || c.CollectedAt == nil {
		t.Fatalf("collection not flipped: %+v", c)
	}
	firstCollectedAt := *c.CollectedAt

	// second call must fail and leave collected_at untouched
	_, err = uc.MarkCollected(context.Background(), quoteID)
	if !errors.Is(err, quoteDomain.ErrAlreadyCollected) {
		t.Fatalf("want ErrAlreadyCollected, got %v", err)
	}
	if !c.CollectedAt.Equal(firstCollectedAt) {
		t.Fatalf("collected_at changed on the failed second call")
	}
}

func TestMarkCollected_UnacceptedQuote(t *testing.T) {
	q := &quoteDomain.Quote{ID: 7, QuoteID: quoteID, Status: quoteDomain.StatusNewGenerated}
	quotes := &quotemock.Repo{
		GetByQuoteIDForUpdateFn: func(ctx context.Context, id string) (*quoteDomain.Quote, error) {
			return q, nil
		},
	}

	uc := newUsecase(quotes, &collectionmock.Repo{}, &quotamock.Repo{})
	if _, err := uc.MarkCollected(context.Background(), quoteID); !errors.Is(err, quoteDomain.ErrInvalidTransition) {
		t.Fatalf("want ErrInvalidTransition, got %v", err)
	}
}

func TestDelete_RemovesQuoteAndCollection(t *testing.T) {
	q := &quoteDomain.Quote{ID: 7, QuoteID: quoteID, Status: quoteDomain.StatusRejected}
	deletedQuote := false
	deletedCollection := false

	quotes := &quotemock.Repo{
		GetByQuoteIDForUpdateFn: func(ctx context.Context, id string) (*quoteDomain.Quote, error) {
			return q, nil
		},
		DeleteFn: func(ctx context.Context, got *quoteDomain.Quote) error {
			deletedQuote = got.ID == 7
			return nil
		},
	}
	collections := &collectionmock.Repo{
		DeleteByQuoteIDFn: func(ctx context.Context, id uint64) error {
			deletedCollection = id == 7
			return nil
		},
	}

	uc := newUsecase(quotes, collections, &quotamock.Repo{})
	if err := uc.Delete(context.Background(), quoteID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if !deletedQuote || !deletedCollection {
		t.Fatalf("deletedQuote=%v deletedCollection=%v", deletedQuote, deletedCollection)
	}
}

func TestDelete_NotFound(t *testing.T) {
	quotes := &quotemock.Repo{
		GetByQuoteIDForUpdateFn: func(ctx context.Context, id string) (*quoteDomain.Quote, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	uc := newUsecase(quotes, &collectionmock.Repo{}, &quotamock.Repo{})
	if err := uc.Delete(context.Background(), quoteID); !errors.Is(err, quoteDomain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestRefillQuota(t *testing.T) {
	tests := []struct {
		name       string
		checksLeft int
		amount     int
		wantErr    bool
		wantLeft   int
	}{
		{name: "refill within ceiling", checksLeft: 1, amount: 2, wantErr: false, wantLeft: 3},
		{name: "refill to exactly the ceiling", checksLeft: 0, amount: 3, wantErr: false, wantLeft: 3},
		{name: "refill over ceiling fails", checksLeft: 2, amount: 2, wantErr: true, wantLeft: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uq := &quotaDomain.UserQuota{UserID: userID, OriginalChecks: 3, ChecksLeft: tt.checksLeft}
			quotas := &quotamock.Repo{
				GetByUserIDForUpdateFn: func(ctx context.Context, id string) (*quotaDomain.UserQuota, error) {
					return uq, nil
				},
			}
			uc := newUsecase(&quotemock.Repo{}, &collectionmock.Repo{}, quotas)

			out, err := uc.RefillQuota(context.Background(), userID, tt.amount)
			if tt.wantErr {
				if !errors.Is(err, quoteDomain.ErrValidation) {
					t.Fatalf("want ErrValidation, got %v", err)
				}
			} else {
				if err != nil {
					t.Fatalf("RefillQuota: %v", err)
				}
				if out.ChecksLeft != tt.wantLeft {
					t.Fatalf("checks_left=%d, want %d", out.ChecksLeft, tt.wantLeft)
				}
			}
			if uq.ChecksLeft != tt.wantLeft {
				t.Fatalf("stored checks_left=%d, want %d", uq.ChecksLeft, tt.wantLeft)
			}
		})
	}
}

func TestRefillQuota_NonPositiveAmount(t *testing.T) {
	uc := newUsecase(&quotemock.Repo{}, &collectionmock.Repo{}, &quotamock.Repo{})
	if _, err := uc.RefillQuota(context.Background(), userID, 0); !errors.Is(err, quoteDomain.ErrValidation) {
		t.Fatalf("want ErrValidation, got %v", err)
	}
}

func TestRefillQuota_UnknownUser(t *testing.T) {
	quotas := &quotamock.Repo{
		GetByUserIDForUpdateFn: func(ctx context.Context, id string) (*quotaDomain.UserQuota, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	uc := newUsecase(&quotemock.Repo{}, &collectionmock.Repo{}, quotas)
	if _, err := uc.RefillQuota(context.Background(), userID, 1); !errors.Is(err, quotaDomain.ErrNotFound) {
		t.Fatalf("want quota ErrNotFound, got %v", err)
	}
}

func TestList_Views(t *testing.T) {
	var asked []quoteDomain.Status
	quotes := &quotemock.Repo{
		ListByStatusFn: func(ctx context.Context, statuses ...quoteDomain.Status) ([]quoteDomain.Quote, error) {
			asked = statuses
			return []quoteDomain.Quote{{ID: 7, QuoteID: quoteID, Status: statuses[0]}}, nil
		},
	}
	collections := &collectionmock.Repo{
		GetByQuoteIDFn: func(ctx context.Context, id uint64) (*collectionDomain.Collection, error) {
			return &collectionDomain.Collection{QuoteID: id, Collected: true}, nil
		},
	}
	uc := newUsecase(quotes, collections, &quotamock.Repo{})

	tests := []struct {
		view         string
		wantStatuses []quoteDomain.Status
		wantColl     bool
	}{
		{ViewPendingAuto, []quoteDomain.Status{quoteDomain.StatusNewGenerated}, false},
		{ViewPendingManual, []quoteDomain.Status{quoteDomain.StatusManualPendingReview, quoteDomain.StatusManualReviewed}, false},
		{ViewAccepted, []quoteDomain.Status{quoteDomain.StatusAcceptedPendingCollection}, true},
		{ViewCollected, []quoteDomain.Status{quoteDomain.StatusAcceptedCollected}, true},
		{ViewRejected, []quoteDomain.Status{quoteDomain.StatusRejected, quoteDomain.StatusManualPreviouslyRejected}, false},
	}
	for _, tt := range tests {
		t.Run(tt.view, func(t *testing.T) {
			out, err := uc.List(context.Background(), tt.view)
			if err != nil {
				t.Fatalf("List(%s): %v", tt.view, err)
			}
			if len(asked) != len(tt.wantStatuses) {
				t.Fatalf("asked=%v, want %v", asked, tt.wantStatuses)
			}
			for i := range asked {
				if asked[i] != tt.wantStatuses[i] {
					t.Fatalf("asked=%v, want %v", asked, tt.wantStatuses)
				}
			}
			if got := out[0].Collection != nil; got != tt.wantColl {
				t.Fatalf("collection attached=%v, want %v", got, tt.wantColl)
			}
		})
	}
}

func TestList_UnknownView(t *testing.T) {
	uc := newUsecase(&quotemock.Repo{}, &collectionmock.Repo{}, &quotamock.Repo{})
	if _, err := uc.List(context.Background(), "everything"); !errors.Is(err, quoteDomain.ErrValidation) {
		t.Fatalf("want ErrValidation, got %v", err)
	}
}
