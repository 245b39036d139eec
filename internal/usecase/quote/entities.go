package quote

import (
	"time"

	domain "scrapcar-backend/internal/domain/collection"
	quoteDomain "scrapcar-backend/internal/domain/quote"
)

// Top-level result statuses returned to the submission flows. They extend
// the persisted quote statuses with outcomes that never hit the database.
const (
	ResultNewGenerated        = string(quoteDomain.StatusNewGenerated)
	ResultManualPendingReview = string(quoteDomain.StatusManualPendingReview)
	ResultChecksExhausted     = "dvla_checks_exhausted"
	ResultCachedQuote         = "cached_quote"

	ResultManualSubmitted                 = "manual_submitted"
	ResultManualReviewed                  = string(quoteDomain.StatusManualReviewed)
	ResultManualAcceptedPendingCollection = "manual_accepted_pending_collection"
	ResultManualAcceptedCollected         = "manual_accepted_collected"
)

type SubmitInput struct {
	UserID       string `json:"user_id"`
	Registration string `json:"registration"`
}

type VehicleInput struct {
	Make     string  `json:"make"`
	Model    string  `json:"model"`
	Colour   string  `json:"colour"`
	FuelType string  `json:"fuel_type"`
	Year     int     `json:"year"`
	WeightKg float64 `json:"weight_kg"`
}

type SubmitManualInput struct {
	UserID             string       `json:"user_id"`
	Registration       string       `json:"registration"`
	Vehicle            VehicleInput `json:"vehicle"`
	UserEstimatedPrice *float64     `json:"user_estimated_price,omitempty"`
	Reason             string       `json:"reason"`
	Message            string       `json:"message,omitempty"`
	Photos             []string     `json:"photos,omitempty"`
}

type ConfirmInput struct {
	PickupDate    time.Time `json:"pickup_date"`
	ContactNumber string    `json:"contact_number"`
	Address       string    `json:"address"`
}

type CollectionDTO struct {
	CollectionID  string     `json:"collection_id"`
	PickupDate    time.Time  `json:"pickup_date"`
	ContactNumber string     `json:"contact_number"`
	Address       string     `json:"address"`
	Collected     bool       `json:"collected"`
	CollectedAt   *time.Time `json:"collected_at,omitempty"`
}

type QuoteDTO struct {
	QuoteID      string `json:"quote_id"`
	UserID       string `json:"user_id"`
	Registration string `json:"registration"`
	Origin       string `json:"origin"`
	Status       string `json:"status"`

	Make     string  `json:"make,omitempty"`
	Model    string  `json:"model,omitempty"`
	Colour   string  `json:"colour,omitempty"`
	FuelType string  `json:"fuel_type,omitempty"`
	Year     int     `json:"year,omitempty"`
	WeightKg float64 `json:"weight_kg,omitempty"`

	EstimatedPrice     *float64 `json:"estimated_price,omitempty"`
	UserEstimatedPrice *float64 `json:"user_estimated_price,omitempty"`
	ManualReason       string   `json:"manual_reason,omitempty"`
	ManualMessage      string   `json:"manual_message,omitempty"`
	Photos             []string `json:"photos,omitempty"`

	OfferPrice   *float64 `json:"offer_price,omitempty"`
	OfferMessage string   `json:"offer_message,omitempty"`

	Decision        string         `json:"decision,omitempty"`
	RejectionReason string         `json:"rejection_reason,omitempty"`
	Collection      *CollectionDTO `json:"collection,omitempty"`

	CreatedAt       time.Time `json:"created_at"`
	StatusUpdatedAt time.Time `json:"status_updated_at"`
}

type SubmitResult struct {
	Status string    `json:"status"`
	Quote  *QuoteDTO `json:"quote,omitempty"`
}

func toCollectionDTO(c *domain.Collection) *CollectionDTO {
	if c == nil {
		return nil
	}
	return &CollectionDTO{
		CollectionID:  c.CollectionID,
		PickupDate:    c.PickupDate,
		ContactNumber: c.ContactNumber,
		Address:       c.Address,
		Collected:     c.Collected,
		CollectedAt:   c.CollectedAt,
	}
}
