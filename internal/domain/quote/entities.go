package quote

import (
	"errors"
	"strings"
	"time"

	"gorm.io/datatypes"
)

var (
	ErrNotFound          = errors.New("quote not found")
	ErrValidation        = errors.New("validation failed")
	ErrInvalidTransition = errors.New("operation not permitted in current status")
	ErrAlreadyReviewed   = errors.New("quote already reviewed")
	ErrAlreadyCollected  = errors.New("quote already collected")
)

type Status string

const (
	StatusNewGenerated              Status = "new_generated"
	StatusManualPendingReview       Status = "manual_pending_review"
	StatusManualReviewed            Status = "manual_reviewed"
	StatusManualPreviouslyRejected  Status = "manual_previously_rejected"
	StatusAcceptedPendingCollection Status = "accepted_pending_collection"
	StatusAcceptedCollected         Status = "accepted_collected"
	StatusRejected                  Status = "rejected"
)

type Origin string

const (
	OriginAuto   Origin = "auto"
	OriginManual Origin = "manual"
)

type Decision string

const (
	DecisionAccepted Decision = "accepted"
	DecisionRejected Decision = "rejected"
)

type Quote struct {
	ID           uint64 `gorm:"primaryKey;column:id" json:"-"`
	QuoteID      string `gorm:"size:32;uniqueIndex:ux_quotes_quote_id" json:"quote_id"`
	UserID       string `gorm:"size:32;index:idx_quotes_user_reg" json:"user_id"`
	Registration string `gorm:"size:16;index:idx_quotes_user_reg" json:"registration"`
	Origin       Origin `gorm:"type:enum('auto','manual')" json:"origin"`

	// Vehicle snapshot, fetched (or client-supplied) at creation. Never re-fetched.
	Make     string  `gorm:"size:64" json:"make"`
	Model    string  `gorm:"size:64" json:"model"`
	Colour   string  `gorm:"size:32" json:"colour"`
	FuelType string  `gorm:"size:32" json:"fuel_type"`
	Year     int     `gorm:"column:year" json:"year"`
	WeightKg float64 `gorm:"type:decimal(10,2)" json:"weight_kg"`

	EstimatedPrice *float64 `gorm:"type:decimal(18,2)" json:"estimated_price"`

	// Manual request fields, set only for manual-origin quotes.
	UserEstimatedPrice *float64       `gorm:"type:decimal(18,2)" json:"user_estimated_price,omitempty"`
	ManualReason       string         `gorm:"type:text" json:"manual_reason,omitempty"`
	ManualMessage      string         `gorm:"type:text" json:"manual_message,omitempty"`
	Photos             datatypes.JSON `gorm:"column:photos" json:"photos,omitempty"`

	// Admin offer, settable once while manual_pending_review.
	OfferPrice   *float64   `gorm:"type:decimal(18,2)" json:"offer_price,omitempty"`
	OfferMessage string     `gorm:"type:text" json:"offer_message,omitempty"`
	ReviewedAt   *time.Time `json:"reviewed_at,omitempty"`

	Status          Status    `gorm:"type:enum('new_generated','manual_pending_review','manual_reviewed','manual_previously_rejected','accepted_pending_collection','accepted_collected','rejected');default:'new_generated'" json:"status"`
	Decision        *Decision `gorm:"type:enum('accepted','rejected')" json:"decision,omitempty"`
	RejectionReason string    `gorm:"type:text" json:"rejection_reason,omitempty"`

	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	StatusUpdatedAt time.Time `json:"status_updated_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (Quote) TableName() string { return "quotes" }

// NormalizeRegistration uppercases and strips all whitespace, so
// "ab12 cde" and "AB12CDE" address the same vehicle.
func NormalizeRegistration(reg string) string {
	return strings.ToUpper(strings.Join(strings.Fields(reg), ""))
}

// Active quotes block a fresh lookup for the same (user, registration) pair.
// A rejected manual quote that still carries an admin offer stays active:
// it can be re-accepted, so a second live quote must not appear beside it.
func (q *Quote) Active() bool {
	switch q.Status {
	case StatusAcceptedCollected, StatusRejected:
		return false
	}
	return true
}

// Decidable reports whether the client may accept the standing price.
// Covers the reopened path for rejected manual quotes holding an offer.
func (q *Quote) Decidable() bool {
	switch q.Status {
	case StatusNewGenerated, StatusManualReviewed:
		return true
	case StatusManualPreviouslyRejected:
		return q.OfferPrice != nil
	}
	return false
}

// Rejectable excludes the reopened path: a quote already rejected once
// cannot be rejected again.
func (q *Quote) Rejectable() bool {
	return q.Status == StatusNewGenerated || q.Status == StatusManualReviewed
}

func (q *Quote) SetStatus(s Status, at time.Time) {
	q.Status = s
	q.StatusUpdatedAt = at
}
