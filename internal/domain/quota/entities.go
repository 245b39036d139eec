package quota

import (
	"errors"
	"time"
)

var (
	ErrNotFound  = errors.New("quota not found")
	ErrExhausted = errors.New("no vehicle checks remaining")
	// ErrCeilingExceeded: a refill may never push checks_left above original_checks.
	ErrCeilingExceeded = errors.New("refill exceeds original checks")
)

// Table: user_quotas — per-user DVLA lookup credits.
type UserQuota struct {
	ID             uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	UserID         string    `gorm:"column:user_id;type:char(32);not null;uniqueIndex:ux_user_quotas_user" json:"user_id"`
	OriginalChecks int       `gorm:"column:original_checks;not null" json:"original_checks"`
	ChecksLeft     int       `gorm:"column:checks_left;not null" json:"checks_left"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime" json:"-"`
	UpdatedAt      time.Time `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}

func (UserQuota) TableName() string { return "user_quotas" }

// Consume burns one credit. Callers must hold the row lock.
func (u *UserQuota) Consume() error {
	if u.ChecksLeft <= 0 {
		return ErrExhausted
	}
	u.ChecksLeft--
	return nil
}

// Refill tops credits back up, never above the original allowance.
func (u *UserQuota) Refill(amount int) error {
	if amount <= 0 {
		return errors.New("refill amount must be positive")
	}
	if u.ChecksLeft+amount > u.OriginalChecks {
		return ErrCeilingExceeded
	}
	u.ChecksLeft += amount
	return nil
}
