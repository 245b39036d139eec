package collection

import (
	"errors"
	"time"
)

var (
	ErrNotFound = errors.New("collection not found")
)

// Table: collections — one row per accepted quote.
type Collection struct {
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Public identifier (32-char lowercase hex)
	CollectionID string `gorm:"column:collection_id;type:char(32);not null;uniqueIndex:ux_collections_collection_id"`
	// FK to quotes.id (numeric)
	QuoteID       uint64     `gorm:"column:quote_id;not null;uniqueIndex:ux_collections_quote"`
	PickupDate    time.Time  `gorm:"column:pickup_date;type:date;not null"`
	ContactNumber string     `gorm:"column:contact_number;size:32;not null"`
	Address       string     `gorm:"column:address;type:text;not null"`
	Collected     bool       `gorm:"column:collected;not null;default:false"`
	CollectedAt   *time.Time `gorm:"column:collected_at"`
	CreatedAt     time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

func (Collection) TableName() string { return "collections" }
