package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	domain "scrapcar-backend/internal/domain/quota"
	"scrapcar-backend/pkg/id"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type userQuotaSQLite struct {
	ID             uint64    `gorm:"primaryKey;column:id"`
	UserID         string    `gorm:"size:32;column:user_id"`
	OriginalChecks int       `gorm:"column:original_checks"`
	ChecksLeft     int       `gorm:"column:checks_left"`
	CreatedAt      time.Time `gorm:"column:created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at"`
}

func (userQuotaSQLite) TableName() string { return "user_quotas" }

func openQuotaTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&userQuotaSQLite{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func TestQuotaCreateGetSave(t *testing.T) {
	db := openQuotaTestDB(t)
	repo := NewQuotaRepository(db)
	ctx := context.Background()
	user := id.NewID32()

	if err := repo.Create(ctx, &domain.UserQuota{UserID: user, OriginalChecks: 3, ChecksLeft: 3}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByUserID(ctx, user)
	if err != nil {
		t.Fatalf("GetByUserID: %v", err)
	}
	if got.ChecksLeft != 3 || got.OriginalChecks != 3 {
		t.Fatalf("unexpected quota: %+v", got)
	}

	if err := got.Consume(); err != nil {
		t.Fatalf("Consume: %v", err)
	}
	if err := repo.Save(ctx, got); err != nil {
		t.Fatalf("Save: %v", err)
	}

	again, err := repo.GetByUserID(ctx, user)
	if err != nil {
		t.Fatalf("GetByUserID: %v", err)
	}
	if again.ChecksLeft != 2 {
		t.Fatalf("checks_left=%d, want 2", again.ChecksLeft)
	}
}

func TestQuotaGetByUserID_NotFound(t *testing.T) {
	db := openQuotaTestDB(t)
	repo := NewQuotaRepository(db)

	_, err := repo.GetByUserID(context.Background(), id.NewID32())
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("want gorm.ErrRecordNotFound, got %v", err)
	}
}
