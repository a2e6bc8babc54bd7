package repository

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// dryRunDB builds SQL without touching a server: pgx connects lazily
// and DryRun skips execution.
func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(postgres.Open("host=localhost user=nobody dbname=none"), &gorm.Config{
		DryRun:                 true,
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
	})
	if err != nil {
		t.Fatalf("open dry-run db: %v", err)
	}
	return db
}

func TestAssertRangeFreeLocksItemNotAggregate(t *testing.T) {
	db := dryRunDB(t)

	var captured []string
	err := db.Callback().Query().After("gorm:query").Register("capture_sql", func(tx *gorm.DB) {
		captured = append(captured, tx.Statement.SQL.String())
	})
	if err != nil {
		t.Fatalf("register callback: %v", err)
	}

	repo := NewRentalGormRepository(db)

	start := time.Date(2030, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2030, 6, 3, 0, 0, 0, 0, time.UTC)

	if err := repo.AssertRangeFree(context.Background(), 1, start, end); err != nil {
		t.Fatalf("AssertRangeFree: %v", err)
	}

	if len(captured) != 2 {
		t.Fatalf("captured %d statements, want 2: %v", len(captured), captured)
	}

	lock, count := captured[0], captured[1]

	// mutual exclusion comes from the parent item row
	if !strings.Contains(lock, `FROM "items"`) || !strings.Contains(lock, "FOR UPDATE") {
		t.Errorf("first statement must lock the item row, got: %s", lock)
	}

	// Postgres rejects FOR UPDATE on aggregates (SQLSTATE 0A000)
	if !strings.Contains(count, "count(") {
		t.Errorf("second statement must be the block count, got: %s", count)
	}
	if strings.Contains(count, "FOR UPDATE") {
		t.Errorf("aggregate query must not carry a locking clause, got: %s", count)
	}
}

func TestIsUniqueViolation(t *testing.T) {
	if !isUniqueViolation(gorm.ErrDuplicatedKey) {
		t.Error("gorm.ErrDuplicatedKey not recognized")
	}
	if !isUniqueViolation(&pgconn.PgError{Code: "23505"}) {
		t.Error("SQLSTATE 23505 not recognized")
	}
	if isUniqueViolation(&pgconn.PgError{Code: "0A000"}) {
		t.Error("unrelated SQLSTATE treated as unique violation")
	}
	if isUniqueViolation(errors.New("boom")) {
		t.Error("plain error treated as unique violation")
	}
}
