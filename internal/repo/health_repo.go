// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for HealthLog and
// its denormalized StreakMarker companion.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations. They
// follow the "thin repository" approach: no business logic, only CRUD
// persistence and query composition.
//
// Error semantics:
//   - When a log is not found, functions return gorm.ErrRecordNotFound
//     (also exported here as ErrNotFound for convenience).
//   - MarkCompleted treats a duplicate owner+date insert as a successful
//     no-op via an ON CONFLICT DO NOTHING clause, never as an error.
//   - On other DB errors, the raw gorm error is propagated.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/healthloop/go-health-backend/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for consistency across the service
// layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// CreateHealthLog inserts a new daily check-in row owned by userID for the
// given calendar date. The unique owner+date index rejects a second log for
// the same day; callers decide how to surface that.
func CreateHealthLog(ctx context.Context, db *gorm.DB, userID, date, symptoms, notes string, score *int) (*domain.HealthLog, error) {
	l := &domain.HealthLog{
		ID:            uuid.NewString(),
		UserID:        userID,
		Date:          date,
		Symptoms:      symptoms,
		SeverityScore: score,
		Notes:         notes,
		CreatedAt:     time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(l).Error; err != nil {
		return nil, err
	}
	return l, nil
}

// GetHealthLogByDate fetches the single log for owner userID on date, or
// ErrNotFound.
func GetHealthLogByDate(ctx context.Context, db *gorm.DB, userID, date string) (*domain.HealthLog, error) {
	var l domain.HealthLog
	err := db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		First(&l).Error
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// ListHealthLogs returns the owner's logs ordered by date descending (most
// recent first). limit <= 0 returns all rows.
func ListHealthLogs(ctx context.Context, db *gorm.DB, userID string, limit int) ([]domain.HealthLog, error) {
	var out []domain.HealthLog
	q := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date desc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&out).Error
	return out, err
}

// ListHealthLogsSince returns the owner's logs dated on or after since
// (inclusive), ordered by date ascending for charting.
func ListHealthLogsSince(ctx context.Context, db *gorm.DB, userID, since string) ([]domain.HealthLog, error) {
	var out []domain.HealthLog
	err := db.WithContext(ctx).
		Where("user_id = ? AND date >= ?", userID, since).
		Order("date asc").
		Find(&out).Error
	return out, err
}

// ReplaceHealthLog replaces the owner's log for date with new content inside
// one transaction: the old row (and nothing else) is deleted, then the new
// row is created. Running both in a single transaction closes the crash
// window that a bare delete-then-recreate pair would leave. The streak
// marker for the date is left untouched since the day stays completed.
//
// Returns ErrNotFound when no log exists for the date.
func ReplaceHealthLog(ctx context.Context, db *gorm.DB, userID, date, symptoms, notes string, score *int) (*domain.HealthLog, error) {
	var created *domain.HealthLog
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND date = ?", userID, date).Delete(&domain.HealthLog{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		l, err := CreateHealthLog(ctx, tx, userID, date, symptoms, notes, score)
		if err != nil {
			return err
		}
		created = l
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// MarkCompleted records that userID completed the check-in on date. A marker
// already present for owner+date makes the insert a no-op: the clause below
// is the idempotent-insert contract the rest of the application relies on,
// instead of inspecting driver-specific conflict errors.
func MarkCompleted(ctx context.Context, db *gorm.DB, userID, date string) error {
	m := &domain.StreakMarker{
		ID:        uuid.NewString(),
		UserID:    userID,
		Date:      date,
		Completed: true,
		CreatedAt: time.Now().UTC(),
	}
	return db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
			DoNothing: true,
		}).
		Create(m).Error
}

// ListCompletedDates returns the distinct dates the owner has marked
// completed, unordered. Streak math sorts and deduplicates on its own.
func ListCompletedDates(ctx context.Context, db *gorm.DB, userID string) ([]string, error) {
	var dates []string
	err := db.WithContext(ctx).
		Model(&domain.StreakMarker{}).
		Where("user_id = ? AND completed = ?", userID, true).
		Pluck("date", &dates).Error
	return dates, err
}
