// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for TriageResult.
// Results are immutable: there are create and read operations only.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/healthloop/go-health-backend/internal/domain"
)

// CreateTriageResult persists one assessment outcome verbatim.
func CreateTriageResult(ctx context.Context, db *gorm.DB, userID, symptoms, level, confidence, reasoning, action, analysis string) (*domain.TriageResult, error) {
	r := &domain.TriageResult{
		ID:                uuid.NewString(),
		UserID:            userID,
		Symptoms:          symptoms,
		TriageLevel:       level,
		Confidence:        confidence,
		Reasoning:         reasoning,
		RecommendedAction: action,
		DetailedAnalysis:  analysis,
		CreatedAt:         time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(r).Error; err != nil {
		return nil, err
	}
	return r, nil
}

// ListTriageResults returns the owner's results ordered by creation time
// descending. limit <= 0 returns all rows.
func ListTriageResults(ctx context.Context, db *gorm.DB, userID string, limit int) ([]domain.TriageResult, error) {
	var out []domain.TriageResult
	q := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&out).Error
	return out, err
}

// ListTriageResultsSince returns the owner's results created at or after the
// cutoff instant, ordered ascending for aggregation.
func ListTriageResultsSince(ctx context.Context, db *gorm.DB, userID string, cutoff time.Time) ([]domain.TriageResult, error) {
	var out []domain.TriageResult
	err := db.WithContext(ctx).
		Where("user_id = ? AND created_at >= ?", userID, cutoff).
		Order("created_at asc").
		Find(&out).Error
	return out, err
}
