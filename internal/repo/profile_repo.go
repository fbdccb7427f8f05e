// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for UserProfile.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/healthloop/go-health-backend/internal/domain"
)

// GetProfile fetches the owner's profile, or ErrNotFound.
func GetProfile(ctx context.Context, db *gorm.DB, userID string) (*domain.UserProfile, error) {
	var p domain.UserProfile
	if err := db.WithContext(ctx).Where("user_id = ?", userID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// SaveProfile upserts the owner's profile wholesale: every column is
// replaced with the supplied values, matching the save-the-whole-form
// semantics of the profile page.
func SaveProfile(ctx context.Context, db *gorm.DB, p *domain.UserProfile) error {
	p.UpdatedAt = time.Now().UTC()
	return db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			UpdateAll: true,
		}).
		Create(p).Error
}
