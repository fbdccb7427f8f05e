// Package services – ProfileService
//
// Thin wrapper over the profile repository. Saves replace the profile row
// wholesale, matching the save-the-whole-form behavior of the profile page.
package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/healthloop/go-health-backend/internal/domain"
	"github.com/healthloop/go-health-backend/internal/repo"
)

// ProfileService reads and saves owner profiles.
type ProfileService struct {
	DB *gorm.DB
}

// Get returns the owner's profile or ErrProfileNotFound.
func (s *ProfileService) Get(ctx context.Context, userID string) (*domain.UserProfile, error) {
	p, err := repo.GetProfile(ctx, s.DB, userID)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrProfileNotFound
	}
	return p, err
}

// Save upserts the owner's profile. The stored row always matches the
// submitted values exactly; omitted fields are cleared.
func (s *ProfileService) Save(ctx context.Context, userID string, p *domain.UserProfile) (*domain.UserProfile, error) {
	p.UserID = userID
	p.FullName = strings.TrimSpace(p.FullName)
	if err := repo.SaveProfile(ctx, s.DB, p); err != nil {
		return nil, err
	}
	return p, nil
}
