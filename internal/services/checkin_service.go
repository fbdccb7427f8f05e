// Package services – CheckinService
//
// This file implements CheckinService, the application-level component that
// owns the daily check-in lifecycle. It validates symptom text, obtains a
// severity score from the configured Scorer, and persists the HealthLog
// together with its streak marker atomically. Replacing today's entry reuses
// the repository's transactional delete+recreate path so the owner+date
// uniqueness invariant holds at every point in time.
//
// Observability: public methods are OpenTelemetry-instrumented; spans carry
// the owner identifier and calendar date.
package services

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/healthloop/go-health-backend/internal/assistant"
	"github.com/healthloop/go-health-backend/internal/domain"
	"github.com/healthloop/go-health-backend/internal/repo"
)

// CheckinService coordinates daily check-in submission, replacement, and
// listing. A Scorer turns symptom text into a severity score; when it fails
// the log is stored unscored rather than blocking the check-in.
type CheckinService struct {
	DB     *gorm.DB
	Scorer assistant.Scorer

	// MaxSymptomRunes caps symptom and note text by rune length. Zero
	// disables the cap.
	MaxSymptomRunes int
}

// NewCheckinService constructs a CheckinService. A nil scorer falls back to
// the placeholder mid-scale score.
func NewCheckinService(db *gorm.DB, scorer assistant.Scorer) *CheckinService {
	if scorer == nil {
		scorer = assistant.PlaceholderScorer{}
	}
	return &CheckinService{DB: db, Scorer: scorer, MaxSymptomRunes: 4000}
}

// Submit records the owner's check-in for the given day. It returns
// ErrCheckinExists when a log is already present for that date, so the client
// can offer the update path instead. The log row and the streak marker are
// written in one transaction.
func (s *CheckinService) Submit(ctx context.Context, userID, symptoms, notes string, today time.Time) (*domain.HealthLog, error) {
	tr := otel.Tracer("services/CheckinService")
	ctx, span := tr.Start(ctx, "Submit",
		trace.WithAttributes(attribute.String("user.id", userID)),
	)
	defer span.End()

	symptoms = strings.TrimSpace(symptoms)
	if err := s.validate(symptoms, notes); err != nil {
		return nil, err
	}

	date := today.Format(domain.DateLayout)
	span.SetAttributes(attribute.String("checkin.date", date))

	if _, err := repo.GetHealthLogByDate(ctx, s.DB, userID, date); err == nil {
		return nil, ErrCheckinExists
	} else if !errors.Is(err, repo.ErrNotFound) {
		return nil, err
	}

	score := s.score(ctx, symptoms)

	var created *domain.HealthLog
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		l, err := repo.CreateHealthLog(ctx, tx, userID, date, symptoms, notes, score)
		if err != nil {
			return err
		}
		if err := repo.MarkCompleted(ctx, tx, userID, date); err != nil {
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

// ReplaceToday swaps the content of today's check-in for new symptoms and
// notes, re-scoring in the process. The day remains completed: the streak
// marker is untouched. Returns ErrCheckinNotFound when there is nothing to
// replace.
func (s *CheckinService) ReplaceToday(ctx context.Context, userID, symptoms, notes string, today time.Time) (*domain.HealthLog, error) {
	tr := otel.Tracer("services/CheckinService")
	ctx, span := tr.Start(ctx, "ReplaceToday",
		trace.WithAttributes(attribute.String("user.id", userID)),
	)
	defer span.End()

	symptoms = strings.TrimSpace(symptoms)
	if err := s.validate(symptoms, notes); err != nil {
		return nil, err
	}

	date := today.Format(domain.DateLayout)
	score := s.score(ctx, symptoms)

	l, err := repo.ReplaceHealthLog(ctx, s.DB, userID, date, symptoms, notes, score)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrCheckinNotFound
	}
	return l, err
}

// TodayStatus reports whether the owner already checked in today, returning
// the existing log when present.
func (s *CheckinService) TodayStatus(ctx context.Context, userID string, today time.Time) (*domain.HealthLog, bool, error) {
	l, err := repo.GetHealthLogByDate(ctx, s.DB, userID, today.Format(domain.DateLayout))
	if errors.Is(err, repo.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return l, true, nil
}

// List returns the owner's check-ins, most recent first. limit <= 0 returns
// everything.
func (s *CheckinService) List(ctx context.Context, userID string, limit int) ([]domain.HealthLog, error) {
	return repo.ListHealthLogs(ctx, s.DB, userID, limit)
}

// validate enforces the free-text input rules shared by Submit and
// ReplaceToday.
func (s *CheckinService) validate(symptoms, notes string) error {
	if symptoms == "" {
		return ErrEmptySymptoms
	}
	if s.MaxSymptomRunes > 0 {
		if utf8.RuneCountInString(symptoms) > s.MaxSymptomRunes ||
			utf8.RuneCountInString(notes) > s.MaxSymptomRunes {
			return ErrTooLong
		}
	}
	return nil
}

// score runs the Scorer, degrading to an unscored log when the collaborator
// cannot produce a value.
func (s *CheckinService) score(ctx context.Context, symptoms string) *int {
	v, err := s.Scorer.Score(ctx, symptoms)
	if err != nil {
		log.Warn().Err(err).Msg("severity scoring failed; storing unscored")
		return nil
	}
	return &v
}
