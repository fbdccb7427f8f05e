// Package services – TriageService
//
// Runs AI-assisted symptom triage: the collaborator produces an assessment,
// which is persisted as an immutable TriageResult. Collaborator failures are
// surfaced as ErrAssistantUnavailable so the handler can tell the client to
// retry; nothing is persisted for a failed assessment.
package services

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/healthloop/go-health-backend/internal/assistant"
	"github.com/healthloop/go-health-backend/internal/domain"
	"github.com/healthloop/go-health-backend/internal/repo"
)

// Assessor is the triage collaborator contract required by TriageService.
type Assessor interface {
	// Assess evaluates symptom text and returns a structured assessment with
	// a validated triage level.
	Assess(ctx context.Context, symptoms string) (assistant.Assessment, error)
}

// TriageService coordinates symptom assessment and triage history.
type TriageService struct {
	DB       *gorm.DB
	Assessor Assessor

	// MaxSymptomRunes caps symptom text by rune length. Zero disables the cap.
	MaxSymptomRunes int
}

// NewTriageService constructs a TriageService.
func NewTriageService(db *gorm.DB, a Assessor) *TriageService {
	return &TriageService{DB: db, Assessor: a, MaxSymptomRunes: 4000}
}

// Assess evaluates the owner's symptoms through the collaborator and persists
// the result. The stored row is immutable: it is never updated or deleted.
func (s *TriageService) Assess(ctx context.Context, userID, symptoms string) (*domain.TriageResult, error) {
	tr := otel.Tracer("services/TriageService")
	ctx, span := tr.Start(ctx, "Assess",
		trace.WithAttributes(attribute.String("user.id", userID)),
	)
	defer span.End()

	symptoms = strings.TrimSpace(symptoms)
	if symptoms == "" {
		return nil, ErrEmptySymptoms
	}
	if s.MaxSymptomRunes > 0 && utf8.RuneCountInString(symptoms) > s.MaxSymptomRunes {
		return nil, ErrTooLong
	}

	a, err := s.Assessor.Assess(ctx, symptoms)
	if err != nil {
		if errors.Is(err, assistant.ErrUnavailable) {
			return nil, ErrAssistantUnavailable
		}
		return nil, err
	}

	return repo.CreateTriageResult(ctx, s.DB, userID, symptoms,
		a.TriageLevel, a.Confidence, a.Reasoning, a.RecommendedAction, a.DetailedAnalysis)
}

// History returns the owner's assessments, most recent first. limit <= 0
// returns everything.
func (s *TriageService) History(ctx context.Context, userID string, limit int) ([]domain.TriageResult, error) {
	return repo.ListTriageResults(ctx, s.DB, userID, limit)
}
