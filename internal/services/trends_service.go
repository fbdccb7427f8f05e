// Package services – TrendsService
//
// Assembles the trend report for one owner: the time-ordered severity series
// and the triage level distribution over a validated trailing window. The
// service fetches only the window's rows and hands them to internal/insights
// for the pure computation.
package services

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/healthloop/go-health-backend/internal/domain"
	"github.com/healthloop/go-health-backend/internal/insights"
	"github.com/healthloop/go-health-backend/internal/repo"
)

// TrendReport is the trends endpoint payload. TriageLabels carries the
// chart-ready display label for every level present in the distribution.
type TrendReport struct {
	WindowDays         int                   `json:"window_days"`
	SeverityTrend      []insights.TrendPoint `json:"severity_trend"`
	TriageDistribution map[string]int        `json:"triage_distribution"`
	TriageLabels       map[string]string     `json:"triage_labels"`
}

// TrendsService computes trend reports over the owner's logs and triage
// history.
type TrendsService struct {
	DB *gorm.DB
}

// Report builds the owner's trend report for the requested window. An
// unsupported window size yields ErrInvalidWindow before any query runs.
func (s *TrendsService) Report(ctx context.Context, userID string, windowDays int, today time.Time) (*TrendReport, error) {
	tr := otel.Tracer("services/TrendsService")
	ctx, span := tr.Start(ctx, "Report",
		trace.WithAttributes(
			attribute.String("user.id", userID),
			attribute.Int("window.days", windowDays),
		),
	)
	defer span.End()

	if !insights.ValidWindow(windowDays) {
		return nil, ErrInvalidWindow
	}

	since := today.AddDate(0, 0, -windowDays).Format(domain.DateLayout)
	logs, err := repo.ListHealthLogsSince(ctx, s.DB, userID, since)
	if err != nil {
		return nil, err
	}

	day := today.AddDate(0, 0, -windowDays)
	cutoff := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	results, err := repo.ListTriageResultsSince(ctx, s.DB, userID, cutoff)
	if err != nil {
		return nil, err
	}

	series, err := insights.SeverityTrend(logs, windowDays, today)
	if err != nil {
		return nil, err
	}
	dist, err := insights.TriageDistribution(results, windowDays, today)
	if err != nil {
		return nil, err
	}

	labels := make(map[string]string, len(dist))
	for level := range dist {
		label, err := insights.TriageLabel(level)
		if err != nil {
			return nil, err
		}
		labels[level] = label
	}

	return &TrendReport{
		WindowDays:         windowDays,
		SeverityTrend:      series,
		TriageDistribution: dist,
		TriageLabels:       labels,
	}, nil
}
