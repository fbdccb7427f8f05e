// Package services – StreakService
//
// Computes the owner's check-in streaks from persisted streak markers. The
// heavy lifting lives in internal/insights; this service only fetches the
// completed dates and the log count and forwards them.
package services

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/healthloop/go-health-backend/internal/insights"
	"github.com/healthloop/go-health-backend/internal/repo"
)

// StreakSummary is the payload of the streaks endpoint: the two streak
// figures plus the owner's total number of check-ins.
type StreakSummary struct {
	CurrentStreak int   `json:"current_streak"`
	LongestStreak int   `json:"longest_streak"`
	TotalDays     int   `json:"total_days"`
	TotalLogs     int64 `json:"total_logs"`
}

// StreakService derives streak figures from the marker table. A missing
// marker simply means the day was not completed; it is never an error.
type StreakService struct {
	DB *gorm.DB
}

// Summary computes the owner's current and longest streaks as of today,
// together with the total log count.
func (s *StreakService) Summary(ctx context.Context, userID string, today time.Time) (StreakSummary, error) {
	tr := otel.Tracer("services/StreakService")
	ctx, span := tr.Start(ctx, "Summary",
		trace.WithAttributes(attribute.String("user.id", userID)),
	)
	defer span.End()

	dates, err := repo.ListCompletedDates(ctx, s.DB, userID)
	if err != nil {
		return StreakSummary{}, err
	}
	stats, err := insights.Streaks(dates, today)
	if err != nil {
		return StreakSummary{}, err
	}

	total, _, err := repo.HealthLogStats(ctx, s.DB, userID)
	if err != nil {
		return StreakSummary{}, err
	}

	return StreakSummary{
		CurrentStreak: stats.CurrentStreak,
		LongestStreak: stats.LongestStreak,
		TotalDays:     stats.TotalDays,
		TotalLogs:     total,
	}, nil
}
