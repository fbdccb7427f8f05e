// Package services – DashboardService
//
// Joins the data behind the dashboard view: streak figures, recent check-ins,
// and recent triage results. The three reads are independent, so they run
// concurrently and are joined before the response is assembled.
package services

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/healthloop/go-health-backend/internal/domain"
	"github.com/healthloop/go-health-backend/internal/repo"
)

// Default row counts for the dashboard panels.
const (
	dashboardRecentLogs   = 7
	dashboardRecentTriage = 5
)

// Dashboard is the joined summary payload.
type Dashboard struct {
	Streaks        StreakSummary         `json:"streaks"`
	RecentLogs     []domain.HealthLog    `json:"recent_logs"`
	RecentTriage   []domain.TriageResult `json:"recent_triage"`
	CheckedInToday bool                  `json:"checked_in_today"`
}

// DashboardService assembles the dashboard from the other services' data.
type DashboardService struct {
	DB      *gorm.DB
	Streaks *StreakService
}

// Summary fetches the dashboard panels concurrently and joins them. Any
// failed fetch fails the whole summary; the panels are cheap enough that
// partial rendering is not worth the complexity.
func (s *DashboardService) Summary(ctx context.Context, userID string, today time.Time) (*Dashboard, error) {
	tr := otel.Tracer("services/DashboardService")
	ctx, span := tr.Start(ctx, "Summary",
		trace.WithAttributes(attribute.String("user.id", userID)),
	)
	defer span.End()

	var d Dashboard
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		sum, err := s.Streaks.Summary(gctx, userID, today)
		if err != nil {
			return err
		}
		d.Streaks = sum
		return nil
	})
	g.Go(func() error {
		logs, err := repo.ListHealthLogs(gctx, s.DB, userID, dashboardRecentLogs)
		if err != nil {
			return err
		}
		d.RecentLogs = logs
		return nil
	})
	g.Go(func() error {
		results, err := repo.ListTriageResults(gctx, s.DB, userID, dashboardRecentTriage)
		if err != nil {
			return err
		}
		d.RecentTriage = results
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	date := today.Format(domain.DateLayout)
	for _, l := range d.RecentLogs {
		if l.Date == date {
			d.CheckedInToday = true
			break
		}
	}
	if d.RecentLogs == nil {
		d.RecentLogs = []domain.HealthLog{}
	}
	if d.RecentTriage == nil {
		d.RecentTriage = []domain.TriageResult{}
	}
	return &d, nil
}
