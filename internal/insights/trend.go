package insights

import (
	"fmt"
	"sort"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/healthloop/go-health-backend/internal/domain"
)

// Trend windows selectable by the caller, in days.
var validWindows = map[int]struct{}{7: {}, 30: {}, 90: {}, 365: {}}

// ValidWindow reports whether days is one of the supported trend windows
// (7, 30, 90, 365).
func ValidWindow(days int) bool {
	_, ok := validWindows[days]
	return ok
}

// TrendPoint is one charted day: its calendar date and severity score.
type TrendPoint struct {
	Date          string `json:"date"`
	SeverityScore int    `json:"severity_score"`
}

// SeverityTrend filters logs to those dated within the trailing window and
// returns them as a time-ordered series. Logs without a severity score are
// charted as zero. A malformed log date is a validation error.
//
// The window is inclusive: a log dated exactly today-windowDays is included.
// Re-running on the same inputs always yields the same ordered output.
func SeverityTrend(logs []domain.HealthLog, windowDays int, today time.Time) ([]TrendPoint, error) {
	if !ValidWindow(windowDays) {
		return nil, fmt.Errorf("unsupported trend window: %d days", windowDays)
	}
	cutoff := today.AddDate(0, 0, -windowDays).Format(domain.DateLayout)

	points := make([]TrendPoint, 0, len(logs))
	for _, l := range logs {
		if _, err := ParseDate(l.Date); err != nil {
			return nil, err
		}
		// Lexicographic compare is date order for the fixed layout.
		if l.Date < cutoff {
			continue
		}
		p := TrendPoint{Date: l.Date}
		if l.SeverityScore != nil {
			p.SeverityScore = *l.SeverityScore
		}
		points = append(points, p)
	}
	sort.SliceStable(points, func(i, j int) bool { return points[i].Date < points[j].Date })
	return points, nil
}

// TriageDistribution tallies triage levels for results created within the
// trailing window. The cutoff compares against start-of-day (00:00:00) of
// today-windowDays, so a result at any time of the cutoff day is included.
// Unseen levels are omitted from the map, not reported as zero.
//
// A level outside the known enum is a contract violation by the upstream
// assessment collaborator and is returned as an error, never coerced.
func TriageDistribution(results []domain.TriageResult, windowDays int, today time.Time) (map[string]int, error) {
	if !ValidWindow(windowDays) {
		return nil, fmt.Errorf("unsupported trend window: %d days", windowDays)
	}
	day := today.AddDate(0, 0, -windowDays)
	cutoff := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())

	dist := make(map[string]int)
	for _, r := range results {
		if r.CreatedAt.Before(cutoff) {
			continue
		}
		switch r.TriageLevel {
		case domain.TriageSelfMonitor, domain.TriageVisitDoctor:
			dist[r.TriageLevel]++
		default:
			return nil, fmt.Errorf("unknown triage level %q", r.TriageLevel)
		}
	}
	return dist, nil
}

// titleCaser renders enum words for chart labels ("self monitor" → "Self Monitor").
var titleCaser = cases.Title(language.English)

// TriageLabel maps a triage level enum value to its chart label:
// self-monitor → "Self Monitor", visit-doctor → "Visit Doctor". Any other
// value is an error.
func TriageLabel(level string) (string, error) {
	switch level {
	case domain.TriageSelfMonitor, domain.TriageVisitDoctor:
	default:
		return "", fmt.Errorf("unknown triage level %q", level)
	}
	out := make([]byte, 0, len(level))
	for i := 0; i < len(level); i++ {
		if level[i] == '-' {
			out = append(out, ' ')
		} else {
			out = append(out, level[i])
		}
	}
	return titleCaser.String(string(out)), nil
}
