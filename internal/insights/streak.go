// Package insights contains the pure derived computations of the health
// tracker: streak statistics over completion dates and trend aggregation over
// time-stamped health and triage records. Functions here perform no I/O and
// are deterministic given their inputs, which keeps them trivially testable
// without a database or clock.
package insights

import (
	"fmt"
	"sort"
	"time"

	"github.com/healthloop/go-health-backend/internal/domain"
)

// StreakStats is the result of a streak computation.
type StreakStats struct {
	// CurrentStreak counts consecutive completed days ending at the
	// reference date. Zero when the reference date itself is not completed.
	CurrentStreak int `json:"current_streak"`
	// LongestStreak is the longest run of consecutive completed days ever
	// recorded. Never smaller than CurrentStreak.
	LongestStreak int `json:"longest_streak"`
	// TotalDays is the number of distinct completed dates.
	TotalDays int `json:"total_days"`
}

// ParseDate validates and parses a calendar date in domain.DateLayout.
// Malformed input is rejected with a validation error rather than coerced.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid calendar date %q: %w", s, err)
	}
	return d, nil
}

// Streaks computes current and longest streaks from the set of completed
// dates. The input may be unordered and may contain duplicates; it is
// deduplicated before scanning so a repeated date neither extends nor breaks
// a run. today is the caller-supplied reference date (the current calendar
// date in the owner's reporting timezone).
//
// A date string that fails to parse aborts the computation with an error;
// callers are expected to feed already-validated records, so this is a
// boundary check, not a recovery path.
func Streaks(dates []string, today time.Time) (StreakStats, error) {
	if len(dates) == 0 {
		return StreakStats{}, nil
	}

	seen := make(map[string]struct{}, len(dates))
	days := make([]time.Time, 0, len(dates))
	for _, s := range dates {
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		d, err := ParseDate(s)
		if err != nil {
			return StreakStats{}, err
		}
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	stats := StreakStats{
		CurrentStreak: currentStreak(seen, today),
		LongestStreak: longestStreak(days),
		TotalDays:     len(days),
	}
	// The run ending today is itself a run; never report longest below it.
	if stats.LongestStreak < stats.CurrentStreak {
		stats.LongestStreak = stats.CurrentStreak
	}
	return stats, nil
}

// currentStreak walks consecutive calendar days backward from today and
// counts how many are present in the completed set. A missing entry for
// today itself yields zero.
func currentStreak(completed map[string]struct{}, today time.Time) int {
	n := 0
	for {
		key := today.AddDate(0, 0, -n).Format(domain.DateLayout)
		if _, ok := completed[key]; !ok {
			return n
		}
		n++
	}
}

// longestStreak scans deduplicated, ascending dates and tracks the longest
// run where consecutive entries are exactly one calendar day apart.
func longestStreak(days []time.Time) int {
	longest, run := 0, 0
	for i, d := range days {
		if i > 0 && daysBetween(days[i-1], d) == 1 {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}

// daysBetween returns the whole calendar days from a to b. Both values come
// from ParseDate and therefore carry no time-of-day component.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a) / (24 * time.Hour))
}
