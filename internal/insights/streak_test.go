package insights

import (
	"testing"
	"time"
)

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestStreaks_EmptySet(t *testing.T) {
	got, err := Streaks(nil, day("2024-01-10"))
	if err != nil {
		t.Fatalf("Streaks: %v", err)
	}
	if got.CurrentStreak != 0 || got.LongestStreak != 0 || got.TotalDays != 0 {
		t.Fatalf("empty set should yield zeros, got %+v", got)
	}
}

func TestStreaks_ReferenceCase(t *testing.T) {
	dates := []string{"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-10"}
	got, err := Streaks(dates, day("2024-01-10"))
	if err != nil {
		t.Fatalf("Streaks: %v", err)
	}
	if got.CurrentStreak != 1 {
		t.Errorf("CurrentStreak = %d; want 1", got.CurrentStreak)
	}
	if got.LongestStreak != 3 {
		t.Errorf("LongestStreak = %d; want 3", got.LongestStreak)
	}
	if got.TotalDays != 4 {
		t.Errorf("TotalDays = %d; want 4", got.TotalDays)
	}
}

func TestStreaks_TodayMissingYieldsZeroCurrent(t *testing.T) {
	dates := []string{"2024-01-07", "2024-01-08", "2024-01-09"}
	got, err := Streaks(dates, day("2024-01-11"))
	if err != nil {
		t.Fatalf("Streaks: %v", err)
	}
	if got.CurrentStreak != 0 {
		t.Errorf("CurrentStreak = %d; want 0 (gap before today)", got.CurrentStreak)
	}
	if got.LongestStreak != 3 {
		t.Errorf("LongestStreak = %d; want 3", got.LongestStreak)
	}
}

func TestStreaks_TodayPresent(t *testing.T) {
	got, err := Streaks([]string{"2024-03-15"}, day("2024-03-15"))
	if err != nil {
		t.Fatalf("Streaks: %v", err)
	}
	if got.CurrentStreak < 1 {
		t.Fatalf("CurrentStreak = %d; want >= 1 when today is completed", got.CurrentStreak)
	}
}

func TestStreaks_DuplicatesDoNotExtendOrBreakRuns(t *testing.T) {
	dates := []string{
		"2024-02-01", "2024-02-02", "2024-02-02", "2024-02-02", "2024-02-03",
	}
	got, err := Streaks(dates, day("2024-02-03"))
	if err != nil {
		t.Fatalf("Streaks: %v", err)
	}
	if got.LongestStreak != 3 {
		t.Errorf("LongestStreak = %d; want 3 (duplicates deduplicated)", got.LongestStreak)
	}
	if got.CurrentStreak != 3 {
		t.Errorf("CurrentStreak = %d; want 3", got.CurrentStreak)
	}
	if got.TotalDays != 3 {
		t.Errorf("TotalDays = %d; want 3 distinct days", got.TotalDays)
	}
}

func TestStreaks_UnorderedInput(t *testing.T) {
	dates := []string{"2024-05-03", "2024-05-01", "2024-05-02"}
	got, err := Streaks(dates, day("2024-05-03"))
	if err != nil {
		t.Fatalf("Streaks: %v", err)
	}
	if got.CurrentStreak != 3 || got.LongestStreak != 3 {
		t.Fatalf("unordered input should still yield 3/3, got %+v", got)
	}
}

func TestStreaks_LongestNeverBelowCurrent(t *testing.T) {
	cases := [][]string{
		{"2024-01-10"},
		{"2024-01-09", "2024-01-10"},
		{"2024-01-01", "2024-01-05", "2024-01-09", "2024-01-10"},
		{"2024-01-06", "2024-01-07", "2024-01-08", "2024-01-09", "2024-01-10"},
	}
	today := day("2024-01-10")
	for _, dates := range cases {
		got, err := Streaks(dates, today)
		if err != nil {
			t.Fatalf("Streaks(%v): %v", dates, err)
		}
		if got.CurrentStreak > got.LongestStreak {
			t.Errorf("Streaks(%v): current %d > longest %d", dates, got.CurrentStreak, got.LongestStreak)
		}
	}
}

func TestStreaks_MalformedDateRejected(t *testing.T) {
	if _, err := Streaks([]string{"2024-01-01", "not-a-date"}, day("2024-01-02")); err == nil {
		t.Fatal("expected validation error for malformed date")
	}
}

func TestParseDate(t *testing.T) {
	if _, err := ParseDate("2024-02-29"); err != nil {
		t.Errorf("leap day should parse: %v", err)
	}
	if _, err := ParseDate("2023-02-29"); err == nil {
		t.Error("non-leap Feb 29 should be rejected")
	}
	if _, err := ParseDate("01/02/2024"); err == nil {
		t.Error("wrong layout should be rejected")
	}
}
