package insights

import (
	"reflect"
	"testing"
	"time"

	"github.com/healthloop/go-health-backend/internal/domain"
)

func intp(n int) *int { return &n }

func TestSeverityTrend_WindowFilterAndOrdering(t *testing.T) {
	today := day("2024-06-30")
	logs := []domain.HealthLog{
		{Date: "2024-06-29", SeverityScore: intp(40)},
		{Date: "2024-06-23", SeverityScore: intp(20)}, // exactly today-7: included
		{Date: "2024-06-22", SeverityScore: intp(90)}, // outside window
		{Date: "2024-06-30", SeverityScore: intp(10)},
	}

	points, err := SeverityTrend(logs, 7, today)
	if err != nil {
		t.Fatalf("SeverityTrend: %v", err)
	}
	want := []TrendPoint{
		{Date: "2024-06-23", SeverityScore: 20},
		{Date: "2024-06-29", SeverityScore: 40},
		{Date: "2024-06-30", SeverityScore: 10},
	}
	if !reflect.DeepEqual(points, want) {
		t.Fatalf("points = %v; want %v", points, want)
	}
}

func TestSeverityTrend_Deterministic(t *testing.T) {
	today := day("2024-06-30")
	logs := []domain.HealthLog{
		{Date: "2024-06-28", SeverityScore: intp(5)},
		{Date: "2024-06-27"},
		{Date: "2024-06-29", SeverityScore: intp(7)},
	}
	first, err := SeverityTrend(logs, 30, today)
	if err != nil {
		t.Fatalf("SeverityTrend: %v", err)
	}
	second, err := SeverityTrend(logs, 30, today)
	if err != nil {
		t.Fatalf("SeverityTrend: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatal("same inputs should yield identical ordered output")
	}
}

func TestSeverityTrend_RejectsUnknownWindow(t *testing.T) {
	if _, err := SeverityTrend(nil, 14, day("2024-06-30")); err == nil {
		t.Fatal("expected error for unsupported window")
	}
}

func TestSeverityTrend_RejectsMalformedDate(t *testing.T) {
	logs := []domain.HealthLog{{Date: "June 1st"}}
	if _, err := SeverityTrend(logs, 7, day("2024-06-30")); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestTriageDistribution_Tally(t *testing.T) {
	now := time.Date(2024, 6, 30, 12, 0, 0, 0, time.UTC)
	results := []domain.TriageResult{
		{TriageLevel: domain.TriageSelfMonitor, CreatedAt: now.AddDate(0, 0, -1)},
		{TriageLevel: domain.TriageSelfMonitor, CreatedAt: now.AddDate(0, 0, -2)},
		{TriageLevel: domain.TriageVisitDoctor, CreatedAt: now.AddDate(0, 0, -3)},
	}
	dist, err := TriageDistribution(results, 7, now)
	if err != nil {
		t.Fatalf("TriageDistribution: %v", err)
	}
	want := map[string]int{"self-monitor": 2, "visit-doctor": 1}
	if !reflect.DeepEqual(dist, want) {
		t.Fatalf("dist = %v; want %v", dist, want)
	}
}

func TestTriageDistribution_EmptyInputHasNoZeroKeys(t *testing.T) {
	dist, err := TriageDistribution(nil, 30, time.Now())
	if err != nil {
		t.Fatalf("TriageDistribution: %v", err)
	}
	if len(dist) != 0 {
		t.Fatalf("expected empty distribution, got %v", dist)
	}
}

func TestTriageDistribution_CutoffIsStartOfDay(t *testing.T) {
	now := time.Date(2024, 6, 30, 23, 59, 0, 0, time.UTC)
	// Created at 00:00:01 on the cutoff day: must be included.
	onCutoffDay := domain.TriageResult{
		TriageLevel: domain.TriageVisitDoctor,
		CreatedAt:   time.Date(2024, 6, 23, 0, 0, 1, 0, time.UTC),
	}
	// The instant before the cutoff day begins: excluded.
	beforeCutoff := domain.TriageResult{
		TriageLevel: domain.TriageSelfMonitor,
		CreatedAt:   time.Date(2024, 6, 22, 23, 59, 59, 0, time.UTC),
	}
	dist, err := TriageDistribution([]domain.TriageResult{onCutoffDay, beforeCutoff}, 7, now)
	if err != nil {
		t.Fatalf("TriageDistribution: %v", err)
	}
	if dist[domain.TriageVisitDoctor] != 1 {
		t.Errorf("record on cutoff day should be included: %v", dist)
	}
	if _, ok := dist[domain.TriageSelfMonitor]; ok {
		t.Errorf("record before cutoff day should be excluded: %v", dist)
	}
}

func TestTriageDistribution_UnknownLevelIsError(t *testing.T) {
	results := []domain.TriageResult{{TriageLevel: "emergency", CreatedAt: time.Now()}}
	if _, err := TriageDistribution(results, 7, time.Now()); err == nil {
		t.Fatal("expected error for unknown triage level")
	}
}

func TestTriageLabel(t *testing.T) {
	for level, want := range map[string]string{
		domain.TriageSelfMonitor: "Self Monitor",
		domain.TriageVisitDoctor: "Visit Doctor",
	} {
		got, err := TriageLabel(level)
		if err != nil {
			t.Fatalf("TriageLabel(%q): %v", level, err)
		}
		if got != want {
			t.Errorf("TriageLabel(%q) = %q; want %q", level, got, want)
		}
	}
	if _, err := TriageLabel("urgent-care"); err == nil {
		t.Error("unknown level must not be coerced into a label")
	}
}

func TestValidWindow(t *testing.T) {
	for _, ok := range []int{7, 30, 90, 365} {
		if !ValidWindow(ok) {
			t.Errorf("ValidWindow(%d) = false", ok)
		}
	}
	for _, bad := range []int{0, -7, 14, 60, 366} {
		if ValidWindow(bad) {
			t.Errorf("ValidWindow(%d) = true", bad)
		}
	}
}
