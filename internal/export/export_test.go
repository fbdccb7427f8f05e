package export

import (
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/healthloop/go-health-backend/internal/domain"
)

func intp(n int) *int { return &n }

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat("csv"); err != nil || f != FormatCSV {
		t.Fatalf("ParseFormat(csv) = %v, %v", f, err)
	}
	if f, err := ParseFormat("json"); err != nil || f != FormatJSON {
		t.Fatalf("ParseFormat(json) = %v, %v", f, err)
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestSerializeCSV_HeaderAndRowOrder(t *testing.T) {
	logs := []domain.HealthLog{
		{Date: "2024-01-02", Symptoms: "headache", SeverityScore: intp(35), Notes: "slept badly"},
		{Date: "2024-01-01", Symptoms: "cough"},
	}
	triage := []domain.TriageResult{
		{
			Symptoms:    "fever",
			TriageLevel: domain.TriageVisitDoctor,
			Confidence:  "High",
			CreatedAt:   time.Date(2024, 1, 3, 18, 30, 0, 0, time.UTC),
		},
	}

	out, err := Serialize(logs, triage, FormatCSV)
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}

	rows, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("re-parse CSV: %v", err)
	}
	if got := strings.Join(rows[0], ","); got != "Type,Date,Content,Score,Additional Info" {
		t.Fatalf("header = %q", got)
	}
	// Input order preserved: logs first as supplied, then triage.
	if rows[1][0] != "Health Log" || rows[1][1] != "2024-01-02" || rows[1][3] != "35" {
		t.Errorf("row 1 = %v", rows[1])
	}
	if rows[2][1] != "2024-01-01" || rows[2][3] != "" {
		t.Errorf("row 2 = %v (missing score must be empty)", rows[2])
	}
	if rows[3][0] != "Triage" || rows[3][1] != "2024-01-03" {
		t.Errorf("row 3 = %v (date portion of timestamp expected)", rows[3])
	}
	if rows[3][4] != "visit-doctor (High)" {
		t.Errorf("triage info column = %q", rows[3][4])
	}
}

func TestSerializeCSV_QuotingRoundTrip(t *testing.T) {
	tricky := `He said, "ok"`
	logs := []domain.HealthLog{{Date: "2024-02-01", Symptoms: tricky, Notes: "a,b"}}

	out, err := Serialize(logs, nil, FormatCSV)
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	rows, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("re-parse CSV: %v", err)
	}
	if len(rows) != 2 || len(rows[1]) != 5 {
		t.Fatalf("column boundaries corrupted: %v", rows)
	}
	if rows[1][2] != tricky {
		t.Fatalf("symptoms round-trip = %q; want %q", rows[1][2], tricky)
	}
	if rows[1][4] != "a,b" {
		t.Fatalf("notes round-trip = %q", rows[1][4])
	}
}

func TestSerializeJSON_VerbatimFields(t *testing.T) {
	tricky := `He said, "ok"`
	logs := []domain.HealthLog{{ID: "l1", UserID: "u1", Date: "2024-02-01", Symptoms: tricky, SeverityScore: intp(12)}}
	triage := []domain.TriageResult{{
		ID: "t1", UserID: "u1", Symptoms: "fever",
		TriageLevel: domain.TriageSelfMonitor, Confidence: "Low",
		Reasoning: "mild", RecommendedAction: "rest", DetailedAnalysis: "nothing alarming",
	}}

	out, err := Serialize(logs, triage, FormatJSON)
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}

	var doc struct {
		HealthLogs    []domain.HealthLog    `json:"health_logs"`
		TriageHistory []domain.TriageResult `json:"triage_history"`
	}
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("re-parse JSON: %v", err)
	}
	if len(doc.HealthLogs) != 1 || doc.HealthLogs[0].Symptoms != tricky {
		t.Fatalf("health log not reproduced verbatim: %+v", doc.HealthLogs)
	}
	if doc.HealthLogs[0].SeverityScore == nil || *doc.HealthLogs[0].SeverityScore != 12 {
		t.Fatal("severity score lost in JSON export")
	}
	if doc.TriageHistory[0].Reasoning != "mild" || doc.TriageHistory[0].DetailedAnalysis != "nothing alarming" {
		t.Fatalf("triage fields lost: %+v", doc.TriageHistory[0])
	}
	if !strings.Contains(out, "\n  ") {
		t.Error("JSON export should be indented for readability")
	}
}

func TestSerializeJSON_EmptyCollections(t *testing.T) {
	out, err := Serialize(nil, nil, FormatJSON)
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	if strings.Contains(out, "null") {
		t.Fatalf("empty collections should serialize as [], got:\n%s", out)
	}
}

func TestFormatHelpers(t *testing.T) {
	if FormatCSV.ContentType() != "text/csv" || FormatJSON.ContentType() != "application/json" {
		t.Error("unexpected content types")
	}
	if FormatCSV.Filename() != "health_data_export.csv" {
		t.Errorf("Filename = %q", FormatCSV.Filename())
	}
}
