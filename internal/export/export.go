// Package export serializes an owner's full record history into portable
// payloads. Two formats are supported: a flat CSV suitable for spreadsheets
// and an indented JSON document holding both collections verbatim.
//
// The formats are round-trip-equivalent in content but not in structure: CSV
// flattens the triage level and confidence into one composed column and drops
// the reasoning/analysis fields, which is an accepted limitation of the flat
// format, while JSON reproduces every field. Row order follows the input
// collection order; the serializer never re-sorts.
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/healthloop/go-health-backend/internal/domain"
)

// Format selects the export payload encoding.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// ParseFormat validates a caller-supplied format string.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatCSV:
		return FormatCSV, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported export format %q", s)
	}
}

// ContentType returns the MIME type for the format.
func (f Format) ContentType() string {
	if f == FormatJSON {
		return "application/json"
	}
	return "text/csv"
}

// Filename returns the download file name for the format.
func (f Format) Filename() string {
	return "health_data_export." + string(f)
}

// csvHeader is the fixed CSV header row.
var csvHeader = []string{"Type", "Date", "Content", "Score", "Additional Info"}

// document is the JSON export shape: both collections verbatim.
type document struct {
	HealthLogs    []domain.HealthLog    `json:"health_logs"`
	TriageHistory []domain.TriageResult `json:"triage_history"`
}

// Serialize renders the two record collections into a single payload in the
// requested format. HealthLog rows come first in their supplied order, then
// TriageResult rows in theirs.
func Serialize(logs []domain.HealthLog, triage []domain.TriageResult, format Format) (string, error) {
	switch format {
	case FormatCSV:
		return serializeCSV(logs, triage)
	case FormatJSON:
		return serializeJSON(logs, triage)
	default:
		return "", fmt.Errorf("unsupported export format %q", format)
	}
}

// serializeCSV writes one row per record. Field values containing the
// delimiter are quoted and embedded quotes doubled by encoding/csv
// (RFC 4180), so free-text symptoms round-trip without corrupting columns.
func serializeCSV(logs []domain.HealthLog, triage []domain.TriageResult) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return "", err
	}
	for _, l := range logs {
		score := ""
		if l.SeverityScore != nil {
			score = strconv.Itoa(*l.SeverityScore)
		}
		row := []string{"Health Log", l.Date, l.Symptoms, score, l.Notes}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	for _, tr := range triage {
		info := fmt.Sprintf("%s (%s)", tr.TriageLevel, tr.Confidence)
		row := []string{"Triage", tr.CreatedAt.Format(domain.DateLayout), tr.Symptoms, "", info}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// serializeJSON emits both collections verbatim, indented for readability.
// Empty collections serialize as [] rather than null.
func serializeJSON(logs []domain.HealthLog, triage []domain.TriageResult) (string, error) {
	doc := document{HealthLogs: logs, TriageHistory: triage}
	if doc.HealthLogs == nil {
		doc.HealthLogs = []domain.HealthLog{}
	}
	if doc.TriageHistory == nil {
		doc.TriageHistory = []domain.TriageResult{}
	}
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}
