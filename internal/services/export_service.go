// Package services – ExportService
//
// Produces downloadable exports of an owner's complete health record. The
// service fetches every log and triage result (most recent first, the order
// the serializer preserves) and delegates formatting to internal/export.
package services

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/healthloop/go-health-backend/internal/export"
	"github.com/healthloop/go-health-backend/internal/repo"
)

// ExportService serializes an owner's full record for download.
type ExportService struct {
	DB *gorm.DB
}

// Export renders the owner's logs and triage history in the given format and
// returns the payload alongside its content type and attachment filename.
func (s *ExportService) Export(ctx context.Context, userID string, format export.Format) (data []byte, contentType, filename string, err error) {
	tr := otel.Tracer("services/ExportService")
	ctx, span := tr.Start(ctx, "Export",
		trace.WithAttributes(
			attribute.String("user.id", userID),
			attribute.String("export.format", string(format)),
		),
	)
	defer span.End()

	logs, err := repo.ListHealthLogs(ctx, s.DB, userID, 0)
	if err != nil {
		return nil, "", "", err
	}
	results, err := repo.ListTriageResults(ctx, s.DB, userID, 0)
	if err != nil {
		return nil, "", "", err
	}

	payload, err := export.Serialize(logs, results, format)
	if err != nil {
		return nil, "", "", err
	}
	return []byte(payload), format.ContentType(), format.Filename(), nil
}
