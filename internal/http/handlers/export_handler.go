// Export HTTP handler.
//
//   - GET /export?format=csv|json  (attachment download)
package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/healthloop/go-health-backend/internal/export"
)

// GetExport godoc
// @ID          getExport
// @Summary     Export health data
// @Description Downloads the user's complete record history as a CSV or JSON attachment.
// @Tags        Export
// @Produce     json
// @Produce     text/csv
//
// @Param       X-User-ID  header  string  false "User ID (demo header)"  example(user123)
// @Param       format     query   string  false "Payload format"  Enums(csv, json) default(csv)
//
// @Success     200  {string}  string  "Exported payload"
// @Header      200  {string}  Content-Disposition  "attachment; filename=health_data_export.csv"
// @Failure     400  {object}  handlers.ErrorResponse  "Unsupported format"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /export [get]
func (h *Handlers) GetExport(c *gin.Context) {
	raw := c.DefaultQuery("format", string(export.FormatCSV))
	format, err := export.ParseFormat(raw)
	if err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "format must be csv or json")
		return
	}

	data, contentType, filename, err := h.exportSvc.Export(c.Request.Context(), userID(c), format)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeExportFailed, err.Error())
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, contentType, data)
}
