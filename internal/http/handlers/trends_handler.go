// Trend HTTP handler.
//
//   - GET /trends?window=7|30|90|365
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/healthloop/go-health-backend/internal/services"
	"github.com/healthloop/go-health-backend/internal/utils"
)

// GetTrends godoc
// @ID          getTrends
// @Summary     Trend report
// @Description Returns the severity-score series and triage-level distribution over a trailing window. The window must be 7, 30, 90, or 365 days.
// @Tags        Trends
// @Produce     json
//
// @Param       X-User-ID  header  string  false "User ID (demo header)"  example(user123)
// @Param       window     query   int     false "Window in days"  Enums(7, 30, 90, 365) default(30)
//
// @Success     200  {object}  services.TrendReport
// @Failure     400  {object}  handlers.ErrorResponse  "Unsupported window"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /trends [get]
func (h *Handlers) GetTrends(c *gin.Context) {
	window := utils.AtoiDefault(c.Query("window"), 30)

	rep, err := h.trendsSvc.Report(c.Request.Context(), userID(c), window, h.now())
	switch {
	case errors.Is(err, services.ErrInvalidWindow):
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "window must be 7, 30, 90, or 365 days")
		return
	case err != nil:
		fail(c, http.StatusInternalServerError, ErrCodeTrendsFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, rep)
}
