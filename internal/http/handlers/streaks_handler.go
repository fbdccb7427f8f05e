// Streak and dashboard HTTP handlers.
//
//   - GET /streaks    (current/longest streak and totals)
//   - GET /dashboard  (joined summary of streaks, recent logs, recent triage)
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetStreaks godoc
// @ID          getStreaks
// @Summary     Check-in streaks
// @Description Returns the user's current streak, longest streak, completed-day count, and total log count.
// @Tags        Streaks
// @Produce     json
//
// @Param       X-User-ID  header  string  false "User ID (demo header)"  example(user123)
//
// @Success     200  {object}  services.StreakSummary
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /streaks [get]
func (h *Handlers) GetStreaks(c *gin.Context) {
	sum, err := h.streakSvc.Summary(c.Request.Context(), userID(c), h.now())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, sum)
}

// GetDashboard godoc
// @ID          getDashboard
// @Summary     Dashboard summary
// @Description Returns the joined dashboard view: streak figures, recent check-ins, recent triage results, and today's completion flag.
// @Tags        Dashboard
// @Produce     json
//
// @Param       X-User-ID  header  string  false "User ID (demo header)"  example(user123)
//
// @Success     200  {object}  services.Dashboard
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /dashboard [get]
func (h *Handlers) GetDashboard(c *gin.Context) {
	d, err := h.dashboardSvc.Summary(c.Request.Context(), userID(c), h.now())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, d)
}
