// Symptom triage HTTP handlers.
//
//   - POST /triage  (run an AI-assisted assessment)
//   - GET  /triage  (assessment history, ETag support)
package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/healthloop/go-health-backend/internal/domain"
	"github.com/healthloop/go-health-backend/internal/repo"
	"github.com/healthloop/go-health-backend/internal/services"
)

// TriageRequest is the JSON payload for a triage assessment.
type TriageRequest struct {
	// Symptoms is the free-text description to assess (required).
	Symptoms string `json:"symptoms" binding:"required" example:"sharp chest pain when breathing deeply"`
}

// CreateTriage godoc
// @ID          createTriage
// @Summary     Assess symptoms
// @Description Runs an AI-assisted triage assessment and stores the immutable result. Returns 503 when the assistant is unavailable; the request can be retried.
// @Tags        Triage
// @Accept      json
// @Produce     json
//
// @Param       X-User-ID  header  string  false "User ID (demo header)"  example(user123)
// @Param       body       body    handlers.TriageRequest  true  "Symptoms to assess"
//
// @Success     201  {object}  domain.TriageResult
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     503  {object}  handlers.ErrorResponse  "Assistant unavailable"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /triage [post]
func (h *Handlers) CreateTriage(c *gin.Context) {
	var req TriageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	r, err := h.triageSvc.Assess(c.Request.Context(), userID(c), req.Symptoms)
	switch {
	case errors.Is(err, services.ErrEmptySymptoms), errors.Is(err, services.ErrTooLong):
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		return
	case errors.Is(err, services.ErrAssistantUnavailable):
		fail(c, http.StatusServiceUnavailable, ErrCodeAssistantUnavailable, "assessment service unavailable, try again shortly")
		return
	case err != nil:
		fail(c, http.StatusInternalServerError, ErrCodeTriageFailed, err.Error())
		return
	}
	ok(c, http.StatusCreated, r)
}

// ListTriage godoc
// @ID          listTriage
// @Summary     Triage history
// @Description Returns past assessments, most recent first. Supports weak ETag via If-None-Match and may return 304.
// @Tags        Triage
// @Produce     json
//
// @Param       X-User-ID      header  string  false "User ID (demo header)"  example(user123)
// @Param       If-None-Match  header  string  false "Return 304 if ETag matches"
// @Param       limit          query   int     false "Maximum rows (0 = all)"  minimum(0) maximum(365) default(30)
//
// @Success     200  {array}  domain.TriageResult
// @Header      200  {string} ETag  "Weak ETag for current result"
// @Success     304  {string} string "Not Modified"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /triage [get]
func (h *Handlers) ListTriage(c *gin.Context) {
	ctx := c.Request.Context()
	uid := userID(c)
	limit := clampLimit(c, 30, 365)

	if db := h.triageDB(); db != nil {
		count, maxTS, err := repo.TriageStats(ctx, db, uid)
		if err == nil {
			var ts int64
			if maxTS != nil {
				ts = maxTS.Unix()
			}
			etag := fmt.Sprintf(`W/"triage:%s:%d:%d"`, uid, count, ts)
			c.Header("ETag", etag)
			if inm := c.GetHeader("If-None-Match"); inm != "" && inm == etag {
				c.Status(http.StatusNotModified)
				return
			}
		}
	}

	items, err := h.triageSvc.History(ctx, uid, limit)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	if items == nil {
		items = []domain.TriageResult{}
	}
	ok(c, http.StatusOK, items)
}

// triageDB exposes the DB handle behind the concrete triage service for the
// ETag stats query. Fakes skip the conditional path.
func (h *Handlers) triageDB() *gorm.DB {
	if svc, ok := h.triageSvc.(*services.TriageService); ok {
		return svc.DB
	}
	return nil
}
