// Daily check-in HTTP handlers.
//
// This file exposes REST endpoints for the daily check-in resource:
//   - POST   /checkins        (submit today's check-in)
//   - PUT    /checkins/today  (replace today's entry)
//   - GET    /checkins        (list, ETag support)
//
// Handlers are transport-thin: they validate input, call application services,
// and translate results into HTTP responses (including conditional responses).
// It also declares the Handlers aggregate that groups every endpoint of the
// API and the userID helper shared by all of them.
package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/healthloop/go-health-backend/internal/domain"
	"github.com/healthloop/go-health-backend/internal/export"
	"github.com/healthloop/go-health-backend/internal/repo"
	"github.com/healthloop/go-health-backend/internal/services"
	"github.com/healthloop/go-health-backend/internal/utils"
)

//
// Service contracts (context-aware)
//

// CheckinService defines check-in lifecycle operations consumed by HTTP
// handlers. Implementations must honor the provided context.
type CheckinService interface {
	// Submit records today's check-in for the owner.
	Submit(ctx context.Context, userID, symptoms, notes string, today time.Time) (*domain.HealthLog, error)
	// ReplaceToday swaps the content of today's check-in.
	ReplaceToday(ctx context.Context, userID, symptoms, notes string, today time.Time) (*domain.HealthLog, error)
	// TodayStatus reports whether the owner already checked in today.
	TodayStatus(ctx context.Context, userID string, today time.Time) (*domain.HealthLog, bool, error)
	// List returns the owner's check-ins, most recent first.
	List(ctx context.Context, userID string, limit int) ([]domain.HealthLog, error)
}

// StreakService computes the owner's streak summary.
type StreakService interface {
	Summary(ctx context.Context, userID string, today time.Time) (services.StreakSummary, error)
}

// DashboardService assembles the joined dashboard view.
type DashboardService interface {
	Summary(ctx context.Context, userID string, today time.Time) (*services.Dashboard, error)
}

// TriageService runs symptom assessments and serves their history.
type TriageService interface {
	Assess(ctx context.Context, userID, symptoms string) (*domain.TriageResult, error)
	History(ctx context.Context, userID string, limit int) ([]domain.TriageResult, error)
}

// ChatService manages assistant conversations.
type ChatService interface {
	ActiveSession(ctx context.Context, userID string) (*domain.ChatSession, []domain.ChatMessage, error)
	Send(ctx context.Context, userID, message string) (*domain.ChatMessage, error)
}

// TrendsService builds trend reports over validated windows.
type TrendsService interface {
	Report(ctx context.Context, userID string, windowDays int, today time.Time) (*services.TrendReport, error)
}

// ExportService serializes the owner's full record for download.
type ExportService interface {
	Export(ctx context.Context, userID string, format export.Format) (data []byte, contentType, filename string, err error)
}

// ProfileService reads and saves owner profiles.
type ProfileService interface {
	Get(ctx context.Context, userID string) (*domain.UserProfile, error)
	Save(ctx context.Context, userID string, p *domain.UserProfile) (*domain.UserProfile, error)
}

//
// Handler wiring
//

// Handlers groups the HTTP endpoints of the health API. It depends on
// abstract service interfaces to keep transport concerns separate from
// business logic.
type Handlers struct {
	checkinSvc   CheckinService
	streakSvc    StreakService
	dashboardSvc DashboardService
	triageSvc    TriageService
	chatSvc      ChatService
	trendsSvc    TrendsService
	exportSvc    ExportService
	profileSvc   ProfileService

	// now is the clock used to resolve "today"; overridable in tests.
	now func() time.Time
}

// New constructs a Handlers instance bound to the given services.
func New(
	checkin CheckinService,
	streaks StreakService,
	dashboard DashboardService,
	triage TriageService,
	chat ChatService,
	trends TrendsService,
	exp ExportService,
	profile ProfileService,
) *Handlers {
	return &Handlers{
		checkinSvc:   checkin,
		streakSvc:    streaks,
		dashboardSvc: dashboard,
		triageSvc:    triage,
		chatSvc:      chat,
		trendsSvc:    trends,
		exportSvc:    exp,
		profileSvc:   profile,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// userID extracts the authenticated user id from Gin context (set by upstream
// middleware). If absent, it falls back to "X-User-ID" header (tests use it),
// and finally to "demo-user". It never touches c.Request if it's nil.
func userID(c *gin.Context) string {
	if v, ok := c.Get("userID"); ok {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	if c != nil && c.Request != nil {
		if h := strings.TrimSpace(c.GetHeader("X-User-ID")); h != "" {
			return h
		}
	}
	return "demo-user"
}

//
// DTOs
//

// CheckinRequest is the JSON payload for submitting or replacing a check-in.
type CheckinRequest struct {
	// Symptoms is the free-text symptom description (required).
	Symptoms string `json:"symptoms" binding:"required" example:"headache, mild fever since morning"`
	// Notes optionally adds context (sleep, diet, medication taken).
	Notes string `json:"notes" example:"slept 5 hours"`
}

// TodayStatusResponse reports whether today's check-in exists.
type TodayStatusResponse struct {
	Completed bool              `json:"completed"`
	Log       *domain.HealthLog `json:"log,omitempty"`
}

//
// Handlers
//

// CreateCheckin godoc
// @ID          createCheckin
// @Summary     Submit today's check-in
// @Description Records the daily symptom log and marks the day completed. Returns 409 when today's check-in already exists.
// @Tags        Check-ins
// @Accept      json
// @Produce     json
//
// @Param       X-User-ID        header  string  false "User ID (demo header)"  example(user123)
// @Param       Idempotency-Key  header  string  false "Safe-retry key"
// @Param       body             body    handlers.CheckinRequest  true  "Check-in payload"
//
// @Success     201  {object}  domain.HealthLog
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     409  {object}  handlers.ErrorResponse  "Already checked in today"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /checkins [post]
func (h *Handlers) CreateCheckin(c *gin.Context) {
	var req CheckinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	ctx := c.Request.Context()
	currentUser := userID(c)
	today := h.now()
	date := today.Format(domain.DateLayout)

	// Idempotency (replay path). The calendar date scopes the key, so a retry
	// of yesterday's submission can never shadow today's.
	idemKey := idempotencyKey(c)
	if idemKey != "" {
		if db := h.checkinDB(); db != nil {
			if rec, err := repo.GetIdempotency(ctx, db, currentUser, date, idemKey, time.Now().UTC()); err == nil && rec != nil {
				if prev, err2 := repo.GetHealthLogByDate(ctx, db, currentUser, date); err2 == nil {
					c.Header("Idempotency-Replayed", "true")
					ok(c, http.StatusOK, prev)
					return
				}
			}
		}
	}

	l, err := h.checkinSvc.Submit(ctx, currentUser, req.Symptoms, req.Notes, today)
	switch {
	case errors.Is(err, services.ErrCheckinExists):
		fail(c, http.StatusConflict, ErrCodeConflict, "check-in already exists for today")
		return
	case errors.Is(err, services.ErrEmptySymptoms), errors.Is(err, services.ErrTooLong):
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		return
	case err != nil:
		fail(c, http.StatusInternalServerError, ErrCodeCheckinFailed, err.Error())
		return
	}

	// Idempotency (store path), best effort.
	if idemKey != "" {
		if db := h.checkinDB(); db != nil {
			_, _ = repo.CreateIdempotency(ctx, db, currentUser, date, idemKey, l.ID, http.StatusCreated, 24*time.Hour)
		}
	}

	ok(c, http.StatusCreated, l)
}

// idempotencyKey reads the validated Idempotency-Key if an upstream middleware
// stashed it, falling back to the raw header.
func idempotencyKey(c *gin.Context) string {
	if v, ok := c.Get("idem.key"); ok {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	return strings.TrimSpace(c.GetHeader("Idempotency-Key"))
}

// ReplaceTodayCheckin godoc
// @ID          replaceTodayCheckin
// @Summary     Replace today's check-in
// @Description Swaps the content of today's entry; the day stays completed. Returns 404 when there is no entry to replace.
// @Tags        Check-ins
// @Accept      json
// @Produce     json
//
// @Param       X-User-ID  header  string  false "User ID (demo header)"  example(user123)
// @Param       body       body    handlers.CheckinRequest  true  "Replacement payload"
//
// @Success     200  {object}  domain.HealthLog
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "Nothing to replace"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /checkins/today [put]
func (h *Handlers) ReplaceTodayCheckin(c *gin.Context) {
	var req CheckinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	l, err := h.checkinSvc.ReplaceToday(c.Request.Context(), userID(c), req.Symptoms, req.Notes, h.now())
	switch {
	case errors.Is(err, services.ErrCheckinNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, "no check-in exists for today")
		return
	case errors.Is(err, services.ErrEmptySymptoms), errors.Is(err, services.ErrTooLong):
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		return
	case err != nil:
		fail(c, http.StatusInternalServerError, ErrCodeCheckinFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, l)
}

// ListCheckins godoc
// @ID          listCheckins
// @Summary     List check-ins
// @Description Returns the user's check-ins, most recent first. Supports weak ETag via If-None-Match and may return 304.
// @Tags        Check-ins
// @Produce     json
//
// @Param       X-User-ID      header  string  false "User ID (demo header)"       example(user123)
// @Param       If-None-Match  header  string  false "Return 304 if ETag matches"
// @Param       limit          query   int     false "Maximum rows (0 = all)"  minimum(0) maximum(365) default(30)
//
// @Success     200  {array}  domain.HealthLog
// @Header      200  {string} ETag  "Weak ETag for current result"
// @Success     304  {string} string "Not Modified"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /checkins [get]
func (h *Handlers) ListCheckins(c *gin.Context) {
	ctx := c.Request.Context()
	uid := userID(c)
	limit := clampLimit(c, 30, 365)

	// ETag pre-check (best effort).
	if db := h.checkinDB(); db != nil {
		count, maxTS, err := repo.HealthLogStats(ctx, db, uid)
		if err == nil {
			var ts int64
			if maxTS != nil {
				ts = maxTS.Unix()
			}
			etag := fmt.Sprintf(`W/"checkins:%s:%d:%d"`, uid, count, ts)
			c.Header("ETag", etag)
			if inm := c.GetHeader("If-None-Match"); inm != "" && inm == etag {
				c.Status(http.StatusNotModified)
				return
			}
		}
	}

	items, err := h.checkinSvc.List(ctx, uid, limit)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	if items == nil {
		items = []domain.HealthLog{}
	}
	ok(c, http.StatusOK, items)
}

// TodayCheckin godoc
// @ID          todayCheckin
// @Summary     Today's check-in status
// @Description Reports whether the user already checked in today, with the log when present.
// @Tags        Check-ins
// @Produce     json
//
// @Param       X-User-ID  header  string  false "User ID (demo header)"  example(user123)
//
// @Success     200  {object}  handlers.TodayStatusResponse
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /checkins/today [get]
func (h *Handlers) TodayCheckin(c *gin.Context) {
	l, done, err := h.checkinSvc.TodayStatus(c.Request.Context(), userID(c), h.now())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, TodayStatusResponse{Completed: done, Log: l})
}

// checkinDB exposes the underlying DB handle when the concrete service is in
// use, enabling the cheap stats query behind ETags. Fake services in tests
// simply skip the conditional path.
func (h *Handlers) checkinDB() *gorm.DB {
	if svc, ok := h.checkinSvc.(*services.CheckinService); ok {
		return svc.DB
	}
	return nil
}

// clampLimit parses and bounds the limit query param.
func clampLimit(c *gin.Context, def, max int) int {
	limit := utils.AtoiDefault(c.Query("limit"), def)
	if limit < 0 {
		limit = def
	}
	return utils.ClampInt(limit, 0, max)
}
