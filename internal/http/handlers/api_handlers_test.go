package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/healthloop/go-health-backend/internal/domain"
	"github.com/healthloop/go-health-backend/internal/export"
	"github.com/healthloop/go-health-backend/internal/services"
)

// ---------- GET /streaks ----------

func TestGetStreaks(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := newTestHandlers(nil, stubStreakSvc{
		summary: func(ctx context.Context, userID string, today time.Time) (services.StreakSummary, error) {
			return services.StreakSummary{CurrentStreak: 2, LongestStreak: 5, TotalDays: 9, TotalLogs: 9}, nil
		},
	}, nil, nil, nil, nil, nil, nil)
	r.GET("/streaks", h.GetStreaks)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/streaks", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var sum services.StreakSummary
	if err := json.Unmarshal(w.Body.Bytes(), &sum); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if sum.CurrentStreak != 2 || sum.LongestStreak != 5 {
		t.Errorf("summary = %+v", sum)
	}
}

// ---------- GET /dashboard ----------

func TestGetDashboard(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := newTestHandlers(nil, nil, stubDashboardSvc{
		summary: func(ctx context.Context, userID string, today time.Time) (*services.Dashboard, error) {
			return &services.Dashboard{
				Streaks:        services.StreakSummary{CurrentStreak: 1},
				RecentLogs:     []domain.HealthLog{{ID: "l1"}},
				RecentTriage:   []domain.TriageResult{},
				CheckedInToday: true,
			}, nil
		},
	}, nil, nil, nil, nil, nil)
	r.GET("/dashboard", h.GetDashboard)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"checked_in_today":true`) {
		t.Errorf("body = %s", w.Body.String())
	}
}

// ---------- POST /triage ----------

func TestCreateTriage_ServiceUnavailable(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := newTestHandlers(nil, nil, nil, stubTriageSvc{
		assess: func(ctx context.Context, userID, symptoms string) (*domain.TriageResult, error) {
			return nil, services.ErrAssistantUnavailable
		},
	}, nil, nil, nil, nil)
	r.POST("/triage", h.CreateTriage)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/triage", bytes.NewBufferString(`{"symptoms":"chest pain"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d; want 503", w.Code)
	}
	var resp ErrorResponse
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Code != ErrCodeAssistantUnavailable {
		t.Errorf("code = %q", resp.Code)
	}
}

func TestCreateTriage_Success(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := newTestHandlers(nil, nil, nil, stubTriageSvc{
		assess: func(ctx context.Context, userID, symptoms string) (*domain.TriageResult, error) {
			return &domain.TriageResult{ID: "t1", TriageLevel: domain.TriageSelfMonitor, Confidence: "Medium"}, nil
		},
	}, nil, nil, nil, nil)
	r.POST("/triage", h.CreateTriage)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/triage", bytes.NewBufferString(`{"symptoms":"mild cough"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d; body=%s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"triage_level":"self-monitor"`) {
		t.Errorf("body = %s", w.Body.String())
	}
}

// ---------- GET /chat, POST /chat/messages ----------

func TestGetChat(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := newTestHandlers(nil, nil, nil, nil, stubChatSvc{
		active: func(ctx context.Context, userID string) (*domain.ChatSession, []domain.ChatMessage, error) {
			return &domain.ChatSession{ID: "s1", SessionType: "general"}, nil, nil
		},
	}, nil, nil, nil)
	r.GET("/chat", h.GetChat)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/chat", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp ChatTranscriptResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Session == nil || resp.Session.ID != "s1" {
		t.Errorf("session = %+v", resp.Session)
	}
	if resp.Messages == nil {
		t.Errorf("messages must be [], not null")
	}
}

func TestSendChatMessage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := newTestHandlers(nil, nil, nil, nil, stubChatSvc{
		send: func(ctx context.Context, userID, message string) (*domain.ChatMessage, error) {
			return &domain.ChatMessage{ID: "m1", Role: domain.RoleAssistant, Content: "rest and hydrate"}, nil
		},
	}, nil, nil, nil)
	r.POST("/chat/messages", h.SendChatMessage)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/chat/messages", bytes.NewBufferString(`{"message":"I feel dizzy"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "rest and hydrate") {
		t.Errorf("body = %s", w.Body.String())
	}
}

// ---------- GET /trends ----------

func TestGetTrends_InvalidWindow(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := newTestHandlers(nil, nil, nil, nil, nil, stubTrendsSvc{
		report: func(ctx context.Context, userID string, windowDays int, today time.Time) (*services.TrendReport, error) {
			return nil, services.ErrInvalidWindow
		},
	}, nil, nil)
	r.GET("/trends", h.GetTrends)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/trends?window=14", nil))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d; want 400", w.Code)
	}
}

func TestGetTrends_DefaultsWindow(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	var gotWindow int
	h := newTestHandlers(nil, nil, nil, nil, nil, stubTrendsSvc{
		report: func(ctx context.Context, userID string, windowDays int, today time.Time) (*services.TrendReport, error) {
			gotWindow = windowDays
			return &services.TrendReport{WindowDays: windowDays}, nil
		},
	}, nil, nil)
	r.GET("/trends", h.GetTrends)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/trends", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if gotWindow != 30 {
		t.Errorf("window = %d; want default 30", gotWindow)
	}
}

// ---------- GET /export ----------

func TestGetExport_CSVAttachment(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := newTestHandlers(nil, nil, nil, nil, nil, nil, stubExportSvc{
		export: func(ctx context.Context, userID string, format export.Format) ([]byte, string, string, error) {
			return []byte("Type,Date,Content,Score,Additional Info\n"), "text/csv", "health_data_export.csv", nil
		},
	}, nil)
	r.GET("/export", h.GetExport)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/export?format=csv", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if cd := w.Header().Get("Content-Disposition"); cd != "attachment; filename=health_data_export.csv" {
		t.Errorf("Content-Disposition = %q", cd)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Errorf("Content-Type = %q", ct)
	}
}

func TestGetExport_BadFormat(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := newTestHandlers(nil, nil, nil, nil, nil, nil, stubExportSvc{
		export: func(ctx context.Context, userID string, format export.Format) ([]byte, string, string, error) {
			t.Fatal("service must not be called")
			return nil, "", "", nil
		},
	}, nil)
	r.GET("/export", h.GetExport)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/export?format=xml", nil))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d; want 400", w.Code)
	}
}

// ---------- GET/PUT /profile ----------

func TestGetProfile_NotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := newTestHandlers(nil, nil, nil, nil, nil, nil, nil, stubProfileSvc{
		get: func(ctx context.Context, userID string) (*domain.UserProfile, error) {
			return nil, services.ErrProfileNotFound
		},
	})
	r.GET("/profile", h.GetProfile)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/profile", nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d; want 404", w.Code)
	}
}

func TestPutProfile(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	var saved *domain.UserProfile
	h := newTestHandlers(nil, nil, nil, nil, nil, nil, nil, stubProfileSvc{
		save: func(ctx context.Context, userID string, p *domain.UserProfile) (*domain.UserProfile, error) {
			p.UserID = userID
			saved = p
			return p, nil
		},
	})
	r.PUT("/profile", h.PutProfile)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/profile",
		bytes.NewBufferString(`{"full_name":"Alex Doe","blood_group":"O+","height_cm":178}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", "u-7")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if saved == nil || saved.UserID != "u-7" || saved.FullName != "Alex Doe" || saved.HeightCM != 178 {
		t.Errorf("saved = %+v", saved)
	}
}
