package repo

import (
	"context"
	"testing"
	"time"

	"github.com/healthloop/go-health-backend/internal/domain"
)

func TestCreateSession_DefaultsType(t *testing.T) {
	db := newTestDB(t, &domain.ChatSession{})

	s, err := CreateSession(context.Background(), db, "u1", "")
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	if s.SessionType != "general" {
		t.Fatalf("SessionType = %q; want general", s.SessionType)
	}
	if s.ID == "" || s.UserID != "u1" {
		t.Fatalf("unexpected fields: %+v", s)
	}
}

func TestLatestSession_PicksMostRecent(t *testing.T) {
	db := newTestDB(t, &domain.ChatSession{})
	ctx := context.Background()

	// Seed with known CreatedAt so order is deterministic.
	old := domain.ChatSession{ID: "s-old", UserID: "u1", SessionType: "general",
		CreatedAt: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)}
	recent := domain.ChatSession{ID: "s-new", UserID: "u1", SessionType: "general",
		CreatedAt: time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC)}
	for _, s := range []domain.ChatSession{old, recent} {
		if err := db.Create(&s).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	got, err := LatestSession(ctx, db, "u1")
	if err != nil {
		t.Fatalf("LatestSession: %v", err)
	}
	if got.ID != "s-new" {
		t.Fatalf("LatestSession = %q; want s-new", got.ID)
	}
}

func TestLatestSession_NoneIsNotFound(t *testing.T) {
	db := newTestDB(t, &domain.ChatSession{})
	if _, err := LatestSession(context.Background(), db, "u1"); err != ErrNotFound {
		t.Fatalf("err = %v; want ErrNotFound", err)
	}
}

func TestListSessionMessages_SubmissionOrder(t *testing.T) {
	db := newTestDB(t, &domain.ChatSession{}, &domain.ChatMessage{})
	ctx := context.Background()

	s, err := CreateSession(ctx, db, "u1", "general")
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}

	for _, c := range []struct{ role, content string }{
		{domain.RoleUser, "first"},
		{domain.RoleAssistant, "second"},
		{domain.RoleUser, "third"},
	} {
		if _, err := CreateChatMessage(ctx, db, s.ID, c.role, c.content); err != nil {
			t.Fatalf("CreateChatMessage(%s): %v", c.content, err)
		}
	}

	msgs, err := ListSessionMessages(ctx, db, s.ID)
	if err != nil {
		t.Fatalf("ListSessionMessages: %v", err)
	}
	if len(msgs) != 3 {
		t.Fatalf("len = %d; want 3", len(msgs))
	}
	for i, want := range []string{"first", "second", "third"} {
		if msgs[i].Content != want {
			t.Errorf("msgs[%d] = %q; want %q", i, msgs[i].Content, want)
		}
	}
}
