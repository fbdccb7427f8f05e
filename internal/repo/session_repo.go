// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for ChatSession
// and ChatMessage.
//
// Functions:
//
//   - CreateSession(ctx, db, userID, sessionType) -> *domain.ChatSession, error
//     Inserts a new session row with UUID primary key and UTC timestamp.
//
//   - LatestSession(ctx, db, userID) -> *domain.ChatSession, error
//     Returns the most recently created session for the owner, or
//     ErrNotFound when none exists.
//
//   - CreateChatMessage(ctx, db, sessionID, role, content) -> *domain.ChatMessage, error
//     Appends one utterance to a session.
//
//   - ListSessionMessages(ctx, db, sessionID) -> []domain.ChatMessage, error
//     Returns a session's messages ordered deterministically
//     (Timestamp ASC, ID ASC).
package repo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/healthloop/go-health-backend/internal/domain"
)

// CreateSession inserts a new chat session owned by userID.
func CreateSession(ctx context.Context, db *gorm.DB, userID, sessionType string) (*domain.ChatSession, error) {
	if sessionType == "" {
		sessionType = "general"
	}
	s := &domain.ChatSession{
		ID:          uuid.NewString(),
		UserID:      userID,
		SessionType: sessionType,
		CreatedAt:   time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(s).Error; err != nil {
		return nil, err
	}
	return s, nil
}

// LatestSession returns the owner's most recent session by creation time,
// or ErrNotFound when the owner has none.
func LatestSession(ctx context.Context, db *gorm.DB, userID string) (*domain.ChatSession, error) {
	var s domain.ChatSession
	err := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// CreateChatMessage appends one utterance to a session.
func CreateChatMessage(ctx context.Context, db *gorm.DB, sessionID, role, content string) (*domain.ChatMessage, error) {
	m := &domain.ChatMessage{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		Role:      role,
		Content:   content,
		Timestamp: time.Now().UTC(),
	}
	return m, db.WithContext(ctx).Create(m).Error
}

// ListSessionMessages returns messages ordered deterministically
// (Timestamp ASC, ID ASC) so the transcript reflects submission order.
func ListSessionMessages(ctx context.Context, db *gorm.DB, sessionID string) ([]domain.ChatMessage, error) {
	var out []domain.ChatMessage
	err := db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("timestamp ASC, id ASC").
		Find(&out).Error
	return out, err
}
