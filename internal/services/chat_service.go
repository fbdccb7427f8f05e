// Package services – ChatService
//
// This file implements ChatService, the session continuity manager for the
// health assistant. Each owner converses in one active session: the most
// recently created one, created on demand with type "general" when none
// exists. The check-then-create step is serialized per owner so concurrent
// first requests cannot spawn duplicate sessions.
//
// A chat turn persists the user's message, calls the assistant collaborator
// with a bounded window of prior messages, and persists the reply. When the
// collaborator fails, the turn degrades: the user's message stays persisted
// and an apology reply is kept in memory only, visible in the transcript for
// the life of the process but never written to the store.
package services

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/healthloop/go-health-backend/internal/assistant"
	"github.com/healthloop/go-health-backend/internal/domain"
	"github.com/healthloop/go-health-backend/internal/repo"
)

// HistoryWindow is the number of prior messages sent to the assistant with
// each turn. The window never includes the message being submitted.
const HistoryWindow = 5

// FallbackReply is the canned assistant response used when the collaborator
// cannot be reached. It is shown in the transcript but never persisted.
const FallbackReply = "I'm sorry, I'm having trouble responding right now. Please try again in a moment."

// Chatter is the assistant collaborator contract required by ChatService.
type Chatter interface {
	// Chat sends one user message with its conversation history and returns
	// the assistant's reply text.
	Chat(ctx context.Context, message string, history []assistant.Turn) (string, error)
}

// ChatService manages assistant conversations: session selection, transcript
// assembly, and message turns.
type ChatService struct {
	DB        *gorm.DB
	Assistant Chatter

	// MaxMessageRunes caps a single chat message by rune length. Zero
	// disables the cap.
	MaxMessageRunes int

	mu        sync.Mutex
	ownerLock map[string]*sync.Mutex
	fallbacks map[string][]domain.ChatMessage // sessionID -> unpersisted replies
}

// NewChatService constructs a ChatService over db and the given collaborator.
func NewChatService(db *gorm.DB, chatter Chatter) *ChatService {
	return &ChatService{
		DB:              db,
		Assistant:       chatter,
		MaxMessageRunes: 4000,
		ownerLock:       make(map[string]*sync.Mutex),
		fallbacks:       make(map[string][]domain.ChatMessage),
	}
}

// ActiveSession returns the owner's current session and its transcript,
// creating the session when the owner has none yet.
func (s *ChatService) ActiveSession(ctx context.Context, userID string) (*domain.ChatSession, []domain.ChatMessage, error) {
	tr := otel.Tracer("services/ChatService")
	ctx, span := tr.Start(ctx, "ActiveSession",
		trace.WithAttributes(attribute.String("user.id", userID)),
	)
	defer span.End()

	sess, err := s.ensureSession(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	msgs, err := s.transcript(ctx, sess.ID)
	if err != nil {
		return nil, nil, err
	}
	return sess, msgs, nil
}

// Send submits one chat turn for the owner and returns the assistant's reply
// message. The returned message is unpersisted (ID only held in memory) when
// the collaborator failed and the fallback reply was used.
func (s *ChatService) Send(ctx context.Context, userID, message string) (*domain.ChatMessage, error) {
	tr := otel.Tracer("services/ChatService")
	ctx, span := tr.Start(ctx, "Send",
		trace.WithAttributes(attribute.String("user.id", userID)),
	)
	defer span.End()

	message = strings.TrimSpace(message)
	if message == "" {
		return nil, ErrEmptyMessage
	}
	if s.MaxMessageRunes > 0 && utf8.RuneCountInString(message) > s.MaxMessageRunes {
		return nil, ErrTooLong
	}

	sess, err := s.ensureSession(ctx, userID)
	if err != nil {
		return nil, err
	}

	// History is assembled before the new message is stored, so the window
	// holds only messages that precede it.
	prior, err := s.transcript(ctx, sess.ID)
	if err != nil {
		return nil, err
	}
	history := historyWindow(prior, HistoryWindow)

	if _, err := repo.CreateChatMessage(ctx, s.DB, sess.ID, domain.RoleUser, message); err != nil {
		return nil, err
	}

	reply, err := s.Assistant.Chat(ctx, message, history)
	if err != nil {
		log.Warn().Err(err).Str("session_id", sess.ID).Msg("assistant chat failed; using fallback reply")
		return s.rememberFallback(sess.ID), nil
	}

	m, err := repo.CreateChatMessage(ctx, s.DB, sess.ID, domain.RoleAssistant, reply)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// ensureSession returns the owner's most recent session, creating a "general"
// one when none exists. The check and the create run under a per-owner lock:
// two concurrent cold-start requests still end up sharing one session.
func (s *ChatService) ensureSession(ctx context.Context, userID string) (*domain.ChatSession, error) {
	lock := s.lockFor(userID)
	lock.Lock()
	defer lock.Unlock()

	sess, err := repo.LatestSession(ctx, s.DB, userID)
	if err == nil {
		return sess, nil
	}
	if err != repo.ErrNotFound {
		return nil, err
	}
	return repo.CreateSession(ctx, s.DB, userID, "general")
}

// transcript merges persisted messages with the session's in-memory fallback
// replies, ordered by timestamp so the conversation reads in submission
// order.
func (s *ChatService) transcript(ctx context.Context, sessionID string) ([]domain.ChatMessage, error) {
	msgs, err := repo.ListSessionMessages(ctx, s.DB, sessionID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	extra := s.fallbacks[sessionID]
	s.mu.Unlock()
	if len(extra) == 0 {
		return msgs, nil
	}

	out := make([]domain.ChatMessage, 0, len(msgs)+len(extra))
	out = append(out, msgs...)
	out = append(out, extra...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.Before(out[j].Timestamp) })
	return out, nil
}

// rememberFallback records an unpersisted apology reply for the session and
// returns it.
func (s *ChatService) rememberFallback(sessionID string) *domain.ChatMessage {
	m := domain.ChatMessage{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		Role:      domain.RoleAssistant,
		Content:   FallbackReply,
		Timestamp: time.Now().UTC(),
	}
	s.mu.Lock()
	s.fallbacks[sessionID] = append(s.fallbacks[sessionID], m)
	s.mu.Unlock()
	return &m
}

// lockFor returns the mutex serializing session creation for one owner.
func (s *ChatService) lockFor(userID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.ownerLock[userID]
	if !ok {
		l = &sync.Mutex{}
		s.ownerLock[userID] = l
	}
	return l
}

// historyWindow converts the trailing n messages into collaborator turns.
func historyWindow(msgs []domain.ChatMessage, n int) []assistant.Turn {
	if len(msgs) > n {
		msgs = msgs[len(msgs)-n:]
	}
	out := make([]assistant.Turn, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, assistant.Turn{Role: m.Role, Content: m.Content})
	}
	return out
}
