// Package domain defines the persistence models for health logs, streak
// markers, triage results, chat sessions/messages, and user profiles. These
// types are mapped with GORM and form the core data layer of the health
// tracker application.
package domain

import (
	"time"

	"gorm.io/gorm"
)

// Message roles within a chat session.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Triage levels produced by the assessment collaborator. Only these two
// values are valid; anything else is a contract violation by the upstream
// service and must be rejected, never coerced.
const (
	TriageSelfMonitor = "self-monitor"
	TriageVisitDoctor = "visit-doctor"
)

// DateLayout is the calendar-date format used for HealthLog and StreakMarker
// date columns (one entry per owner per day, no time component).
const DateLayout = "2006-01-02"

// HealthLog is a single daily check-in: free-text symptoms, optional notes,
// and a severity score in [0,100]. At most one log exists per owner per
// calendar date (enforced by a unique index).
//
// Fields:
//   - ID: stable UUID primary key (char(36)).
//   - UserID: identifier of the log owner; part of the per-day unique index.
//   - Date: calendar date in DateLayout ("2006-01-02").
//   - Symptoms: free-text symptom description.
//   - SeverityScore: 0 (perfect health) .. 100 (critical); nil when unscored.
//   - Notes: optional free text.
//   - CreatedAt / UpdatedAt: timestamps managed by GORM.
//   - DeletedAt: soft deletion marker (check-in update is delete+recreate).
type HealthLog struct {
	ID            string         `json:"id"             gorm:"type:char(36);primaryKey"`
	UserID        string         `json:"user_id"        gorm:"type:varchar(64);not null;uniqueIndex:ux_user_log_date,priority:1"`
	Date          string         `json:"date"           gorm:"type:varchar(10);not null;uniqueIndex:ux_user_log_date,priority:2"`
	Symptoms      string         `json:"symptoms"       gorm:"type:text;not null"`
	SeverityScore *int           `json:"severity_score,omitempty"`
	Notes         string         `json:"notes"          gorm:"type:text"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"-"              gorm:"index"`
}

// TableName returns the database table name for HealthLog.
func (HealthLog) TableName() string { return "health_logs" }

// StreakMarker records that an owner completed the daily check-in on a given
// date. It is a denormalized companion of HealthLog: the pair represents one
// fact (a day was completed). Inserting a duplicate for the same owner+date
// must be treated as a successful no-op, not an error (see repo.MarkCompleted).
type StreakMarker struct {
	ID        string    `json:"id"        gorm:"type:char(36);primaryKey"`
	UserID    string    `json:"user_id"   gorm:"type:varchar(64);not null;uniqueIndex:ux_user_streak_date,priority:1"`
	Date      string    `json:"date"      gorm:"type:varchar(10);not null;uniqueIndex:ux_user_streak_date,priority:2"`
	Completed bool      `json:"completed" gorm:"not null;default:true"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the database table name for StreakMarker.
func (StreakMarker) TableName() string { return "streak_markers" }

// TriageResult is the persisted outcome of one symptom assessment. Results
// are immutable once created: they are never updated or deleted by the
// application.
//
// Fields:
//   - TriageLevel: one of TriageSelfMonitor or TriageVisitDoctor.
//   - Confidence: collaborator-supplied label ("Low", "Medium", "High").
//   - Reasoning / RecommendedAction / DetailedAnalysis: collaborator text.
type TriageResult struct {
	ID                string    `json:"id"                 gorm:"type:char(36);primaryKey"`
	UserID            string    `json:"user_id"            gorm:"type:varchar(64);not null;index:idx_user_triage,priority:1"`
	Symptoms          string    `json:"symptoms"           gorm:"type:text;not null"`
	TriageLevel       string    `json:"triage_level"       gorm:"type:varchar(16);not null;check:triage_level IN ('self-monitor','visit-doctor')"`
	Confidence        string    `json:"confidence"         gorm:"type:varchar(16);not null"`
	Reasoning         string    `json:"reasoning"          gorm:"type:text"`
	RecommendedAction string    `json:"recommended_action" gorm:"type:text"`
	DetailedAnalysis  string    `json:"detailed_analysis,omitempty" gorm:"type:text"`
	CreatedAt         time.Time `json:"created_at"         gorm:"index:idx_user_triage,priority:2"`
}

// TableName returns the database table name for TriageResult.
func (TriageResult) TableName() string { return "triage_results" }

// ChatSession is one conversation between an owner and the health assistant.
// The most recently created session is the "active" one; sessions are never
// deleted by the application.
type ChatSession struct {
	ID          string    `json:"id"           gorm:"type:char(36);primaryKey"`
	UserID      string    `json:"user_id"      gorm:"type:varchar(64);not null;index:idx_user_sessions,priority:1"`
	SessionType string    `json:"session_type" gorm:"type:varchar(32);not null;default:'general'"`
	CreatedAt   time.Time `json:"created_at"   gorm:"index:idx_user_sessions,priority:2"`
}

// TableName returns the database table name for ChatSession.
func (ChatSession) TableName() string { return "chat_sessions" }

// ChatMessage is a single utterance within a session, authored either by the
// "user" or the "assistant". Messages are append-only and ordered by
// Timestamp ascending within a session.
type ChatMessage struct {
	ID        string    `json:"id"         gorm:"type:char(36);primaryKey"`
	SessionID string    `json:"session_id" gorm:"type:char(36);not null;index:idx_session_msgs,priority:1"`
	Role      string    `json:"role"       gorm:"type:varchar(16);not null;check:role IN ('user','assistant')"`
	Content   string    `json:"content"    gorm:"type:text;not null"`
	Timestamp time.Time `json:"timestamp"  gorm:"index:idx_session_msgs,priority:2"`

	// Session is the parent conversation. Messages are cascade-deleted if
	// their session is removed out-of-band.
	Session ChatSession `json:"-" gorm:"foreignKey:SessionID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for ChatMessage.
func (ChatMessage) TableName() string { return "chat_messages" }

// UserProfile holds demographic and medical free-text fields for one owner.
// There is exactly one profile per owner; saves replace the row wholesale.
type UserProfile struct {
	UserID            string         `json:"user_id"            gorm:"type:varchar(64);primaryKey"`
	FullName          string         `json:"full_name"          gorm:"type:varchar(255)"`
	DateOfBirth       string         `json:"date_of_birth"      gorm:"type:varchar(10)"`
	BloodGroup        string         `json:"blood_group"        gorm:"type:varchar(8)"`
	HeightCM          float64        `json:"height_cm"`
	WeightKG          float64        `json:"weight_kg"`
	Allergies         string         `json:"allergies"          gorm:"type:text"`
	Medications       string         `json:"medications"        gorm:"type:text"`
	ChronicConditions string         `json:"chronic_conditions" gorm:"type:text"`
	EmergencyContact  string         `json:"emergency_contact"  gorm:"type:text"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	DeletedAt         gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName returns the database table name for UserProfile.
func (UserProfile) TableName() string { return "user_profiles" }
