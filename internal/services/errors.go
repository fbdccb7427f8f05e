// Package services defines the business logic for daily check-ins, streaks,
// trends, triage, assistant chat, exports, and profiles. This file centralizes
// common service-level error values so that they can be consistently returned
// by service methods and checked by callers.
//
// These errors are intended for internal use by the service layer; translation
// into user-facing messages or HTTP status codes is performed at the
// handler layer.
package services

import "errors"

// Check-in errors.
var (
	// ErrCheckinExists is returned when a check-in already exists for the
	// owner on the requested calendar date.
	ErrCheckinExists = errors.New("check-in already exists for this date")

	// ErrCheckinNotFound indicates that no check-in exists for the owner on
	// the requested date.
	ErrCheckinNotFound = errors.New("check-in not found")

	// ErrEmptySymptoms is returned when a check-in or triage request carries
	// no symptom text.
	ErrEmptySymptoms = errors.New("symptoms are empty")

	// ErrTooLong is returned when free-text input exceeds the configured
	// maximum length.
	ErrTooLong = errors.New("input too long")
)

// Chat errors.
var (
	// ErrEmptyMessage is returned when a chat turn carries no message text.
	ErrEmptyMessage = errors.New("message is empty")
)

// Trend and export errors.
var (
	// ErrInvalidWindow is returned when a trend window is not one of the
	// supported sizes (7, 30, 90, 365 days).
	ErrInvalidWindow = errors.New("unsupported trend window")
)

// Profile errors.
var (
	// ErrProfileNotFound indicates that the owner has not saved a profile yet.
	ErrProfileNotFound = errors.New("profile not found")
)

// Collaborator errors.
var (
	// ErrAssistantUnavailable is returned when the AI collaborator cannot be
	// reached or returns a malformed response. The operation is retryable.
	ErrAssistantUnavailable = errors.New("assistant unavailable")
)
