// Package handlers defines HTTP-layer error codes used across all API endpoints.
//
// This file centralizes symbolic error code constants that are mapped to HTTP
// responses (via the `fail()` helper in this package). These codes give clients
// a stable, machine-readable error taxonomy that supplements human-readable
// messages.
//
// Conventions:
//   - Codes are lowercase, snake_case, and domain-agnostic unless explicitly noted.
//   - Generic codes (e.g., bad_request, conflict) mirror common HTTP status
//     semantics to aid interoperability.
//   - Domain-specific codes are reserved for business errors that a status alone
//     cannot convey (e.g., assistant_unavailable tells the client to retry).
package handlers

const (
	ErrCodeBadRequest   = "bad_request"
	ErrCodeUnauthorized = "unauthorized"
	ErrCodeForbidden    = "forbidden"
	ErrCodeNotFound     = "not_found"
	ErrCodeConflict     = "conflict"
	ErrCodeRateLimited  = "too_many_requests"
	ErrCodeInternal     = "internal_error"

	// Domain-specific:
	ErrCodeCheckinFailed        = "checkin_failed"
	ErrCodeListFailed           = "list_failed"
	ErrCodeTriageFailed         = "triage_failed"
	ErrCodeChatFailed           = "chat_failed"
	ErrCodeExportFailed         = "export_failed"
	ErrCodeTrendsFailed         = "trends_failed"
	ErrCodeAssistantUnavailable = "assistant_unavailable"
	ErrCodeMethodNotAllowed     = "method_not_allowed"
)
