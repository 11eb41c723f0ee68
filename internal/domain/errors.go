// internal/domain/errors.go
package domain

import "errors"

var (
	// General errors
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")

	// Identity-related errors
	ErrUnauthenticated   = errors.New("user is not signed in")
	ErrMalformedIdentity = errors.New("identity carries no organization membership")

	// Tenant-related errors
	ErrForbidden = errors.New("entity belongs to a different organization")

	// Entity-related errors
	ErrProjectNotFound    = errors.New("project not found")
	ErrPersonaNotFound    = errors.New("persona not found")
	ErrExperimentNotFound = errors.New("experiment not found")
	ErrMessageNotFound    = errors.New("message not found")
	ErrAssistantNotFound  = errors.New("assistant not found")

	// Conversation-related errors
	ErrConflictingReply   = errors.New("there are pending replies in the thread")
	ErrInvariantViolation = errors.New("internal consistency assumption broken")
)
