package application

import (
	"errors"
	"strings"
)

var (
	ErrRequestNotFound      = errors.New("help request not found")
	ErrMatchNotFound        = errors.New("application not found")
	ErrProfileNotFound      = errors.New("developer profile not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrUserNotFound         = errors.New("user not found")

	ErrNotOwner       = errors.New("acting user does not own this help request")
	ErrWrongRole      = errors.New("operation not permitted for this account type")
	ErrNotParticipant = errors.New("user is not a participant in this conversation")

	ErrRequestTerminal = errors.New("help request is already completed or cancelled")
	ErrRequestClosed   = errors.New("help request is not open for applications")
	ErrMatchNotPending = errors.New("application is no longer pending")
	ErrRateTooHigh     = errors.New("proposed rate exceeds the allowed maximum")
	ErrConflict        = errors.New("write conflicts with existing data")

	ErrUsernameTaken       = errors.New("username already taken")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrPasswordHashFailure = errors.New("failed to hash password")
)

// ValidationError reports which required fields were missing or malformed,
// caught before any database work.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Missing, ", ")
}
