package domain

import "errors"

// Error message string constants - single source of truth for error messages.
// Use these in assert.Contains() checks when testing error messages.
const (
	// Claim errors
	ErrMsgAlreadyClaimed = "weekly reward already claimed today"
	ErrMsgWindowClosed   = "claim window is closed"

	// Match errors
	ErrMsgInvalidStake    = "stake must be positive"
	ErrMsgSameParticipant = "winner and loser must be different players"

	// Balance errors
	ErrMsgInsufficientFunds    = "insufficient funds"
	ErrMsgInsufficientQuantity = "insufficient quantity"

	// Lookup errors
	ErrMsgPlayerNotFound = "player not found"

	// Validation errors
	ErrMsgInvalidInput = "invalid input"

	// Store errors
	ErrMsgPersistence = "persistence failure"
)

// Common domain errors.
// Wrap these with fmt.Errorf("%w: %s", domain.ErrXxx, details) for context.
// Validation errors are expected, user-facing outcomes; ErrPersistence is
// an internal failure and is never shown verbatim to callers.
var (
	ErrAlreadyClaimed       = errors.New(ErrMsgAlreadyClaimed)
	ErrWindowClosed         = errors.New(ErrMsgWindowClosed)
	ErrInvalidStake         = errors.New(ErrMsgInvalidStake)
	ErrSameParticipant      = errors.New(ErrMsgSameParticipant)
	ErrInsufficientFunds    = errors.New(ErrMsgInsufficientFunds)
	ErrInsufficientQuantity = errors.New(ErrMsgInsufficientQuantity)
	ErrPlayerNotFound       = errors.New(ErrMsgPlayerNotFound)
	ErrInvalidInput         = errors.New(ErrMsgInvalidInput)
	ErrPersistence          = errors.New(ErrMsgPersistence)
)

// IsValidationError reports whether err is an expected, user-facing
// rejection rather than an internal failure.
func IsValidationError(err error) bool {
	for _, target := range []error{
		ErrAlreadyClaimed,
		ErrWindowClosed,
		ErrInvalidStake,
		ErrSameParticipant,
		ErrInsufficientFunds,
		ErrInsufficientQuantity,
		ErrInvalidInput,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
