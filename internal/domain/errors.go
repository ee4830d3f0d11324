package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Catalog errors
	ErrMsgNotFound = "no pricing data available"

	// Input errors
	ErrMsgParse        = "invalid number"
	ErrMsgInvalidRange = "'To XP' must be larger than 'From XP'"

	// Pricing errors
	ErrMsgQuoteRequired = "price requires a manual quote"

	// Order errors
	ErrMsgEmptySelection = "select at least one item"

	// Ticket errors
	ErrMsgUnauthorized        = "permission denied"
	ErrMsgInvalidTransition   = "ticket is not in a state that allows this"
	ErrMsgConfirmationExpired = "confirmation expired or already used"
	ErrMsgExternalEffect      = "platform operation failed"
	ErrMsgTicketNotFound      = "ticket not found"

	// Session errors
	ErrMsgSessionNotFound = "selection session not found or expired"
)

// Common domain errors
// These errors should be used consistently across all layers of the
// application. Wrap with fmt.Errorf("%w: %s", domain.ErrXxx, details) for
// additional context.
var (
	// Catalog errors
	ErrNotFound = errors.New(ErrMsgNotFound)

	// Input errors, recovered locally and surfaced as retryable
	// validation messages
	ErrParse        = errors.New(ErrMsgParse)
	ErrInvalidRange = errors.New(ErrMsgInvalidRange)

	// Pricing errors
	ErrQuoteRequired = errors.New(ErrMsgQuoteRequired)

	// Order errors
	ErrEmptySelection = errors.New(ErrMsgEmptySelection)

	// Ticket errors
	ErrUnauthorized        = errors.New(ErrMsgUnauthorized)
	ErrInvalidTransition   = errors.New(ErrMsgInvalidTransition)
	ErrConfirmationExpired = errors.New(ErrMsgConfirmationExpired)
	ErrExternalEffect      = errors.New(ErrMsgExternalEffect)
	ErrTicketNotFound      = errors.New(ErrMsgTicketNotFound)

	// Session errors
	ErrSessionNotFound = errors.New(ErrMsgSessionNotFound)
)
