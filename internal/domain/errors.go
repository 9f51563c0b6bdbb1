package domain

import "errors"

// Domain errors
var (
	ErrNotFound             = errors.New("resource not found")
	ErrInvalidInput         = errors.New("invalid input")
	ErrSessionNotFound      = errors.New("session not found")
	ErrBudgetNotFound       = errors.New("budget not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrInvalidCategory      = errors.New("invalid category")
	ErrInvalidFilter        = errors.New("invalid transaction filter")
	ErrInvalidLimit         = errors.New("budget limit must be a non-negative number")
	ErrInvalidAmount        = errors.New("amount must be greater than zero")
	ErrInvalidType          = errors.New("invalid transaction type")
	ErrInvalidDate          = errors.New("invalid date")
	ErrDescriptionRequired  = errors.New("description is required")
	ErrDescriptionTooLong   = errors.New("description exceeds maximum length")
	ErrEmptyQuery           = errors.New("query is empty")
	ErrQueryTooLong         = errors.New("query exceeds maximum length")
	ErrReplyPending         = errors.New("a reply is already pending")
	ErrNoPendingRequest     = errors.New("no request is pending")
)

// Validation constants
const (
	MaxDescriptionLength = 255
	MaxQueryLength       = 2000
)
