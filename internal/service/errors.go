package service

import (
	"errors"
	"fmt"
)

// Error classes. Handlers dispatch on these with errors.Is.
var (
	ErrValidation          = errors.New("validation failed")
	ErrFormat              = fmt.Errorf("%w: bad format", ErrValidation)
	ErrConflict            = errors.New("conflict")
	ErrAuth                = errors.New("authentication failed")
	ErrNotFoundOrForbidden = errors.New("not found or forbidden")
)

var (
	ErrMissingCredentials = fmt.Errorf("%w: username, email and password are required", ErrValidation)
	ErrFieldTooLong       = fmt.Errorf("%w: username and email must be at most %d characters", ErrValidation, maxIdentityLen)
	ErrEmptyContent       = fmt.Errorf("%w: task content is empty", ErrValidation)
	ErrContentTooLong     = fmt.Errorf("%w: task content must be at most %d characters", ErrValidation, maxContentLen)
	ErrInvalidTimeRange   = fmt.Errorf("%w: invalid time range: From must be <= To", ErrValidation)
	ErrInvalidDueDate     = fmt.Errorf("%w: due date must be a calendar date in YYYY-MM-DD format", ErrFormat)

	ErrUsernameTaken = fmt.Errorf("%w: username already exists", ErrConflict)
	ErrEmailTaken    = fmt.Errorf("%w: email already registered", ErrConflict)

	ErrUserNotFound    = fmt.Errorf("%w: user not found", ErrAuth)
	ErrInvalidPassword = fmt.Errorf("%w: invalid password", ErrAuth)
	ErrInvalidToken    = fmt.Errorf("%w: invalid token", ErrAuth)

	// ErrTaskNotFound covers both a missing task and a task owned by someone else.
	ErrTaskNotFound = fmt.Errorf("%w: task not found", ErrNotFoundOrForbidden)
)
