package domain

import "errors"

var (
	// ErrSessionClosed is returned when a session is used after it was released.
	ErrSessionClosed = errors.New("persistence session is closed")
	// ErrSessionAborted is returned when a session is used after a failed flush or commit.
	ErrSessionAborted = errors.New("persistence session was aborted by a failed commit")
	// ErrQueueClosed is returned when the background task queue no longer accepts or yields items.
	ErrQueueClosed = errors.New("background task queue is closed")
	// ErrQueueFull is returned when a bounded background task queue reached its capacity.
	ErrQueueFull = errors.New("background task queue is full")
)

// errors.go defines domain-specific error types.
type domainErr struct {
	message string
}

// Error returns the error message.
func (e domainErr) Error() string {
	return e.message
}

// NotFoundErr represents an error when a requested entity is not found.
type NotFoundErr struct {
	domainErr
}

// NewNotFoundErr creates a new NotFoundErr with the given message.
func NewNotFoundErr(message string) *NotFoundErr {
	return &NotFoundErr{
		domainErr: domainErr{message: message},
	}
}

// ValidationErr represents an error when validation fails.
type ValidationErr struct {
	domainErr
}

// NewValidationErr creates a new ValidationErr with the given message.
func NewValidationErr(message string) *ValidationErr {
	return &ValidationErr{
		domainErr: domainErr{message: message},
	}
}

// ConflictErr represents a change rejected by the store: a constraint violation
// or a row that was modified or removed concurrently.
type ConflictErr struct {
	domainErr
	cause error
}

// NewConflictErr creates a new ConflictErr with the given message and underlying cause.
func NewConflictErr(message string, cause error) *ConflictErr {
	return &ConflictErr{
		domainErr: domainErr{message: message},
		cause:     cause,
	}
}

// Error returns the error message followed by the cause, if any.
func (e ConflictErr) Error() string {
	if e.cause == nil {
		return e.message
	}
	return e.message + ": " + e.cause.Error()
}

// Unwrap returns the underlying store error.
func (e ConflictErr) Unwrap() error {
	return e.cause
}
