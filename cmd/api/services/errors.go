package services

import "errors"

// Sentinel errors handlers map onto HTTP status codes.
var (
	// ErrInvalidInput covers malformed ids, empty texts and out-of-range
	// ratings (400).
	ErrInvalidInput = errors.New("invalid input")
	// ErrSubjectNotFound means the platform does not know the subject (404).
	ErrSubjectNotFound = errors.New("subject not found")
	// ErrUserNotFound means no account exists for the email (404).
	ErrUserNotFound = errors.New("user not found")
)
