package models

import "errors"

var (
	// ErrUserNotFound is returned when no user record exists for an email.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailExists is returned on registration with an email already taken.
	ErrEmailExists = errors.New("email already registered")
	// ErrSubjectNotFound indicates the question bank has no such subject.
	ErrSubjectNotFound = errors.New("subject not found")
	// ErrInvalidSubmission is returned for a quiz submission with missing or
	// malformed required fields.
	ErrInvalidSubmission = errors.New("missing required fields")
)
