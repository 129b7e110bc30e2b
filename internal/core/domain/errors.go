package domain

import "errors"

// Domain errors - used across all layers
var (
	// ErrNotFound indicates the requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates the resource already exists
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates the input is invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnauthorized indicates authentication failed or missing
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden indicates the caller lacks permission for this action
	ErrForbidden = errors.New("forbidden")

	// ErrSpecCodeNotFound indicates the searched spec code does not exist.
	// This is a caller error and always surfaces; no fallback is attempted.
	ErrSpecCodeNotFound = errors.New("spec code not found")

	// ErrEmptyCorpus indicates no code sections exist for the requested
	// document filter, so there is nothing to match against
	ErrEmptyCorpus = errors.New("no code sections available for corpus")

	// ErrNotFitted indicates a vectorizer transform before fit. This is a
	// programmer error, never an expected runtime condition.
	ErrNotFitted = errors.New("vectorizer not fitted")

	// ErrTokenExpired indicates the auth token has expired
	ErrTokenExpired = errors.New("token expired")

	// ErrTokenInvalid indicates the auth token is malformed or invalid
	ErrTokenInvalid = errors.New("token invalid")

	// ErrInvalidCredentials indicates a wrong admin credential
	ErrInvalidCredentials = errors.New("invalid credentials")
)
