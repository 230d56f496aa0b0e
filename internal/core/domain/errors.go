package domain

import "errors"

var (
	ErrCategoryNotFound       = errors.New("category not found")
	ErrInvalidCandidate       = errors.New("invalid candidate for this category")
	ErrAuthenticationRequired = errors.New("authentication required")
	ErrInvalidAmount          = errors.New("invalid donation amount")
	ErrEmptyCatalog           = errors.New("catalog has no categories")
	ErrSessionNotFound        = errors.New("session not found")
	ErrInvalidSessionToken    = errors.New("invalid or expired session token")
)
