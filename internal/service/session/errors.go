package session

import "errors"

var (
	ErrInvalidUser = errors.New("invalid user")
	ErrInvalidRole = errors.New("invalid role")

	ErrSessionNotFound = errors.New("session not found")
)
