package store

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidStoreID        = errors.New("invalid store id")
	ErrInvalidName           = errors.New("invalid name")
	ErrInvalidPhone          = errors.New("invalid phone")

	ErrStoreNotFound = errors.New("store not found")
	ErrConflict      = errors.New("resource already exists")
)
