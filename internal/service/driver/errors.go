package driver

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidDriverID       = errors.New("invalid driver id")
	ErrInvalidName           = errors.New("invalid name")
	ErrInvalidPhone          = errors.New("invalid phone")
	ErrInvalidVehicleType    = errors.New("invalid vehicle type")
	ErrInvalidRating         = errors.New("invalid rating")
	ErrInvalidStatus         = errors.New("invalid status")

	ErrDriverNotFound     = errors.New("driver not found")
	ErrDriverNotAvailable = errors.New("driver not available")
	ErrDriverBusy         = errors.New("driver is busy")
	ErrConflict           = errors.New("resource already exists")
)
