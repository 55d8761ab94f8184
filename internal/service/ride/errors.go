package ride

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidRideID         = errors.New("invalid ride id")
	ErrInvalidDriverID       = errors.New("invalid driver id")
	ErrInvalidCustomerName   = errors.New("invalid customer name")
	ErrInvalidLocation       = errors.New("invalid location")
	ErrInvalidPriority       = errors.New("invalid priority")

	ErrRideNotFound        = errors.New("ride not found")
	ErrRideNotPending      = errors.New("ride is not pending")
	ErrRideNotAssigned     = errors.New("ride is not assigned")
	ErrRideAlreadyFinished = errors.New("ride already finished")
	ErrRideConflict        = errors.New("ride status changed concurrently")
	ErrConflict            = errors.New("resource already exists")
)
