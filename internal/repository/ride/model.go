package ride

import "time"

type RideDB struct {
	ID             string
	CustomerName   string
	CustomerID     *string
	StoreID        *string
	PickupLat      float64
	PickupLng      float64
	PickupAddress  string
	DropoffLat     float64
	DropoffLng     float64
	DropoffAddress string
	Status         string
	DriverID       *string
	Price          int64
	Priority       string
	Notes          *string
	RequestedAt    time.Time
	AssignedAt     *time.Time
	CompletedAt    *time.Time
	CancelledAt    *time.Time
}
