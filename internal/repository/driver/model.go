package driver

import "time"

type DriverDB struct {
	ID              string
	Name            string
	Phone           string
	VehicleType     string
	Rating          float64
	LocationLat     float64
	LocationLng     float64
	LocationAddress string
	Status          string
	CurrentRideID   *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type DriverModifyDB struct {
	ID              *string
	Name            *string
	Phone           *string
	VehicleType     *string
	Rating          *float64
	LocationLat     *float64
	LocationLng     *float64
	LocationAddress *string
	Status          *string
	CurrentRideID   *string
}
