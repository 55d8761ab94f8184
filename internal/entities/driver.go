package entities

import (
	"time"
)

type Driver struct {
	ID            string
	Name          string
	Phone         string
	VehicleType   string
	Rating        float64
	Location      Location
	Status        DriverStatusType
	CurrentRideID *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type DriverStatusType string

const (
	DriverAvailable DriverStatusType = "available"
	DriverBusy      DriverStatusType = "busy"
	DriverOffline   DriverStatusType = "offline"
)

const DefaultDriverStatus = DriverAvailable

func (t DriverStatusType) String() string {
	return string(t)
}

type DriverModify struct {
	ID            *string
	Name          *string
	Phone         *string
	VehicleType   *string
	Rating        *float64
	Location      *Location
	Status        *DriverStatusType
	CurrentRideID *string
}

// DriverSuggestion ответ внешней matching-способности: предложенный водитель
// и, опционально, обоснование выбора.
type DriverSuggestion struct {
	DriverID  string
	Reasoning string
}
