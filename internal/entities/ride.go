package entities

import "time"

type Ride struct {
	ID           string
	CustomerName string
	CustomerID   *string
	StoreID      *string
	Pickup       Location
	Dropoff      Location
	Status       RideStatusType
	DriverID     *string
	Price        int64
	Priority     RidePriorityType
	Notes        *string
	RequestedAt  time.Time
	AssignedAt   *time.Time
	CompletedAt  *time.Time
	CancelledAt  *time.Time
}

type RideStatusType string

const (
	RidePending    RideStatusType = "pending"
	RideAssigned   RideStatusType = "assigned"
	RideInProgress RideStatusType = "in_progress"
	RideCompleted  RideStatusType = "completed"
	RideCancelled  RideStatusType = "cancelled"
)

func (s RideStatusType) String() string {
	return string(s)
}

// IsTerminal сообщает, что статус финальный и дальнейшие переходы запрещены.
func (s RideStatusType) IsTerminal() bool {
	return s == RideCompleted || s == RideCancelled
}

var rideTransitions = map[RideStatusType][]RideStatusType{
	RidePending:    {RideAssigned, RideCancelled},
	RideAssigned:   {RideInProgress, RideCompleted, RideCancelled},
	RideInProgress: {RideCompleted, RideCancelled},
	RideCompleted:  {},
	RideCancelled:  {},
}

// CanTransitionTo проверяет переход по таблице жизненного цикла поездки.
func (s RideStatusType) CanTransitionTo(to RideStatusType) bool {
	for _, allowed := range rideTransitions[s] {
		if allowed == to {
			return true
		}
	}
	return false
}

type RidePriorityType string

const (
	PriorityNormal RidePriorityType = "NORMAL"
	PriorityHigh   RidePriorityType = "HIGH"
	PriorityUrgent RidePriorityType = "URGENT"
)

const DefaultPriority = PriorityNormal

func (p RidePriorityType) String() string {
	return string(p)
}

type RideModify struct {
	ID           *string
	CustomerName *string
	CustomerID   *string
	StoreID      *string
	Pickup       *Location
	Dropoff      *Location
	Status       *RideStatusType
	DriverID     *string
	Price        *int64
	Priority     *RidePriorityType
	Notes        *string
}

// RideStatusChange описывает побочные эффекты смены статуса: привязку или
// отвязку водителя и бизнес-время перехода. Хранилище само выбирает, какую
// временную метку заполнить по целевому статусу.
type RideStatusChange struct {
	DriverID    *string
	ClearDriver bool
	At          time.Time
}

// RideAssignment результат привязки водителя к поездке.
type RideAssignment struct {
	RideID     string
	DriverID   string
	AssignedAt time.Time
	Suggested  bool
	Reasoning  string
}

// RideDraft структурированный черновик поездки, полученный от intake-сервиса
// из свободного текста оператора.
type RideDraft struct {
	CustomerName   string
	PickupAddress  string
	DropoffAddress string
	Priority       RidePriorityType
	Notes          *string
}
