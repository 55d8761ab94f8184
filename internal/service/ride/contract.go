//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=ride_test
package ride

import (
	"context"
	"time"

	"dispatch/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, rideEntity entities.Ride) error
	GetByID(ctx context.Context, id string) (*entities.Ride, error)
	GetAll(ctx context.Context) ([]entities.Ride, error)

	// UpdateStatus атомарно переводит поездку в статус to, если текущий
	// статус входит в from. Возвращает false, если поездка уже ушла
	// из допустимого статуса.
	UpdateStatus(ctx context.Context, id string, from []entities.RideStatusType, to entities.RideStatusType, change entities.RideStatusChange) (bool, error)

	// PromoteAssignedBefore массово переводит в in_progress поездки,
	// зависшие в assigned дольше cutoff. Страховка на случай рестарта,
	// когда in-memory таймеры потеряны.
	PromoteAssignedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type DriverCoordinator interface {
	Reserve(ctx context.Context, driverID string, rideID string) error
	Release(ctx context.Context, driverID string) error
}

type Scheduler interface {
	Schedule(key string, delay time.Duration, fn func(ctx context.Context) error)
	Cancel(key string) bool
}

type StartDelayFactory interface {
	StartDelay(priority entities.RidePriorityType) time.Duration
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
