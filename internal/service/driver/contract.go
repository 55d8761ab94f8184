//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=driver_test
package driver

import (
	"context"

	"dispatch/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, driverEntity entities.Driver) error
	GetByID(ctx context.Context, id string) (*entities.Driver, error)
	GetAll(ctx context.Context) ([]entities.Driver, error)
	GetByStatus(ctx context.Context, status entities.DriverStatusType) ([]entities.Driver, error)
	Update(ctx context.Context, driverModifyEntity entities.DriverModify) (*entities.Driver, error)

	// Reserve атомарно переводит свободного водителя в busy и привязывает
	// к нему поездку. Возвращает false, если водитель не available.
	Reserve(ctx context.Context, id string, rideID string) (bool, error)

	// Release атомарно возвращает занятого водителя в available и
	// отвязывает поездку. Возвращает false, если водитель не busy.
	Release(ctx context.Context, id string) (bool, error)

	// SetStatus атомарно переводит водителя из ожидаемого статуса в новый.
	// Возвращает false, если статус уже сменился.
	SetStatus(ctx context.Context, id string, from entities.DriverStatusType, to entities.DriverStatusType) (bool, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
