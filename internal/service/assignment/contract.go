//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=assignment_test
package assignment

import (
	"context"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type RideService interface {
	GetRide(ctx context.Context, id string) (*entities.Ride, error)
	Assign(ctx context.Context, rideID string, driverID string) (*entities.RideAssignment, error)
}

type DriverService interface {
	GetAvailableDrivers(ctx context.Context) ([]entities.Driver, error)
}

// MatchingGateway внешняя matching-способность. Гейтвей может быть недоступен
// или ответить мусором, резолвер обязан это пережить.
type MatchingGateway interface {
	SuggestDriver(ctx context.Context, rideEntity entities.Ride, candidates []entities.Driver) (*entities.DriverSuggestion, error)
}
