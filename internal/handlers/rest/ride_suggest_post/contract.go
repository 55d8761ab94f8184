//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=ride_suggest_post_test
package ride_suggest_post

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

type Service interface {
	AssignSuggested(ctx context.Context, rideID string) (*entities.RideAssignment, error)
}
