//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=driver_offline_post_test
package driver_offline_post

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
	ToggleOffline(ctx context.Context, driverID string) (*entities.Driver, error)
}
