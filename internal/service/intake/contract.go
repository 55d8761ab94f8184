//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=intake_test
package intake

import (
	"context"

	"dispatch/internal/entities"
)

type IntakeGateway interface {
	ParseRide(ctx context.Context, text string) (*entities.RideDraft, error)
}

type RideService interface {
	CreateRide(ctx context.Context, rideModify entities.RideModify) (*entities.Ride, error)
}
