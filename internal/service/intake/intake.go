package intake

import (
	"context"
	"fmt"
	"strings"
	"time"

	"dispatch/internal/entities"
)

// Intake создает поездки из свободного текста оператора. Разбор текста
// делегируется внешней способности; без успешного разбора поездка не
// создается вовсе.
type Intake struct {
	gateway      IntakeGateway
	rides        RideService
	parseTimeout time.Duration
}

func New(gateway IntakeGateway, rides RideService, parseTimeout time.Duration) *Intake {
	return &Intake{
		gateway:      gateway,
		rides:        rides,
		parseTimeout: parseTimeout,
	}
}

func (s *Intake) CreateFromText(ctx context.Context, text string) (*entities.Ride, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}

	parseCtx, cancel := context.WithTimeout(ctx, s.parseTimeout)
	defer cancel()

	draft, err := s.gateway.ParseRide(parseCtx, text)
	if err != nil {
		return nil, fmt.Errorf("parse ride request: %w: %w", ErrIntakeUnavailable, err)
	}

	rideModify := entities.RideModify{
		CustomerName: &draft.CustomerName,
		Pickup:       &entities.Location{Address: draft.PickupAddress},
		Dropoff:      &entities.Location{Address: draft.DropoffAddress},
		Notes:        draft.Notes,
	}
	if draft.Priority != "" {
		rideModify.Priority = &draft.Priority
	}

	rideEntity, err := s.rides.CreateRide(ctx, rideModify)
	if err != nil {
		return nil, fmt.Errorf("create ride from draft: %w", err)
	}

	return rideEntity, nil
}
