package assignment

import (
	"context"
	"errors"
	"sort"
	"time"

	"dispatch/internal/entities"
	"dispatch/internal/service/driver"
	"dispatch/internal/service/ride"
	"dispatch/pkg/logger"
)

// Assignment резолвер назначений: ручное назначение и подбор водителя
// через matching-гейтвей с детерминированным фолбеком по рейтингу.
type Assignment struct {
	log            handlerLogger
	rides          RideService
	drivers        DriverService
	matcher        MatchingGateway
	suggestTimeout time.Duration
}

func New(
	log handlerLogger,
	rides RideService,
	drivers DriverService,
	matcher MatchingGateway,
	suggestTimeout time.Duration,
) *Assignment {
	return &Assignment{
		log:            log.With(logger.NewField("component", "assignment")),
		rides:          rides,
		drivers:        drivers,
		matcher:        matcher,
		suggestTimeout: suggestTimeout,
	}
}

// AssignManual назначает конкретного водителя, выбранного оператором.
// Доступность водителя и статус поездки проверяются атомарно внутри
// ride-сервиса.
func (s *Assignment) AssignManual(ctx context.Context, rideID string, driverID string) (*entities.RideAssignment, error) {
	return s.rides.Assign(ctx, rideID, driverID)
}

// AssignSuggested подбирает водителя для ожидающей поездки. Пул кандидатов
// снимается один раз; предложение гейтвея валидно только против этого снимка.
// Пустой пул и исчерпание кандидатов не ошибка: поездка остается pending,
// результат nil.
func (s *Assignment) AssignSuggested(ctx context.Context, rideID string) (*entities.RideAssignment, error) {
	rideEntity, err := s.rides.GetRide(ctx, rideID)
	if err != nil {
		return nil, err
	}

	if rideEntity.Status != entities.RidePending {
		if rideEntity.Status.IsTerminal() {
			return nil, ride.ErrRideAlreadyFinished
		}
		return nil, ride.ErrRideNotPending
	}

	candidates, err := s.drivers.GetAvailableDrivers(ctx)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	order := rankCandidates(candidates)

	var reasoning string
	suggestion := s.suggest(ctx, *rideEntity, candidates)
	if suggestion != nil {
		order = promote(order, suggestion.DriverID)
		reasoning = suggestion.Reasoning
	}

	for _, candidate := range order {
		assignment, err := s.rides.Assign(ctx, rideID, candidate.ID)
		if err == nil {
			if suggestion != nil && candidate.ID == suggestion.DriverID {
				assignment.Suggested = true
				assignment.Reasoning = reasoning
			}
			return assignment, nil
		}

		// кандидат ушел между снимком пула и резервом, пробуем следующего
		if errors.Is(err, driver.ErrDriverNotAvailable) || errors.Is(err, driver.ErrDriverNotFound) {
			s.log.Warn("candidate no longer available",
				logger.NewField("ride_id", rideID),
				logger.NewField("driver_id", candidate.ID),
			)
			continue
		}

		return nil, err
	}

	return nil, nil
}

func (s *Assignment) suggest(ctx context.Context, rideEntity entities.Ride, candidates []entities.Driver) *entities.DriverSuggestion {
	ctx, cancel := context.WithTimeout(ctx, s.suggestTimeout)
	defer cancel()

	suggestion, err := s.matcher.SuggestDriver(ctx, rideEntity, candidates)
	if err != nil {
		s.log.Warn("matching gateway failed, falling back to rating order",
			logger.NewField("ride_id", rideEntity.ID),
			logger.NewField("error", err),
		)
		return nil
	}
	if suggestion == nil {
		return nil
	}

	for _, candidate := range candidates {
		if candidate.ID == suggestion.DriverID {
			return suggestion
		}
	}

	s.log.Warn("matching gateway suggested driver outside candidate pool",
		logger.NewField("ride_id", rideEntity.ID),
		logger.NewField("driver_id", suggestion.DriverID),
	)
	return nil
}

// rankCandidates упорядочивает фолбек: рейтинг по убыванию, при равенстве
// идентификатор по возрастанию, чтобы порядок был воспроизводим.
func rankCandidates(candidates []entities.Driver) []entities.Driver {
	ranked := make([]entities.Driver, len(candidates))
	copy(ranked, candidates)

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Rating != ranked[j].Rating {
			return ranked[i].Rating > ranked[j].Rating
		}
		return ranked[i].ID < ranked[j].ID
	})
	return ranked
}

func promote(ranked []entities.Driver, driverID string) []entities.Driver {
	for i, candidate := range ranked {
		if candidate.ID == driverID {
			promoted := make([]entities.Driver, 0, len(ranked))
			promoted = append(promoted, candidate)
			promoted = append(promoted, ranked[:i]...)
			promoted = append(promoted, ranked[i+1:]...)
			return promoted
		}
	}
	return ranked
}
