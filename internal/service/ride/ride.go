package ride

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dispatch/internal/entities"
	"dispatch/internal/pkg/ids"
)

const idPrefix = "r"

type Ride struct {
	repository Repository
	drivers    DriverCoordinator
	scheduler  Scheduler
	delays     StartDelayFactory
	txManager  TxManager
}

func New(
	repository Repository,
	drivers DriverCoordinator,
	scheduler Scheduler,
	delays StartDelayFactory,
	txManager TxManager,
) *Ride {
	return &Ride{
		repository: repository,
		drivers:    drivers,
		scheduler:  scheduler,
		delays:     delays,
		txManager:  txManager,
	}
}

func (s *Ride) CreateRide(ctx context.Context, rideModify entities.RideModify) (*entities.Ride, error) {
	if rideModify.CustomerName == nil ||
		rideModify.Pickup == nil ||
		rideModify.Dropoff == nil {
		return nil, ErrMissingRequiredFields
	}

	if !isValidCustomerName(*rideModify.CustomerName) {
		return nil, ErrInvalidCustomerName
	}
	if !isValidLocation(*rideModify.Pickup) || !isValidLocation(*rideModify.Dropoff) {
		return nil, ErrInvalidLocation
	}

	priority := entities.DefaultPriority
	if rideModify.Priority != nil {
		if !isValidPriority(rideModify.Priority.String()) {
			return nil, ErrInvalidPriority
		}
		priority = *rideModify.Priority
	}

	id, err := ids.New(idPrefix)
	if err != nil {
		return nil, fmt.Errorf("create ride: %w", err)
	}

	rideEntity := entities.Ride{
		ID:           id,
		CustomerName: *rideModify.CustomerName,
		CustomerID:   rideModify.CustomerID,
		StoreID:      rideModify.StoreID,
		Pickup:       *rideModify.Pickup,
		Dropoff:      *rideModify.Dropoff,
		Status:       entities.RidePending,
		Priority:     priority,
		Notes:        rideModify.Notes,
		RequestedAt:  time.Now().UTC(),
	}
	if rideModify.Price != nil {
		rideEntity.Price = *rideModify.Price
	}

	if err := s.repository.Create(ctx, rideEntity); err != nil {
		return nil, fmt.Errorf("create ride: %w", err)
	}

	return &rideEntity, nil
}

func (s *Ride) GetRide(ctx context.Context, id string) (*entities.Ride, error) {
	if !isValidRideID(id) {
		return nil, ErrInvalidRideID
	}

	rideEntity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get ride: %w", err)
	}

	return rideEntity, nil
}

func (s *Ride) GetRides(ctx context.Context) ([]entities.Ride, error) {
	rides, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get rides: %w", err)
	}

	return rides, nil
}

// Assign привязывает водителя к ожидающей поездке. Резерв водителя и смена
// статуса поездки выполняются в одной транзакции: либо оба записались, либо
// ни один. После фиксации ставится отложенный автоперевод в in_progress.
func (s *Ride) Assign(ctx context.Context, rideID string, driverID string) (*entities.RideAssignment, error) {
	if !isValidRideID(rideID) {
		return nil, ErrInvalidRideID
	}
	if !isValidDriverID(driverID) {
		return nil, ErrInvalidDriverID
	}

	// время назначения это бизнес-логика, поэтому задаем тут а не в БД
	assignedAt := time.Now().UTC()

	var priority entities.RidePriorityType
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		rideEntity, err := s.repository.GetByID(ctx, rideID)
		if err != nil {
			return fmt.Errorf("get ride: %w", err)
		}

		if rideEntity.Status != entities.RidePending {
			if rideEntity.Status.IsTerminal() {
				return ErrRideAlreadyFinished
			}
			return ErrRideNotPending
		}

		if err := s.drivers.Reserve(ctx, driverID, rideID); err != nil {
			return fmt.Errorf("reserve driver: %w", err)
		}

		ok, err := s.repository.UpdateStatus(ctx, rideID,
			[]entities.RideStatusType{entities.RidePending},
			entities.RideAssigned,
			entities.RideStatusChange{DriverID: &driverID, At: assignedAt},
		)
		if err != nil {
			return fmt.Errorf("update ride status: %w", err)
		}
		if !ok {
			return ErrRideConflict
		}

		priority = rideEntity.Priority
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.scheduler.Schedule(rideID, s.delays.StartDelay(priority), func(ctx context.Context) error {
		return s.startDeferred(ctx, rideID)
	})

	return &entities.RideAssignment{
		RideID:     rideID,
		DriverID:   driverID,
		AssignedAt: assignedAt,
	}, nil
}

// Start переводит назначенную поездку в in_progress. Повторный вызов для
// уже начатой поездки идемпотентен.
func (s *Ride) Start(ctx context.Context, rideID string) (*entities.Ride, error) {
	if !isValidRideID(rideID) {
		return nil, ErrInvalidRideID
	}

	ok, err := s.repository.UpdateStatus(ctx, rideID,
		[]entities.RideStatusType{entities.RideAssigned},
		entities.RideInProgress,
		entities.RideStatusChange{At: time.Now().UTC()},
	)
	if err != nil {
		return nil, fmt.Errorf("update ride status: %w", err)
	}

	rideEntity, getErr := s.repository.GetByID(ctx, rideID)
	if getErr != nil {
		return nil, fmt.Errorf("get ride: %w", getErr)
	}

	if ok {
		s.scheduler.Cancel(rideID)
		return rideEntity, nil
	}

	switch {
	case rideEntity.Status == entities.RideInProgress:
		// уже в пути, no-op
		return rideEntity, nil
	case rideEntity.Status.IsTerminal():
		return nil, ErrRideAlreadyFinished
	default:
		return nil, ErrRideNotAssigned
	}
}

// Complete завершает поездку из assigned или in_progress. Водитель
// возвращается в пул, но остается в записи поездки для истории.
func (s *Ride) Complete(ctx context.Context, rideID string) (*entities.Ride, error) {
	rideEntity, err := s.finishRide(ctx, rideID, entities.RideCompleted)
	if err != nil {
		return nil, err
	}
	return rideEntity, nil
}

// Cancel отменяет поездку из любого нефинального статуса. Привязка водителя
// снимается и он возвращается в пул.
func (s *Ride) Cancel(ctx context.Context, rideID string) (*entities.Ride, error) {
	rideEntity, err := s.finishRide(ctx, rideID, entities.RideCancelled)
	if err != nil {
		return nil, err
	}
	return rideEntity, nil
}

// PromoteOverdueAssigned подбирает поездки, которым таймер автостарта не
// сработал (рестарт процесса), и переводит их в in_progress.
func (s *Ride) PromoteOverdueAssigned(ctx context.Context) (int64, error) {
	cutoff := time.Now().UTC().Add(-s.delays.StartDelay(entities.PriorityNormal))

	rowsAffected, err := s.repository.PromoteAssignedBefore(ctx, cutoff)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return 0, fmt.Errorf("promote timed out: %w", err)
		}
		return 0, fmt.Errorf("promote overdue assigned: %w", err)
	}

	return rowsAffected, nil
}

func (s *Ride) finishRide(ctx context.Context, rideID string, target entities.RideStatusType) (*entities.Ride, error) {
	if !isValidRideID(rideID) {
		return nil, ErrInvalidRideID
	}

	finishedAt := time.Now().UTC()
	var result *entities.Ride

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		rideEntity, err := s.repository.GetByID(ctx, rideID)
		if err != nil {
			return fmt.Errorf("get ride: %w", err)
		}

		if !rideEntity.Status.CanTransitionTo(target) {
			if rideEntity.Status.IsTerminal() {
				return ErrRideAlreadyFinished
			}
			return ErrRideNotAssigned
		}

		from := []entities.RideStatusType{entities.RideAssigned, entities.RideInProgress}
		change := entities.RideStatusChange{At: finishedAt}
		if target == entities.RideCancelled {
			from = append(from, entities.RidePending)
			change.ClearDriver = true
		}

		ok, err := s.repository.UpdateStatus(ctx, rideID, from, target, change)
		if err != nil {
			return fmt.Errorf("update ride status: %w", err)
		}
		if !ok {
			return ErrRideConflict
		}

		if rideEntity.DriverID != nil {
			if err := s.drivers.Release(ctx, *rideEntity.DriverID); err != nil {
				return fmt.Errorf("release driver: %w", err)
			}
		}

		result = rideEntity
		result.Status = target
		switch target {
		case entities.RideCompleted:
			result.CompletedAt = &finishedAt
		case entities.RideCancelled:
			result.CancelledAt = &finishedAt
			result.DriverID = nil
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// отложенный автостарт больше не нужен
	s.scheduler.Cancel(rideID)

	return result, nil
}

func (s *Ride) startDeferred(ctx context.Context, rideID string) error {
	_, err := s.Start(ctx, rideID)
	if err == nil {
		return nil
	}
	// поездка успела завершиться или отмениться, таймер просто опоздал
	if errors.Is(err, ErrRideAlreadyFinished) ||
		errors.Is(err, ErrRideNotAssigned) ||
		errors.Is(err, ErrRideNotFound) {
		return nil
	}
	return err
}
