package driver

import (
	"context"
	"fmt"
	"time"

	"dispatch/internal/entities"
	"dispatch/internal/pkg/ids"
)

const idPrefix = "d"

type Driver struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *Driver {
	return &Driver{
		repository: repository,
		txManager:  txManager,
	}
}

func (s *Driver) CreateDriver(ctx context.Context, driverModify entities.DriverModify) (*entities.Driver, error) {
	if driverModify.Name == nil ||
		driverModify.Phone == nil ||
		driverModify.VehicleType == nil ||
		driverModify.Rating == nil {
		return nil, ErrMissingRequiredFields
	}

	if !isValidName(*driverModify.Name) {
		return nil, ErrInvalidName
	}
	if !isValidPhone(*driverModify.Phone) {
		return nil, ErrInvalidPhone
	}
	if !isValidVehicle(*driverModify.VehicleType) {
		return nil, ErrInvalidVehicleType
	}
	if !isValidRating(*driverModify.Rating) {
		return nil, ErrInvalidRating
	}

	id, err := ids.New(idPrefix)
	if err != nil {
		return nil, fmt.Errorf("create driver: %w", err)
	}

	now := time.Now().UTC()
	driverEntity := entities.Driver{
		ID:          id,
		Name:        *driverModify.Name,
		Phone:       *driverModify.Phone,
		VehicleType: *driverModify.VehicleType,
		Rating:      *driverModify.Rating,
		Status:      entities.DefaultDriverStatus,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if driverModify.Location != nil {
		driverEntity.Location = *driverModify.Location
	}

	if err := s.repository.Create(ctx, driverEntity); err != nil {
		return nil, fmt.Errorf("create driver: %w", err)
	}

	return &driverEntity, nil
}

func (s *Driver) UpdateDriver(ctx context.Context, driverModify entities.DriverModify) (*entities.Driver, error) {
	if driverModify.ID == nil || !isValidDriverID(*driverModify.ID) {
		return nil, ErrInvalidDriverID
	}

	if driverModify.Name == nil &&
		driverModify.Phone == nil &&
		driverModify.VehicleType == nil &&
		driverModify.Rating == nil &&
		driverModify.Location == nil &&
		driverModify.Status == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if driverModify.Name != nil && !isValidName(*driverModify.Name) {
		return nil, ErrInvalidName
	}
	if driverModify.Phone != nil && !isValidPhone(*driverModify.Phone) {
		return nil, ErrInvalidPhone
	}
	if driverModify.VehicleType != nil && !isValidVehicle(*driverModify.VehicleType) {
		return nil, ErrInvalidVehicleType
	}
	if driverModify.Rating != nil && !isValidRating(*driverModify.Rating) {
		return nil, ErrInvalidRating
	}
	if driverModify.Status != nil && !isValidStatus(driverModify.Status.String()) {
		return nil, ErrInvalidStatus
	}

	driverEntity, err := s.repository.Update(ctx, driverModify)
	if err != nil {
		return nil, fmt.Errorf("failed to update driver: %w", err)
	}
	return driverEntity, nil
}

func (s *Driver) GetDriver(ctx context.Context, id string) (*entities.Driver, error) {
	if !isValidDriverID(id) {
		return nil, ErrInvalidDriverID
	}

	driverEntity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get driver: %w", err)
	}

	return driverEntity, nil
}

func (s *Driver) GetDrivers(ctx context.Context) ([]entities.Driver, error) {
	drivers, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get drivers: %w", err)
	}

	return drivers, nil
}

func (s *Driver) GetAvailableDrivers(ctx context.Context) ([]entities.Driver, error) {
	drivers, err := s.repository.GetByStatus(ctx, entities.DriverAvailable)
	if err != nil {
		return nil, fmt.Errorf("failed to get available drivers: %w", err)
	}

	return drivers, nil
}

// Reserve закрепляет свободного водителя за поездкой. Статус проверяется
// атомарно на стороне хранилища, так что гонка двух назначений на одного
// водителя невозможна.
func (s *Driver) Reserve(ctx context.Context, driverID string, rideID string) error {
	if !isValidDriverID(driverID) {
		return ErrInvalidDriverID
	}

	ok, err := s.repository.Reserve(ctx, driverID, rideID)
	if err != nil {
		return fmt.Errorf("reserve driver: %w", err)
	}
	if ok {
		return nil
	}

	if _, err := s.repository.GetByID(ctx, driverID); err != nil {
		return fmt.Errorf("reserve driver: %w", err)
	}
	return ErrDriverNotAvailable
}

// Release возвращает водителя в пул. Повторный вызов для уже свободного
// водителя не ошибка.
func (s *Driver) Release(ctx context.Context, driverID string) error {
	if !isValidDriverID(driverID) {
		return ErrInvalidDriverID
	}

	ok, err := s.repository.Release(ctx, driverID)
	if err != nil {
		return fmt.Errorf("release driver: %w", err)
	}
	if ok {
		return nil
	}

	if _, err := s.repository.GetByID(ctx, driverID); err != nil {
		return fmt.Errorf("release driver: %w", err)
	}
	return nil
}

// ToggleOffline переключает водителя между offline и available.
// Водителя с активной поездкой снять со смены нельзя.
func (s *Driver) ToggleOffline(ctx context.Context, driverID string) (*entities.Driver, error) {
	if !isValidDriverID(driverID) {
		return nil, ErrInvalidDriverID
	}

	var result *entities.Driver
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		driverEntity, err := s.repository.GetByID(ctx, driverID)
		if err != nil {
			return fmt.Errorf("failed to get driver: %w", err)
		}

		if driverEntity.Status == entities.DriverBusy {
			return ErrDriverBusy
		}

		newStatus := entities.DriverOffline
		if driverEntity.Status == entities.DriverOffline {
			newStatus = entities.DriverAvailable
		}

		// между чтением и записью водителя мог занять параллельный резерв
		ok, err := s.repository.SetStatus(ctx, driverID, driverEntity.Status, newStatus)
		if err != nil {
			return fmt.Errorf("failed to update driver status: %w", err)
		}
		if !ok {
			return ErrDriverBusy
		}

		driverEntity.Status = newStatus
		driverEntity.UpdatedAt = time.Now().UTC()
		result = driverEntity
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
