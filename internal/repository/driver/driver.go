package driver

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"dispatch/internal/entities"
	"dispatch/internal/repository"
	"dispatch/internal/service/driver"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, driverEntity entities.Driver) error {
	driverModel := FromDomain(&driverEntity)

	query := `
		INSERT INTO drivers (
			id, name, phone, vehicle_type, rating,
			location_lat, location_lng, location_address,
			status, current_ride_id, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.querier.Exec(
		ctx,
		query,
		driverModel.ID,
		driverModel.Name,
		driverModel.Phone,
		driverModel.VehicleType,
		driverModel.Rating,
		driverModel.LocationLat,
		driverModel.LocationLng,
		driverModel.LocationAddress,
		driverModel.Status,
		driverModel.CurrentRideID,
		driverModel.CreatedAt,
		driverModel.UpdatedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return driver.ErrConflict
		}
		return fmt.Errorf("unexpected driver repository create error: %w", err)
	}

	return nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Driver, error) {
	query := `
		SELECT id, name, phone, vehicle_type, rating,
			location_lat, location_lng, location_address,
			status, current_ride_id, created_at, updated_at
		FROM drivers
		WHERE id = $1
	`

	var driverModel DriverDB
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&driverModel.ID,
		&driverModel.Name,
		&driverModel.Phone,
		&driverModel.VehicleType,
		&driverModel.Rating,
		&driverModel.LocationLat,
		&driverModel.LocationLng,
		&driverModel.LocationAddress,
		&driverModel.Status,
		&driverModel.CurrentRideID,
		&driverModel.CreatedAt,
		&driverModel.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, driver.ErrDriverNotFound
		}

		return nil, fmt.Errorf("unexpected driver repository getbyid error: %w", err)
	}

	return ToDomain(&driverModel), nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Driver, error) {
	query := `
		SELECT id, name, phone, vehicle_type, rating,
			location_lat, location_lng, location_address,
			status, current_ride_id, created_at, updated_at
		FROM drivers
		ORDER BY id
	`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected driver repository getall error: %w", err)
	}
	defer rows.Close()

	return scanDrivers(rows, "getall")
}

func (r *Repository) GetByStatus(ctx context.Context, status entities.DriverStatusType) ([]entities.Driver, error) {
	query := `
		SELECT id, name, phone, vehicle_type, rating,
			location_lat, location_lng, location_address,
			status, current_ride_id, created_at, updated_at
		FROM drivers
		WHERE status = $1
		ORDER BY rating DESC, id
	`

	rows, err := r.querier.Query(ctx, query, status.String())
	if err != nil {
		return nil, fmt.Errorf("unexpected driver repository getbystatus error: %w", err)
	}
	defer rows.Close()

	return scanDrivers(rows, "getbystatus")
}

func (r *Repository) Update(ctx context.Context, driverModifyEntity entities.DriverModify) (*entities.Driver, error) {
	driverModifyModel := FromDomainModify(&driverModifyEntity)

	builder := qb.
		Update("drivers")

	// опциональные поля
	if driverModifyModel.Name != nil {
		builder = builder.Set("name", driverModifyModel.Name)
	}
	if driverModifyModel.Phone != nil {
		builder = builder.Set("phone", driverModifyModel.Phone)
	}
	if driverModifyModel.VehicleType != nil {
		builder = builder.Set("vehicle_type", driverModifyModel.VehicleType)
	}
	if driverModifyModel.Rating != nil {
		builder = builder.Set("rating", driverModifyModel.Rating)
	}
	if driverModifyModel.LocationLat != nil {
		builder = builder.
			Set("location_lat", driverModifyModel.LocationLat).
			Set("location_lng", driverModifyModel.LocationLng).
			Set("location_address", driverModifyModel.LocationAddress)
	}
	if driverModifyModel.Status != nil {
		builder = builder.Set("status", driverModifyModel.Status)
	}
	if driverModifyModel.CurrentRideID != nil {
		builder = builder.Set("current_ride_id", driverModifyModel.CurrentRideID)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": driverModifyModel.ID}).
		Suffix(`RETURNING id, name, phone, vehicle_type, rating,
			location_lat, location_lng, location_address,
			status, current_ride_id, created_at, updated_at`)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected driver repository update error: %w", err)
	}

	var driverModel DriverDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(
		&driverModel.ID,
		&driverModel.Name,
		&driverModel.Phone,
		&driverModel.VehicleType,
		&driverModel.Rating,
		&driverModel.LocationLat,
		&driverModel.LocationLng,
		&driverModel.LocationAddress,
		&driverModel.Status,
		&driverModel.CurrentRideID,
		&driverModel.CreatedAt,
		&driverModel.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, driver.ErrDriverNotFound
		}

		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, driver.ErrConflict
		}

		return nil, fmt.Errorf("unexpected driver repository update error: %w", err)
	}

	return ToDomain(&driverModel), nil
}

func (r *Repository) Reserve(ctx context.Context, id string, rideID string) (bool, error) {
	query := `
		UPDATE drivers
		SET status = 'busy',
			current_ride_id = $2,
			updated_at = NOW()
		WHERE id = $1
		  AND status = 'available'
	`

	result, err := r.querier.Exec(ctx, query, id, rideID)
	if err != nil {
		return false, fmt.Errorf("unexpected driver repository reserve error: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *Repository) Release(ctx context.Context, id string) (bool, error) {
	query := `
		UPDATE drivers
		SET status = 'available',
			current_ride_id = NULL,
			updated_at = NOW()
		WHERE id = $1
		  AND status = 'busy'
	`

	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("unexpected driver repository release error: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *Repository) SetStatus(ctx context.Context, id string, from entities.DriverStatusType, to entities.DriverStatusType) (bool, error) {
	query := `
		UPDATE drivers
		SET status = $3,
			updated_at = NOW()
		WHERE id = $1
		  AND status = $2
	`

	result, err := r.querier.Exec(ctx, query, id, from.String(), to.String())
	if err != nil {
		return false, fmt.Errorf("unexpected driver repository setstatus error: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

func scanDrivers(rows pgx.Rows, op string) ([]entities.Driver, error) {
	driverModels := make([]DriverDB, 0, 8)
	for rows.Next() {
		var driverModel DriverDB
		err := rows.Scan(
			&driverModel.ID,
			&driverModel.Name,
			&driverModel.Phone,
			&driverModel.VehicleType,
			&driverModel.Rating,
			&driverModel.LocationLat,
			&driverModel.LocationLng,
			&driverModel.LocationAddress,
			&driverModel.Status,
			&driverModel.CurrentRideID,
			&driverModel.CreatedAt,
			&driverModel.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected driver repository %s error: %w", op, err)
		}
		driverModels = append(driverModels, driverModel)
	}

	err := rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected driver repository %s error: %w", op, err)
	}

	return ToDomainList(driverModels), nil
}
