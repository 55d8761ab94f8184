package ride

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"dispatch/internal/entities"
	"dispatch/internal/repository"
	"dispatch/internal/service/ride"
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

func (r *Repository) Create(ctx context.Context, rideEntity entities.Ride) error {
	rideModel := FromDomain(&rideEntity)

	query := `
		INSERT INTO rides (
			id, customer_name, customer_id, store_id,
			pickup_lat, pickup_lng, pickup_address,
			dropoff_lat, dropoff_lng, dropoff_address,
			status, driver_id, price, priority, notes, requested_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`

	_, err := r.querier.Exec(
		ctx,
		query,
		rideModel.ID,
		rideModel.CustomerName,
		rideModel.CustomerID,
		rideModel.StoreID,
		rideModel.PickupLat,
		rideModel.PickupLng,
		rideModel.PickupAddress,
		rideModel.DropoffLat,
		rideModel.DropoffLng,
		rideModel.DropoffAddress,
		rideModel.Status,
		rideModel.DriverID,
		rideModel.Price,
		rideModel.Priority,
		rideModel.Notes,
		rideModel.RequestedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return ride.ErrConflict
		}
		return fmt.Errorf("unexpected ride repository create error: %w", err)
	}

	return nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Ride, error) {
	query := `
		SELECT id, customer_name, customer_id, store_id,
			pickup_lat, pickup_lng, pickup_address,
			dropoff_lat, dropoff_lng, dropoff_address,
			status, driver_id, price, priority, notes,
			requested_at, assigned_at, completed_at, cancelled_at
		FROM rides
		WHERE id = $1
	`

	var rideModel RideDB
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&rideModel.ID,
		&rideModel.CustomerName,
		&rideModel.CustomerID,
		&rideModel.StoreID,
		&rideModel.PickupLat,
		&rideModel.PickupLng,
		&rideModel.PickupAddress,
		&rideModel.DropoffLat,
		&rideModel.DropoffLng,
		&rideModel.DropoffAddress,
		&rideModel.Status,
		&rideModel.DriverID,
		&rideModel.Price,
		&rideModel.Priority,
		&rideModel.Notes,
		&rideModel.RequestedAt,
		&rideModel.AssignedAt,
		&rideModel.CompletedAt,
		&rideModel.CancelledAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ride.ErrRideNotFound
		}

		return nil, fmt.Errorf("unexpected ride repository getbyid error: %w", err)
	}

	return ToDomain(&rideModel), nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Ride, error) {
	query := `
		SELECT id, customer_name, customer_id, store_id,
			pickup_lat, pickup_lng, pickup_address,
			dropoff_lat, dropoff_lng, dropoff_address,
			status, driver_id, price, priority, notes,
			requested_at, assigned_at, completed_at, cancelled_at
		FROM rides
		ORDER BY requested_at DESC, id
	`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected ride repository getall error: %w", err)
	}
	defer rows.Close()

	rideModels := make([]RideDB, 0, 8)
	for rows.Next() {
		var rideModel RideDB
		err := rows.Scan(
			&rideModel.ID,
			&rideModel.CustomerName,
			&rideModel.CustomerID,
			&rideModel.StoreID,
			&rideModel.PickupLat,
			&rideModel.PickupLng,
			&rideModel.PickupAddress,
			&rideModel.DropoffLat,
			&rideModel.DropoffLng,
			&rideModel.DropoffAddress,
			&rideModel.Status,
			&rideModel.DriverID,
			&rideModel.Price,
			&rideModel.Priority,
			&rideModel.Notes,
			&rideModel.RequestedAt,
			&rideModel.AssignedAt,
			&rideModel.CompletedAt,
			&rideModel.CancelledAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected ride repository getall error: %w", err)
		}
		rideModels = append(rideModels, rideModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected ride repository getall error: %w", err)
	}

	return ToDomainList(rideModels), nil
}

func (r *Repository) UpdateStatus(
	ctx context.Context,
	id string,
	from []entities.RideStatusType,
	to entities.RideStatusType,
	change entities.RideStatusChange,
) (bool, error) {
	fromStatuses := make([]string, 0, len(from))
	for _, status := range from {
		fromStatuses = append(fromStatuses, status.String())
	}

	builder := qb.
		Update("rides").
		Set("status", to.String())

	// побочные эффекты перехода
	if change.DriverID != nil {
		builder = builder.Set("driver_id", change.DriverID)
	}
	if change.ClearDriver {
		builder = builder.Set("driver_id", nil)
	}

	// временная метка выбирается по целевому статусу
	switch to {
	case entities.RideAssigned:
		builder = builder.Set("assigned_at", change.At)
	case entities.RideCompleted:
		builder = builder.Set("completed_at", change.At)
	case entities.RideCancelled:
		builder = builder.Set("cancelled_at", change.At)
	}

	builder = builder.Where(sq.Eq{
		"id":     id,
		"status": fromStatuses,
	})

	query, args, err := builder.ToSql()
	if err != nil {
		return false, fmt.Errorf("unexpected ride repository update status error: %w", err)
	}

	result, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("unexpected ride repository update status error: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *Repository) PromoteAssignedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `
		UPDATE rides
		SET status = 'in_progress'
		WHERE status = 'assigned'
		  AND assigned_at < $1
	`

	result, err := r.querier.Exec(ctx, query, cutoff)
	if err != nil {
		return 0, fmt.Errorf("unexpected ride repository promote assigned error: %w", err)
	}

	return result.RowsAffected(), nil
}
