package customer

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"dispatch/internal/entities"
	"dispatch/internal/repository"
	"dispatch/internal/service/customer"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, customerEntity entities.Customer) error {
	customerModel := FromDomain(&customerEntity)

	query := `
		INSERT INTO customers (id, name, phone, address, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.querier.Exec(
		ctx,
		query,
		customerModel.ID,
		customerModel.Name,
		customerModel.Phone,
		customerModel.Address,
		customerModel.CreatedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return customer.ErrConflict
		}
		return fmt.Errorf("unexpected customer repository create error: %w", err)
	}

	return nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Customer, error) {
	query := `
		SELECT id, name, phone, address, created_at
		FROM customers
		WHERE id = $1
	`

	var customerModel CustomerDB
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&customerModel.ID,
		&customerModel.Name,
		&customerModel.Phone,
		&customerModel.Address,
		&customerModel.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, customer.ErrCustomerNotFound
		}

		return nil, fmt.Errorf("unexpected customer repository getbyid error: %w", err)
	}

	return ToDomain(&customerModel), nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Customer, error) {
	query := `
		SELECT id, name, phone, address, created_at
		FROM customers
		ORDER BY id
	`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected customer repository getall error: %w", err)
	}
	defer rows.Close()

	customerModels := make([]CustomerDB, 0, 8)
	for rows.Next() {
		var customerModel CustomerDB
		err := rows.Scan(
			&customerModel.ID,
			&customerModel.Name,
			&customerModel.Phone,
			&customerModel.Address,
			&customerModel.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected customer repository getall error: %w", err)
		}
		customerModels = append(customerModels, customerModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected customer repository getall error: %w", err)
	}

	return ToDomainList(customerModels), nil
}
