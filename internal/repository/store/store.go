package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"dispatch/internal/entities"
	"dispatch/internal/repository"
	"dispatch/internal/service/store"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, storeEntity entities.Store) error {
	storeModel := FromDomain(&storeEntity)

	query := `
		INSERT INTO stores (id, name, owner, phone, address, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.querier.Exec(
		ctx,
		query,
		storeModel.ID,
		storeModel.Name,
		storeModel.Owner,
		storeModel.Phone,
		storeModel.Address,
		storeModel.CreatedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return store.ErrConflict
		}
		return fmt.Errorf("unexpected store repository create error: %w", err)
	}

	return nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Store, error) {
	query := `
		SELECT id, name, owner, phone, address, created_at
		FROM stores
		WHERE id = $1
	`

	var storeModel StoreDB
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&storeModel.ID,
		&storeModel.Name,
		&storeModel.Owner,
		&storeModel.Phone,
		&storeModel.Address,
		&storeModel.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrStoreNotFound
		}

		return nil, fmt.Errorf("unexpected store repository getbyid error: %w", err)
	}

	return ToDomain(&storeModel), nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Store, error) {
	query := `
		SELECT id, name, owner, phone, address, created_at
		FROM stores
		ORDER BY id
	`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected store repository getall error: %w", err)
	}
	defer rows.Close()

	storeModels := make([]StoreDB, 0, 8)
	for rows.Next() {
		var storeModel StoreDB
		err := rows.Scan(
			&storeModel.ID,
			&storeModel.Name,
			&storeModel.Owner,
			&storeModel.Phone,
			&storeModel.Address,
			&storeModel.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected store repository getall error: %w", err)
		}
		storeModels = append(storeModels, storeModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected store repository getall error: %w", err)
	}

	return ToDomainList(storeModels), nil
}
