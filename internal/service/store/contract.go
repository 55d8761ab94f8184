//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=store_test
package store

import (
	"context"

	"dispatch/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, storeEntity entities.Store) error
	GetByID(ctx context.Context, id string) (*entities.Store, error)
	GetAll(ctx context.Context) ([]entities.Store, error)
}
