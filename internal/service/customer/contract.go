//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=customer_test
package customer

import (
	"context"

	"dispatch/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, customerEntity entities.Customer) error
	GetByID(ctx context.Context, id string) (*entities.Customer, error)
	GetAll(ctx context.Context) ([]entities.Customer, error)
}
