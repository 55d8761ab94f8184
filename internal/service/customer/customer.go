package customer

import (
	"context"
	"fmt"
	"time"

	"dispatch/internal/entities"
	"dispatch/internal/pkg/ids"
)

const idPrefix = "c"

type Customer struct {
	repository Repository
}

func New(repository Repository) *Customer {
	return &Customer{
		repository: repository,
	}
}

func (s *Customer) CreateCustomer(ctx context.Context, customerModify entities.CustomerModify) (*entities.Customer, error) {
	if customerModify.Name == nil || customerModify.Phone == nil {
		return nil, ErrMissingRequiredFields
	}

	if !isValidName(*customerModify.Name) {
		return nil, ErrInvalidName
	}
	if !isValidPhone(*customerModify.Phone) {
		return nil, ErrInvalidPhone
	}

	id, err := ids.New(idPrefix)
	if err != nil {
		return nil, fmt.Errorf("create customer: %w", err)
	}

	customerEntity := entities.Customer{
		ID:        id,
		Name:      *customerModify.Name,
		Phone:     *customerModify.Phone,
		CreatedAt: time.Now().UTC(),
	}
	if customerModify.Address != nil {
		customerEntity.Address = *customerModify.Address
	}

	if err := s.repository.Create(ctx, customerEntity); err != nil {
		return nil, fmt.Errorf("create customer: %w", err)
	}

	return &customerEntity, nil
}

func (s *Customer) GetCustomer(ctx context.Context, id string) (*entities.Customer, error) {
	if !isValidCustomerID(id) {
		return nil, ErrInvalidCustomerID
	}

	customerEntity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	return customerEntity, nil
}

func (s *Customer) GetCustomers(ctx context.Context) ([]entities.Customer, error) {
	customers, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get customers: %w", err)
	}

	return customers, nil
}
