package store

import (
	"context"
	"fmt"
	"time"

	"dispatch/internal/entities"
	"dispatch/internal/pkg/ids"
)

const idPrefix = "s"

type Store struct {
	repository Repository
}

func New(repository Repository) *Store {
	return &Store{
		repository: repository,
	}
}

func (s *Store) CreateStore(ctx context.Context, storeModify entities.StoreModify) (*entities.Store, error) {
	if storeModify.Name == nil || storeModify.Phone == nil {
		return nil, ErrMissingRequiredFields
	}

	if !isValidName(*storeModify.Name) {
		return nil, ErrInvalidName
	}
	if !isValidPhone(*storeModify.Phone) {
		return nil, ErrInvalidPhone
	}

	id, err := ids.New(idPrefix)
	if err != nil {
		return nil, fmt.Errorf("create store: %w", err)
	}

	storeEntity := entities.Store{
		ID:        id,
		Name:      *storeModify.Name,
		Phone:     *storeModify.Phone,
		CreatedAt: time.Now().UTC(),
	}
	if storeModify.Owner != nil {
		storeEntity.Owner = *storeModify.Owner
	}
	if storeModify.Address != nil {
		storeEntity.Address = *storeModify.Address
	}

	if err := s.repository.Create(ctx, storeEntity); err != nil {
		return nil, fmt.Errorf("create store: %w", err)
	}

	return &storeEntity, nil
}

func (s *Store) GetStore(ctx context.Context, id string) (*entities.Store, error) {
	if !isValidStoreID(id) {
		return nil, ErrInvalidStoreID
	}

	storeEntity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get store: %w", err)
	}

	return storeEntity, nil
}

func (s *Store) GetStores(ctx context.Context) ([]entities.Store, error) {
	stores, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get stores: %w", err)
	}

	return stores, nil
}
