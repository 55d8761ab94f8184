package store

import "dispatch/internal/entities"

func ToDomain(s *StoreDB) *entities.Store {
	if s == nil {
		return nil
	}
	return &entities.Store{
		ID:        s.ID,
		Name:      s.Name,
		Owner:     s.Owner,
		Phone:     s.Phone,
		Address:   s.Address,
		CreatedAt: s.CreatedAt,
	}
}

func FromDomain(s *entities.Store) *StoreDB {
	if s == nil {
		return nil
	}
	return &StoreDB{
		ID:        s.ID,
		Name:      s.Name,
		Owner:     s.Owner,
		Phone:     s.Phone,
		Address:   s.Address,
		CreatedAt: s.CreatedAt,
	}
}

func ToDomainList(storeModels []StoreDB) []entities.Store {
	storeEntities := make([]entities.Store, 0, len(storeModels))
	for i := range storeModels {
		storeEntities = append(storeEntities, *ToDomain(&storeModels[i]))
	}
	return storeEntities
}
