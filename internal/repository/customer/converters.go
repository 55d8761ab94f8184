package customer

import "dispatch/internal/entities"

func ToDomain(c *CustomerDB) *entities.Customer {
	if c == nil {
		return nil
	}
	return &entities.Customer{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     c.Phone,
		Address:   c.Address,
		CreatedAt: c.CreatedAt,
	}
}

func FromDomain(c *entities.Customer) *CustomerDB {
	if c == nil {
		return nil
	}
	return &CustomerDB{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     c.Phone,
		Address:   c.Address,
		CreatedAt: c.CreatedAt,
	}
}

func ToDomainList(customerModels []CustomerDB) []entities.Customer {
	customerEntities := make([]entities.Customer, 0, len(customerModels))
	for i := range customerModels {
		customerEntities = append(customerEntities, *ToDomain(&customerModels[i]))
	}
	return customerEntities
}
