package customer

import "time"

type CustomerDB struct {
	ID        string
	Name      string
	Phone     string
	Address   string
	CreatedAt time.Time
}
