package store

import "time"

type StoreDB struct {
	ID        string
	Name      string
	Owner     string
	Phone     string
	Address   string
	CreatedAt time.Time
}
