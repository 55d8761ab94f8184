package entities

import "time"

type Store struct {
	ID        string
	Name      string
	Owner     string
	Phone     string
	Address   string
	CreatedAt time.Time
}

type StoreModify struct {
	ID      *string
	Name    *string
	Owner   *string
	Phone   *string
	Address *string
}
