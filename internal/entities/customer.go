package entities

import "time"

type Customer struct {
	ID        string
	Name      string
	Phone     string
	Address   string
	CreatedAt time.Time
}

type CustomerModify struct {
	ID      *string
	Name    *string
	Phone   *string
	Address *string
}
