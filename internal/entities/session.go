package entities

import "time"

// Session операторская сессия. Сама аутентификация вне скоупа сервиса,
// мы только храним кто и под какой ролью вошел.
type Session struct {
	User      string
	Role      SessionRoleType
	CreatedAt time.Time
}

type SessionRoleType string

const (
	RoleAdmin  SessionRoleType = "ADMIN"
	RoleDriver SessionRoleType = "DRIVER"
	RoleStore  SessionRoleType = "STORE"
)

func (r SessionRoleType) String() string {
	return string(r)
}
