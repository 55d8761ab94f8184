//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=session_test
package session

import (
	"context"

	"dispatch/internal/entities"
)

type Repository interface {
	Save(ctx context.Context, sessionEntity entities.Session) error
	Get(ctx context.Context, user string) (*entities.Session, error)
	Delete(ctx context.Context, user string) error
}
