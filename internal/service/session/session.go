package session

import (
	"context"
	"fmt"
	"strings"
	"time"

	"dispatch/internal/entities"
)

// Session хранит операторские сессии в Redis с TTL. Полноценной
// аутентификации здесь нет, сервис только фиксирует кто и под какой
// ролью работает с диспетчерской.
type Session struct {
	repository Repository
}

func New(repository Repository) *Session {
	return &Session{
		repository: repository,
	}
}

func (s *Session) Login(ctx context.Context, user string, role entities.SessionRoleType) (*entities.Session, error) {
	if strings.TrimSpace(user) == "" {
		return nil, ErrInvalidUser
	}
	if !isValidRole(role.String()) {
		return nil, ErrInvalidRole
	}

	sessionEntity := entities.Session{
		User:      user,
		Role:      role,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repository.Save(ctx, sessionEntity); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	return &sessionEntity, nil
}

func (s *Session) GetSession(ctx context.Context, user string) (*entities.Session, error) {
	if strings.TrimSpace(user) == "" {
		return nil, ErrInvalidUser
	}

	sessionEntity, err := s.repository.Get(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	return sessionEntity, nil
}

func (s *Session) Logout(ctx context.Context, user string) error {
	if strings.TrimSpace(user) == "" {
		return ErrInvalidUser
	}

	if err := s.repository.Delete(ctx, user); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	return nil
}

func isValidRole(role string) bool {
	switch role {
	case "ADMIN", "DRIVER", "STORE":
		return true
	default:
		return false
	}
}
