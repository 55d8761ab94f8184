package session

import "dispatch/internal/entities"

func ToDomain(s *SessionDB) *entities.Session {
	if s == nil {
		return nil
	}
	return &entities.Session{
		User:      s.User,
		Role:      entities.SessionRoleType(s.Role),
		CreatedAt: s.CreatedAt,
	}
}

func FromDomain(s *entities.Session) *SessionDB {
	if s == nil {
		return nil
	}
	return &SessionDB{
		User:      s.User,
		Role:      s.Role.String(),
		CreatedAt: s.CreatedAt,
	}
}
