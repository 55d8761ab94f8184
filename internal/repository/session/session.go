package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"dispatch/internal/entities"
	"dispatch/internal/service/session"
)

const keyPrefix = "session:"

type Repository struct {
	client *redis.Client
	ttl    time.Duration
}

func New(client *redis.Client, ttl time.Duration) *Repository {
	return &Repository{
		client: client,
		ttl:    ttl,
	}
}

func (r *Repository) Save(ctx context.Context, sessionEntity entities.Session) error {
	sessionModel := FromDomain(&sessionEntity)

	payload, err := json.Marshal(sessionModel)
	if err != nil {
		return fmt.Errorf("unexpected session repository save error: %w", err)
	}

	err = r.client.Set(ctx, keyPrefix+sessionModel.User, payload, r.ttl).Err()
	if err != nil {
		return fmt.Errorf("unexpected session repository save error: %w", err)
	}

	return nil
}

func (r *Repository) Get(ctx context.Context, user string) (*entities.Session, error) {
	payload, err := r.client.Get(ctx, keyPrefix+user).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, session.ErrSessionNotFound
		}
		return nil, fmt.Errorf("unexpected session repository get error: %w", err)
	}

	var sessionModel SessionDB
	if err := json.Unmarshal(payload, &sessionModel); err != nil {
		return nil, fmt.Errorf("unexpected session repository get error: %w", err)
	}

	return ToDomain(&sessionModel), nil
}

func (r *Repository) Delete(ctx context.Context, user string) error {
	deleted, err := r.client.Del(ctx, keyPrefix+user).Result()
	if err != nil {
		return fmt.Errorf("unexpected session repository delete error: %w", err)
	}

	if deleted == 0 {
		return session.ErrSessionNotFound
	}

	return nil
}
