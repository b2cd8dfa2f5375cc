package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/piresc/tiffinhub/internal/pkg/models"
)

// RedisPersister stores the session as JSON under a single key
type RedisPersister struct {
	client *redis.Client
	key    string
}

// NewRedisPersister creates a persister writing to key
func NewRedisPersister(client *redis.Client, key string) *RedisPersister {
	return &RedisPersister{client: client, key: key}
}

// Load returns nil without error when nothing is stored
func (p *RedisPersister) Load(ctx context.Context) (*models.Session, error) {
	data, err := p.client.Get(ctx, p.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	var session models.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	return &session, nil
}

func (p *RedisPersister) Save(ctx context.Context, session models.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := p.client.Set(ctx, p.key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (p *RedisPersister) Delete(ctx context.Context) error {
	if err := p.client.Del(ctx, p.key).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
