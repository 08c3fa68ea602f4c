package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"foodcourt-web/internal/cart"

	"github.com/redis/go-redis/v9"
)

// RedisCartRepository stores one JSON-encoded cart per session key with a
// TTL, so abandoned carts age out with the session.
type RedisCartRepository struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCartRepository(client *redis.Client, ttl time.Duration) *RedisCartRepository {
	return &RedisCartRepository{Client: client, TTL: ttl}
}

func (r *RedisCartRepository) key(sessionID string) string {
	return "cart:" + sessionID
}

func (r *RedisCartRepository) Load(ctx context.Context, sessionID string) (*cart.Cart, error) {
	data, err := r.Client.Get(ctx, r.key(sessionID)).Bytes()
	if err == redis.Nil {
		return &cart.Cart{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}

	var c cart.Cart
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decode cart: %w", err)
	}
	return &c, nil
}

func (r *RedisCartRepository) Save(ctx context.Context, sessionID string, c *cart.Cart) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := r.Client.Set(ctx, r.key(sessionID), data, r.TTL).Err(); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

func (r *RedisCartRepository) Delete(ctx context.Context, sessionID string) error {
	if err := r.Client.Del(ctx, r.key(sessionID)).Err(); err != nil {
		return fmt.Errorf("delete cart: %w", err)
	}
	return nil
}
