package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
)

// Redis stores claims as JSON values under "claim:<id>" keys.
type Redis struct {
	rdb *redis.Client
}

// NewRedis connects to a Redis backend and verifies the connection.
func NewRedis(ctx context.Context, addr, password string, db int) (*Redis, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connecting to redis at %s: %w", addr, err)
	}
	return &Redis{rdb: rdb}, nil
}

// Close releases the underlying connection pool.
func (s *Redis) Close() error {
	return s.rdb.Close()
}

func (s *Redis) key(id string) string {
	return KeyPrefix + id
}

func (s *Redis) Put(ctx context.Context, c Claim) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding claim %s: %w", c.ID, err)
	}
	if err := s.rdb.Set(ctx, s.key(c.ID), data, 0).Err(); err != nil {
		return fmt.Errorf("storing claim %s: %w", c.ID, err)
	}
	return nil
}

func (s *Redis) Get(ctx context.Context, id string) (Claim, error) {
	data, err := s.rdb.Get(ctx, s.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return Claim{}, ErrNotFound
	}
	if err != nil {
		return Claim{}, fmt.Errorf("fetching claim %s: %w", id, err)
	}
	var c Claim
	if err := json.Unmarshal(data, &c); err != nil {
		return Claim{}, fmt.Errorf("decoding claim %s: %w", id, err)
	}
	return c, nil
}

func (s *Redis) Scan(ctx context.Context) ([]string, error) {
	var ids []string
	iter := s.rdb.Scan(ctx, 0, KeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		ids = append(ids, strings.TrimPrefix(iter.Val(), KeyPrefix))
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("scanning claims: %w", err)
	}
	return ids, nil
}

func (s *Redis) Delete(ctx context.Context, id string) error {
	if err := s.rdb.Del(ctx, s.key(id)).Err(); err != nil {
		return fmt.Errorf("deleting claim %s: %w", id, err)
	}
	return nil
}
