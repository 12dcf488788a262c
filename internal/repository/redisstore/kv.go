// Package redisstore is the persistence gateway: both collections are
// stored whole, as JSON arrays, under two fixed keys in a flat
// key-value store.
package redisstore

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

const (
	cvKey        = "cv_portfolio:cvs"
	portfolioKey = "cv_portfolio:portfolios"
)

// ErrKeyNotFound is returned by KV.Get for absent keys. Loaders treat
// it as an empty collection, never as a failure.
var ErrKeyNotFound = errors.New("redisstore: key not found")

// KV is the minimal key-value surface the gateway needs.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Del(ctx context.Context, keys ...string) error
}

type redisKV struct {
	client *redis.Client
}

// NewKV adapts a Redis client to the KV interface.
func NewKV(client *redis.Client) KV {
	return &redisKV{client: client}
}

func (r *redisKV) Get(ctx context.Context, key string) (string, error) {
	val, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrKeyNotFound
	}
	return val, err
}

func (r *redisKV) Set(ctx context.Context, key, value string) error {
	// Values live until explicitly removed; no TTL.
	return r.client.Set(ctx, key, value, 0).Err()
}

func (r *redisKV) Del(ctx context.Context, keys ...string) error {
	return r.client.Del(ctx, keys...).Err()
}
