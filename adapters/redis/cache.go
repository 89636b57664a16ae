package redis

import (
	"context"
	"errors"
	"fmt"

	"hotelmesh/service"

	"github.com/go-redis/redis/v8"
)

// cache stores values of type T under "<prefix>:<key>".
type cache[T any] struct {
	client    redis.UniversalClient
	prefix    string
	marshal   func(T) ([]byte, error)
	unmarshal func([]byte) (T, error)
}

func newCache[T any](client redis.UniversalClient, prefix string, marshal func(T) ([]byte, error), unmarshal func([]byte) (T, error)) *cache[T] {
	return &cache[T]{
		client:    client,
		prefix:    prefix,
		marshal:   marshal,
		unmarshal: unmarshal,
	}
}

// ReadValue returns the value of key.
//
// Returns: (item, nil); (zero, entity_not_found) when the key is absent; (zero,
// internal_server_error) when Redis fails or the stored bytes do not decode.
func (c *cache[T]) ReadValue(ctx context.Context, key string) (T, error) {
	var zero T
	data, err := c.client.Get(ctx, c.generateKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return zero, service.NewEntityNotFoundError("Entity not found", err)
		}
		return zero, service.NewInternalServerError("Redis read key error", fmt.Errorf("can't read item of type %T (key='%s'), err: %w", zero, key, err))
	}
	item, err := c.unmarshal(data)
	if err != nil {
		return zero, service.NewInternalServerError("Redis unmarshal item error", fmt.Errorf("can't unmarshal item of type %T (key='%s'), err: %w", zero, key, err))
	}
	return item, nil
}

// WriteValueIfAbsent stores item under key unless the key exists. The check and the write are
// one SETNX, so concurrent writers of the same key cannot both succeed.
//
// Returns: (true, nil) when stored; (false, nil) when the key already existed; (false,
// internal_server_error) on marshal or Redis failure.
func (c *cache[T]) WriteValueIfAbsent(ctx context.Context, key string, item T) (bool, error) {
	data, err := c.marshal(item)
	if err != nil {
		return false, service.NewInternalServerError("Redis marshal item error", fmt.Errorf("can't marshal item of type %T, err: %w", item, err))
	}
	stored, err := c.client.SetNX(ctx, c.generateKey(key), data, 0).Result()
	if err != nil {
		return false, service.NewInternalServerError("Redis write key error", fmt.Errorf("can't write item of type %T to redis (key='%s'), err: %w", item, key, err))
	}
	return stored, nil
}

func (c *cache[T]) generateKey(key string) string {
	return c.prefix + ":" + key
}
