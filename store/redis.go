package store

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/shopkit/shoprec/core"
)

// RedisStore 是 Redis 实现的 KeyValueStore。
// 多个引擎实例共享同一份数据集快照时使用（例如多副本部署下的目录分发）。
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(addr string, db int) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   db,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}
	return &RedisStore{client: client}, nil
}

func (r *RedisStore) Name() string { return "redis" }

func (r *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, core.ErrStoreNotFound
	}
	return val, err
}

func (r *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	return r.client.Set(ctx, key, value, 0).Err()
}

func (r *RedisStore) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}

func (r *RedisStore) BatchGet(ctx context.Context, keys []string) (map[string][]byte, error) {
	if len(keys) == 0 {
		return make(map[string][]byte), nil
	}

	vals, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	result := make(map[string][]byte, len(keys))
	for i, k := range keys {
		if vals[i] == nil {
			continue
		}
		if s, ok := vals[i].(string); ok {
			result[k] = []byte(s)
		}
	}
	return result, nil
}

func (r *RedisStore) HGet(ctx context.Context, key, field string) ([]byte, error) {
	val, err := r.client.HGet(ctx, key, field).Bytes()
	if err == redis.Nil {
		return nil, core.ErrStoreNotFound
	}
	return val, err
}

func (r *RedisStore) HSet(ctx context.Context, key, field string, value []byte) error {
	return r.client.HSet(ctx, key, field, value).Err()
}

func (r *RedisStore) HGetAll(ctx context.Context, key string) (map[string][]byte, error) {
	vals, err := r.client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, err
	}
	result := make(map[string][]byte, len(vals))
	for k, v := range vals {
		result[k] = []byte(v)
	}
	return result, nil
}

func (r *RedisStore) Close() error {
	return r.client.Close()
}

var (
	_ core.Store         = (*RedisStore)(nil)
	_ core.KeyValueStore = (*RedisStore)(nil)
)
