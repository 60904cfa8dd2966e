package redis

import (
	"context"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/pkg/exceptions"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

var (
	redisRepositoryInstance contracts.RedisRepository
	onceRedisRepository     sync.Once
)

type redisRepository struct {
	client *redis.Client
}

func NewRedisRepository(client *redis.Client) contracts.RedisRepository {
	onceRedisRepository.Do(func() {
		redisRepositoryInstance = &redisRepository{client: client}
	})
	return redisRepositoryInstance
}

func (r *redisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	err = r.client.Set(ctx, key, jsonValue, exp).Err()
	if err != nil {
		return exceptions.ErrRedisSet(err)
	}
	return nil
}

func (r *redisRepository) Get(ctx context.Context, key string) (string, error) {
	data, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	} else if err != nil {
		return "", exceptions.ErrRedisGetNoData(err, key)
	}
	return data, nil
}

func (r *redisRepository) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		return exceptions.ErrRedisDelete(err)
	}
	return nil
}

func (r *redisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return false, exceptions.ErrCannotMarshalJSON(err)
	}

	acquired, err := r.client.SetNX(ctx, key, jsonValue, exp).Result()
	if err != nil {
		return false, exceptions.ErrRedisSet(err)
	}
	return acquired, nil
}
