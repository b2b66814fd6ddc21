package redis

import (
	"carelink-service/internal/app/models"
	"carelink-service/internal/pkg/exceptions"
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "session:"

type redisRepository struct {
	client *redis.Client
}

func NewRedisRepository(client *redis.Client) RedisRepository {
	return &redisRepository{client: client}
}

func (r *redisRepository) CreateSession(ctx context.Context, session *models.Session, exp time.Duration) error {
	return r.Set(ctx, sessionKeyPrefix+session.SessionID, session, exp)
}

func (r *redisRepository) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	data, err := r.Get(ctx, sessionKeyPrefix+sessionID)
	if err != nil {
		return nil, err
	}
	if data == "" {
		return nil, nil
	}

	var session models.Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, exceptions.ErrRedisGet(err)
	}
	return &session, nil
}

func (r *redisRepository) DeleteSession(ctx context.Context, sessionID string) error {
	return r.Delete(ctx, sessionKeyPrefix+sessionID)
}

func (r *redisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	if err := r.client.Set(ctx, key, jsonValue, exp).Err(); err != nil {
		return exceptions.ErrRedisSet(err)
	}
	return nil
}

func (r *redisRepository) Get(ctx context.Context, key string) (string, error) {
	data, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	} else if err != nil {
		return "", exceptions.ErrRedisGet(fmt.Errorf("key %s: %w", key, err))
	}
	return data, nil
}

func (r *redisRepository) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		return exceptions.ErrRedisDelete(err)
	}
	return nil
}
