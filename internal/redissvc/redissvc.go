package redissvc

import (
	"context"
	"errors"
	"time"

	"github.com/motohub/moto-catalog/internal/auth"
	"github.com/redis/go-redis/v9"
)

type RedisService struct {
	rdb *redis.Client
	ctx context.Context
}

func NewRedisService(rdb *redis.Client, ctx context.Context) *RedisService {
	return &RedisService{
		rdb: rdb,
		ctx: ctx,
	}
}

func (s *RedisService) Rdb() *redis.Client {
	return s.rdb
}

func (s *RedisService) Ctx() context.Context {
	return s.ctx
}

const refreshTokenPrefix = "auth:refresh:"

// Set stores a refresh token with its TTL. Implements auth.RefreshTokenStore.
func (s *RedisService) Set(token, username string, ttl time.Duration) error {
	return s.rdb.Set(s.ctx, refreshTokenPrefix+token, username, ttl).Err()
}

func (s *RedisService) Get(token string) (string, error) {
	username, err := s.rdb.Get(s.ctx, refreshTokenPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return "", auth.ErrRefreshTokenNotFound
	}
	return username, err
}

func (s *RedisService) Delete(token string) error {
	return s.rdb.Del(s.ctx, refreshTokenPrefix+token).Err()
}
