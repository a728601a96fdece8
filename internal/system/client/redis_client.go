package client

import (
	"github.com/itsryu/ZeDoBambu/internal/system/config"
	"github.com/redis/go-redis/v9"
)

// NewRedisClient creates the Redis client backing the cart store.
func NewRedisClient(cfg config.RedisConfig) *redis.Client {

	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}
