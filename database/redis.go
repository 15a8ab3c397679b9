package database

import (
	"github.com/redis/go-redis/v9"
)

// NewRedisClient returns a client for the listing snapshot cache
func NewRedisClient(addr string) *redis.Client {
	if addr == "" {
		addr = "localhost:6379"
	}
	return redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   0,
	})
}
