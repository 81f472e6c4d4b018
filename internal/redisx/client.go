package redisx

import (
	"time"

	"github.com/redis/go-redis/v9"
)

// New returns a client with a 2s command timeout; every Redis use here is
// best-effort and must not stall a request.
func New(addr string) *redis.Client {
	r := redis.NewClient(&redis.Options{Addr: addr})
	return r.WithTimeout(2 * time.Second)
}
