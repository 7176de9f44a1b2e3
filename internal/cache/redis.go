package cache

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/huellitas-app/petcare-api/internal/config"
)

// Client envuelve Redis para cachear respuestas calculadas (estadísticas).
// Un Client nil es válido: todas las operaciones se vuelven no-op.
type Client struct {
	rdb *redis.Client
}

func New(cfg *config.Config) *Client {
	if cfg.RedisAddr == "" {
		log.Println("REDIS_ADDR not set, stats cache disabled")
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("redis unreachable, stats cache disabled: %v", err)
		return nil
	}

	return &Client{rdb: rdb}
}

func (c *Client) Get(ctx context.Context, key string) (string, bool) {
	if c == nil {
		return "", false
	}

	val, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

func (c *Client) Set(ctx context.Context, key, value string, ttl time.Duration) {
	if c == nil {
		return
	}

	if err := c.rdb.Set(ctx, key, value, ttl).Err(); err != nil {
		log.Printf("cache set failed for %s: %v", key, err)
	}
}

func (c *Client) Delete(ctx context.Context, key string) {
	if c == nil {
		return
	}
	c.rdb.Del(ctx, key)
}
