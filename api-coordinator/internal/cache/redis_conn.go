package cache

import (
	"context"
	"time"

	"gotrip/api-coordinator/internal/config"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// NewRedisClient devuelve nil si no hay REDIS_ADDR configurado.
func NewRedisClient(cfg config.RedisConfig, log zerolog.Logger) *redis.Client {
	if cfg.Addr == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  500 * time.Millisecond,
		WriteTimeout: 500 * time.Millisecond,
	})
	log.Info().Str("addr", cfg.Addr).Int("db", cfg.DB).Msg("redis client configured")
	return client
}

// RedisPinger adapta *redis.Client a la interfaz de health.
type RedisPinger struct {
	Client *redis.Client
}

func (p RedisPinger) Ping(ctx context.Context) error {
	return p.Client.Ping(ctx).Err()
}
