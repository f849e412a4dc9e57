package cache

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"gotrip/pkg/types"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Counter incrementa un contador con expiración y devuelve el valor nuevo.
type Counter interface {
	Incr(ctx context.Context, key string, ttl time.Duration) (int64, error)
}

type redisCounter struct {
	client *redis.Client
}

func NewRedisCounter(client *redis.Client) Counter {
	return &redisCounter{client: client}
}

func (r *redisCounter) Incr(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	pipe := r.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return incr.Val(), nil
}

// RateLimiter aplica una ventana fija por minuto y por IP de cliente.
type RateLimiter struct {
	counter Counter
	limit   int64
	window  time.Duration
	now     func() time.Time
	log     zerolog.Logger
}

func NewRateLimiter(counter Counter, perMinute int, log zerolog.Logger) *RateLimiter {
	return &RateLimiter{
		counter: counter,
		limit:   int64(perMinute),
		window:  time.Minute,
		now:     time.Now,
		log:     log.With().Str("component", "ratelimit").Logger(),
	}
}

func (rl *RateLimiter) key(client string) string {
	slot := rl.now().Unix() / int64(rl.window.Seconds())
	return fmt.Sprintf("gotrip:rl:%s:%d", client, slot)
}

// Middleware devuelve 429 al superar el límite. Si Redis falla deja pasar
// la petición: el recomendador no depende de Redis.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 250*time.Millisecond)
		defer cancel()

		n, err := rl.counter.Incr(ctx, rl.key(c.ClientIP()), rl.window)
		if err != nil {
			rl.log.Warn().Err(err).Msg("rate limiter unavailable, allowing request")
			c.Next()
			return
		}

		remaining := rl.limit - n
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", strconv.FormatInt(rl.limit, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

		if n > rl.limit {
			c.Header("Retry-After", strconv.Itoa(int(rl.window.Seconds())))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, types.ErrorResponse{
				Error:   "demasiadas solicitudes",
				Request: c.GetString("request_id"),
			})
			return
		}
		c.Next()
	}
}
