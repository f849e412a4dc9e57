package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"gotrip/api-coordinator/internal/cache"
	"gotrip/api-coordinator/internal/config"
	"gotrip/api-coordinator/internal/health"
	"gotrip/api-coordinator/internal/httpserver"
	"gotrip/pkg/logging"
	"gotrip/pkg/recommender"
	"gotrip/pkg/styles"

	"github.com/gin-gonic/gin"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, styles.SprintfS(styles.Error, "[API] %v", err))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	gin.SetMode(cfg.GinMode)

	log := logging.New(logging.Config{Level: cfg.LogLevel, Pretty: cfg.LogPretty})
	fmt.Println(styles.Title("gotrip · recomendador de destinos"))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	catalog, mongoClient, err := httpserver.LoadCatalog(ctx, cfg, log)
	if err != nil {
		return err
	}
	checks := map[string]health.Pinger{}
	if mongoClient != nil {
		defer mongoClient.Close(context.Background())
		checks["mongodb"] = mongoClient
	}

	var limiter *cache.RateLimiter
	if rdb := cache.NewRedisClient(cfg.Redis, log); rdb != nil {
		defer rdb.Close()
		checks["redis"] = cache.RedisPinger{Client: rdb}
		if cfg.RateLimitPerMinute > 0 {
			limiter = cache.NewRateLimiter(cache.NewRedisCounter(rdb), cfg.RateLimitPerMinute, log)
		}
	}

	opts := []recommender.Option{
		recommender.WithPolicy(cfg.Policy()),
		recommender.WithTopK(cfg.Recommender.TopK),
		recommender.WithLogger(log),
	}
	if cfg.Recommender.Seed != 0 {
		opts = append(opts, recommender.WithSeed(cfg.Recommender.Seed))
	}
	engine := recommender.New(catalog, opts...)
	log.Info().
		Str("policy", engine.Policy().String()).
		Int("top_k", engine.TopK()).
		Int("destinations", catalog.Len()).
		Msg("recommender ready")

	router, err := httpserver.NewRouter(httpserver.Deps{
		Engine:  engine,
		Logger:  log,
		Checks:  checks,
		Limiter: limiter,
	})
	if err != nil {
		return err
	}

	return httpserver.New(cfg.HTTPAddr, router, log).Run(ctx)
}
