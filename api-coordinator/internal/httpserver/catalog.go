package httpserver

import (
	"context"
	"fmt"
	"time"

	"gotrip/api-coordinator/internal/config"
	"gotrip/pkg/catalogstore"
	"gotrip/pkg/recommender"

	"github.com/rs/zerolog"
)

// LoadCatalog construye el catálogo según CATALOG_SOURCE. Con mongo también
// devuelve el cliente abierto para el health check; quien llama lo cierra.
func LoadCatalog(ctx context.Context, cfg config.Config, log zerolog.Logger) (*recommender.Catalog, *catalogstore.Client, error) {
	if cfg.CatalogSource != config.CatalogMongo {
		c := recommender.DefaultCatalog()
		log.Info().Str("source", config.CatalogBuiltin).Int("destinations", c.Len()).Msg("catalog loaded")
		return c, nil, nil
	}

	client, err := connectMongoWithRetry(ctx, cfg.Mongo, log)
	if err != nil {
		return nil, nil, err
	}

	repo := catalogstore.NewRepository(client.Collection(cfg.Mongo.Database, cfg.Mongo.Collection))
	if err := repo.EnsureIndexes(ctx); err != nil {
		_ = client.Close(ctx)
		return nil, nil, err
	}
	c, err := repo.LoadCatalog(ctx)
	if err != nil {
		_ = client.Close(ctx)
		return nil, nil, err
	}
	log.Info().
		Str("source", config.CatalogMongo).
		Str("db", cfg.Mongo.Database).
		Str("collection", cfg.Mongo.Collection).
		Int("destinations", c.Len()).
		Msg("catalog loaded")
	return c, client, nil
}

func connectMongoWithRetry(ctx context.Context, cfg config.MongoConfig, log zerolog.Logger) (*catalogstore.Client, error) {
	attempt := 0
	for {
		attempt++
		client, err := catalogstore.Connect(ctx, cfg.URI)
		if err == nil {
			if attempt > 1 {
				log.Info().Int("attempt", attempt).Msg("mongo connected after retries")
			}
			return client, nil
		}

		log.Warn().Err(err).Int("attempt", attempt).Msg("mongo connection failed")
		if cfg.MaxRetries > 0 && attempt >= cfg.MaxRetries {
			return nil, fmt.Errorf("httpserver: mongo unreachable after %d attempts: %w", attempt, err)
		}

		select {
		case <-time.After(cfg.RetryInterval):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}
