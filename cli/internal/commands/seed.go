package commands

import (
	"context"
	"io"
	"os"
	"time"

	"gotrip/pkg/catalogstore"
	"gotrip/pkg/recommender"
	"gotrip/pkg/styles"
)

// Seed reemplaza la colección de destinos por el catálogo integrado.
func Seed(args []string, out io.Writer) error {
	fs := newFlagSet("seed")
	fs.SetOutput(out)
	uri := fs.String("mongo-uri", os.Getenv("MONGODB_URI"), "URI de MongoDB")
	db := fs.String("db", envOr("MONGO_DB_NAME", "gotrip"), "base de datos")
	coll := fs.String("collection", envOr("MONGO_COLLECTION", "destinations"), "colección")
	timeout := fs.Duration("timeout", 30*time.Second, "tiempo máximo de la operación")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	client, err := catalogstore.Connect(ctx, *uri)
	if err != nil {
		return err
	}
	defer client.Close(context.Background())

	repo := catalogstore.NewRepository(client.Collection(*db, *coll))
	if err := repo.EnsureIndexes(ctx); err != nil {
		return err
	}
	n, err := repo.ReplaceCatalog(ctx, recommender.DefaultCatalog())
	if err != nil {
		return err
	}
	styles.FprintFS(out, styles.Success, "[seed] %d destinos escritos en %s.%s", n, *db, *coll)
	return nil
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
