package catalogstore

import (
	"context"
	"errors"
	"fmt"

	"gotrip/pkg/recommender"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

var ErrEmptyCatalog = errors.New("catalogstore: catalog collection is empty")

// Repository lee y escribe el catálogo de destinos en una colección.
type Repository struct {
	coll *mongo.Collection
}

func NewRepository(coll *mongo.Collection) *Repository {
	return &Repository{coll: coll}
}

// EnsureIndexes crea el índice único por nombre.
func (r *Repository) EnsureIndexes(ctx context.Context) error {
	return ensureIndexes(ctx, r.coll)
}

func ensureIndexes(ctx context.Context, coll *mongo.Collection) error {
	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_name"),
	})
	if err != nil {
		return fmt.Errorf("catalogstore: creating indexes: %w", err)
	}
	return nil
}

// LoadCatalog lee todos los destinos en el orden guardado y los valida.
func (r *Repository) LoadCatalog(ctx context.Context) (*recommender.Catalog, error) {
	opts := options.Find().SetSort(bson.D{{Key: "position", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("catalogstore: finding destinations: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []DestinationDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("catalogstore: decoding destinations: %w", err)
	}
	if len(docs) == 0 {
		return nil, ErrEmptyCatalog
	}
	return FromDocuments(docs)
}

const stagingSuffix = "_staging"

// ReplaceCatalog escribe el catálogo en una colección auxiliar y la renombra
// sobre la real con dropTarget. Si algo falla antes del rename la colección
// real queda intacta.
func (r *Repository) ReplaceCatalog(ctx context.Context, c *recommender.Catalog) (int, error) {
	docs := ToDocuments(c)
	if len(docs) == 0 {
		return 0, ErrEmptyCatalog
	}

	db := r.coll.Database()
	stagingName := r.coll.Name() + stagingSuffix
	staging := db.Collection(stagingName)
	if err := staging.Drop(ctx); err != nil {
		return 0, fmt.Errorf("catalogstore: dropping staging: %w", err)
	}

	n, err := r.fillStaging(ctx, staging, docs)
	if err != nil {
		_ = staging.Drop(ctx)
		return 0, err
	}

	cmd := renameCommand(db.Name(), stagingName, r.coll.Name())
	if err := db.Client().Database("admin").RunCommand(ctx, cmd).Err(); err != nil {
		_ = staging.Drop(ctx)
		return 0, fmt.Errorf("catalogstore: swapping catalog: %w", err)
	}
	return n, nil
}

func (r *Repository) fillStaging(ctx context.Context, staging *mongo.Collection, docs []DestinationDocument) (int, error) {
	batch := make([]any, len(docs))
	for i := range docs {
		batch[i] = docs[i]
	}
	res, err := staging.InsertMany(ctx, batch, options.InsertMany().SetOrdered(true))
	if err != nil {
		return 0, fmt.Errorf("catalogstore: inserting destinations: %w", err)
	}
	if err := ensureIndexes(ctx, staging); err != nil {
		return 0, err
	}
	return len(res.InsertedIDs), nil
}

// renameCommand arma el renameCollection que reemplaza la colección destino.
func renameCommand(dbName, from, to string) bson.D {
	return bson.D{
		{Key: "renameCollection", Value: dbName + "." + from},
		{Key: "to", Value: dbName + "." + to},
		{Key: "dropTarget", Value: true},
	}
}
