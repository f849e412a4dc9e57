package catalogstore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

var (
	// ErrMissingMongoURI indica que no se configuró la URI de conexión.
	ErrMissingMongoURI = errors.New("catalogstore: missing mongo uri")
)

// Client envuelve el *mongo.Client; quien lo crea debe llamar a Close.
type Client struct {
	client *mongo.Client
}

// Connect abre la conexión y hace ping antes de devolverla.
func Connect(ctx context.Context, uri string) (*Client, error) {
	uri = strings.TrimSpace(uri)
	if uri == "" {
		return nil, ErrMissingMongoURI
	}

	opt := options.Client().ApplyURI(uri)
	if strings.HasPrefix(uri, "mongodb+srv://") {
		// ServerAPI solo hace falta para Atlas
		opt.SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1))
	}
	client, err := mongo.Connect(opt)
	if err != nil {
		return nil, fmt.Errorf("catalogstore: connect: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("catalogstore: ping: %w", err)
	}
	return &Client{client: client}, nil
}

// Collection devuelve el handle de la colección pedida.
func (c *Client) Collection(dbName, collName string) *mongo.Collection {
	return c.client.Database(dbName).Collection(collName)
}

func (c *Client) Ping(ctx context.Context) error {
	return c.client.Ping(ctx, readpref.Primary())
}

func (c *Client) Close(ctx context.Context) error {
	return c.client.Disconnect(ctx)
}
