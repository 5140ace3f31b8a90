package source

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/showlens/showlens/pkg/record"
)

// DefaultServerSelectionTimeout bounds the initial connection attempt.
const DefaultServerSelectionTimeout = 5 * time.Second

// ErrDatabaseNotFound is returned when the configured database does
// not exist on the server.
var ErrDatabaseNotFound = errors.New("database not found")

// ErrCollectionNotFound is returned when the configured collection
// does not exist in the database.
var ErrCollectionNotFound = errors.New("collection not found")

// MongoConfig describes how to reach one collection.
type MongoConfig struct {
	URI        string
	Database   string
	Collection string
	// Timeout bounds server selection on connect. Zero means
	// DefaultServerSelectionTimeout.
	Timeout time.Duration
}

// Mongo is a record source backed by one MongoDB collection. It holds
// a verified client; every failure mode of reaching the data (bad
// URI, unreachable server, missing database or collection) surfaces
// from OpenMongo or FetchAll with a descriptive cause. There are no
// retries.
type Mongo struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// OpenMongo connects to the server, verifies the connection with a
// ping, and checks that the configured database and collection exist
// before returning a usable source.
func OpenMongo(ctx context.Context, cfg MongoConfig) (*Mongo, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultServerSelectionTimeout
	}

	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(cfg.URI).
		SetServerSelectionTimeout(timeout))
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", cfg.URI, err)
	}

	err = client.Ping(ctx, nil)
	if err != nil {
		_ = client.Disconnect(ctx)

		return nil, fmt.Errorf("ping server: %w", err)
	}

	err = verifyTarget(ctx, client, cfg)
	if err != nil {
		_ = client.Disconnect(ctx)

		return nil, err
	}

	return &Mongo{
		client:     client,
		collection: client.Database(cfg.Database).Collection(cfg.Collection),
	}, nil
}

// FetchAll materializes the entire collection into memory. Documents
// decode to plain maps; the classifier downstream deals with whatever
// shapes they carry.
func (m *Mongo) FetchAll(ctx context.Context) ([]record.Record, error) {
	cursor, err := m.collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", m.collection.Name(), err)
	}

	var documents []bson.M

	err = cursor.All(ctx, &documents)
	if err != nil {
		return nil, fmt.Errorf("drain cursor: %w", err)
	}

	records := make([]record.Record, len(documents))
	for i, doc := range documents {
		records[i] = record.Record(doc)
	}

	return records, nil
}

// Close disconnects the underlying client.
func (m *Mongo) Close(ctx context.Context) error {
	err := m.client.Disconnect(ctx)
	if err != nil {
		return fmt.Errorf("disconnect: %w", err)
	}

	return nil
}

func verifyTarget(ctx context.Context, client *mongo.Client, cfg MongoConfig) error {
	databases, err := client.ListDatabaseNames(ctx, bson.M{"name": cfg.Database})
	if err != nil {
		return fmt.Errorf("list databases: %w", err)
	}

	if len(databases) == 0 {
		return fmt.Errorf("%w: %s", ErrDatabaseNotFound, cfg.Database)
	}

	collections, err := client.Database(cfg.Database).
		ListCollectionNames(ctx, bson.M{"name": cfg.Collection})
	if err != nil {
		return fmt.Errorf("list collections: %w", err)
	}

	if len(collections) == 0 {
		return fmt.Errorf("%w: %s.%s", ErrCollectionNotFound, cfg.Database, cfg.Collection)
	}

	return nil
}
