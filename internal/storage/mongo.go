package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	mongoDatabase   = "tripflow"
	mongoCollection = "kv_records"
)

// mongoRecord is the document shape: the storage key is the document _id.
type mongoRecord struct {
	Key   string `bson:"_id"`
	Value string `bson:"value"`
}

// Mongo is a Store backed by a MongoDB collection, one document per key.
type Mongo struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// ConnectMongo connects to MongoDB at uri and verifies connectivity with a
// ping. Callers own the returned store and should Close it on shutdown.
func ConnectMongo(ctx context.Context, uri string) (*Mongo, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("storage.ConnectMongo: connect: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("storage.ConnectMongo: ping: %w", err)
	}

	return &Mongo{
		client: client,
		coll:   client.Database(mongoDatabase).Collection(mongoCollection),
	}, nil
}

// Load returns the blob stored under key, or ok=false when no document
// exists.
func (m *Mongo) Load(ctx context.Context, key string) (string, bool, error) {
	var rec mongoRecord
	err := m.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&rec)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("storage.Mongo.Load %q: %w", key, err)
	}
	return rec.Value, true, nil
}

// Save upserts the document under key.
func (m *Mongo) Save(ctx context.Context, key, value string) error {
	opts := options.Replace().SetUpsert(true)
	_, err := m.coll.ReplaceOne(ctx, bson.M{"_id": key}, mongoRecord{Key: key, Value: value}, opts)
	if err != nil {
		return fmt.Errorf("storage.Mongo.Save %q: %w", key, err)
	}
	return nil
}

// Remove deletes the document under key. A missing document is a no-op.
func (m *Mongo) Remove(ctx context.Context, key string) error {
	if _, err := m.coll.DeleteOne(ctx, bson.M{"_id": key}); err != nil {
		return fmt.Errorf("storage.Mongo.Remove %q: %w", key, err)
	}
	return nil
}

// Ping verifies the server is reachable.
func (m *Mongo) Ping(ctx context.Context) error {
	if err := m.client.Ping(ctx, nil); err != nil {
		return fmt.Errorf("storage.Mongo.Ping: %w", err)
	}
	return nil
}

// Close disconnects the underlying client.
func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

var _ Store = (*Mongo)(nil)
