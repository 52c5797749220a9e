package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/appliedlogix/component-requests/internal/config"
	"github.com/appliedlogix/component-requests/internal/request"
)

const connectPingTimeout = 5 * time.Second

// MongoRepository implements Repository against a MongoDB collection.
//
// The repository owns its client: callers create it once with Connect and
// release the underlying connection with Close on shutdown. Every
// round-trip runs under the configured per-operation timeout, so a stalled
// store surfaces as context.DeadlineExceeded rather than a hang.
type MongoRepository struct {
	client     *mongo.Client
	collection *mongo.Collection
	timeout    time.Duration
}

// Connect dials the configured MongoDB deployment and verifies it is
// reachable before returning a usable repository.
func Connect(ctx context.Context, cfg config.Store) (*MongoRepository, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, connectPingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	slog.Info("[Mongo] Connected",
		"database", cfg.Database,
		"collection", cfg.Collection)

	return &MongoRepository{
		client:     client,
		collection: client.Database(cfg.Database).Collection(cfg.Collection),
		timeout:    cfg.Timeout,
	}, nil
}

// Close releases the underlying connection.
func (m *MongoRepository) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// opCtx bounds a single storage round-trip.
func (m *MongoRepository) opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, m.timeout)
}

func (m *MongoRepository) Insert(ctx context.Context, r *request.ComponentRequest) error {
	ctx, cancel := m.opCtx(ctx)
	defer cancel()

	res, err := m.collection.InsertOne(ctx, r)
	if err != nil {
		return fmt.Errorf("failed to insert request: %w", err)
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	r.ID = id
	return nil
}

func (m *MongoRepository) Get(ctx context.Context, id primitive.ObjectID) (*request.ComponentRequest, error) {
	ctx, cancel := m.opCtx(ctx)
	defer cancel()

	var r request.ComponentRequest
	err := m.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&r)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, request.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get request %s: %w", id.Hex(), err)
	}
	return &r, nil
}

func (m *MongoRepository) ListAll(ctx context.Context) ([]*request.ComponentRequest, error) {
	ctx, cancel := m.opCtx(ctx)
	defer cancel()

	cursor, err := m.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list requests: %w", err)
	}
	defer cursor.Close(ctx)

	var result []*request.ComponentRequest
	if err := cursor.All(ctx, &result); err != nil {
		return nil, fmt.Errorf("failed to decode requests: %w", err)
	}
	return result, nil
}

// UpdateStatus uses the store's native conditional update so that
// concurrent writers cannot lose updates; the store serializes
// per-document writes, so no extra locking is taken here.
func (m *MongoRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status request.Status) error {
	ctx, cancel := m.opCtx(ctx)
	defer cancel()

	res, err := m.collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return fmt.Errorf("failed to update request %s: %w", id.Hex(), err)
	}
	if res.MatchedCount == 0 {
		return request.ErrNotFound
	}
	return nil
}

func (m *MongoRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	ctx, cancel := m.opCtx(ctx)
	defer cancel()

	res, err := m.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete request %s: %w", id.Hex(), err)
	}
	if res.DeletedCount == 0 {
		return request.ErrNotFound
	}
	return nil
}
