package database

import (
	"context"
	"fmt"
	"time"

	"github.com/rescuerush/rescuerush/internal/pkg/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names of the document store
const (
	CollectionUsers  = "users"
	CollectionAlerts = "emergencyalerts"
)

// MongoClient wraps the shared Mongo connection pool
type MongoClient struct {
	client   *mongo.Client
	database *mongo.Database
}

// NewMongoClient connects to the document store, verifies the connection,
// and ensures the required indexes exist.
func NewMongoClient(config models.MongoConfig) (*MongoClient, error) {
	if config.URI == "" {
		return nil, fmt.Errorf("MONGODB_URI is required")
	}

	timeout := time.Duration(config.Timeout) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(config.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	mc := &MongoClient{
		client:   client,
		database: client.Database(config.Database),
	}

	if err := mc.ensureIndexes(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure indexes: %w", err)
	}

	return mc, nil
}

func (m *MongoClient) ensureIndexes(ctx context.Context) error {
	userIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "phone", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "emergencyContacts.addedAt", Value: -1}},
		},
	}
	if _, err := m.database.Collection(CollectionUsers).Indexes().CreateMany(ctx, userIndexes); err != nil {
		return err
	}

	alertIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "userId", Value: 1}, {Key: "timestamp", Value: -1}},
		},
		{
			Keys: bson.D{{Key: "status", Value: 1}},
		},
	}
	_, err := m.database.Collection(CollectionAlerts).Indexes().CreateMany(ctx, alertIndexes)
	return err
}

// Database returns the application database handle.
func (m *MongoClient) Database() *mongo.Database {
	return m.database
}

// Collection returns a collection handle by name.
func (m *MongoClient) Collection(name string) *mongo.Collection {
	return m.database.Collection(name)
}

// Ping verifies the connection is alive; used by the health endpoint.
func (m *MongoClient) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, nil)
}

// Close disconnects the underlying client.
func (m *MongoClient) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return m.client.Disconnect(ctx)
}
