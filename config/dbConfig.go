package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	MenuItemsCollection    = "menu_items"
	OrdersCollection       = "orders"
	StatusChecksCollection = "status_checks"
)

// Database owns the MongoDB client for the lifetime of the process.
type Database struct {
	Client *mongo.Client
	DB     *mongo.Database
}

func Connect(ctx context.Context, cfg *Config) (*Database, error) {
	slog.Info("Connecting to MongoDB...", "database", cfg.DBName)

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURL).SetTimeout(cfg.DBTimeout))
	if err != nil {
		return nil, fmt.Errorf("failed to connect mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongodb ping failed: %w", err)
	}

	slog.Info("Connected to MongoDB")
	return &Database{Client: client, DB: client.Database(cfg.DBName)}, nil
}

func (d *Database) OpenCollection(collectionName string) *mongo.Collection {
	return d.DB.Collection(collectionName)
}

// EnsureIndexes makes the id field unique in every collection and adds the
// indexes used by the listing queries.
func (d *Database) EnsureIndexes(ctx context.Context) error {
	unique := options.Index().SetUnique(true)

	indexes := map[string][]mongo.IndexModel{
		MenuItemsCollection: {
			{Keys: bson.D{{Key: "id", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "available", Value: 1}, {Key: "category", Value: 1}}},
			{Keys: bson.D{{Key: "name", Value: 1}}},
		},
		OrdersCollection: {
			{Keys: bson.D{{Key: "id", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "created_at", Value: -1}}},
		},
		StatusChecksCollection: {
			{Keys: bson.D{{Key: "id", Value: 1}}, Options: unique},
		},
	}

	for name, models := range indexes {
		if _, err := d.OpenCollection(name).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create indexes on %s: %w", name, err)
		}
	}
	return nil
}

func (d *Database) Close(ctx context.Context) error {
	if d == nil || d.Client == nil {
		return nil
	}
	return d.Client.Disconnect(ctx)
}
