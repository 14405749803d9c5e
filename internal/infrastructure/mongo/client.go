// Package mongo holds the MongoDB-backed adapters for every repository
// interface in internal/domain/repositories, plus connection setup and the
// transaction runner the Property Propagation Coordinator drives.
package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Collection names, one per spec §6 persisted-state layout.
const (
	CollCatalogueCategories = "catalogue_categories"
	CollCatalogueItems      = "catalogue_items"
	CollItems               = "items"
	CollSystems             = "systems"
	CollUnits               = "units"
	CollUsageStatuses       = "usage_statuses"
	CollManufacturers       = "manufacturers"
)

// Database wraps the driver's *mongo.Database with the handles every
// repository adapter needs, and satisfies repositories.PropagationRunner
// (see txn.go) for the Property Propagation Coordinator.
type Database struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect dials uri and pings the server within timeout, returning a
// Database bound to the named database.
func Connect(ctx context.Context, uri, dbName string, timeout time.Duration) (*Database, error) {
	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect to mongo: %w", err)
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	return &Database{client: client, db: client.Database(dbName)}, nil
}

// Disconnect closes the underlying client.
func (d *Database) Disconnect(ctx context.Context) error {
	return d.client.Disconnect(ctx)
}

func (d *Database) collection(name string) *mongo.Collection {
	return d.db.Collection(name)
}

// EnsureIndexes creates the indexes the repository layer relies on: unique
// code indexes for the dimension entities (§3's injectivity invariant), a
// non-unique (parent_id, code) index for the sibling-code lookups on both
// trees (sibling uniqueness itself is checked by the services), plus the
// lookups the Referential Guard and the Propagation Coordinator issue on
// every call.
func (d *Database) EnsureIndexes(ctx context.Context) error {
	models := map[string][]mongo.IndexModel{
		CollCatalogueCategories: {
			{Keys: bson.D{{Key: "parent_id", Value: 1}, {Key: "code", Value: 1}}},
			{Keys: bson.D{{Key: "properties.unit_id", Value: 1}}},
		},
		CollSystems: {
			{Keys: bson.D{{Key: "parent_id", Value: 1}, {Key: "code", Value: 1}}},
		},
		CollCatalogueItems: {
			{Keys: bson.D{{Key: "catalogue_category_id", Value: 1}}},
			{Keys: bson.D{{Key: "manufacturer_id", Value: 1}}},
		},
		CollItems: {
			{Keys: bson.D{{Key: "catalogue_item_id", Value: 1}}},
			{Keys: bson.D{{Key: "system_id", Value: 1}}},
			{Keys: bson.D{{Key: "usage_status_id", Value: 1}}},
		},
		CollUnits:         {{Keys: bson.D{{Key: "code", Value: 1}}, Options: options.Index().SetUnique(true)}},
		CollUsageStatuses: {{Keys: bson.D{{Key: "code", Value: 1}}, Options: options.Index().SetUnique(true)}},
		CollManufacturers: {{Keys: bson.D{{Key: "code", Value: 1}}, Options: options.Index().SetUnique(true)}},
	}

	for name, indexes := range models {
		if _, err := d.collection(name).Indexes().CreateMany(ctx, indexes); err != nil {
			return fmt.Errorf("ensure indexes on %s: %w", name, err)
		}
	}
	return nil
}
