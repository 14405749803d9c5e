// Package entities contains the core domain models for the facility
// inventory system: the catalogue-category and system trees, catalogue
// items, physical items, their embedded property values, and the dimension
// entities (units, usage statuses, manufacturers) they reference.
package entities

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Base is embedded in every persisted entity and carries the fields common
// to all seven collections: a 12-byte Mongo object id plus second-precision
// UTC creation/modification timestamps.
type Base struct {
	ID           bson.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedTime  time.Time     `bson:"created_time"  json:"created_time"`
	ModifiedTime time.Time     `bson:"modified_time"  json:"modified_time"`
}

// NewBase assigns a fresh object id and sets both timestamps to now.
func NewBase() Base {
	now := time.Now().UTC().Truncate(time.Second)
	return Base{
		ID:           bson.NewObjectID(),
		CreatedTime:  now,
		ModifiedTime: now,
	}
}

// Touch refreshes ModifiedTime. Called on every update, including
// content-free ones (see spec's empty-PATCH note).
func (b *Base) Touch() {
	b.ModifiedTime = time.Now().UTC().Truncate(time.Second)
}

// HasParent reports whether a ParentID pointer is set; a small helper
// shared by the tree entities (CatalogueCategory, System).
func HasParent(id *bson.ObjectID) bool {
	return id != nil && !id.IsZero()
}
