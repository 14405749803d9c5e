package entities

import (
	"github.com/facilityinv/catalogue-api/internal/domain/valueobjects"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// PropertyValue is an embedded entry on a CatalogueItem or Item. It carries
// a copy of the defining Property's Name/Unit/UnitID plus a back-reference
// (ID) to that Property — the back-reference is the source of truth for
// identity; Name/Unit are caches the Propagation Coordinator is responsible
// for keeping in sync on rename.
type PropertyValue struct {
	ID     bson.ObjectID           `bson:"id"                 json:"id"`
	Name   string                  `bson:"name"               json:"name"`
	Value  valueobjects.TypedValue `bson:"value"              json:"value"`
	UnitID *bson.ObjectID          `bson:"unit_id,omitempty"  json:"unit_id,omitempty"`
	Unit   *string                 `bson:"unit,omitempty"     json:"unit,omitempty"`
}

// NewPropertyValueFromDefinition builds the PropertyValue entry a new
// catalogue item or item gets for property p, with the given value.
func NewPropertyValueFromDefinition(p *Property, value valueobjects.TypedValue) PropertyValue {
	return PropertyValue{
		ID:     p.ID,
		Name:   p.Name,
		Value:  value,
		UnitID: p.UnitID,
		Unit:   p.Unit,
	}
}

// FindPropertyValue returns the entry matching property id, if any, from a
// PropertyValue slice (matched by id, never by name, per spec).
func FindPropertyValue(values []PropertyValue, id bson.ObjectID) (*PropertyValue, int) {
	for i := range values {
		if values[i].ID == id {
			return &values[i], i
		}
	}
	return nil, -1
}
