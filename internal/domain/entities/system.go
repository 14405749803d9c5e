package entities

import "go.mongodb.org/mongo-driver/v2/bson"

// Importance is a closed enum describing a System's operational criticality.
type Importance string

const (
	ImportanceLow    Importance = "low"
	ImportanceMedium Importance = "medium"
	ImportanceHigh   Importance = "high"
)

// Valid reports whether imp is one of the three defined levels.
func (imp Importance) Valid() bool {
	switch imp {
	case ImportanceLow, ImportanceMedium, ImportanceHigh:
		return true
	default:
		return false
	}
}

// System is a node in the system tree: an independent hierarchy representing
// physical or logical location, distinct from the catalogue-category tree.
type System struct {
	Base        `bson:",inline"`
	Name        string         `bson:"name"                  json:"name"`
	Code        string         `bson:"code"                  json:"code"`
	ParentID    *bson.ObjectID `bson:"parent_id,omitempty"   json:"parent_id,omitempty"`
	Importance  Importance     `bson:"importance"             json:"importance"`
	Description *string        `bson:"description,omitempty" json:"description,omitempty"`
	Location    *string        `bson:"location,omitempty"    json:"location,omitempty"`
	Owner       *string        `bson:"owner,omitempty"       json:"owner,omitempty"`
}

// NewSystem constructs a System with a fresh id/timestamps.
func NewSystem(name, code string, parentID *bson.ObjectID, importance Importance) *System {
	return &System{
		Base:       NewBase(),
		Name:       name,
		Code:       code,
		ParentID:   parentID,
		Importance: importance,
	}
}

// HasParent reports whether this system is not a root.
func (s *System) HasParent() bool {
	return HasParent(s.ParentID)
}
