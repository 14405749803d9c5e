package entities

import "go.mongodb.org/mongo-driver/v2/bson"

// CatalogueCategory is a node in the taxonomy tree. Leaves hold Properties
// and are the only categories a CatalogueItem may reference; non-leaf
// categories are pure organizational nodes and always carry an empty
// Properties list.
type CatalogueCategory struct {
	Base     `bson:",inline"`
	Name     string         `bson:"name"      json:"name"`
	Code     string         `bson:"code"      json:"code"`
	ParentID *bson.ObjectID `bson:"parent_id,omitempty" json:"parent_id,omitempty"`
	IsLeaf   bool           `bson:"is_leaf"   json:"is_leaf"`
	// Properties is non-empty only when IsLeaf is true; enforced by
	// CatalogueCategoryService on create and update, never by the
	// persistence layer.
	Properties []Property `bson:"properties" json:"properties"`
}

// NewCatalogueCategory constructs a category with a fresh id/timestamps and
// the deterministic code derived from name.
func NewCatalogueCategory(name string, code string, parentID *bson.ObjectID, isLeaf bool) *CatalogueCategory {
	return &CatalogueCategory{
		Base:       NewBase(),
		Name:       name,
		Code:       code,
		ParentID:   parentID,
		IsLeaf:     isLeaf,
		Properties: []Property{},
	}
}

// HasParent reports whether this category is not a root.
func (c *CatalogueCategory) HasParent() bool {
	return HasParent(c.ParentID)
}

// FindProperty returns the Property with the given id, if any.
func (c *CatalogueCategory) FindProperty(id bson.ObjectID) (*Property, int) {
	for i := range c.Properties {
		if c.Properties[i].ID == id {
			return &c.Properties[i], i
		}
	}
	return nil, -1
}

// FindPropertyByName returns the Property with the given name (exact,
// case-sensitive match — property names are unique within a category by
// exact string equality).
func (c *CatalogueCategory) FindPropertyByName(name string) (*Property, int) {
	for i := range c.Properties {
		if c.Properties[i].Name == name {
			return &c.Properties[i], i
		}
	}
	return nil, -1
}

// PropertyIDSet returns the set of property ids declared on this category,
// used to compare schemas across a catalogue-item category move.
func (c *CatalogueCategory) PropertyIDSet() map[bson.ObjectID]struct{} {
	set := make(map[bson.ObjectID]struct{}, len(c.Properties))
	for _, p := range c.Properties {
		set[p.ID] = struct{}{}
	}
	return set
}

// SameDefinedProperties reports whether c and other declare the same set of
// property shapes (order-insensitive, compared by Property.SameDefinition
// rather than by id, since two categories never share property ids). Used to
// decide whether a catalogue-item category move may proceed without the
// caller re-submitting a properties list.
func (c *CatalogueCategory) SameDefinedProperties(other *CatalogueCategory) bool {
	if len(c.Properties) != len(other.Properties) {
		return false
	}
	used := make([]bool, len(other.Properties))
	for i := range c.Properties {
		matched := false
		for j := range other.Properties {
			if used[j] {
				continue
			}
			if c.Properties[i].SameDefinition(&other.Properties[j]) {
				used[j] = true
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}
