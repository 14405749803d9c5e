package entities

import (
	"strings"

	"github.com/facilityinv/catalogue-api/internal/domain/valueobjects"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Property is a typed attribute definition declared on a leaf catalogue
// category. Properties are owned by the category document — PropertyValue
// entries on catalogue items and items only ever hold a copy of Name/Unit
// plus a back-reference to the defining Property's ID.
type Property struct {
	ID            bson.ObjectID  `bson:"id"                       json:"id"`
	Name          string         `bson:"name"                     json:"name"`
	Type          valueobjects.Kind `bson:"type"                  json:"type"`
	Mandatory     bool           `bson:"mandatory"                json:"mandatory"`
	UnitID        *bson.ObjectID `bson:"unit_id,omitempty"        json:"unit_id,omitempty"`
	Unit          *string        `bson:"unit,omitempty"           json:"unit,omitempty"`
	AllowedValues *AllowedValues `bson:"allowed_values,omitempty" json:"allowed_values,omitempty"`
}

// AllowedValues is a tagged variant constraining the values a property may
// take. "list" is the only defined variant; others are rejected by the
// Property Schema Engine.
type AllowedValues struct {
	Type   string                   `bson:"type" json:"type"`
	Values []valueobjects.TypedValue `bson:"values,omitempty" json:"values,omitempty"`
}

const AllowedValuesTypeList = "list"

// NewProperty constructs a Property with a fresh id. Callers are expected to
// run it through the Property Schema Engine (see
// internal/application/services) before attaching it to a category.
func NewProperty(name string, kind valueobjects.Kind, mandatory bool) *Property {
	return &Property{
		ID:        bson.NewObjectID(),
		Name:      name,
		Type:      kind,
		Mandatory: mandatory,
	}
}

// HasAllowedValues reports whether p constrains its values to an explicit
// list.
func (p *Property) HasAllowedValues() bool {
	return p.AllowedValues != nil
}

// ContainsCaseInsensitive reports whether value appears in av.Values,
// comparing strings case-insensitively and other kinds by raw equality.
// This is the definition-time duplicate/membership comparator; it is
// deliberately distinct from ContainsExact, which governs item-write-time
// membership checks (see AllowedValues.ContainsExact doc comment for the
// asymmetry this preserves).
func (av *AllowedValues) ContainsCaseInsensitive(v valueobjects.TypedValue) bool {
	for _, existing := range av.Values {
		if typedValueEqualCI(existing, v) {
			return true
		}
	}
	return false
}

// ContainsExact reports whether value appears in av.Values using
// case-sensitive string comparison. Per spec, duplicate detection among
// allowed_values at property-definition time is case-insensitive, but
// whether a submitted item value satisfies the constraint at write time is
// case-sensitive. Both behaviors are intentional and must not be unified.
func (av *AllowedValues) ContainsExact(v valueobjects.TypedValue) bool {
	for _, existing := range av.Values {
		if existing.Equal(v) {
			return true
		}
	}
	return false
}

// SameDefinition reports whether p and other declare the same attribute
// shape (name, type, mandatory flag, unit, allowed values) regardless of
// their ID or declaring category — used to recognize that a catalogue item
// moving between categories keeps an equivalent property schema even though
// the new category's Properties carry distinct ids.
func (p *Property) SameDefinition(other *Property) bool {
	if p.Name != other.Name || p.Type != other.Type || p.Mandatory != other.Mandatory {
		return false
	}
	if (p.Unit == nil) != (other.Unit == nil) {
		return false
	}
	if p.Unit != nil && *p.Unit != *other.Unit {
		return false
	}
	return p.AllowedValues.sameAs(other.AllowedValues)
}

// sameAs reports whether av and other constrain values identically.
func (av *AllowedValues) sameAs(other *AllowedValues) bool {
	if av == nil || other == nil {
		return av == nil && other == nil
	}
	if av.Type != other.Type || len(av.Values) != len(other.Values) {
		return false
	}
	for i := range av.Values {
		if !av.Values[i].Equal(other.Values[i]) {
			return false
		}
	}
	return true
}

func typedValueEqualCI(a, b valueobjects.TypedValue) bool {
	if a.IsNull != b.IsNull || a.Kind != b.Kind {
		return false
	}
	if a.IsNull {
		return true
	}
	switch a.Kind {
	case valueobjects.KindString:
		return strings.EqualFold(a.Str, b.Str)
	default:
		return a.Equal(b)
	}
}
