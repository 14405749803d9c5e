// Package services implements the application-level business logic for the
// facility inventory system: taxonomy/system tree CRUD and moves, the
// property schema engine, the property propagation coordinator, the
// instance validator, breadcrumbs, and the referential guard.
package services

import (
	"fmt"

	"github.com/facilityinv/catalogue-api/internal/domain/entities"
	"github.com/facilityinv/catalogue-api/internal/domain/valueobjects"
	"github.com/facilityinv/catalogue-api/internal/errs"
)

// PropertySchema groups the standalone- and context-validation rules for
// Property definitions (§4.2). It holds no state and no dependencies; it is
// a plain value so it can be called from both the category service and the
// propagation coordinator without threading a repository through it.
type PropertySchema struct{}

// NewPropertySchema constructs a PropertySchema engine.
func NewPropertySchema() *PropertySchema { return &PropertySchema{} }

// ValidateStandalone checks a Property definition in isolation: its Type is
// one of the three recognized kinds, boolean properties carry neither a
// unit nor allowed_values, and any AllowedValues constraint is well formed
// for the declared Type.
func (PropertySchema) ValidateStandalone(p *entities.Property) error {
	if !p.Type.Valid() {
		return errs.New(errs.KindInvalidPropertyType, "invalid property type: %q", p.Type)
	}

	if p.Type == valueobjects.KindBoolean {
		if p.UnitID != nil {
			return errs.New(errs.KindInvalidPropertyType, "unit not allowed for boolean properties")
		}
		if p.AllowedValues != nil {
			return errs.New(errs.KindInvalidPropertyType, "allowed_values not allowed for boolean properties")
		}
	}

	if p.AllowedValues == nil {
		return nil
	}

	av := p.AllowedValues
	if av.Type != entities.AllowedValuesTypeList {
		return errs.New(errs.KindInvalidPropertyType, "unrecognized allowed_values variant: %q", av.Type)
	}
	if len(av.Values) == 0 {
		return errs.New(errs.KindInvalidPropertyType, "allowed_values list must not be empty")
	}

	seen := make([]valueobjects.TypedValue, 0, len(av.Values))
	for _, v := range av.Values {
		if !v.MatchesKind(p.Type) {
			return errs.New(errs.KindInvalidPropertyType, "allowed_values must only contain values of the same type as the property")
		}
		for _, prior := range seen {
			if typedValueEqualForDuplicateCheck(prior, v) {
				return errs.New(errs.KindInvalidPropertyType, "allowed_values contains a duplicate value: %s", v.String())
			}
		}
		seen = append(seen, v)
	}

	return nil
}

// typedValueEqualForDuplicateCheck implements the definition-time duplicate
// rule: string comparison is case-insensitive, booleans are never allowed
// to appear (rejected earlier by the boolean branch above), others compare
// by value.
func typedValueEqualForDuplicateCheck(a, b valueobjects.TypedValue) bool {
	av := entities.AllowedValues{Values: []valueobjects.TypedValue{a}}
	return av.ContainsCaseInsensitive(b)
}

// ValidateInContext checks a Property definition against the category it is
// being added to (or edited within): the name must be unique among the
// category's other properties (exact match). An existing property with the
// same ID as p is skipped, so a property being edited does not collide with
// itself.
func (PropertySchema) ValidateInContext(category *entities.CatalogueCategory, p *entities.Property) error {
	for _, existing := range category.Properties {
		if existing.ID == p.ID {
			continue
		}
		if existing.Name == p.Name {
			return errs.New(errs.KindDuplicatePropertyName, "Duplicate property name: %s", p.Name)
		}
	}
	return nil
}

// ValidateDefault checks a default value supplied alongside a new property
// definition: mandatory properties require a non-null default, the
// default's runtime type must match the property's type, and if the
// property constrains values to a list, the default must be a member.
func (PropertySchema) ValidateDefault(p *entities.Property, def valueobjects.TypedValue) error {
	if p.Mandatory && def.IsNull {
		return errs.New(errs.KindMissingMandatoryProperty, "Missing mandatory property with ID: '%s'", p.ID.Hex())
	}
	if def.IsNull {
		return nil
	}
	if !def.MatchesKind(p.Type) {
		return errs.New(errs.KindInvalidPropertyType, "Invalid type for default value of property with ID '%s'. Expected type: %s", p.ID.Hex(), p.Type)
	}
	if p.AllowedValues != nil && p.AllowedValues.Type == entities.AllowedValuesTypeList {
		if !p.AllowedValues.ContainsExact(def) {
			return errs.New(errs.KindInvalidPropertyType, "Invalid default value for property with ID '%s'. %s", p.ID.Hex(), expectedOneOfMessage(p.AllowedValues.Values))
		}
	}
	return nil
}

// ValidateAllowedValuesUpdate enforces the rules governing a change to an
// existing property's allowed_values constraint (§4.2): constraints may
// only be added on creation (never retrofitted), never removed once set,
// never change variant, and — for "list" — may only grow (existing entries
// are frozen, order is irrelevant).
func (PropertySchema) ValidateAllowedValuesUpdate(old, next *entities.AllowedValues) error {
	switch {
	case old == nil && next == nil:
		return nil
	case old == nil && next != nil:
		return errs.New(errs.KindInvalidAction, "cannot add allowed_values to an existing property")
	case old != nil && next == nil:
		return errs.New(errs.KindInvalidAction, "cannot remove allowed_values from an existing property")
	}

	if old.Type != next.Type {
		return errs.New(errs.KindInvalidAction, "cannot change the allowed_values variant of an existing property")
	}

	for _, oldVal := range old.Values {
		if !next.ContainsExact(oldVal) {
			return errs.New(errs.KindInvalidAction, "cannot modify or remove existing allowed_values entries, only add new ones")
		}
	}
	return nil
}

func expectedOneOfMessage(values []valueobjects.TypedValue) string {
	msg := "Expected one of "
	for i, v := range values {
		if i > 0 {
			msg += ", "
		}
		msg += v.String()
	}
	return fmt.Sprintf("%s.", msg)
}
