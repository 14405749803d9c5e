package services

import (
	"github.com/facilityinv/catalogue-api/internal/domain/entities"
	"github.com/facilityinv/catalogue-api/internal/domain/valueobjects"
	"github.com/facilityinv/catalogue-api/internal/errs"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// PropertyValueInput is the shape a create/update request supplies for one
// property: the id of the Property it targets and the submitted value.
// Unrecognized ids (not present in the governing category) are silently
// dropped, per spec.
type PropertyValueInput struct {
	ID    bson.ObjectID
	Value valueobjects.TypedValue
}

// InstanceValidator validates the property-value lists supplied when
// creating or updating a catalogue item or an item, against the Property
// list of the governing (leaf) catalogue category.
type InstanceValidator struct{}

// NewInstanceValidator constructs an InstanceValidator.
func NewInstanceValidator() *InstanceValidator { return &InstanceValidator{} }

// Validate checks supplied against category.Properties and returns the
// resulting PropertyValue list in the category's declared property order,
// filling any omitted non-mandatory property with a null value carrying the
// cached name/unit. It never reorders or keeps properties the category does
// not declare.
func (InstanceValidator) Validate(category *entities.CatalogueCategory, supplied []PropertyValueInput) ([]entities.PropertyValue, error) {
	byID := make(map[bson.ObjectID]valueobjects.TypedValue, len(supplied))
	for _, in := range supplied {
		byID[in.ID] = in.Value
	}

	out := make([]entities.PropertyValue, 0, len(category.Properties))
	for i := range category.Properties {
		p := &category.Properties[i]

		value, ok := byID[p.ID]
		if !ok {
			value = valueobjects.Null()
		}

		if p.Mandatory && !ok {
			return nil, errs.New(errs.KindMissingMandatoryProperty,
				"Missing mandatory property with ID: '%s'", p.ID.Hex())
		}
		if p.Mandatory && value.IsNull {
			return nil, errs.New(errs.KindMissingMandatoryProperty,
				"Mandatory property with ID '%s' cannot be None.", p.ID.Hex())
		}

		if !value.IsNull {
			if !value.MatchesKind(p.Type) {
				return nil, errs.New(errs.KindInvalidPropertyType,
					"Invalid value for property with ID '%s'. Expected type: %s.", p.ID.Hex(), p.Type)
			}
			if p.AllowedValues != nil && p.AllowedValues.Type == entities.AllowedValuesTypeList {
				if !p.AllowedValues.ContainsExact(value) {
					return nil, errs.New(errs.KindInvalidPropertyType,
						"Invalid value for property with ID '%s'. %s", p.ID.Hex(), expectedOneOfMessage(p.AllowedValues.Values))
				}
			}
		}

		out = append(out, entities.NewPropertyValueFromDefinition(p, value))
	}

	return out, nil
}

// ValidateCategoryMove checks a catalogue-item category-change request. When
// the caller does not supply a properties list (propertiesSupplied false),
// the move is only allowed when oldCategory and newCategory declare the same
// property shapes (order-insensitive, by definition not by id — the two
// categories never share property ids); in that case the item's existing
// values carry over onto the new category's property ids, matched by name.
// Otherwise the caller must supply a properties list whose ids exactly match
// the new category's schema, which is then re-validated via Validate.
func (v InstanceValidator) ValidateCategoryMove(
	oldCategory, newCategory *entities.CatalogueCategory,
	existing []entities.PropertyValue,
	supplied []PropertyValueInput,
	propertiesSupplied bool,
) ([]entities.PropertyValue, error) {
	if !propertiesSupplied {
		if !oldCategory.SameDefinedProperties(newCategory) {
			return nil, errs.New(errs.KindInvalidAction,
				"Cannot move catalogue item to a category with different properties without specifying the new properties")
		}

		out := make([]entities.PropertyValue, 0, len(newCategory.Properties))
		for i := range newCategory.Properties {
			p := &newCategory.Properties[i]
			value := valueobjects.Null()
			if oldProp, _ := oldCategory.FindPropertyByName(p.Name); oldProp != nil {
				if ev, idx := entities.FindPropertyValue(existing, oldProp.ID); idx >= 0 {
					value = ev.Value
				}
			}
			out = append(out, entities.NewPropertyValueFromDefinition(p, value))
		}
		return out, nil
	}

	suppliedIDs := make(map[bson.ObjectID]struct{}, len(supplied))
	for _, in := range supplied {
		suppliedIDs[in.ID] = struct{}{}
	}
	want := newCategory.PropertyIDSet()
	if len(suppliedIDs) != len(want) {
		return nil, errs.New(errs.KindInvalidAction,
			"Cannot move catalogue item to a category with different properties without specifying the new properties")
	}
	for id := range want {
		if _, ok := suppliedIDs[id]; !ok {
			return nil, errs.New(errs.KindInvalidAction,
				"Cannot move catalogue item to a category with different properties without specifying the new properties")
		}
	}

	return v.Validate(newCategory, supplied)
}
