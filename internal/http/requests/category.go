package requests

import (
	"github.com/facilityinv/catalogue-api/internal/application/ports"
	"github.com/facilityinv/catalogue-api/internal/domain/valueobjects"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// AllowedValuesBody is the inbound JSON shape of a property's
// allowed_values constraint.
type AllowedValuesBody struct {
	Type   string                    `json:"type" validate:"required"`
	Values []valueobjects.TypedValue `json:"values" validate:"required"`
}

func (b *AllowedValuesBody) ToInput() *ports.AllowedValuesInput {
	if b == nil {
		return nil
	}
	return &ports.AllowedValuesInput{Type: b.Type, Values: b.Values}
}

// PropertyBody is the inbound JSON shape of a property definition.
type PropertyBody struct {
	Name          string             `json:"name" validate:"required"`
	Type          valueobjects.Kind  `json:"type" validate:"required"`
	Mandatory     bool               `json:"mandatory"`
	UnitID        *bson.ObjectID     `json:"unit_id,omitempty"`
	AllowedValues *AllowedValuesBody `json:"allowed_values,omitempty"`
}

// ToInput converts the bound body into the application-layer input.
func (b PropertyBody) ToInput() ports.PropertyInput {
	return ports.PropertyInput{
		Name:          b.Name,
		Type:          b.Type,
		Mandatory:     b.Mandatory,
		UnitID:        b.UnitID,
		AllowedValues: b.AllowedValues.ToInput(),
	}
}

// CreateCategoryBody is the inbound JSON body for POST
// /v1/catalogue-categories.
type CreateCategoryBody struct {
	Name       string         `json:"name" validate:"required"`
	ParentID   *bson.ObjectID `json:"parent_id,omitempty"`
	IsLeaf     bool           `json:"is_leaf"`
	Properties []PropertyBody `json:"properties,omitempty"`
}

// ToInput converts the bound body into the application-layer input.
func (b CreateCategoryBody) ToInput() ports.CreateCategoryInput {
	props := make([]ports.PropertyInput, len(b.Properties))
	for i, p := range b.Properties {
		props[i] = p.ToInput()
	}
	return ports.CreateCategoryInput{
		Name:       b.Name,
		ParentID:   b.ParentID,
		IsLeaf:     b.IsLeaf,
		Properties: props,
	}
}

// UpdateCategoryBody is used to unmarshal individual known fields once
// presence has been established via RawBody/Decode in the controller.
type UpdateCategoryBody struct {
	Name       *string        `json:"name"`
	ParentID   *bson.ObjectID `json:"parent_id"`
	IsLeaf     *bool          `json:"is_leaf"`
	Properties []PropertyBody `json:"properties"`
}

// PropertiesToInput converts a decoded []PropertyBody to application input.
func PropertiesToInput(props []PropertyBody) []ports.PropertyInput {
	out := make([]ports.PropertyInput, len(props))
	for i, p := range props {
		out[i] = p.ToInput()
	}
	return out
}

// PropertyPatchBody is the inbound JSON body for PATCH
// /v1/catalogue-categories/{id}/properties/{pid}.
type PropertyPatchBody struct {
	Name          *string            `json:"name"`
	AllowedValues *AllowedValuesBody `json:"allowed_values"`
}

// AddPropertyBody is the inbound JSON body for POST
// /v1/catalogue-categories/{id}/properties.
type AddPropertyBody struct {
	PropertyBody
	DefaultValue *valueobjects.TypedValue `json:"default_value,omitempty"`
}
