package requests

import (
	"github.com/facilityinv/catalogue-api/internal/application/ports"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// CreateCatalogueItemBody is the inbound JSON body for POST
// /v1/catalogue-items.
type CreateCatalogueItemBody struct {
	CatalogueCategoryID bson.ObjectID       `json:"catalogue_category_id" validate:"required"`
	ManufacturerID      bson.ObjectID       `json:"manufacturer_id"       validate:"required"`
	Name                string              `json:"name"                 validate:"required"`
	Description         *string             `json:"description,omitempty"`
	Cost                *float64            `json:"cost,omitempty"`
	DaysToReplace       *float64            `json:"days_to_replace,omitempty"`
	DaysToRework        *float64            `json:"days_to_rework,omitempty"`
	DrawingNumber       *string             `json:"drawing_number,omitempty"`
	DrawingLink         *string             `json:"drawing_link,omitempty"`
	ModelNumber         *string             `json:"model_number,omitempty"`
	Notes               *string             `json:"notes,omitempty"`
	Properties          []PropertyValueBody `json:"properties,omitempty"`
}

// ToInput converts the bound body into the application-layer input.
func (b CreateCatalogueItemBody) ToInput() ports.CreateCatalogueItemInput {
	return ports.CreateCatalogueItemInput{
		CatalogueCategoryID: b.CatalogueCategoryID,
		ManufacturerID:      b.ManufacturerID,
		Name:                b.Name,
		Description:         b.Description,
		Cost:                b.Cost,
		DaysToReplace:       b.DaysToReplace,
		DaysToRework:        b.DaysToRework,
		DrawingNumber:       b.DrawingNumber,
		DrawingLink:         b.DrawingLink,
		ModelNumber:         b.ModelNumber,
		Notes:               b.Notes,
		Properties:          PropertyValuesToInput(b.Properties),
	}
}

// UpdateCatalogueItemBody mirrors the known fields of a catalogue-item PATCH
// body, decoded field-by-field from the raw presence map.
type UpdateCatalogueItemBody struct {
	CatalogueCategoryID                *bson.ObjectID      `json:"catalogue_category_id"`
	ManufacturerID                     *bson.ObjectID      `json:"manufacturer_id"`
	Name                               *string             `json:"name"`
	Description                        *string             `json:"description"`
	Cost                               *float64            `json:"cost"`
	DaysToReplace                      *float64            `json:"days_to_replace"`
	DaysToRework                       *float64            `json:"days_to_rework"`
	DrawingNumber                      *string             `json:"drawing_number"`
	DrawingLink                        *string             `json:"drawing_link"`
	ModelNumber                        *string             `json:"model_number"`
	Notes                              *string             `json:"notes"`
	IsObsolete                         *bool               `json:"is_obsolete"`
	ObsoleteReason                     *string             `json:"obsolete_reason"`
	ObsoleteReplacementCatalogueItemID *bson.ObjectID      `json:"obsolete_replacement_catalogue_item_id"`
	Properties                         []PropertyValueBody `json:"properties"`
}
