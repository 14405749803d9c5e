package entities

import "go.mongodb.org/mongo-driver/v2/bson"

// CatalogueItem is a stock-keeping unit / model living under a leaf
// CatalogueCategory. It carries the PropertyValue list the Instance
// Validator enforces against that category's Property list.
type CatalogueItem struct {
	Base                                 `bson:",inline"`
	CatalogueCategoryID                  bson.ObjectID  `bson:"catalogue_category_id" json:"catalogue_category_id"`
	ManufacturerID                       bson.ObjectID  `bson:"manufacturer_id"       json:"manufacturer_id"`
	Name                                 string         `bson:"name"                  json:"name"`
	Description                          *string        `bson:"description,omitempty" json:"description,omitempty"`
	Cost                                 *float64       `bson:"cost,omitempty"        json:"cost,omitempty"`
	DaysToReplace                        *float64       `bson:"days_to_replace,omitempty" json:"days_to_replace,omitempty"`
	DaysToRework                         *float64       `bson:"days_to_rework,omitempty"  json:"days_to_rework,omitempty"`
	DrawingNumber                        *string        `bson:"drawing_number,omitempty"  json:"drawing_number,omitempty"`
	DrawingLink                          *string        `bson:"drawing_link,omitempty"    json:"drawing_link,omitempty"`
	ModelNumber                          *string        `bson:"model_number,omitempty"    json:"model_number,omitempty"`
	Notes                                *string        `bson:"notes,omitempty"           json:"notes,omitempty"`
	IsObsolete                           bool           `bson:"is_obsolete"                json:"is_obsolete"`
	ObsoleteReason                       *string        `bson:"obsolete_reason,omitempty"  json:"obsolete_reason,omitempty"`
	ObsoleteReplacementCatalogueItemID   *bson.ObjectID `bson:"obsolete_replacement_catalogue_item_id,omitempty" json:"obsolete_replacement_catalogue_item_id,omitempty"`
	Properties                          []PropertyValue `bson:"properties" json:"properties"`
}

// NewCatalogueItem constructs a CatalogueItem with a fresh id/timestamps.
func NewCatalogueItem(categoryID, manufacturerID bson.ObjectID, name string) *CatalogueItem {
	return &CatalogueItem{
		Base:                 NewBase(),
		CatalogueCategoryID:  categoryID,
		ManufacturerID:       manufacturerID,
		Name:                 name,
		Properties:           []PropertyValue{},
	}
}
