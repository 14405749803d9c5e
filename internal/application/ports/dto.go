// Package ports defines the interfaces the HTTP layer depends on, plus the
// plain input structs those interfaces accept. Keeping these request shapes
// here (rather than in internal/http/requests) lets the application layer
// stay independent of the HTTP binding library.
package ports

import (
	"github.com/facilityinv/catalogue-api/internal/domain/entities"
	"github.com/facilityinv/catalogue-api/internal/domain/valueobjects"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// AllowedValuesInput mirrors entities.AllowedValues for inbound requests.
type AllowedValuesInput struct {
	Type   string
	Values []valueobjects.TypedValue
}

// PropertyInput is the inbound shape of a property definition, used both
// when creating a leaf category and when adding a property afterward.
type PropertyInput struct {
	Name          string
	Type          valueobjects.Kind
	Mandatory     bool
	UnitID        *bson.ObjectID
	AllowedValues *AllowedValuesInput
}

// PropertyValueInput is the inbound shape of one submitted property value:
// the id of the targeted Property and the value. The services package
// converts it field by field into the InstanceValidator's own input type.
type PropertyValueInput struct {
	ID    bson.ObjectID
	Value valueobjects.TypedValue
}

// CreateCategoryInput is the inbound shape for creating a catalogue
// category.
type CreateCategoryInput struct {
	Name       string
	ParentID   *bson.ObjectID
	IsLeaf     bool
	Properties []PropertyInput
}

// UpdateCategoryInput is the inbound shape for a catalogue-category PATCH.
// Pointer fields distinguish "not supplied" from "supplied as empty/false";
// ParentSet and PropertiesSet record whether parent_id and properties were
// present in the patch at all.
type UpdateCategoryInput struct {
	Name       *string
	ParentID   *bson.ObjectID
	ParentSet  bool // true if parent_id was present in the patch, even as null
	IsLeaf     *bool
	Properties []PropertyInput
	PropertiesSet bool
}

// PropertyPatch is the inbound shape for PATCH
// /catalogue-categories/{id}/properties/{pid}.
type PropertyPatch struct {
	Name          *string
	AllowedValues *AllowedValuesInput
	AllowedValuesSet bool
}

// CreateSystemInput is the inbound shape for creating a system.
type CreateSystemInput struct {
	Name        string
	ParentID    *bson.ObjectID
	Importance  entities.Importance
	Description *string
	Location    *string
	Owner       *string
}

// UpdateSystemInput is the inbound shape for a system PATCH.
type UpdateSystemInput struct {
	Name        *string
	ParentID    *bson.ObjectID
	ParentSet   bool
	Importance  *entities.Importance
	Description *string
	Location    *string
	Owner       *string
}

// CreateCatalogueItemInput is the inbound shape for creating a catalogue
// item.
type CreateCatalogueItemInput struct {
	CatalogueCategoryID bson.ObjectID
	ManufacturerID      bson.ObjectID
	Name                string
	Description         *string
	Cost                *float64
	DaysToReplace       *float64
	DaysToRework        *float64
	DrawingNumber       *string
	DrawingLink         *string
	ModelNumber         *string
	Notes               *string
	Properties          []PropertyValueInput
}

// UpdateCatalogueItemInput is the inbound shape for a catalogue-item PATCH.
type UpdateCatalogueItemInput struct {
	CatalogueCategoryID *bson.ObjectID
	ManufacturerID      *bson.ObjectID
	Name                *string
	Description         *string
	Cost                *float64
	DaysToReplace       *float64
	DaysToRework        *float64
	DrawingNumber       *string
	DrawingLink         *string
	ModelNumber         *string
	Notes               *string
	IsObsolete          *bool
	ObsoleteReason      *string
	ObsoleteReplacementCatalogueItemID *bson.ObjectID
	Properties          []PropertyValueInput
	PropertiesSet       bool
}

// CreateItemInput is the inbound shape for creating a physical item.
type CreateItemInput struct {
	CatalogueItemID     bson.ObjectID
	SystemID            bson.ObjectID
	UsageStatusID       bson.ObjectID
	PurchaseOrderNumber *string
	WarrantyEndDate     *string
	AssetNumber         *string
	SerialNumber        *string
	DeliveredDate       *string
	IsDefective         bool
	Notes               *string
	Properties          []PropertyValueInput
}

// UpdateItemInput is the inbound shape for an item PATCH.
type UpdateItemInput struct {
	SystemID            *bson.ObjectID
	UsageStatusID       *bson.ObjectID
	PurchaseOrderNumber *string
	WarrantyEndDate     *string
	AssetNumber         *string
	SerialNumber        *string
	DeliveredDate       *string
	IsDefective         *bool
	Notes               *string
	Properties          []PropertyValueInput
	PropertiesSet       bool
}
