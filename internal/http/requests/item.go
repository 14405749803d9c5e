package requests

import (
	"github.com/facilityinv/catalogue-api/internal/application/ports"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// CreateItemBody is the inbound JSON body for POST /v1/items.
type CreateItemBody struct {
	CatalogueItemID     bson.ObjectID       `json:"catalogue_item_id" validate:"required"`
	SystemID            bson.ObjectID       `json:"system_id"         validate:"required"`
	UsageStatusID       bson.ObjectID       `json:"usage_status_id"   validate:"required"`
	PurchaseOrderNumber *string             `json:"purchase_order_number,omitempty"`
	WarrantyEndDate     *string             `json:"warranty_end_date,omitempty"`
	AssetNumber         *string             `json:"asset_number,omitempty"`
	SerialNumber        *string             `json:"serial_number,omitempty"`
	DeliveredDate       *string             `json:"delivered_date,omitempty"`
	IsDefective         bool                `json:"is_defective"`
	Notes               *string             `json:"notes,omitempty"`
	Properties          []PropertyValueBody `json:"properties,omitempty"`
}

// ToInput converts the bound body into the application-layer input.
func (b CreateItemBody) ToInput() ports.CreateItemInput {
	return ports.CreateItemInput{
		CatalogueItemID:     b.CatalogueItemID,
		SystemID:            b.SystemID,
		UsageStatusID:       b.UsageStatusID,
		PurchaseOrderNumber: b.PurchaseOrderNumber,
		WarrantyEndDate:     b.WarrantyEndDate,
		AssetNumber:         b.AssetNumber,
		SerialNumber:        b.SerialNumber,
		DeliveredDate:       b.DeliveredDate,
		IsDefective:         b.IsDefective,
		Notes:               b.Notes,
		Properties:          PropertyValuesToInput(b.Properties),
	}
}

// UpdateItemBody mirrors the known fields of an item PATCH body, decoded
// field-by-field from the raw presence map. catalogue_item_id is
// deliberately absent: it is immutable once an item exists (§4.4).
type UpdateItemBody struct {
	SystemID            *bson.ObjectID      `json:"system_id"`
	UsageStatusID       *bson.ObjectID      `json:"usage_status_id"`
	PurchaseOrderNumber *string             `json:"purchase_order_number"`
	WarrantyEndDate     *string             `json:"warranty_end_date"`
	AssetNumber         *string             `json:"asset_number"`
	SerialNumber        *string             `json:"serial_number"`
	DeliveredDate       *string             `json:"delivered_date"`
	IsDefective         *bool               `json:"is_defective"`
	Notes               *string             `json:"notes"`
	Properties          []PropertyValueBody `json:"properties"`
}
