package entities

import "go.mongodb.org/mongo-driver/v2/bson"

// Item is a physical instance of a CatalogueItem placed in a System. Its
// Properties list holds overrides only — unsupplied properties are
// inherited from the parent catalogue item at read time (one layer deep;
// see internal/application/services for the merge).
type Item struct {
	Base             `bson:",inline"`
	CatalogueItemID  bson.ObjectID  `bson:"catalogue_item_id" json:"catalogue_item_id"`
	SystemID         bson.ObjectID  `bson:"system_id"         json:"system_id"`
	UsageStatusID    bson.ObjectID  `bson:"usage_status_id"   json:"usage_status_id"`
	UsageStatus      string         `bson:"usage_status"      json:"usage_status"`
	PurchaseOrderNumber *string     `bson:"purchase_order_number,omitempty" json:"purchase_order_number,omitempty"`
	WarrantyEndDate  *string        `bson:"warranty_end_date,omitempty"     json:"warranty_end_date,omitempty"`
	AssetNumber      *string        `bson:"asset_number,omitempty"          json:"asset_number,omitempty"`
	SerialNumber     *string        `bson:"serial_number,omitempty"         json:"serial_number,omitempty"`
	DeliveredDate    *string        `bson:"delivered_date,omitempty"        json:"delivered_date,omitempty"`
	IsDefective      bool           `bson:"is_defective"      json:"is_defective"`
	Notes            *string        `bson:"notes,omitempty"   json:"notes,omitempty"`
	Properties       []PropertyValue `bson:"properties" json:"properties"`
}

// NewItem constructs an Item with a fresh id/timestamps.
func NewItem(catalogueItemID, systemID, usageStatusID bson.ObjectID, usageStatus string) *Item {
	return &Item{
		Base:            NewBase(),
		CatalogueItemID: catalogueItemID,
		SystemID:        systemID,
		UsageStatusID:   usageStatusID,
		UsageStatus:     usageStatus,
		Properties:      []PropertyValue{},
	}
}

// MergeInherited returns the effective property-value list for this item:
// the parent catalogue item's values with this item's own entries
// overriding by id. Order follows the parent's property order, matching the
// category's declared order. Inheritance is one layer deep — parentValues
// must already be the catalogue item's own (non-inherited) values.
func MergeInherited(parentValues, ownValues []PropertyValue) []PropertyValue {
	merged := make([]PropertyValue, len(parentValues))
	copy(merged, parentValues)
	for _, own := range ownValues {
		if _, idx := FindPropertyValue(merged, own.ID); idx >= 0 {
			merged[idx] = own
		}
	}
	return merged
}
