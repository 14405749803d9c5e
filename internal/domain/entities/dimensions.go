package entities

// Unit, UsageStatus and Manufacturer are the dimension entities referenced
// by property definitions, items, and catalogue items respectively. They
// share an identical shape (a human Value plus a derived Code) and are
// deletion-guarded by the Referential Guard (see
// internal/application/services/referential_guard.go) rather than by any
// tree-integrity rule — they are flat, not hierarchical.

// Unit is a measurement unit a Property may be expressed in.
type Unit struct {
	Base  `bson:",inline"`
	Value string `bson:"value" json:"value"`
	Code  string `bson:"code"  json:"code"`
}

// NewUnit constructs a Unit with a fresh id/timestamps.
func NewUnit(value, code string) *Unit {
	return &Unit{Base: NewBase(), Value: value, Code: code}
}

// UsageStatus describes the operational status of a physical Item
// (e.g. "New", "In Use", "Scrapped").
type UsageStatus struct {
	Base  `bson:",inline"`
	Value string `bson:"value" json:"value"`
	Code  string `bson:"code"  json:"code"`
}

// NewUsageStatus constructs a UsageStatus with a fresh id/timestamps.
func NewUsageStatus(value, code string) *UsageStatus {
	return &UsageStatus{Base: NewBase(), Value: value, Code: code}
}

// Manufacturer is the maker of a CatalogueItem.
type Manufacturer struct {
	Base    `bson:",inline"`
	Name    string  `bson:"name" json:"name"`
	Code    string  `bson:"code" json:"code"`
	URL     *string `bson:"url,omitempty"     json:"url,omitempty"`
	Address *string `bson:"address,omitempty" json:"address,omitempty"`
}

// NewManufacturer constructs a Manufacturer with a fresh id/timestamps.
func NewManufacturer(name, code string) *Manufacturer {
	return &Manufacturer{Base: NewBase(), Name: name, Code: code}
}
