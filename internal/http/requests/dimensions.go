package requests

import "github.com/facilityinv/catalogue-api/internal/application/ports"

// ValueBody is the inbound JSON body shared by the Unit and UsageStatus
// dimension entities, which are both a bare human value plus a derived
// code.
type ValueBody struct {
	Value string `json:"value" validate:"required"`
}

// ManufacturerBody is the inbound JSON body for creating or updating a
// Manufacturer.
type ManufacturerBody struct {
	Name    string  `json:"name" validate:"required"`
	URL     *string `json:"url,omitempty"`
	Address *string `json:"address,omitempty"`
}

// ToInput converts the bound body into the application-layer input.
func (b ManufacturerBody) ToInput() ports.ManufacturerInput {
	return ports.ManufacturerInput{Name: b.Name, URL: b.URL, Address: b.Address}
}

// UpdateManufacturerBody mirrors the known fields of a manufacturer PATCH
// body.
type UpdateManufacturerBody struct {
	Name    *string `json:"name"`
	URL     *string `json:"url"`
	Address *string `json:"address"`
}

// ToInput converts the bound patch into the application-layer input,
// leaving Name empty ("no change") when the patch didn't supply one.
func (b UpdateManufacturerBody) ToInput() ports.ManufacturerInput {
	in := ports.ManufacturerInput{}
	if b.Name != nil {
		in.Name = *b.Name
	}
	in.URL = b.URL
	in.Address = b.Address
	return in
}
