package requests

import (
	"github.com/facilityinv/catalogue-api/internal/application/ports"
	"github.com/facilityinv/catalogue-api/internal/domain/entities"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// CreateSystemBody is the inbound JSON body for POST /v1/systems.
type CreateSystemBody struct {
	Name        string              `json:"name" validate:"required"`
	ParentID    *bson.ObjectID      `json:"parent_id,omitempty"`
	Importance  entities.Importance `json:"importance" validate:"required"`
	Description *string             `json:"description,omitempty"`
	Location    *string             `json:"location,omitempty"`
	Owner       *string             `json:"owner,omitempty"`
}

// ToInput converts the bound body into the application-layer input.
func (b CreateSystemBody) ToInput() ports.CreateSystemInput {
	return ports.CreateSystemInput{
		Name:        b.Name,
		ParentID:    b.ParentID,
		Importance:  b.Importance,
		Description: b.Description,
		Location:    b.Location,
		Owner:       b.Owner,
	}
}

// UpdateSystemBody mirrors the known fields of a system PATCH body, decoded
// field-by-field from the raw presence map so the controller can tell
// "parent_id omitted" from "parent_id: null".
type UpdateSystemBody struct {
	Name        *string              `json:"name"`
	ParentID    *bson.ObjectID       `json:"parent_id"`
	Importance  *entities.Importance `json:"importance"`
	Description *string              `json:"description"`
	Location    *string              `json:"location"`
	Owner       *string              `json:"owner"`
}
