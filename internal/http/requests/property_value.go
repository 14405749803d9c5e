package requests

import (
	"github.com/facilityinv/catalogue-api/internal/application/ports"
	"github.com/facilityinv/catalogue-api/internal/domain/valueobjects"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// PropertyValueBody is the inbound JSON shape of one submitted property
// value on a catalogue item or item: the id of the Property it targets and
// the value itself.
type PropertyValueBody struct {
	ID    bson.ObjectID           `json:"id" validate:"required"`
	Value valueobjects.TypedValue `json:"value"`
}

// PropertyValuesToInput converts a decoded []PropertyValueBody into
// application-layer input.
func PropertyValuesToInput(in []PropertyValueBody) []ports.PropertyValueInput {
	out := make([]ports.PropertyValueInput, len(in))
	for i, v := range in {
		out[i] = ports.PropertyValueInput{ID: v.ID, Value: v.Value}
	}
	return out
}
