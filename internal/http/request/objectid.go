// Package request holds small helpers shared by the HTTP controllers for
// parsing path and query parameters.
package request

import (
	"github.com/facilityinv/catalogue-api/internal/errs"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// ObjectIDParam parses a required path parameter as a Mongo object id.
// Non-conforming values raise invalid-object-id (§4.7), which the HTTP
// boundary maps to 404.
func ObjectIDParam(raw string) (bson.ObjectID, error) {
	id, err := bson.ObjectIDFromHex(raw)
	if err != nil {
		return bson.ObjectID{}, errs.New(errs.KindInvalidObjectID, "invalid object id: %s", raw)
	}
	return id, nil
}

// FilterObjectID parses an optional object-id query parameter used in a
// filter position. present reports whether the parameter was supplied at
// all (as opposed to omitted, meaning "no filter"); valid reports whether a
// supplied value parsed. Per §4.1, a present-but-invalid value must yield
// an empty result set rather than an error or a falling-back-to-no-filter.
func FilterObjectID(raw string) (id bson.ObjectID, present, valid bool) {
	if raw == "" {
		return bson.ObjectID{}, false, false
	}
	parsed, err := bson.ObjectIDFromHex(raw)
	if err != nil {
		return bson.ObjectID{}, true, false
	}
	return parsed, true, true
}

// TreeFilter is the parsed ?parent_id=… query parameter shared by the
// catalogue-category and system list endpoints: omitted means "no filter",
// the literal string "null" means "roots only", and anything else must
// parse as an object id or the list is declared empty outright (§4.1).
func TreeFilter(raw string) (parentID *bson.ObjectID, rootsOnly, invalid bool) {
	switch {
	case raw == "":
		return nil, false, false
	case raw == "null":
		return nil, true, false
	default:
		id, err := bson.ObjectIDFromHex(raw)
		if err != nil {
			return nil, false, true
		}
		return &id, false, false
	}
}
