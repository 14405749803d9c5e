package request

import (
	"testing"

	"github.com/facilityinv/catalogue-api/internal/errs"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestTreeFilter_Omitted(t *testing.T) {
	parentID, rootsOnly, invalid := TreeFilter("")
	assert.Nil(t, parentID)
	assert.False(t, rootsOnly)
	assert.False(t, invalid)
}

func TestTreeFilter_Null(t *testing.T) {
	parentID, rootsOnly, invalid := TreeFilter("null")
	assert.Nil(t, parentID)
	assert.True(t, rootsOnly)
	assert.False(t, invalid)
}

func TestTreeFilter_ValidID(t *testing.T) {
	id := bson.NewObjectID()
	parentID, rootsOnly, invalid := TreeFilter(id.Hex())
	assert.Equal(t, id, *parentID)
	assert.False(t, rootsOnly)
	assert.False(t, invalid)
}

func TestTreeFilter_Garbage(t *testing.T) {
	_, rootsOnly, invalid := TreeFilter("not-an-id")
	assert.False(t, rootsOnly)
	assert.True(t, invalid)
}

func TestFilterObjectID_Omitted(t *testing.T) {
	_, present, valid := FilterObjectID("")
	assert.False(t, present)
	assert.False(t, valid)
}

func TestFilterObjectID_Invalid(t *testing.T) {
	_, present, valid := FilterObjectID("garbage")
	assert.True(t, present)
	assert.False(t, valid)
}

func TestFilterObjectID_Valid(t *testing.T) {
	id := bson.NewObjectID()
	parsed, present, valid := FilterObjectID(id.Hex())
	assert.True(t, present)
	assert.True(t, valid)
	assert.Equal(t, id, parsed)
}

func TestObjectIDParam_Invalid(t *testing.T) {
	_, err := ObjectIDParam("garbage")
	assert.True(t, errs.Is(err, errs.KindInvalidObjectID))
}

func TestObjectIDParam_Valid(t *testing.T) {
	id := bson.NewObjectID()
	parsed, err := ObjectIDParam(id.Hex())
	assert.NoError(t, err)
	assert.Equal(t, id, parsed)
}
