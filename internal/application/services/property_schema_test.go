package services

import (
	"testing"

	"github.com/facilityinv/catalogue-api/internal/domain/entities"
	"github.com/facilityinv/catalogue-api/internal/domain/valueobjects"
	"github.com/facilityinv/catalogue-api/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestPropertySchema_ValidateStandalone_BooleanRejectsUnit(t *testing.T) {
	p := entities.NewProperty("Active", valueobjects.KindBoolean, false)
	unitID := bson.NewObjectID()
	p.UnitID = &unitID

	err := PropertySchema{}.ValidateStandalone(p)

	assert.True(t, errs.Is(err, errs.KindInvalidPropertyType))
}

func TestPropertySchema_ValidateStandalone_BooleanRejectsAllowedValues(t *testing.T) {
	p := entities.NewProperty("Active", valueobjects.KindBoolean, false)
	p.AllowedValues = &entities.AllowedValues{Type: entities.AllowedValuesTypeList, Values: []valueobjects.TypedValue{valueobjects.NewBool(true)}}

	err := PropertySchema{}.ValidateStandalone(p)

	assert.True(t, errs.Is(err, errs.KindInvalidPropertyType))
}

func TestPropertySchema_ValidateStandalone_RejectsEmptyAllowedValuesList(t *testing.T) {
	p := entities.NewProperty("Color", valueobjects.KindString, false)
	p.AllowedValues = &entities.AllowedValues{Type: entities.AllowedValuesTypeList}

	err := PropertySchema{}.ValidateStandalone(p)

	assert.True(t, errs.Is(err, errs.KindInvalidPropertyType))
}

func TestPropertySchema_ValidateStandalone_RejectsDuplicateAllowedValuesCaseInsensitive(t *testing.T) {
	p := entities.NewProperty("Color", valueobjects.KindString, false)
	p.AllowedValues = &entities.AllowedValues{
		Type:   entities.AllowedValuesTypeList,
		Values: []valueobjects.TypedValue{valueobjects.NewString("Red"), valueobjects.NewString("red")},
	}

	err := PropertySchema{}.ValidateStandalone(p)

	assert.True(t, errs.Is(err, errs.KindInvalidPropertyType))
}

func TestPropertySchema_ValidateInContext_DuplicateName(t *testing.T) {
	existing := entities.NewProperty("Length", valueobjects.KindNumber, false)
	category := newLeafCategory(*existing)
	incoming := entities.NewProperty("Length", valueobjects.KindNumber, false)

	err := PropertySchema{}.ValidateInContext(category, incoming)

	assert.True(t, errs.Is(err, errs.KindDuplicatePropertyName))
}

func TestPropertySchema_ValidateInContext_AllowsSelfOnEdit(t *testing.T) {
	existing := entities.NewProperty("Length", valueobjects.KindNumber, false)
	category := newLeafCategory(*existing)

	err := PropertySchema{}.ValidateInContext(category, existing)

	assert.NoError(t, err)
}

func TestPropertySchema_ValidateDefault_MandatoryRequiresNonNull(t *testing.T) {
	p := entities.NewProperty("Length", valueobjects.KindNumber, true)

	err := PropertySchema{}.ValidateDefault(p, valueobjects.Null())

	assert.True(t, errs.Is(err, errs.KindMissingMandatoryProperty))
}

func TestPropertySchema_ValidateDefault_TypeMismatch(t *testing.T) {
	p := entities.NewProperty("Length", valueobjects.KindNumber, false)

	err := PropertySchema{}.ValidateDefault(p, valueobjects.NewString("nope"))

	assert.True(t, errs.Is(err, errs.KindInvalidPropertyType))
}

func TestPropertySchema_ValidateAllowedValuesUpdate_CannotAddRetroactively(t *testing.T) {
	next := &entities.AllowedValues{Type: entities.AllowedValuesTypeList, Values: []valueobjects.TypedValue{valueobjects.NewString("A")}}

	err := PropertySchema{}.ValidateAllowedValuesUpdate(nil, next)

	assert.True(t, errs.Is(err, errs.KindInvalidAction))
}

func TestPropertySchema_ValidateAllowedValuesUpdate_CannotRemove(t *testing.T) {
	old := &entities.AllowedValues{Type: entities.AllowedValuesTypeList, Values: []valueobjects.TypedValue{valueobjects.NewString("A")}}

	err := PropertySchema{}.ValidateAllowedValuesUpdate(old, nil)

	assert.True(t, errs.Is(err, errs.KindInvalidAction))
}

func TestPropertySchema_ValidateAllowedValuesUpdate_CannotRemoveExistingEntry(t *testing.T) {
	old := &entities.AllowedValues{Type: entities.AllowedValuesTypeList, Values: []valueobjects.TypedValue{valueobjects.NewString("A"), valueobjects.NewString("B")}}
	next := &entities.AllowedValues{Type: entities.AllowedValuesTypeList, Values: []valueobjects.TypedValue{valueobjects.NewString("A")}}

	err := PropertySchema{}.ValidateAllowedValuesUpdate(old, next)

	assert.True(t, errs.Is(err, errs.KindInvalidAction))
}

func TestPropertySchema_ValidateAllowedValuesUpdate_AllowsGrowing(t *testing.T) {
	old := &entities.AllowedValues{Type: entities.AllowedValuesTypeList, Values: []valueobjects.TypedValue{valueobjects.NewString("A")}}
	next := &entities.AllowedValues{Type: entities.AllowedValuesTypeList, Values: []valueobjects.TypedValue{valueobjects.NewString("A"), valueobjects.NewString("B")}}

	err := PropertySchema{}.ValidateAllowedValuesUpdate(old, next)

	require.NoError(t, err)
}
