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

func newLeafCategory(props ...entities.Property) *entities.CatalogueCategory {
	c := entities.NewCatalogueCategory("Cat", "cat", nil, true)
	c.Properties = props
	return c
}

func TestInstanceValidator_Validate_MissingMandatory_Absent(t *testing.T) {
	p := entities.NewProperty("Voltage", valueobjects.KindNumber, true)
	category := newLeafCategory(*p)

	_, err := InstanceValidator{}.Validate(category, nil)

	se, ok := errs.As(err)
	require.True(t, ok)
	assert.Equal(t, errs.KindMissingMandatoryProperty, se.Kind)
	assert.Contains(t, se.Message, "Missing mandatory property with ID")
	assert.NotContains(t, se.Message, "cannot be None")
}

func TestInstanceValidator_Validate_MissingMandatory_ExplicitNull(t *testing.T) {
	p := entities.NewProperty("Voltage", valueobjects.KindNumber, true)
	category := newLeafCategory(*p)

	_, err := InstanceValidator{}.Validate(category, []PropertyValueInput{
		{ID: p.ID, Value: valueobjects.Null()},
	})

	se, ok := errs.As(err)
	require.True(t, ok)
	assert.Equal(t, errs.KindMissingMandatoryProperty, se.Kind)
	assert.Contains(t, se.Message, "cannot be None")
	assert.NotContains(t, se.Message, "Missing mandatory property")
}

func TestInstanceValidator_Validate_OptionalOmitted_FillsNull(t *testing.T) {
	p := entities.NewProperty("Voltage", valueobjects.KindNumber, false)
	category := newLeafCategory(*p)

	values, err := InstanceValidator{}.Validate(category, nil)

	require.NoError(t, err)
	require.Len(t, values, 1)
	assert.True(t, values[0].Value.IsNull)
}

func TestInstanceValidator_Validate_WrongType(t *testing.T) {
	p := entities.NewProperty("Voltage", valueobjects.KindNumber, false)
	category := newLeafCategory(*p)

	_, err := InstanceValidator{}.Validate(category, []PropertyValueInput{
		{ID: p.ID, Value: valueobjects.NewString("not-a-number")},
	})

	assert.True(t, errs.Is(err, errs.KindInvalidPropertyType))
}

func TestInstanceValidator_Validate_DropsUnrecognizedID(t *testing.T) {
	p := entities.NewProperty("Voltage", valueobjects.KindNumber, false)
	category := newLeafCategory(*p)

	values, err := InstanceValidator{}.Validate(category, []PropertyValueInput{
		{ID: p.ID, Value: valueobjects.NewNumber(12)},
		{ID: bson.NewObjectID(), Value: valueobjects.NewString("ignored")},
	})

	require.NoError(t, err)
	require.Len(t, values, 1)
	assert.Equal(t, p.ID, values[0].ID)
}

func TestInstanceValidator_ValidateCategoryMove_NotSuppliedSameSchema(t *testing.T) {
	oldProp := entities.NewProperty("Length", valueobjects.KindNumber, true)
	oldCategory := newLeafCategory(*oldProp)

	newProp := entities.NewProperty("Length", valueobjects.KindNumber, true)
	newCategory := newLeafCategory(*newProp)

	existing := []entities.PropertyValue{
		entities.NewPropertyValueFromDefinition(oldProp, valueobjects.NewNumber(42)),
	}

	values, err := InstanceValidator{}.ValidateCategoryMove(oldCategory, newCategory, existing, nil, false)

	require.NoError(t, err)
	require.Len(t, values, 1)
	assert.Equal(t, newProp.ID, values[0].ID)
	assert.Equal(t, valueobjects.NewNumber(42), values[0].Value)
}

func TestInstanceValidator_ValidateCategoryMove_NotSuppliedDifferentSchema(t *testing.T) {
	oldProp := entities.NewProperty("Length", valueobjects.KindNumber, true)
	oldCategory := newLeafCategory(*oldProp)

	newProp := entities.NewProperty("Width", valueobjects.KindNumber, true)
	newCategory := newLeafCategory(*newProp)

	_, err := InstanceValidator{}.ValidateCategoryMove(oldCategory, newCategory, nil, nil, false)

	assert.True(t, errs.Is(err, errs.KindInvalidAction))
}

func TestInstanceValidator_ValidateCategoryMove_SuppliedMatchesNewSchema(t *testing.T) {
	oldProp := entities.NewProperty("Length", valueobjects.KindNumber, true)
	oldCategory := newLeafCategory(*oldProp)

	newProp := entities.NewProperty("Width", valueobjects.KindNumber, true)
	newCategory := newLeafCategory(*newProp)

	values, err := InstanceValidator{}.ValidateCategoryMove(oldCategory, newCategory, nil,
		[]PropertyValueInput{{ID: newProp.ID, Value: valueobjects.NewNumber(7)}}, true)

	require.NoError(t, err)
	require.Len(t, values, 1)
	assert.Equal(t, valueobjects.NewNumber(7), values[0].Value)
}

func TestInstanceValidator_ValidateCategoryMove_SuppliedMismatchedIDs(t *testing.T) {
	oldProp := entities.NewProperty("Length", valueobjects.KindNumber, true)
	oldCategory := newLeafCategory(*oldProp)

	newProp := entities.NewProperty("Width", valueobjects.KindNumber, true)
	newCategory := newLeafCategory(*newProp)

	_, err := InstanceValidator{}.ValidateCategoryMove(oldCategory, newCategory, nil,
		[]PropertyValueInput{{ID: bson.NewObjectID(), Value: valueobjects.NewNumber(7)}}, true)

	assert.True(t, errs.Is(err, errs.KindInvalidAction))
}
