package services

import (
	"context"
	"testing"

	"github.com/facilityinv/catalogue-api/internal/application/ports"
	"github.com/facilityinv/catalogue-api/internal/domain/entities"
	"github.com/facilityinv/catalogue-api/internal/domain/valueobjects"
	"github.com/facilityinv/catalogue-api/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func newCatalogueItemService(t *testing.T) (*CatalogueItemService, *mockCatalogueItemRepoForGuard, *mockCategoryRepoForGuard, *mockManufacturerRepo, *mockItemRepoForGuard) {
	t.Helper()
	catalogue := new(mockCatalogueItemRepoForGuard)
	categories := new(mockCategoryRepoForGuard)
	manufacturers := new(mockManufacturerRepo)
	items := new(mockItemRepoForGuard)
	svc := NewCatalogueItemService(catalogue, categories, manufacturers, items)
	return svc, catalogue, categories, manufacturers, items
}

func TestCatalogueItemService_Update_CategoryMove_NoPropertiesSuppliedSameSchema(t *testing.T) {
	svc, catalogue, categories, _, items := newCatalogueItemService(t)

	oldProp := entities.NewProperty("Length", valueobjects.KindNumber, true)
	oldCategory := entities.NewCatalogueCategory("Old", "old", nil, true)
	oldCategory.Properties = []entities.Property{*oldProp}

	newProp := entities.NewProperty("Length", valueobjects.KindNumber, true)
	newCategory := entities.NewCatalogueCategory("New", "new", nil, true)
	newCategory.Properties = []entities.Property{*newProp}

	ci := entities.NewCatalogueItem(oldCategory.ID, bson.NewObjectID(), "Widget")
	ci.Properties = []entities.PropertyValue{entities.NewPropertyValueFromDefinition(oldProp, valueobjects.NewNumber(99))}

	catalogue.On("Get", mock.Anything, ci.ID).Return(ci, nil)
	items.On("CountByCatalogueItem", mock.Anything, ci.ID).Return(int64(0), nil)
	categories.On("Get", mock.Anything, oldCategory.ID).Return(oldCategory, nil)
	categories.On("Get", mock.Anything, newCategory.ID).Return(newCategory, nil)
	catalogue.On("Update", mock.Anything, mock.Anything).Return(nil)

	updated, err := svc.Update(context.Background(), ci.ID, ports.UpdateCatalogueItemInput{
		CatalogueCategoryID: &newCategory.ID,
	})

	require.NoError(t, err)
	require.Len(t, updated.Properties, 1)
	assert.Equal(t, newProp.ID, updated.Properties[0].ID)
	assert.Equal(t, valueobjects.NewNumber(99), updated.Properties[0].Value)
}

func TestCatalogueItemService_Update_CategoryMove_NoPropertiesSuppliedDifferentSchema(t *testing.T) {
	svc, catalogue, categories, _, items := newCatalogueItemService(t)

	oldProp := entities.NewProperty("Length", valueobjects.KindNumber, true)
	oldCategory := entities.NewCatalogueCategory("Old", "old", nil, true)
	oldCategory.Properties = []entities.Property{*oldProp}

	newProp := entities.NewProperty("Width", valueobjects.KindNumber, true)
	newCategory := entities.NewCatalogueCategory("New", "new", nil, true)
	newCategory.Properties = []entities.Property{*newProp}

	ci := entities.NewCatalogueItem(oldCategory.ID, bson.NewObjectID(), "Widget")
	ci.Properties = []entities.PropertyValue{entities.NewPropertyValueFromDefinition(oldProp, valueobjects.NewNumber(99))}

	catalogue.On("Get", mock.Anything, ci.ID).Return(ci, nil)
	items.On("CountByCatalogueItem", mock.Anything, ci.ID).Return(int64(0), nil)
	categories.On("Get", mock.Anything, oldCategory.ID).Return(oldCategory, nil)
	categories.On("Get", mock.Anything, newCategory.ID).Return(newCategory, nil)

	_, err := svc.Update(context.Background(), ci.ID, ports.UpdateCatalogueItemInput{
		CatalogueCategoryID: &newCategory.ID,
	})

	assert.True(t, errs.Is(err, errs.KindInvalidAction))
	catalogue.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestCatalogueItemService_Update_CategoryMove_PropertiesExplicitlySupplied(t *testing.T) {
	svc, catalogue, categories, _, items := newCatalogueItemService(t)

	oldCategory := entities.NewCatalogueCategory("Old", "old", nil, true)
	newProp := entities.NewProperty("Width", valueobjects.KindNumber, true)
	newCategory := entities.NewCatalogueCategory("New", "new", nil, true)
	newCategory.Properties = []entities.Property{*newProp}

	ci := entities.NewCatalogueItem(oldCategory.ID, bson.NewObjectID(), "Widget")

	catalogue.On("Get", mock.Anything, ci.ID).Return(ci, nil)
	items.On("CountByCatalogueItem", mock.Anything, ci.ID).Return(int64(0), nil)
	categories.On("Get", mock.Anything, oldCategory.ID).Return(oldCategory, nil)
	categories.On("Get", mock.Anything, newCategory.ID).Return(newCategory, nil)
	catalogue.On("Update", mock.Anything, mock.Anything).Return(nil)

	updated, err := svc.Update(context.Background(), ci.ID, ports.UpdateCatalogueItemInput{
		CatalogueCategoryID: &newCategory.ID,
		Properties:          []ports.PropertyValueInput{{ID: newProp.ID, Value: valueobjects.NewNumber(5)}},
		PropertiesSet:       true,
	})

	require.NoError(t, err)
	require.Len(t, updated.Properties, 1)
	assert.Equal(t, valueobjects.NewNumber(5), updated.Properties[0].Value)
}

func TestCatalogueItemService_Update_LockedOnceItemsExist(t *testing.T) {
	svc, catalogue, _, manufacturers, items := newCatalogueItemService(t)
	_ = manufacturers

	ci := entities.NewCatalogueItem(bson.NewObjectID(), bson.NewObjectID(), "Widget")
	catalogue.On("Get", mock.Anything, ci.ID).Return(ci, nil)
	items.On("CountByCatalogueItem", mock.Anything, ci.ID).Return(int64(1), nil)

	newManufacturerID := bson.NewObjectID()
	_, err := svc.Update(context.Background(), ci.ID, ports.UpdateCatalogueItemInput{
		ManufacturerID: &newManufacturerID,
	})

	assert.True(t, errs.Is(err, errs.KindInvalidAction))
}

func TestCatalogueItemService_Create_RejectsNonLeafCategory(t *testing.T) {
	svc, _, categories, _, _ := newCatalogueItemService(t)

	category := entities.NewCatalogueCategory("Cat", "cat", nil, false)
	categories.On("Get", mock.Anything, category.ID).Return(category, nil)

	_, err := svc.Create(context.Background(), ports.CreateCatalogueItemInput{
		CatalogueCategoryID: category.ID,
		ManufacturerID:      bson.NewObjectID(),
		Name:                "Widget",
	})

	assert.True(t, errs.Is(err, errs.KindNonLeafCategoryForItem))
}
