package services

import (
	"context"
	"testing"

	"github.com/facilityinv/catalogue-api/internal/application/ports"
	"github.com/facilityinv/catalogue-api/internal/domain/entities"
	"github.com/facilityinv/catalogue-api/internal/domain/valueobjects"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCatalogueCategoryService(categories *mockCategoryRepoForGuard, units *mockUnitRepo) *CatalogueCategoryService {
	runner := inlineRunner{}
	coord := NewPropagationCoordinator(categories, nil, nil, units, runner)
	return NewCatalogueCategoryService(categories, units, coord)
}

func TestCatalogueCategoryService_Update_TurningNonLeaf_DiscardsSubmittedProperties(t *testing.T) {
	categories := new(mockCategoryRepoForGuard)
	units := new(mockUnitRepo)
	svc := newCatalogueCategoryService(categories, units)

	existingProp := entities.NewProperty("Length", valueobjects.KindNumber, false)
	category := entities.NewCatalogueCategory("Cat", "cat", nil, true)
	category.Properties = []entities.Property{*existingProp}

	categories.On("Get", mock.Anything, category.ID).Return(category, nil)
	categories.On("CountChildCategories", mock.Anything, category.ID).Return(int64(0), nil)
	categories.On("Update", mock.Anything, mock.Anything).Return(nil)

	isLeaf := false
	updated, err := svc.Update(context.Background(), category.ID, ports.UpdateCategoryInput{
		IsLeaf: &isLeaf,
		Properties: []ports.PropertyInput{
			{Name: "Width", Type: valueobjects.KindNumber},
		},
		PropertiesSet: true,
	})

	require.NoError(t, err)
	assert.False(t, updated.IsLeaf)
	assert.Empty(t, updated.Properties)
}

func TestCatalogueCategoryService_Update_LeafStaysLeaf_AppliesProperties(t *testing.T) {
	categories := new(mockCategoryRepoForGuard)
	units := new(mockUnitRepo)
	svc := newCatalogueCategoryService(categories, units)

	category := entities.NewCatalogueCategory("Cat", "cat", nil, true)

	categories.On("Get", mock.Anything, category.ID).Return(category, nil)
	categories.On("CountChildCategories", mock.Anything, category.ID).Return(int64(0), nil)
	categories.On("Update", mock.Anything, mock.Anything).Return(nil)

	updated, err := svc.Update(context.Background(), category.ID, ports.UpdateCategoryInput{
		Properties: []ports.PropertyInput{
			{Name: "Width", Type: valueobjects.KindNumber},
		},
		PropertiesSet: true,
	})

	require.NoError(t, err)
	require.Len(t, updated.Properties, 1)
	assert.Equal(t, "Width", updated.Properties[0].Name)
}

func TestCatalogueCategoryService_Update_AlreadyNonLeaf_NoPropertiesSubmitted(t *testing.T) {
	categories := new(mockCategoryRepoForGuard)
	units := new(mockUnitRepo)
	svc := newCatalogueCategoryService(categories, units)

	category := entities.NewCatalogueCategory("Cat", "cat", nil, false)
	newName := "Renamed"

	categories.On("Get", mock.Anything, category.ID).Return(category, nil)
	categories.On("CountBySiblingCode", mock.Anything, category.ParentID, "renamed", &category.ID).Return(int64(0), nil)
	categories.On("Update", mock.Anything, mock.Anything).Return(nil)

	updated, err := svc.Update(context.Background(), category.ID, ports.UpdateCategoryInput{
		Name: &newName,
	})

	require.NoError(t, err)
	assert.Empty(t, updated.Properties)
}
