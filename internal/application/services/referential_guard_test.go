package services

import (
	"context"
	"testing"

	"github.com/facilityinv/catalogue-api/internal/domain/entities"
	"github.com/facilityinv/catalogue-api/internal/domain/repositories"
	"github.com/facilityinv/catalogue-api/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

type mockCategoryRepoForGuard struct{ mock.Mock }

func (m *mockCategoryRepoForGuard) Create(ctx context.Context, c *entities.CatalogueCategory) error {
	return m.Called(ctx, c).Error(0)
}
func (m *mockCategoryRepoForGuard) Get(ctx context.Context, id bson.ObjectID) (*entities.CatalogueCategory, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*entities.CatalogueCategory)
	return c, args.Error(1)
}
func (m *mockCategoryRepoForGuard) List(ctx context.Context, filter repositories.TreeFilter) ([]*entities.CatalogueCategory, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*entities.CatalogueCategory), args.Error(1)
}
func (m *mockCategoryRepoForGuard) Update(ctx context.Context, c *entities.CatalogueCategory) error {
	return m.Called(ctx, c).Error(0)
}
func (m *mockCategoryRepoForGuard) Delete(ctx context.Context, id bson.ObjectID) error {
	return m.Called(ctx, id).Error(0)
}
func (m *mockCategoryRepoForGuard) CountBySiblingCode(ctx context.Context, parentID *bson.ObjectID, code string, excludeID *bson.ObjectID) (int64, error) {
	args := m.Called(ctx, parentID, code, excludeID)
	return args.Get(0).(int64), args.Error(1)
}
func (m *mockCategoryRepoForGuard) CountChildCategories(ctx context.Context, parentID bson.ObjectID) (int64, error) {
	args := m.Called(ctx, parentID)
	return args.Get(0).(int64), args.Error(1)
}
func (m *mockCategoryRepoForGuard) Ancestors(ctx context.Context, id bson.ObjectID, maxDepth int) ([]*entities.CatalogueCategory, error) {
	args := m.Called(ctx, id, maxDepth)
	return args.Get(0).([]*entities.CatalogueCategory), args.Error(1)
}
func (m *mockCategoryRepoForGuard) IsDescendant(ctx context.Context, ancestorID, candidateID bson.ObjectID) (bool, error) {
	args := m.Called(ctx, ancestorID, candidateID)
	return args.Bool(0), args.Error(1)
}
func (m *mockCategoryRepoForGuard) CountReferencingUnit(ctx context.Context, unitID bson.ObjectID) (int64, error) {
	args := m.Called(ctx, unitID)
	return args.Get(0).(int64), args.Error(1)
}

type mockItemRepoForGuard struct{ mock.Mock }

func (m *mockItemRepoForGuard) Create(ctx context.Context, it *entities.Item) error {
	return m.Called(ctx, it).Error(0)
}
func (m *mockItemRepoForGuard) Get(ctx context.Context, id bson.ObjectID) (*entities.Item, error) {
	args := m.Called(ctx, id)
	it, _ := args.Get(0).(*entities.Item)
	return it, args.Error(1)
}
func (m *mockItemRepoForGuard) List(ctx context.Context, catalogueItemID, systemID *bson.ObjectID) ([]*entities.Item, error) {
	args := m.Called(ctx, catalogueItemID, systemID)
	return args.Get(0).([]*entities.Item), args.Error(1)
}
func (m *mockItemRepoForGuard) Update(ctx context.Context, it *entities.Item) error {
	return m.Called(ctx, it).Error(0)
}
func (m *mockItemRepoForGuard) Delete(ctx context.Context, id bson.ObjectID) error {
	return m.Called(ctx, id).Error(0)
}
func (m *mockItemRepoForGuard) CountByCatalogueItem(ctx context.Context, catalogueItemID bson.ObjectID) (int64, error) {
	args := m.Called(ctx, catalogueItemID)
	return args.Get(0).(int64), args.Error(1)
}
func (m *mockItemRepoForGuard) CountBySystem(ctx context.Context, systemID bson.ObjectID) (int64, error) {
	args := m.Called(ctx, systemID)
	return args.Get(0).(int64), args.Error(1)
}
func (m *mockItemRepoForGuard) CountByUsageStatus(ctx context.Context, usageStatusID bson.ObjectID) (int64, error) {
	args := m.Called(ctx, usageStatusID)
	return args.Get(0).(int64), args.Error(1)
}

type mockCatalogueItemRepoForGuard struct{ mock.Mock }

func (m *mockCatalogueItemRepoForGuard) Create(ctx context.Context, ci *entities.CatalogueItem) error {
	return m.Called(ctx, ci).Error(0)
}
func (m *mockCatalogueItemRepoForGuard) Get(ctx context.Context, id bson.ObjectID) (*entities.CatalogueItem, error) {
	args := m.Called(ctx, id)
	ci, _ := args.Get(0).(*entities.CatalogueItem)
	return ci, args.Error(1)
}
func (m *mockCatalogueItemRepoForGuard) ListByCategory(ctx context.Context, categoryID bson.ObjectID) ([]*entities.CatalogueItem, error) {
	args := m.Called(ctx, categoryID)
	return args.Get(0).([]*entities.CatalogueItem), args.Error(1)
}
func (m *mockCatalogueItemRepoForGuard) Update(ctx context.Context, ci *entities.CatalogueItem) error {
	return m.Called(ctx, ci).Error(0)
}
func (m *mockCatalogueItemRepoForGuard) Delete(ctx context.Context, id bson.ObjectID) error {
	return m.Called(ctx, id).Error(0)
}
func (m *mockCatalogueItemRepoForGuard) CountByCategory(ctx context.Context, categoryID bson.ObjectID) (int64, error) {
	args := m.Called(ctx, categoryID)
	return args.Get(0).(int64), args.Error(1)
}
func (m *mockCatalogueItemRepoForGuard) CountByManufacturer(ctx context.Context, manufacturerID bson.ObjectID) (int64, error) {
	args := m.Called(ctx, manufacturerID)
	return args.Get(0).(int64), args.Error(1)
}

func TestReferentialGuard_CheckUnit_Referenced(t *testing.T) {
	categories := new(mockCategoryRepoForGuard)
	unitID := bson.NewObjectID()
	categories.On("CountReferencingUnit", mock.Anything, unitID).Return(int64(1), nil)
	guard := NewReferentialGuard(categories, nil, nil)

	err := guard.CheckUnit(context.Background(), unitID)

	assert.True(t, errs.Is(err, errs.KindPartOfCategory))
}

func TestReferentialGuard_CheckUnit_Unreferenced(t *testing.T) {
	categories := new(mockCategoryRepoForGuard)
	unitID := bson.NewObjectID()
	categories.On("CountReferencingUnit", mock.Anything, unitID).Return(int64(0), nil)
	guard := NewReferentialGuard(categories, nil, nil)

	err := guard.CheckUnit(context.Background(), unitID)

	require.NoError(t, err)
}

func TestReferentialGuard_CheckUsageStatus_Referenced(t *testing.T) {
	items := new(mockItemRepoForGuard)
	usageStatusID := bson.NewObjectID()
	items.On("CountByUsageStatus", mock.Anything, usageStatusID).Return(int64(2), nil)
	guard := NewReferentialGuard(nil, items, nil)

	err := guard.CheckUsageStatus(context.Background(), usageStatusID)

	assert.True(t, errs.Is(err, errs.KindPartOfItem))
}

func TestReferentialGuard_CheckManufacturer_Referenced(t *testing.T) {
	catalogue := new(mockCatalogueItemRepoForGuard)
	manufacturerID := bson.NewObjectID()
	catalogue.On("CountByManufacturer", mock.Anything, manufacturerID).Return(int64(1), nil)
	guard := NewReferentialGuard(nil, nil, catalogue)

	err := guard.CheckManufacturer(context.Background(), manufacturerID)

	assert.True(t, errs.Is(err, errs.KindPartOfCatalogueItem))
}
