package services

import (
	"context"
	"testing"

	"github.com/facilityinv/catalogue-api/internal/application/ports"
	"github.com/facilityinv/catalogue-api/internal/domain/entities"
	"github.com/facilityinv/catalogue-api/internal/domain/repositories"
	"github.com/facilityinv/catalogue-api/internal/domain/valueobjects"
	"github.com/facilityinv/catalogue-api/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

type mockSystemRepo struct{ mock.Mock }

func (m *mockSystemRepo) Create(ctx context.Context, s *entities.System) error {
	return m.Called(ctx, s).Error(0)
}
func (m *mockSystemRepo) Get(ctx context.Context, id bson.ObjectID) (*entities.System, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*entities.System)
	return s, args.Error(1)
}
func (m *mockSystemRepo) List(ctx context.Context, filter repositories.TreeFilter) ([]*entities.System, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*entities.System), args.Error(1)
}
func (m *mockSystemRepo) Update(ctx context.Context, s *entities.System) error {
	return m.Called(ctx, s).Error(0)
}
func (m *mockSystemRepo) Delete(ctx context.Context, id bson.ObjectID) error {
	return m.Called(ctx, id).Error(0)
}
func (m *mockSystemRepo) CountBySiblingCode(ctx context.Context, parentID *bson.ObjectID, code string, excludeID *bson.ObjectID) (int64, error) {
	args := m.Called(ctx, parentID, code, excludeID)
	return args.Get(0).(int64), args.Error(1)
}
func (m *mockSystemRepo) CountChildSystems(ctx context.Context, parentID bson.ObjectID) (int64, error) {
	args := m.Called(ctx, parentID)
	return args.Get(0).(int64), args.Error(1)
}
func (m *mockSystemRepo) Ancestors(ctx context.Context, id bson.ObjectID, maxDepth int) ([]*entities.System, error) {
	args := m.Called(ctx, id, maxDepth)
	return args.Get(0).([]*entities.System), args.Error(1)
}
func (m *mockSystemRepo) IsDescendant(ctx context.Context, ancestorID, candidateID bson.ObjectID) (bool, error) {
	args := m.Called(ctx, ancestorID, candidateID)
	return args.Bool(0), args.Error(1)
}

type mockUsageStatusRepo struct{ mock.Mock }

func (m *mockUsageStatusRepo) Create(ctx context.Context, u *entities.UsageStatus) error {
	return m.Called(ctx, u).Error(0)
}
func (m *mockUsageStatusRepo) Get(ctx context.Context, id bson.ObjectID) (*entities.UsageStatus, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*entities.UsageStatus)
	return u, args.Error(1)
}
func (m *mockUsageStatusRepo) List(ctx context.Context) ([]*entities.UsageStatus, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*entities.UsageStatus), args.Error(1)
}
func (m *mockUsageStatusRepo) Delete(ctx context.Context, id bson.ObjectID) error {
	return m.Called(ctx, id).Error(0)
}
func (m *mockUsageStatusRepo) CountByCode(ctx context.Context, code string) (int64, error) {
	args := m.Called(ctx, code)
	return args.Get(0).(int64), args.Error(1)
}

func newItemService() (*ItemService, *mockItemRepoForGuard, *mockCatalogueItemRepoForGuard, *mockSystemRepo, *mockUsageStatusRepo, *mockCategoryRepoForGuard) {
	items := new(mockItemRepoForGuard)
	catalogue := new(mockCatalogueItemRepoForGuard)
	systems := new(mockSystemRepo)
	usageStatuses := new(mockUsageStatusRepo)
	categories := new(mockCategoryRepoForGuard)
	svc := NewItemService(items, catalogue, systems, usageStatuses, categories)
	return svc, items, catalogue, systems, usageStatuses, categories
}

func TestItemService_Create_MandatoryPropertyExplicitNull(t *testing.T) {
	svc, _, catalogue, systems, usageStatuses, categories := newItemService()

	prop := entities.NewProperty("Voltage", valueobjects.KindNumber, true)
	category := entities.NewCatalogueCategory("Cat", "cat", nil, true)
	category.Properties = []entities.Property{*prop}

	ci := entities.NewCatalogueItem(category.ID, bson.NewObjectID(), "Widget")
	system := entities.NewSystem("Sys", "sys", nil, entities.ImportanceLow)
	usageStatus := entities.NewUsageStatus("New", "new")

	catalogue.On("Get", mock.Anything, ci.ID).Return(ci, nil)
	systems.On("Get", mock.Anything, system.ID).Return(system, nil)
	usageStatuses.On("Get", mock.Anything, usageStatus.ID).Return(usageStatus, nil)
	categories.On("Get", mock.Anything, category.ID).Return(category, nil)

	_, err := svc.Create(context.Background(), ports.CreateItemInput{
		CatalogueItemID: ci.ID,
		SystemID:        system.ID,
		UsageStatusID:   usageStatus.ID,
		Properties:      []ports.PropertyValueInput{{ID: prop.ID, Value: valueobjects.Null()}},
	})

	se, ok := errs.As(err)
	require.True(t, ok)
	assert.Equal(t, errs.KindMissingMandatoryProperty, se.Kind)
	assert.Contains(t, se.Message, "cannot be None")
}

func TestItemService_Create_MandatoryPropertyOmitted(t *testing.T) {
	svc, _, catalogue, systems, usageStatuses, categories := newItemService()

	prop := entities.NewProperty("Voltage", valueobjects.KindNumber, true)
	category := entities.NewCatalogueCategory("Cat", "cat", nil, true)
	category.Properties = []entities.Property{*prop}

	ci := entities.NewCatalogueItem(category.ID, bson.NewObjectID(), "Widget")
	system := entities.NewSystem("Sys", "sys", nil, entities.ImportanceLow)
	usageStatus := entities.NewUsageStatus("New", "new")

	catalogue.On("Get", mock.Anything, ci.ID).Return(ci, nil)
	systems.On("Get", mock.Anything, system.ID).Return(system, nil)
	usageStatuses.On("Get", mock.Anything, usageStatus.ID).Return(usageStatus, nil)
	categories.On("Get", mock.Anything, category.ID).Return(category, nil)

	_, err := svc.Create(context.Background(), ports.CreateItemInput{
		CatalogueItemID: ci.ID,
		SystemID:        system.ID,
		UsageStatusID:   usageStatus.ID,
	})

	se, ok := errs.As(err)
	require.True(t, ok)
	assert.Equal(t, errs.KindMissingMandatoryProperty, se.Kind)
	assert.Contains(t, se.Message, "Missing mandatory property")
	assert.NotContains(t, se.Message, "cannot be None")
}

func TestItemService_Get_MergesInheritedProperties(t *testing.T) {
	svc, items, catalogue, _, _, _ := newItemService()

	prop := entities.NewProperty("Voltage", valueobjects.KindNumber, false)
	ci := entities.NewCatalogueItem(bson.NewObjectID(), bson.NewObjectID(), "Widget")
	ci.Properties = []entities.PropertyValue{entities.NewPropertyValueFromDefinition(prop, valueobjects.NewNumber(9))}

	it := entities.NewItem(ci.ID, bson.NewObjectID(), bson.NewObjectID(), "New")

	items.On("Get", mock.Anything, it.ID).Return(it, nil)
	catalogue.On("Get", mock.Anything, ci.ID).Return(ci, nil)

	got, err := svc.Get(context.Background(), it.ID)

	require.NoError(t, err)
	require.Len(t, got.Properties, 1)
	assert.Equal(t, valueobjects.NewNumber(9), got.Properties[0].Value)
}

func TestItemService_Get_OwnValueOverridesInherited(t *testing.T) {
	svc, items, catalogue, _, _, _ := newItemService()

	prop := entities.NewProperty("Voltage", valueobjects.KindNumber, false)
	ci := entities.NewCatalogueItem(bson.NewObjectID(), bson.NewObjectID(), "Widget")
	ci.Properties = []entities.PropertyValue{entities.NewPropertyValueFromDefinition(prop, valueobjects.NewNumber(9))}

	it := entities.NewItem(ci.ID, bson.NewObjectID(), bson.NewObjectID(), "New")
	it.Properties = []entities.PropertyValue{entities.NewPropertyValueFromDefinition(prop, valueobjects.NewNumber(42))}

	items.On("Get", mock.Anything, it.ID).Return(it, nil)
	catalogue.On("Get", mock.Anything, ci.ID).Return(ci, nil)

	got, err := svc.Get(context.Background(), it.ID)

	require.NoError(t, err)
	require.Len(t, got.Properties, 1)
	assert.Equal(t, valueobjects.NewNumber(42), got.Properties[0].Value)
}
