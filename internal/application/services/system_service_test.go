package services

import (
	"context"
	"testing"

	"github.com/facilityinv/catalogue-api/internal/application/ports"
	"github.com/facilityinv/catalogue-api/internal/domain/entities"
	"github.com/facilityinv/catalogue-api/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestSystemService_Create_InvalidImportance(t *testing.T) {
	systems := new(mockSystemRepo)
	svc := NewSystemService(systems)

	_, err := svc.Create(context.Background(), ports.CreateSystemInput{Name: "Sys", Importance: entities.Importance("urgent")})

	assert.True(t, errs.Is(err, errs.KindInvalidAction))
}

func TestSystemService_Create_DuplicateCode(t *testing.T) {
	systems := new(mockSystemRepo)
	systems.On("CountBySiblingCode", mock.Anything, (*bson.ObjectID)(nil), "sys", (*bson.ObjectID)(nil)).Return(int64(1), nil)
	svc := NewSystemService(systems)

	_, err := svc.Create(context.Background(), ports.CreateSystemInput{Name: "Sys", Importance: entities.ImportanceLow})

	assert.True(t, errs.Is(err, errs.KindDuplicate))
}

func TestSystemService_Update_MoveIntoOwnSubtreeRejected(t *testing.T) {
	systems := new(mockSystemRepo)
	svc := NewSystemService(systems)

	system := entities.NewSystem("Sys", "sys", nil, entities.ImportanceLow)
	destID := bson.NewObjectID()
	destination := entities.NewSystem("Dest", "dest", nil, entities.ImportanceLow)
	destination.ID = destID

	systems.On("Get", mock.Anything, system.ID).Return(system, nil)
	systems.On("Get", mock.Anything, destID).Return(destination, nil)
	systems.On("IsDescendant", mock.Anything, system.ID, destID).Return(true, nil)

	_, err := svc.Update(context.Background(), system.ID, ports.UpdateSystemInput{
		ParentID:  &destID,
		ParentSet: true,
	})

	assert.True(t, errs.Is(err, errs.KindInvalidAction))
}

func TestSystemService_Update_RenameRecomputesCode(t *testing.T) {
	systems := new(mockSystemRepo)
	svc := NewSystemService(systems)

	system := entities.NewSystem("Sys", "sys", nil, entities.ImportanceLow)
	newName := "Renamed System"

	systems.On("Get", mock.Anything, system.ID).Return(system, nil)
	systems.On("CountBySiblingCode", mock.Anything, system.ParentID, "renamed-system", &system.ID).Return(int64(0), nil)
	systems.On("Update", mock.Anything, mock.Anything).Return(nil)

	updated, err := svc.Update(context.Background(), system.ID, ports.UpdateSystemInput{Name: &newName})

	require.NoError(t, err)
	assert.Equal(t, "renamed-system", updated.Code)
}

func TestSystemService_Breadcrumbs_DelegatesToBreadcrumbBuild(t *testing.T) {
	systems := new(mockSystemRepo)
	svc := NewSystemService(systems)

	root := entities.NewSystem("Root", "root", nil, entities.ImportanceLow)
	systems.On("Ancestors", mock.Anything, root.ID, mock.Anything).Return([]*entities.System{root}, nil)

	trail, err := svc.Breadcrumbs(context.Background(), root.ID)

	require.NoError(t, err)
	assert.True(t, trail.FullTrail)
	require.Len(t, trail.Trail, 1)
	assert.Equal(t, "Root", trail.Trail[0].Name)
}
