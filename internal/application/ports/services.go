package ports

import (
	"context"

	"github.com/facilityinv/catalogue-api/internal/domain/entities"
	"github.com/facilityinv/catalogue-api/internal/helper/breadcrumb"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// CatalogueCategoryService is the application-facing port for catalogue
// category operations, implemented by services.CatalogueCategoryService and
// consumed by internal/http/controllers.
type CatalogueCategoryService interface {
	Create(ctx context.Context, in CreateCategoryInput) (*entities.CatalogueCategory, error)
	Get(ctx context.Context, id bson.ObjectID) (*entities.CatalogueCategory, error)
	List(ctx context.Context, parentID *bson.ObjectID, rootsOnly bool) ([]*entities.CatalogueCategory, error)
	Update(ctx context.Context, id bson.ObjectID, patch UpdateCategoryInput) (*entities.CatalogueCategory, error)
	Delete(ctx context.Context, id bson.ObjectID) error
	Breadcrumbs(ctx context.Context, id bson.ObjectID) (*breadcrumb.Trail, error)
	AddProperty(ctx context.Context, categoryID bson.ObjectID, in PropertyInput, defaultValue *PropertyValueInput) (*entities.CatalogueCategory, error)
	UpdateProperty(ctx context.Context, categoryID, propertyID bson.ObjectID, patch PropertyPatch) (*entities.CatalogueCategory, error)
}

// SystemService is the application-facing port for system-tree operations.
type SystemService interface {
	Create(ctx context.Context, in CreateSystemInput) (*entities.System, error)
	Get(ctx context.Context, id bson.ObjectID) (*entities.System, error)
	List(ctx context.Context, parentID *bson.ObjectID, rootsOnly bool) ([]*entities.System, error)
	Update(ctx context.Context, id bson.ObjectID, patch UpdateSystemInput) (*entities.System, error)
	Delete(ctx context.Context, id bson.ObjectID) error
	Breadcrumbs(ctx context.Context, id bson.ObjectID) (*breadcrumb.Trail, error)
}

// CatalogueItemService is the application-facing port for catalogue items.
type CatalogueItemService interface {
	Create(ctx context.Context, in CreateCatalogueItemInput) (*entities.CatalogueItem, error)
	Get(ctx context.Context, id bson.ObjectID) (*entities.CatalogueItem, error)
	ListByCategory(ctx context.Context, categoryID bson.ObjectID) ([]*entities.CatalogueItem, error)
	Update(ctx context.Context, id bson.ObjectID, patch UpdateCatalogueItemInput) (*entities.CatalogueItem, error)
	Delete(ctx context.Context, id bson.ObjectID) error
}

// ItemService is the application-facing port for physical items.
type ItemService interface {
	Create(ctx context.Context, in CreateItemInput) (*entities.Item, error)
	Get(ctx context.Context, id bson.ObjectID) (*entities.Item, error)
	List(ctx context.Context, catalogueItemID, systemID *bson.ObjectID) ([]*entities.Item, error)
	Update(ctx context.Context, id bson.ObjectID, patch UpdateItemInput) (*entities.Item, error)
	Delete(ctx context.Context, id bson.ObjectID) error
}

// UnitService is the application-facing port for the Unit dimension.
type UnitService interface {
	Create(ctx context.Context, value string) (*entities.Unit, error)
	Get(ctx context.Context, id bson.ObjectID) (*entities.Unit, error)
	List(ctx context.Context) ([]*entities.Unit, error)
	Delete(ctx context.Context, id bson.ObjectID) error
}

// UsageStatusService is the application-facing port for the UsageStatus
// dimension.
type UsageStatusService interface {
	Create(ctx context.Context, value string) (*entities.UsageStatus, error)
	Get(ctx context.Context, id bson.ObjectID) (*entities.UsageStatus, error)
	List(ctx context.Context) ([]*entities.UsageStatus, error)
	Delete(ctx context.Context, id bson.ObjectID) error
}

// ManufacturerInput is the inbound shape for creating/updating a
// manufacturer.
type ManufacturerInput struct {
	Name    string
	URL     *string
	Address *string
}

// ManufacturerService is the application-facing port for the Manufacturer
// dimension.
type ManufacturerService interface {
	Create(ctx context.Context, in ManufacturerInput) (*entities.Manufacturer, error)
	Get(ctx context.Context, id bson.ObjectID) (*entities.Manufacturer, error)
	List(ctx context.Context) ([]*entities.Manufacturer, error)
	Update(ctx context.Context, id bson.ObjectID, in ManufacturerInput) (*entities.Manufacturer, error)
	Delete(ctx context.Context, id bson.ObjectID) error
}
