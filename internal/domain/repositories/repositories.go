// Package repositories defines the persistence-facing interfaces the
// application layer depends on. Concrete implementations live under
// internal/infrastructure/mongo; nothing above this package knows it is
// talking to MongoDB.
package repositories

import (
	"context"

	"github.com/facilityinv/catalogue-api/internal/domain/entities"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// TreeFilter expresses the list/filter semantics shared by catalogue
// categories and systems: RootsOnly means "roots only" (parent_id was the
// literal string "null"); otherwise ParentID == nil means "no filter" and a
// non-nil ParentID filters to that exact parent.
type TreeFilter struct {
	ParentID    *bson.ObjectID
	RootsOnly   bool
}

// CatalogueCategoryRepository persists the catalogue-category tree.
type CatalogueCategoryRepository interface {
	Create(ctx context.Context, c *entities.CatalogueCategory) error
	Get(ctx context.Context, id bson.ObjectID) (*entities.CatalogueCategory, error)
	List(ctx context.Context, filter TreeFilter) ([]*entities.CatalogueCategory, error)
	Update(ctx context.Context, c *entities.CatalogueCategory) error
	Delete(ctx context.Context, id bson.ObjectID) error
	CountBySiblingCode(ctx context.Context, parentID *bson.ObjectID, code string, excludeID *bson.ObjectID) (int64, error)
	CountChildCategories(ctx context.Context, parentID bson.ObjectID) (int64, error)
	Ancestors(ctx context.Context, id bson.ObjectID, maxDepth int) ([]*entities.CatalogueCategory, error)
	IsDescendant(ctx context.Context, ancestorID, candidateID bson.ObjectID) (bool, error)
	CountReferencingUnit(ctx context.Context, unitID bson.ObjectID) (int64, error)
}

// SystemRepository persists the system tree.
type SystemRepository interface {
	Create(ctx context.Context, s *entities.System) error
	Get(ctx context.Context, id bson.ObjectID) (*entities.System, error)
	List(ctx context.Context, filter TreeFilter) ([]*entities.System, error)
	Update(ctx context.Context, s *entities.System) error
	Delete(ctx context.Context, id bson.ObjectID) error
	CountBySiblingCode(ctx context.Context, parentID *bson.ObjectID, code string, excludeID *bson.ObjectID) (int64, error)
	CountChildSystems(ctx context.Context, parentID bson.ObjectID) (int64, error)
	Ancestors(ctx context.Context, id bson.ObjectID, maxDepth int) ([]*entities.System, error)
	IsDescendant(ctx context.Context, ancestorID, candidateID bson.ObjectID) (bool, error)
}

// CatalogueItemRepository persists catalogue items.
type CatalogueItemRepository interface {
	Create(ctx context.Context, ci *entities.CatalogueItem) error
	Get(ctx context.Context, id bson.ObjectID) (*entities.CatalogueItem, error)
	ListByCategory(ctx context.Context, categoryID bson.ObjectID) ([]*entities.CatalogueItem, error)
	Update(ctx context.Context, ci *entities.CatalogueItem) error
	Delete(ctx context.Context, id bson.ObjectID) error
	CountByCategory(ctx context.Context, categoryID bson.ObjectID) (int64, error)
	CountByManufacturer(ctx context.Context, manufacturerID bson.ObjectID) (int64, error)
}

// ItemRepository persists physical items.
type ItemRepository interface {
	Create(ctx context.Context, it *entities.Item) error
	Get(ctx context.Context, id bson.ObjectID) (*entities.Item, error)
	List(ctx context.Context, catalogueItemID, systemID *bson.ObjectID) ([]*entities.Item, error)
	Update(ctx context.Context, it *entities.Item) error
	Delete(ctx context.Context, id bson.ObjectID) error
	CountByCatalogueItem(ctx context.Context, catalogueItemID bson.ObjectID) (int64, error)
	CountBySystem(ctx context.Context, systemID bson.ObjectID) (int64, error)
	CountByUsageStatus(ctx context.Context, usageStatusID bson.ObjectID) (int64, error)
}

// UnitRepository persists the Unit dimension.
type UnitRepository interface {
	Create(ctx context.Context, u *entities.Unit) error
	Get(ctx context.Context, id bson.ObjectID) (*entities.Unit, error)
	List(ctx context.Context) ([]*entities.Unit, error)
	Delete(ctx context.Context, id bson.ObjectID) error
	CountByCode(ctx context.Context, code string) (int64, error)
}

// UsageStatusRepository persists the UsageStatus dimension.
type UsageStatusRepository interface {
	Create(ctx context.Context, u *entities.UsageStatus) error
	Get(ctx context.Context, id bson.ObjectID) (*entities.UsageStatus, error)
	List(ctx context.Context) ([]*entities.UsageStatus, error)
	Delete(ctx context.Context, id bson.ObjectID) error
	CountByCode(ctx context.Context, code string) (int64, error)
}

// ManufacturerRepository persists the Manufacturer dimension.
type ManufacturerRepository interface {
	Create(ctx context.Context, m *entities.Manufacturer) error
	Get(ctx context.Context, id bson.ObjectID) (*entities.Manufacturer, error)
	List(ctx context.Context) ([]*entities.Manufacturer, error)
	Update(ctx context.Context, m *entities.Manufacturer) error
	Delete(ctx context.Context, id bson.ObjectID) error
	CountByCode(ctx context.Context, code string) (int64, error)
}

// PropagationRunner executes the multi-collection write steps of the
// Property Propagation Coordinator's add-property and update-property
// operations (§4.3) inside a single multi-document transaction. Implemented by internal/infrastructure/mongo/txn.go.
type PropagationRunner interface {
	RunInTransaction(ctx context.Context, fn func(sessCtx context.Context) error) error
}
