package services

import (
	"context"

	"github.com/facilityinv/catalogue-api/internal/application/ports"
	"github.com/facilityinv/catalogue-api/internal/domain/entities"
	"github.com/facilityinv/catalogue-api/internal/domain/repositories"
	"github.com/facilityinv/catalogue-api/internal/errs"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// ItemService orchestrates physical-item CRUD. Items supply overrides only;
// reads merge the parent catalogue item's PropertyValues underneath the
// item's own before returning, one layer deep.
type ItemService struct {
	items         repositories.ItemRepository
	catalogue     repositories.CatalogueItemRepository
	systems       repositories.SystemRepository
	usageStatuses repositories.UsageStatusRepository
	categories    repositories.CatalogueCategoryRepository
	validator     *InstanceValidator
}

// NewItemService constructs an ItemService.
func NewItemService(
	items repositories.ItemRepository,
	catalogue repositories.CatalogueItemRepository,
	systems repositories.SystemRepository,
	usageStatuses repositories.UsageStatusRepository,
	categories repositories.CatalogueCategoryRepository,
) *ItemService {
	return &ItemService{
		items:         items,
		catalogue:     catalogue,
		systems:       systems,
		usageStatuses: usageStatuses,
		categories:    categories,
		validator:     NewInstanceValidator(),
	}
}

var _ ports.ItemService = (*ItemService)(nil)

// withInherited returns a copy of it whose Properties have been merged on
// top of its parent catalogue item's Properties (read-time inheritance;
// never persisted).
func (s *ItemService) withInherited(ctx context.Context, it *entities.Item) (*entities.Item, error) {
	parent, err := s.catalogue.Get(ctx, it.CatalogueItemID)
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, errs.New(errs.KindDatabaseIntegrity, "catalogue item %s referenced by item %s no longer exists", it.CatalogueItemID.Hex(), it.ID.Hex())
	}
	merged := *it
	merged.Properties = entities.MergeInherited(parent.Properties, it.Properties)
	return &merged, nil
}

// Create validates and inserts a new item.
func (s *ItemService) Create(ctx context.Context, in ports.CreateItemInput) (*entities.Item, error) {
	catalogueItem, err := s.catalogue.Get(ctx, in.CatalogueItemID)
	if err != nil {
		return nil, err
	}
	if catalogueItem == nil {
		return nil, errs.Missing("catalogue item", in.CatalogueItemID.Hex())
	}

	system, err := s.systems.Get(ctx, in.SystemID)
	if err != nil {
		return nil, err
	}
	if system == nil {
		return nil, errs.Missing("system", in.SystemID.Hex())
	}

	usageStatus, err := s.usageStatuses.Get(ctx, in.UsageStatusID)
	if err != nil {
		return nil, err
	}
	if usageStatus == nil {
		return nil, errs.Missing("usage status", in.UsageStatusID.Hex())
	}

	category, err := s.categories.Get(ctx, catalogueItem.CatalogueCategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, errs.New(errs.KindDatabaseIntegrity, "catalogue category %s referenced by catalogue item %s no longer exists", catalogueItem.CatalogueCategoryID.Hex(), catalogueItem.ID.Hex())
	}

	values, err := s.validator.Validate(category, toValidatorInputs(in.Properties))
	if err != nil {
		return nil, err
	}

	item := entities.NewItem(in.CatalogueItemID, in.SystemID, in.UsageStatusID, usageStatus.Value)
	item.PurchaseOrderNumber = in.PurchaseOrderNumber
	item.WarrantyEndDate = in.WarrantyEndDate
	item.AssetNumber = in.AssetNumber
	item.SerialNumber = in.SerialNumber
	item.DeliveredDate = in.DeliveredDate
	item.IsDefective = in.IsDefective
	item.Notes = in.Notes
	item.Properties = values

	if err := s.items.Create(ctx, item); err != nil {
		return nil, err
	}
	return s.withInherited(ctx, item)
}

// Get fetches an item by id, with inherited properties merged in.
func (s *ItemService) Get(ctx context.Context, id bson.ObjectID) (*entities.Item, error) {
	it, err := s.items.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if it == nil {
		return nil, errs.Missing("item", id.Hex())
	}
	return s.withInherited(ctx, it)
}

// List returns items matching the given catalogue-item/system filters, with
// inherited properties merged in.
func (s *ItemService) List(ctx context.Context, catalogueItemID, systemID *bson.ObjectID) ([]*entities.Item, error) {
	items, err := s.items.List(ctx, catalogueItemID, systemID)
	if err != nil {
		return nil, err
	}
	out := make([]*entities.Item, 0, len(items))
	for _, it := range items {
		merged, err := s.withInherited(ctx, it)
		if err != nil {
			return nil, err
		}
		out = append(out, merged)
	}
	return out, nil
}

// Delete removes an item.
func (s *ItemService) Delete(ctx context.Context, id bson.ObjectID) error {
	it, err := s.items.Get(ctx, id)
	if err != nil {
		return err
	}
	if it == nil {
		return errs.Missing("item", id.Hex())
	}
	return s.items.Delete(ctx, id)
}

// Update applies a partial update to an item. catalogue_item_id is
// immutable once an item exists (the spec's "cannot change
// catalogue_item_id of an item" invariant); it is deliberately absent from
// UpdateItemInput.
func (s *ItemService) Update(ctx context.Context, id bson.ObjectID, patch ports.UpdateItemInput) (*entities.Item, error) {
	it, err := s.items.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if it == nil {
		return nil, errs.Missing("item", id.Hex())
	}

	if patch.SystemID != nil {
		system, err := s.systems.Get(ctx, *patch.SystemID)
		if err != nil {
			return nil, err
		}
		if system == nil {
			return nil, errs.Missing("system", patch.SystemID.Hex())
		}
		it.SystemID = *patch.SystemID
	}

	if patch.UsageStatusID != nil {
		usageStatus, err := s.usageStatuses.Get(ctx, *patch.UsageStatusID)
		if err != nil {
			return nil, err
		}
		if usageStatus == nil {
			return nil, errs.Missing("usage status", patch.UsageStatusID.Hex())
		}
		it.UsageStatusID = *patch.UsageStatusID
		it.UsageStatus = usageStatus.Value
	}

	if patch.PropertiesSet {
		catalogueItem, err := s.catalogue.Get(ctx, it.CatalogueItemID)
		if err != nil {
			return nil, err
		}
		if catalogueItem == nil {
			return nil, errs.New(errs.KindDatabaseIntegrity, "catalogue item %s referenced by item %s no longer exists", it.CatalogueItemID.Hex(), it.ID.Hex())
		}
		category, err := s.categories.Get(ctx, catalogueItem.CatalogueCategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, errs.New(errs.KindDatabaseIntegrity, "catalogue category %s referenced by catalogue item %s no longer exists", catalogueItem.CatalogueCategoryID.Hex(), catalogueItem.ID.Hex())
		}
		values, err := s.validator.Validate(category, toValidatorInputs(patch.Properties))
		if err != nil {
			return nil, err
		}
		it.Properties = values
	}

	if patch.PurchaseOrderNumber != nil {
		it.PurchaseOrderNumber = patch.PurchaseOrderNumber
	}
	if patch.WarrantyEndDate != nil {
		it.WarrantyEndDate = patch.WarrantyEndDate
	}
	if patch.AssetNumber != nil {
		it.AssetNumber = patch.AssetNumber
	}
	if patch.SerialNumber != nil {
		it.SerialNumber = patch.SerialNumber
	}
	if patch.DeliveredDate != nil {
		it.DeliveredDate = patch.DeliveredDate
	}
	if patch.IsDefective != nil {
		it.IsDefective = *patch.IsDefective
	}
	if patch.Notes != nil {
		it.Notes = patch.Notes
	}

	it.Touch()
	if err := s.items.Update(ctx, it); err != nil {
		return nil, err
	}
	return s.withInherited(ctx, it)
}
