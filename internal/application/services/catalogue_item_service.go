package services

import (
	"context"

	"github.com/facilityinv/catalogue-api/internal/application/ports"
	"github.com/facilityinv/catalogue-api/internal/domain/entities"
	"github.com/facilityinv/catalogue-api/internal/domain/repositories"
	"github.com/facilityinv/catalogue-api/internal/errs"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// CatalogueItemService orchestrates catalogue-item CRUD: resolving the
// governing leaf category, running the Instance Validator against its
// Property schema, and enforcing the child-element lockouts once an item
// exists under a catalogue item.
type CatalogueItemService struct {
	catalogue     repositories.CatalogueItemRepository
	categories    repositories.CatalogueCategoryRepository
	manufacturers repositories.ManufacturerRepository
	items         repositories.ItemRepository
	validator     *InstanceValidator
}

// NewCatalogueItemService constructs a CatalogueItemService.
func NewCatalogueItemService(
	catalogue repositories.CatalogueItemRepository,
	categories repositories.CatalogueCategoryRepository,
	manufacturers repositories.ManufacturerRepository,
	items repositories.ItemRepository,
) *CatalogueItemService {
	return &CatalogueItemService{
		catalogue:     catalogue,
		categories:    categories,
		manufacturers: manufacturers,
		items:         items,
		validator:     NewInstanceValidator(),
	}
}

var _ ports.CatalogueItemService = (*CatalogueItemService)(nil)

func toValidatorInputs(in []ports.PropertyValueInput) []PropertyValueInput {
	out := make([]PropertyValueInput, len(in))
	for i, v := range in {
		out[i] = PropertyValueInput{ID: v.ID, Value: v.Value}
	}
	return out
}

// resolveLeafCategory fetches a category and confirms it is a leaf, the
// only kind of category a catalogue item may reference.
func (s *CatalogueItemService) resolveLeafCategory(ctx context.Context, id bson.ObjectID) (*entities.CatalogueCategory, error) {
	category, err := s.categories.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, errs.Missing("catalogue category", id.Hex())
	}
	if !category.IsLeaf {
		return nil, errs.New(errs.KindNonLeafCategoryForItem, "The specified catalogue category is not a leaf category")
	}
	return category, nil
}

// Create validates and inserts a new catalogue item.
func (s *CatalogueItemService) Create(ctx context.Context, in ports.CreateCatalogueItemInput) (*entities.CatalogueItem, error) {
	category, err := s.resolveLeafCategory(ctx, in.CatalogueCategoryID)
	if err != nil {
		return nil, err
	}

	manufacturer, err := s.manufacturers.Get(ctx, in.ManufacturerID)
	if err != nil {
		return nil, err
	}
	if manufacturer == nil {
		return nil, errs.Missing("manufacturer", in.ManufacturerID.Hex())
	}

	values, err := s.validator.Validate(category, toValidatorInputs(in.Properties))
	if err != nil {
		return nil, err
	}

	item := entities.NewCatalogueItem(in.CatalogueCategoryID, in.ManufacturerID, in.Name)
	item.Description = in.Description
	item.Cost = in.Cost
	item.DaysToReplace = in.DaysToReplace
	item.DaysToRework = in.DaysToRework
	item.DrawingNumber = in.DrawingNumber
	item.DrawingLink = in.DrawingLink
	item.ModelNumber = in.ModelNumber
	item.Notes = in.Notes
	item.Properties = values

	if err := s.catalogue.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Get fetches a catalogue item by id.
func (s *CatalogueItemService) Get(ctx context.Context, id bson.ObjectID) (*entities.CatalogueItem, error) {
	ci, err := s.catalogue.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if ci == nil {
		return nil, errs.Missing("catalogue item", id.Hex())
	}
	return ci, nil
}

// ListByCategory returns catalogue items under a category.
func (s *CatalogueItemService) ListByCategory(ctx context.Context, categoryID bson.ObjectID) ([]*entities.CatalogueItem, error) {
	return s.catalogue.ListByCategory(ctx, categoryID)
}

// Delete removes a catalogue item, rejecting if any item still references
// it.
func (s *CatalogueItemService) Delete(ctx context.Context, id bson.ObjectID) error {
	ci, err := s.catalogue.Get(ctx, id)
	if err != nil {
		return err
	}
	if ci == nil {
		return errs.Missing("catalogue item", id.Hex())
	}
	n, err := s.items.CountByCatalogueItem(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return errs.ChildrenExist("catalogue item")
	}
	return s.catalogue.Delete(ctx, id)
}

// Update applies a partial update to a catalogue item. Once at least one
// item references it, manufacturer_id, catalogue_category_id, and
// properties become immutable (the child-element lockout).
func (s *CatalogueItemService) Update(ctx context.Context, id bson.ObjectID, patch ports.UpdateCatalogueItemInput) (*entities.CatalogueItem, error) {
	ci, err := s.catalogue.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if ci == nil {
		return nil, errs.Missing("catalogue item", id.Hex())
	}

	locked := patch.ManufacturerID != nil || patch.CatalogueCategoryID != nil || patch.PropertiesSet
	if locked {
		n, err := s.items.CountByCatalogueItem(ctx, id)
		if err != nil {
			return nil, err
		}
		if n > 0 {
			return nil, errs.New(errs.KindInvalidAction,
				"Cannot change the manufacturer, catalogue category, or properties of a catalogue item that has items")
		}
	}

	if patch.CatalogueCategoryID != nil && *patch.CatalogueCategoryID != ci.CatalogueCategoryID {
		oldCategory, err := s.resolveLeafCategory(ctx, ci.CatalogueCategoryID)
		if err != nil {
			return nil, err
		}
		newCategory, err := s.resolveLeafCategory(ctx, *patch.CatalogueCategoryID)
		if err != nil {
			return nil, err
		}
		values, err := s.validator.ValidateCategoryMove(oldCategory, newCategory, ci.Properties, toValidatorInputs(patch.Properties), patch.PropertiesSet)
		if err != nil {
			return nil, err
		}
		ci.CatalogueCategoryID = *patch.CatalogueCategoryID
		ci.Properties = values
	} else if patch.PropertiesSet {
		category, err := s.resolveLeafCategory(ctx, ci.CatalogueCategoryID)
		if err != nil {
			return nil, err
		}
		values, err := s.validator.Validate(category, toValidatorInputs(patch.Properties))
		if err != nil {
			return nil, err
		}
		ci.Properties = values
	}

	if patch.ManufacturerID != nil {
		manufacturer, err := s.manufacturers.Get(ctx, *patch.ManufacturerID)
		if err != nil {
			return nil, err
		}
		if manufacturer == nil {
			return nil, errs.Missing("manufacturer", patch.ManufacturerID.Hex())
		}
		ci.ManufacturerID = *patch.ManufacturerID
	}

	if patch.Name != nil {
		ci.Name = *patch.Name
	}
	if patch.Description != nil {
		ci.Description = patch.Description
	}
	if patch.Cost != nil {
		ci.Cost = patch.Cost
	}
	if patch.DaysToReplace != nil {
		ci.DaysToReplace = patch.DaysToReplace
	}
	if patch.DaysToRework != nil {
		ci.DaysToRework = patch.DaysToRework
	}
	if patch.DrawingNumber != nil {
		ci.DrawingNumber = patch.DrawingNumber
	}
	if patch.DrawingLink != nil {
		ci.DrawingLink = patch.DrawingLink
	}
	if patch.ModelNumber != nil {
		ci.ModelNumber = patch.ModelNumber
	}
	if patch.Notes != nil {
		ci.Notes = patch.Notes
	}
	if patch.IsObsolete != nil {
		ci.IsObsolete = *patch.IsObsolete
	}
	if patch.ObsoleteReason != nil {
		ci.ObsoleteReason = patch.ObsoleteReason
	}
	if patch.ObsoleteReplacementCatalogueItemID != nil {
		replacement, err := s.catalogue.Get(ctx, *patch.ObsoleteReplacementCatalogueItemID)
		if err != nil {
			return nil, err
		}
		if replacement == nil {
			return nil, errs.Missing("catalogue item", patch.ObsoleteReplacementCatalogueItemID.Hex())
		}
		ci.ObsoleteReplacementCatalogueItemID = patch.ObsoleteReplacementCatalogueItemID
	}

	ci.Touch()
	if err := s.catalogue.Update(ctx, ci); err != nil {
		return nil, err
	}
	return ci, nil
}
