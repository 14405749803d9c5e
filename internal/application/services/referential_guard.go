package services

import (
	"context"

	"github.com/facilityinv/catalogue-api/internal/domain/repositories"
	"github.com/facilityinv/catalogue-api/internal/errs"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// ReferentialGuard blocks deletion of dimension entities still referenced
// elsewhere in the catalogue. Each check is a bounded existence scan (a
// count, not a full materialization) against the collection that would
// reference the entity being deleted.
type ReferentialGuard struct {
	categories repositories.CatalogueCategoryRepository
	items      repositories.ItemRepository
	catalogue  repositories.CatalogueItemRepository
}

// NewReferentialGuard constructs a ReferentialGuard.
func NewReferentialGuard(
	categories repositories.CatalogueCategoryRepository,
	items repositories.ItemRepository,
	catalogue repositories.CatalogueItemRepository,
) *ReferentialGuard {
	return &ReferentialGuard{categories: categories, items: items, catalogue: catalogue}
}

// CheckUnit rejects deleting a Unit still referenced by a property on any
// catalogue category.
func (g *ReferentialGuard) CheckUnit(ctx context.Context, unitID bson.ObjectID) error {
	n, err := g.categories.CountReferencingUnit(ctx, unitID)
	if err != nil {
		return err
	}
	if n > 0 {
		return errs.New(errs.KindPartOfCategory, "The specified unit is part of a catalogue category")
	}
	return nil
}

// CheckUsageStatus rejects deleting a UsageStatus still referenced by any
// item.
func (g *ReferentialGuard) CheckUsageStatus(ctx context.Context, usageStatusID bson.ObjectID) error {
	n, err := g.items.CountByUsageStatus(ctx, usageStatusID)
	if err != nil {
		return err
	}
	if n > 0 {
		return errs.New(errs.KindPartOfItem, "The specified usage status is part of an item")
	}
	return nil
}

// CheckManufacturer rejects deleting a Manufacturer still referenced by any
// catalogue item.
func (g *ReferentialGuard) CheckManufacturer(ctx context.Context, manufacturerID bson.ObjectID) error {
	n, err := g.catalogue.CountByManufacturer(ctx, manufacturerID)
	if err != nil {
		return err
	}
	if n > 0 {
		return errs.New(errs.KindPartOfCatalogueItem, "The specified manufacturer is a part of a catalogue item")
	}
	return nil
}
