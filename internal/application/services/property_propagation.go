package services

import (
	"context"

	"github.com/facilityinv/catalogue-api/internal/domain/entities"
	"github.com/facilityinv/catalogue-api/internal/domain/repositories"
	"github.com/facilityinv/catalogue-api/internal/domain/valueobjects"
	"github.com/facilityinv/catalogue-api/internal/errs"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// PropagationCoordinator wraps the three category-property operations that
// each span more than one collection: adding a property, updating a
// property, and replacing a category's property list wholesale. Adding and
// updating a property execute inside a single multi-document transaction
// (category → catalogue items → items) so that partial propagation never
// becomes visible. Replacing the list opens no transaction: it only
// validates and assigns the definitions, and the caller persists the
// category.
type PropagationCoordinator struct {
	categories repositories.CatalogueCategoryRepository
	catalogue  repositories.CatalogueItemRepository
	items      repositories.ItemRepository
	units      repositories.UnitRepository
	runner     repositories.PropagationRunner
	schema     *PropertySchema
}

// NewPropagationCoordinator constructs a PropagationCoordinator.
func NewPropagationCoordinator(
	categories repositories.CatalogueCategoryRepository,
	catalogue repositories.CatalogueItemRepository,
	items repositories.ItemRepository,
	units repositories.UnitRepository,
	runner repositories.PropagationRunner,
) *PropagationCoordinator {
	return &PropagationCoordinator{
		categories: categories,
		catalogue:  catalogue,
		items:      items,
		units:      units,
		runner:     runner,
		schema:     NewPropertySchema(),
	}
}

// resolveUnit fills Unit (the cached display value) from UnitID, when
// present.
func (c *PropagationCoordinator) resolveUnit(ctx context.Context, p *entities.Property) error {
	if p.UnitID == nil {
		return nil
	}
	u, err := c.units.Get(ctx, *p.UnitID)
	if err != nil {
		return err
	}
	if u == nil {
		return errs.New(errs.KindMissing, "No unit found with ID: %s", p.UnitID.Hex())
	}
	p.Unit = &u.Value
	return nil
}

// AddProperty appends a new property definition to a leaf category and
// propagates a PropertyValue carrying defaultValue to every catalogue item
// under the category and every item under those catalogue items.
func (c *PropagationCoordinator) AddProperty(ctx context.Context, categoryID bson.ObjectID, def *entities.Property, defaultValue valueobjects.TypedValue) (*entities.CatalogueCategory, error) {
	category, err := c.categories.Get(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, errs.Missing("catalogue category", categoryID.Hex())
	}
	if !category.IsLeaf {
		return nil, errs.New(errs.KindNonLeafCategoryForItem, "Cannot add a property to a non-leaf catalogue category")
	}

	if err := c.schema.ValidateStandalone(def); err != nil {
		return nil, err
	}
	if err := c.schema.ValidateInContext(category, def); err != nil {
		return nil, err
	}
	if err := c.resolveUnit(ctx, def); err != nil {
		return nil, err
	}
	if err := c.schema.ValidateDefault(def, defaultValue); err != nil {
		return nil, err
	}

	value := entities.NewPropertyValueFromDefinition(def, defaultValue)

	err = c.runner.RunInTransaction(ctx, func(sessCtx context.Context) error {
		category.Properties = append(category.Properties, *def)
		category.Touch()
		if err := c.categories.Update(sessCtx, category); err != nil {
			return err
		}

		catalogueItems, err := c.catalogue.ListByCategory(sessCtx, categoryID)
		if err != nil {
			return err
		}
		catalogueItemIDs := make([]bson.ObjectID, 0, len(catalogueItems))
		for _, ci := range catalogueItems {
			ci.Properties = append(ci.Properties, value)
			ci.Touch()
			if err := c.catalogue.Update(sessCtx, ci); err != nil {
				return err
			}
			catalogueItemIDs = append(catalogueItemIDs, ci.ID)
		}

		for _, catalogueItemID := range catalogueItemIDs {
			linkedItems, err := c.items.List(sessCtx, &catalogueItemID, nil)
			if err != nil {
				return err
			}
			for _, it := range linkedItems {
				it.Properties = append(it.Properties, value)
				it.Touch()
				if err := c.items.Update(sessCtx, it); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.categories.Get(ctx, categoryID)
}

// PropertyPatch is the inbound shape for an update-property request: either
// field left nil leaves that part of the definition untouched.
type PropertyPatch struct {
	Name          *string
	AllowedValues *entities.AllowedValues
}

// UpdateProperty applies a rename and/or an allowed-values constraint change
// to an existing property definition. A rename additionally propagates the
// cached name to every PropertyValue referencing the property, in both
// catalogue items and items; a constraint-only change touches only the
// category.
func (c *PropagationCoordinator) UpdateProperty(ctx context.Context, categoryID, propertyID bson.ObjectID, patch PropertyPatch) (*entities.CatalogueCategory, error) {
	category, err := c.categories.Get(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, errs.Missing("catalogue category", categoryID.Hex())
	}

	prop, idx := category.FindProperty(propertyID)
	if prop == nil {
		return nil, errs.Missing("property", propertyID.Hex())
	}

	updated := *prop
	renamed := false

	if patch.Name != nil && *patch.Name != prop.Name {
		renamed = true
		updated.Name = *patch.Name
		if err := c.schema.ValidateInContext(category, &updated); err != nil {
			return nil, err
		}
	}

	if patch.AllowedValues != nil || prop.AllowedValues != nil {
		if err := c.schema.ValidateAllowedValuesUpdate(prop.AllowedValues, patch.AllowedValues); err != nil {
			return nil, err
		}
		updated.AllowedValues = patch.AllowedValues
	}

	if err := c.schema.ValidateStandalone(&updated); err != nil {
		return nil, err
	}

	err = c.runner.RunInTransaction(ctx, func(sessCtx context.Context) error {
		category.Properties[idx] = updated
		category.Touch()
		if err := c.categories.Update(sessCtx, category); err != nil {
			return err
		}

		if !renamed {
			return nil
		}

		catalogueItems, err := c.catalogue.ListByCategory(sessCtx, categoryID)
		if err != nil {
			return err
		}
		catalogueItemIDs := make([]bson.ObjectID, 0, len(catalogueItems))
		for _, ci := range catalogueItems {
			if renamePropertyValue(ci.Properties, propertyID, updated.Name) {
				ci.Touch()
				if err := c.catalogue.Update(sessCtx, ci); err != nil {
					return err
				}
			}
			catalogueItemIDs = append(catalogueItemIDs, ci.ID)
		}

		for _, catalogueItemID := range catalogueItemIDs {
			linkedItems, err := c.items.List(sessCtx, &catalogueItemID, nil)
			if err != nil {
				return err
			}
			for _, it := range linkedItems {
				if renamePropertyValue(it.Properties, propertyID, updated.Name) {
					it.Touch()
					if err := c.items.Update(sessCtx, it); err != nil {
						return err
					}
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.categories.Get(ctx, categoryID)
}

// renamePropertyValue rewrites the cached name of the PropertyValue
// referencing propertyID, if present. It never touches the value itself.
func renamePropertyValue(values []entities.PropertyValue, propertyID bson.ObjectID, name string) bool {
	for i := range values {
		if values[i].ID == propertyID {
			values[i].Name = name
			return true
		}
	}
	return false
}

// ReplaceProperties performs the wholesale properties replacement that a
// category update triggers when `properties` is in the patch. The caller
// (CatalogueCategoryService.Update) has already confirmed the category has
// no children, so no propagation into catalogue items or items is required;
// this only revalidates and assigns fresh ids to the incoming definitions.
func (c *PropagationCoordinator) ReplaceProperties(ctx context.Context, category *entities.CatalogueCategory, defs []entities.Property) error {
	seen := make(map[string]struct{}, len(defs))
	for i := range defs {
		if defs[i].ID.IsZero() {
			defs[i].ID = bson.NewObjectID()
		}
		if err := c.schema.ValidateStandalone(&defs[i]); err != nil {
			return err
		}
		if _, dup := seen[defs[i].Name]; dup {
			return errs.New(errs.KindDuplicatePropertyName, "Duplicate property name: %s", defs[i].Name)
		}
		seen[defs[i].Name] = struct{}{}
		if err := c.resolveUnit(ctx, &defs[i]); err != nil {
			return err
		}
	}

	category.Properties = defs
	return nil
}
