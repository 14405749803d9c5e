package services

import (
	"context"

	"github.com/facilityinv/catalogue-api/internal/application/ports"
	"github.com/facilityinv/catalogue-api/internal/domain/entities"
	"github.com/facilityinv/catalogue-api/internal/domain/repositories"
	"github.com/facilityinv/catalogue-api/internal/domain/valueobjects"
	"github.com/facilityinv/catalogue-api/internal/errs"
	"github.com/facilityinv/catalogue-api/internal/helper/breadcrumb"
	"github.com/facilityinv/catalogue-api/internal/helper/codeslug"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// CatalogueCategoryService orchestrates the catalogue-category tree: plain
// CRUD plus the property-propagation operations that require more than a
// single-document write.
type CatalogueCategoryService struct {
	categories   repositories.CatalogueCategoryRepository
	schema       *PropertySchema
	propagation  *PropagationCoordinator
	units        repositories.UnitRepository
}

// NewCatalogueCategoryService constructs a CatalogueCategoryService.
func NewCatalogueCategoryService(
	categories repositories.CatalogueCategoryRepository,
	units repositories.UnitRepository,
	propagation *PropagationCoordinator,
) *CatalogueCategoryService {
	return &CatalogueCategoryService{
		categories:  categories,
		schema:      NewPropertySchema(),
		propagation: propagation,
		units:       units,
	}
}

var _ ports.CatalogueCategoryService = (*CatalogueCategoryService)(nil)

// Create validates and inserts a new catalogue category.
func (s *CatalogueCategoryService) Create(ctx context.Context, in ports.CreateCategoryInput) (*entities.CatalogueCategory, error) {
	var parent *entities.CatalogueCategory
	if in.ParentID != nil {
		var err error
		parent, err = s.categories.Get(ctx, *in.ParentID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, errs.Missing("catalogue category", in.ParentID.Hex())
		}
		if parent.IsLeaf {
			return nil, errs.New(errs.KindLeafParent, "Cannot add a catalogue category to a leaf parent catalogue category")
		}
	}

	code := codeslug.Generate(in.Name)
	if n, err := s.categories.CountBySiblingCode(ctx, in.ParentID, code, nil); err != nil {
		return nil, err
	} else if n > 0 {
		return nil, errs.Duplicate("catalogue category", code)
	}

	category := entities.NewCatalogueCategory(in.Name, code, in.ParentID, in.IsLeaf)

	if in.IsLeaf {
		defs, err := s.buildPropertyDefinitions(ctx, in.Properties)
		if err != nil {
			return nil, err
		}
		category.Properties = defs
	}

	if err := s.categories.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// buildPropertyDefinitions converts inbound property inputs into validated
// entities.Property definitions with fresh ids and resolved units, checking
// uniqueness of names within the batch.
func (s *CatalogueCategoryService) buildPropertyDefinitions(ctx context.Context, in []ports.PropertyInput) ([]entities.Property, error) {
	defs := make([]entities.Property, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, pi := range in {
		if _, dup := seen[pi.Name]; dup {
			return nil, errs.New(errs.KindDuplicatePropertyName, "Duplicate property name: %s", pi.Name)
		}
		seen[pi.Name] = struct{}{}

		p := entities.NewProperty(pi.Name, pi.Type, pi.Mandatory)
		p.UnitID = pi.UnitID
		if pi.AllowedValues != nil {
			p.AllowedValues = &entities.AllowedValues{Type: pi.AllowedValues.Type, Values: pi.AllowedValues.Values}
		}

		if err := s.schema.ValidateStandalone(p); err != nil {
			return nil, err
		}
		if p.UnitID != nil {
			u, err := s.units.Get(ctx, *p.UnitID)
			if err != nil {
				return nil, err
			}
			if u == nil {
				return nil, errs.Missing("unit", p.UnitID.Hex())
			}
			p.Unit = &u.Value
		}

		defs = append(defs, *p)
	}
	return defs, nil
}

// Get fetches a catalogue category by id.
func (s *CatalogueCategoryService) Get(ctx context.Context, id bson.ObjectID) (*entities.CatalogueCategory, error) {
	c, err := s.categories.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, errs.Missing("catalogue category", id.Hex())
	}
	return c, nil
}

// List returns catalogue categories matching the given parent filter.
func (s *CatalogueCategoryService) List(ctx context.Context, parentID *bson.ObjectID, rootsOnly bool) ([]*entities.CatalogueCategory, error) {
	return s.categories.List(ctx, repositories.TreeFilter{ParentID: parentID, RootsOnly: rootsOnly})
}

// Delete removes a catalogue category, rejecting if it still has children.
func (s *CatalogueCategoryService) Delete(ctx context.Context, id bson.ObjectID) error {
	category, err := s.categories.Get(ctx, id)
	if err != nil {
		return err
	}
	if category == nil {
		return errs.Missing("catalogue category", id.Hex())
	}
	n, err := s.categories.CountChildCategories(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return errs.ChildrenExist("catalogue category")
	}
	return s.categories.Delete(ctx, id)
}

// Breadcrumbs returns the root-to-entity trail for a catalogue category.
func (s *CatalogueCategoryService) Breadcrumbs(ctx context.Context, id bson.ObjectID) (*breadcrumb.Trail, error) {
	ancestors, err := s.categories.Ancestors(ctx, id, breadcrumb.TrailMaxLength)
	if err != nil {
		return nil, err
	}
	nodes := make([]breadcrumb.Node, len(ancestors))
	for i, a := range ancestors {
		nodes[i] = breadcrumb.Node{ID: a.ID, Name: a.Name, ParentID: a.ParentID}
	}
	return breadcrumb.Build(nodes)
}

// Update applies a partial update to a catalogue category, including moves
// (parent_id change, cycle-checked) and the wholesale properties
// replacement the Propagation Coordinator owns.
func (s *CatalogueCategoryService) Update(ctx context.Context, id bson.ObjectID, patch ports.UpdateCategoryInput) (*entities.CatalogueCategory, error) {
	category, err := s.categories.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, errs.Missing("catalogue category", id.Hex())
	}

	structuralChange := patch.IsLeaf != nil || patch.PropertiesSet
	if structuralChange {
		n, err := s.categories.CountChildCategories(ctx, id)
		if err != nil {
			return nil, err
		}
		if n > 0 {
			return nil, errs.ChildrenExist("catalogue category")
		}
	}

	renamed := patch.Name != nil && *patch.Name != category.Name
	moved := patch.ParentSet && !samePointer(patch.ParentID, category.ParentID)

	newParentID := category.ParentID
	if patch.ParentSet {
		newParentID = patch.ParentID
	}

	if moved {
		if patch.ParentID != nil {
			destination, err := s.categories.Get(ctx, *patch.ParentID)
			if err != nil {
				return nil, err
			}
			if destination == nil {
				return nil, errs.Missing("catalogue category", patch.ParentID.Hex())
			}
			if destination.IsLeaf {
				return nil, errs.New(errs.KindLeafParent, "Cannot move a catalogue category under a leaf catalogue category")
			}
			descendant, err := s.categories.IsDescendant(ctx, id, *patch.ParentID)
			if err != nil {
				return nil, err
			}
			if descendant {
				return nil, errs.New(errs.KindInvalidAction, "Cannot move a catalogue category into its own subtree")
			}
		}
	}

	newName := category.Name
	if patch.Name != nil {
		newName = *patch.Name
	}

	if renamed || moved {
		code := codeslug.Generate(newName)
		if n, err := s.categories.CountBySiblingCode(ctx, newParentID, code, &id); err != nil {
			return nil, err
		} else if n > 0 {
			return nil, errs.Duplicate("catalogue category", code)
		}
		category.Code = code
	}

	category.Name = newName
	category.ParentID = newParentID
	if patch.IsLeaf != nil {
		category.IsLeaf = *patch.IsLeaf
	}

	// Non-leaf categories never carry properties, regardless of what the
	// caller submitted: a submitted properties list is silently discarded
	// when the category ends up non-leaf after this patch is applied.
	if !category.IsLeaf {
		category.Properties = []entities.Property{}
	} else if patch.PropertiesSet {
		defs, err := s.buildPropertyDefinitions(ctx, patch.Properties)
		if err != nil {
			return nil, err
		}
		if err := s.propagation.ReplaceProperties(ctx, category, defs); err != nil {
			return nil, err
		}
	}

	category.Touch()
	if err := s.categories.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// AddProperty delegates to the Propagation Coordinator to add a new
// property definition and fan the default value out to existing catalogue
// items and items.
func (s *CatalogueCategoryService) AddProperty(ctx context.Context, categoryID bson.ObjectID, in ports.PropertyInput, defaultValue *ports.PropertyValueInput) (*entities.CatalogueCategory, error) {
	def := entities.NewProperty(in.Name, in.Type, in.Mandatory)
	def.UnitID = in.UnitID
	if in.AllowedValues != nil {
		def.AllowedValues = &entities.AllowedValues{Type: in.AllowedValues.Type, Values: in.AllowedValues.Values}
	}

	value := valueobjects.Null()
	if defaultValue != nil {
		value = defaultValue.Value
	}

	return s.propagation.AddProperty(ctx, categoryID, def, value)
}

// UpdateProperty delegates to the Propagation Coordinator to rename and/or
// constrain an existing property definition.
func (s *CatalogueCategoryService) UpdateProperty(ctx context.Context, categoryID, propertyID bson.ObjectID, patch ports.PropertyPatch) (*entities.CatalogueCategory, error) {
	coordinatorPatch := PropertyPatch{Name: patch.Name}
	if patch.AllowedValuesSet {
		if patch.AllowedValues != nil {
			coordinatorPatch.AllowedValues = &entities.AllowedValues{Type: patch.AllowedValues.Type, Values: patch.AllowedValues.Values}
		}
	} else {
		category, err := s.categories.Get(ctx, categoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, errs.Missing("catalogue category", categoryID.Hex())
		}
		if prop, _ := category.FindProperty(propertyID); prop != nil {
			coordinatorPatch.AllowedValues = prop.AllowedValues
		}
	}
	return s.propagation.UpdateProperty(ctx, categoryID, propertyID, coordinatorPatch)
}

func samePointer(a, b *bson.ObjectID) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
